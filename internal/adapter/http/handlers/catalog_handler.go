package handlers

import (
	"net/http"

	"dockmaster/internal/domain/fixtures"
	"dockmaster/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the demo dataset: scenarios, customers, vessels,
// parts and diagnostic patterns. The data is fixed, so there is no use case
// behind it.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Scenarios)
}

func (h *CatalogHandler) GetScenario(c *gin.Context) {
	scenario, ok := fixtures.ScenarioByID(c.Param("scenario_id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("SCENARIO_NOT_FOUND", "Scenario not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, scenario)
}

func (h *CatalogHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Customers)
}

func (h *CatalogHandler) GetCustomer(c *gin.Context) {
	customer, ok := fixtures.CustomerByID(c.Param("customer_id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CatalogHandler) ListVessels(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Vessels)
}

func (h *CatalogHandler) GetVessel(c *gin.Context) {
	vessel, ok := fixtures.VesselByID(c.Param("vessel_id"))
	if !ok {
		appErr := pkg.NewDomainErrorSimple("VESSEL_NOT_FOUND", "Vessel not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, vessel)
}

func (h *CatalogHandler) ListParts(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Parts)
}

// MatchDiagnostics returns the diagnostic patterns matching a vessel type
// and reported symptom. Both filters are optional.
func (h *CatalogHandler) MatchDiagnostics(c *gin.Context) {
	matches := fixtures.MatchDiagnostics(c.Query("vesselType"), c.Query("symptom"))
	c.JSON(http.StatusOK, matches)
}
