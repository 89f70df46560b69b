package routes

import (
	"dockmaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathScope      = "/scope"
	PathReviews    = "/reviews"
	PathWorkOrders = "/workorders"
	PathOutreach   = "/outreach"
	PathPayments   = "/payments"
)

func addDockMasterRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	scopeHandler *handlers.ScopeHandler,
	reviewHandler *handlers.ReviewHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	outreachHandler *handlers.OutreachHandler,
	paymentHandler *handlers.DepositPaymentHandler,
) {
	// Demo dataset.
	rg.GET("/scenarios", catalogHandler.ListScenarios)
	rg.GET("/scenarios/:scenario_id", catalogHandler.GetScenario)
	rg.GET("/customers", catalogHandler.ListCustomers)
	rg.GET("/customers/:customer_id", catalogHandler.GetCustomer)
	rg.GET("/vessels", catalogHandler.ListVessels)
	rg.GET("/vessels/:vessel_id", catalogHandler.GetVessel)
	rg.GET("/parts", catalogHandler.ListParts)
	rg.GET("/diagnostics", catalogHandler.MatchDiagnostics)

	scope := rg.Group(PathScope)
	{
		scope.POST("", scopeHandler.GenerateScope)
		scope.POST("/stream", scopeHandler.StreamNarrative)
	}

	reviews := rg.Group(PathReviews)
	{
		reviews.POST("", reviewHandler.OpenReview)
		reviews.GET("/:review_id", reviewHandler.GetReview)
		reviews.POST("/:review_id/items", reviewHandler.AddItem)
		reviews.PATCH("/:review_id/items/:item_id", reviewHandler.UpdateItem)
		reviews.DELETE("/:review_id/items/:item_id", reviewHandler.RemoveItem)
		reviews.POST("/:review_id/reset", reviewHandler.ResetReview)
		reviews.POST("/:review_id/commit", reviewHandler.CommitReview)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("/:work_order_id", workOrderHandler.GetWorkOrder)
		workOrders.PATCH("/:work_order_id/approve", workOrderHandler.ApproveWorkOrder)
		workOrders.PATCH("/:work_order_id/reject", workOrderHandler.RejectWorkOrder)
		workOrders.PATCH("/:work_order_id/cancel", workOrderHandler.CancelWorkOrder)
		workOrders.GET("/:work_order_id/estimate.pdf", workOrderHandler.EstimatePDF)
	}

	outreach := rg.Group(PathOutreach)
	{
		outreach.GET("", outreachHandler.ListOutreach)
		outreach.GET("/funnel", outreachHandler.FunnelMetrics)
		outreach.GET("/report.xlsx", outreachHandler.Report)
		outreach.POST("", outreachHandler.AddOutreach)
		outreach.PATCH("/:outreach_id/send", outreachHandler.SendOutreach)
		outreach.PATCH("/:outreach_id/dismiss", outreachHandler.DismissOutreach)
		outreach.PATCH("/:outreach_id/message", outreachHandler.UpdateMessage)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:work_order_id", paymentHandler.CreatePaymentByWorkOrderID)
		payments.GET("/:work_order_id", paymentHandler.GetPaymentByWorkOrderID)
	}
}
