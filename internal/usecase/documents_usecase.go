package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/fixtures"
	"dockmaster/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// IDocumentsUseCase renders customer-facing documents: the printable
// estimate PDF for a work order and the outreach pipeline XLSX report.

type IDocumentsUseCase interface {
	EstimatePDF(ctx context.Context, workOrderID string) ([]byte, error)
	OutreachReportXLSX(ctx context.Context) ([]byte, error)
}

type DocumentsUseCase struct {
	workOrderRepo interfaces.IWorkOrderRepository
	outreachRepo  interfaces.IOutreachRepository
}

var _ IDocumentsUseCase = (*DocumentsUseCase)(nil)

func NewDocumentsUseCase(workOrderRepo interfaces.IWorkOrderRepository, outreachRepo interfaces.IOutreachRepository) *DocumentsUseCase {
	return &DocumentsUseCase{workOrderRepo: workOrderRepo, outreachRepo: outreachRepo}
}

// EstimatePDF renders the estimate for a committed work order.
func (u *DocumentsUseCase) EstimatePDF(ctx context.Context, workOrderID string) ([]byte, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	wo, err := u.workOrderRepo.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo.ID == "" {
		return nil, ErrWorkOrderNotFound
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("%s - Service Estimate", fixtures.Marina.Name))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Work Order: %s", wo.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", wo.Status))
	pdf.Ln(5)
	if scenario, ok := fixtures.ScenarioByID(wo.ScenarioID); ok {
		if customer, ok := fixtures.CustomerByID(scenario.CustomerID); ok {
			pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", customer.Name))
			pdf.Ln(5)
		}
		if vessel, ok := fixtures.VesselByID(scenario.VesselID); ok {
			pdf.Cell(0, 6, fmt.Sprintf("Vessel: %s (%s)", vessel.Name, vessel.Model))
			pdf.Ln(5)
		}
	}
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC3339)))
	pdf.Ln(8)

	// Line items table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Category", "1", 0, "C", false, 0, "")
	pdf.CellFormat(15, 6, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, li := range wo.LineItems {
		pdf.CellFormat(80, 6, li.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, string(li.Category), "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", li.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("$%.2f", li.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("$%.2f", li.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: $%.2f", wo.Subtotal))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Tax (7%%): $%.2f", wo.Tax))
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total: $%.2f", wo.Total))
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Estimated Hours: %.1f", wo.EstimatedHours))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OutreachReportXLSX renders the full outreach pipeline with a funnel
// summary sheet.
func (u *DocumentsUseCase) OutreachReportXLSX(ctx context.Context) ([]byte, error) {
	all, err := u.outreachRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	summarySheet := "funnel"
	itemsSheet := "outreach"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(itemsSheet)

	counts := make(map[entities.OutreachStatus]int)
	revenue := make(map[entities.OutreachStatus]float64)
	for _, o := range all {
		counts[o.Status]++
		revenue[o.Status] += o.EstimatedRevenue
	}

	_ = f.SetCellValue(summarySheet, "A1", "Outreach Funnel")
	_ = f.SetCellValue(summarySheet, "A3", "Stage")
	_ = f.SetCellValue(summarySheet, "B3", "Count")
	_ = f.SetCellValue(summarySheet, "C3", "Est. Revenue")
	stages := []entities.OutreachStatus{
		entities.OutreachStatusDraft,
		entities.OutreachStatusSent,
		entities.OutreachStatusOpened,
		entities.OutreachStatusBooked,
		entities.OutreachStatusDismissed,
	}
	for i, st := range stages {
		row := i + 4
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), string(st))
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), counts[st])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), revenue[st])
	}

	headers := []string{"ID", "Customer", "Vessel", "Title", "Trigger", "Priority", "Status", "Channel", "Est. Revenue", "Created", "Due"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}
	for i, o := range all {
		row := i + 2
		customerName := o.CustomerID
		if c, ok := fixtures.CustomerByID(o.CustomerID); ok {
			customerName = c.Name
		}
		vesselName := o.VesselID
		if v, ok := fixtures.VesselByID(o.VesselID); ok {
			vesselName = v.Name
		}
		values := []any{o.ID, customerName, vesselName, o.Title, o.Trigger, string(o.Priority), string(o.Status), o.Channel, o.EstimatedRevenue, o.CreatedDate, o.DueDate}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(itemsSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
