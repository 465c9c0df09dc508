package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
)

// buildQuoteData assembles the document model for a quote from the machine
// records and the posted form state.
func buildQuoteData(app *pocketbase.PocketBase, machineID string, state quoteFormState, now time.Time) (services.QuoteData, error) {
	q, err := buildMachineQuote(app, machineID)
	if err != nil {
		return services.QuoteData{}, err
	}

	selGroups, selected := selectedItems(q.Groups, state.SelectedIDs)
	discount := services.ResolveDiscount(q.BasePrice, state.Discount, q.DefaultDiscount)
	totals := services.CalcQuoteTotals(q.BasePrice, discount, selected)

	machineType := q.Machine.GetString("name")
	customer := state.CustomerName
	if customer == "" {
		customer = "[Customer Name]"
	}

	return services.QuoteData{
		QuoteNumber:     services.GenerateQuoteNumber(machineType, now),
		CustomerName:    customer,
		MachineType:     machineType,
		CreatedDate:     now.Format("02 Jan 2006"),
		BasePrice:       totals.BasePrice,
		Discount:        totals.Discount,
		StandardOptions: q.StandardOptions,
		Groups:          selGroups,
		OptionsTotal:    totals.OptionsTotal,
		Total:           totals.FinalPrice,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportPDF generates and downloads the quote PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		machineID := e.Request.PathValue("id")
		if machineID == "" {
			return e.String(http.StatusBadRequest, "Missing machine ID")
		}

		state := parseQuoteForm(e)
		data, err := buildQuoteData(app, machineID, state, time.Now())
		if err != nil {
			log.Printf("quote_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Machine not found")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("quote_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quote_%s_%s.pdf", sanitizeFilename(data.MachineType), sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel generates and downloads the quote Excel workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		machineID := e.Request.PathValue("id")
		if machineID == "" {
			return e.String(http.StatusBadRequest, "Missing machine ID")
		}

		state := parseQuoteForm(e)
		data, err := buildQuoteData(app, machineID, state, time.Now())
		if err != nil {
			log.Printf("quote_export_excel: %v", err)
			return e.String(http.StatusNotFound, "Machine not found")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("quote_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quote_%s_%s.xlsx", sanitizeFilename(data.MachineType), sanitizeFilename(data.QuoteNumber))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
