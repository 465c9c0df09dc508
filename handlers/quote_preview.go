package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/templates"
)

// HandleQuotePreview recomputes the price summary from the posted form state
// and returns the summary fragment for HTMX to swap in. Nothing is stored;
// every preview is a fresh computation from the catalog records.
func HandleQuotePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		machineID := e.Request.PathValue("id")

		q, err := buildMachineQuote(app, machineID)
		if err != nil {
			log.Printf("quote_preview: %v", err)
			return ErrorToast(e, http.StatusNotFound, "Machine not found")
		}

		state := parseQuoteForm(e)
		component := templates.PriceSummary(summaryData(q, state))
		return component.Render(e.Request.Context(), e.Response)
	}
}
