package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/templates"
)

// loadMachineOptions fetches the optional upgrade rows for a machine in
// catalog order.
func loadMachineOptions(app *pocketbase.PocketBase, machineID string) ([]services.OptionItem, error) {
	optionsCol, err := app.FindCollectionByNameOrId("machine_options")
	if err != nil {
		return nil, fmt.Errorf("collection not found: %w", err)
	}

	records, err := app.FindRecordsByFilter(
		optionsCol,
		"machine = {:machineId}",
		"sort_order", 0, 0,
		map[string]any{"machineId": machineID},
	)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}

	items := make([]services.OptionItem, 0, len(records))
	for _, rec := range records {
		items = append(items, services.OptionItem{
			ID:          rec.Id,
			Description: rec.GetString("description"),
			Price:       rec.GetFloat("price"),
		})
	}
	return items, nil
}

// quoteFormState is the parsed user input of the quote form.
type quoteFormState struct {
	CustomerName string
	Discount     services.DiscountInput
	SelectedIDs  map[string]bool
}

// parseQuoteForm reads the posted quote form. Number fields fall back to 0
// when empty or unparsable; the inputs already enforce their ranges.
func parseQuoteForm(e *core.RequestEvent) quoteFormState {
	if err := e.Request.ParseForm(); err != nil {
		log.Printf("quote_form: parse form: %v", err)
	}

	state := quoteFormState{
		CustomerName: strings.TrimSpace(e.Request.FormValue("customer_name")),
		Discount: services.DiscountInput{
			DesiredPrice:    formFloat(e, "desired_price"),
			PercentDiscount: formFloat(e, "percent_discount"),
			FlatDiscount:    formFloat(e, "flat_discount"),
		},
		SelectedIDs: map[string]bool{},
	}
	for _, id := range e.Request.PostForm["option"] {
		if id != "" {
			state.SelectedIDs[id] = true
		}
	}
	return state
}

func formFloat(e *core.RequestEvent, name string) float64 {
	v := strings.TrimSpace(e.Request.FormValue(name))
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// machineQuote is everything recomputed fresh from the catalog records for
// one render of the quote form.
type machineQuote struct {
	Machine         *core.Record
	StandardOptions []string
	Groups          []services.OptionGroup
	BasePrice       float64
	DefaultDiscount float64
}

// buildMachineQuote loads the machine and derives the cleaned standard
// options, categorized upgrades, and effective base price. An embedded base
// price row in the optional options overrides the catalog base price.
func buildMachineQuote(app *pocketbase.PocketBase, machineID string) (machineQuote, error) {
	rec, err := app.FindRecordById("machines", machineID)
	if err != nil {
		return machineQuote{}, fmt.Errorf("machine not found: %w", err)
	}

	options, err := loadMachineOptions(app, machineID)
	if err != nil {
		return machineQuote{}, err
	}

	groups, extractedBase := services.GroupOptions(options)
	basePrice := rec.GetFloat("base_price")
	if extractedBase > 0 {
		basePrice = extractedBase
	}

	return machineQuote{
		Machine:         rec,
		StandardOptions: services.CleanStandardOptions(rec.GetStringSlice("standard_options")),
		Groups:          groups,
		BasePrice:       basePrice,
		DefaultDiscount: rec.GetFloat("discount"),
	}, nil
}

// selectedItems filters the grouped upgrades down to the checked ones,
// keeping category grouping and order.
func selectedItems(groups []services.OptionGroup, selectedIDs map[string]bool) ([]services.OptionGroup, []services.OptionItem) {
	var selGroups []services.OptionGroup
	var flat []services.OptionItem
	for _, g := range groups {
		var keep []services.OptionItem
		for _, opt := range g.Items {
			if selectedIDs[opt.ID] {
				keep = append(keep, opt)
				flat = append(flat, opt)
			}
		}
		if len(keep) > 0 {
			selGroups = append(selGroups, services.OptionGroup{Name: g.Name, Items: keep})
		}
	}
	return selGroups, flat
}

// summaryData computes the price panel for the given form state.
func summaryData(q machineQuote, state quoteFormState) templates.PriceSummaryData {
	_, selected := selectedItems(q.Groups, state.SelectedIDs)
	discount := services.ResolveDiscount(q.BasePrice, state.Discount, q.DefaultDiscount)
	totals := services.CalcQuoteTotals(q.BasePrice, discount, selected)

	return templates.PriceSummaryData{
		BasePrice:     services.FormatUSD(totals.BasePrice),
		Discount:      services.FormatUSD(totals.Discount),
		OptionsTotal:  services.FormatUSD(totals.OptionsTotal),
		FinalPrice:    services.FormatUSD(totals.FinalPrice),
		SelectedCount: len(selected),
	}
}

// HandleQuoteForm renders the quote builder page for a machine.
func HandleQuoteForm(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		machineID := e.Request.PathValue("id")

		q, err := buildMachineQuote(app, machineID)
		if err != nil {
			log.Printf("quote_form: %v", err)
			return e.String(http.StatusNotFound, "Machine not found")
		}

		var formGroups []templates.QuoteFormGroup
		for _, g := range q.Groups {
			fg := templates.QuoteFormGroup{Name: g.Name}
			for _, opt := range g.Items {
				fg.Options = append(fg.Options, templates.QuoteFormOption{
					ID:          opt.ID,
					Description: opt.Description,
					Price:       services.FormatUSD(opt.Price),
				})
			}
			formGroups = append(formGroups, fg)
		}

		data := templates.QuoteFormData{
			MachineID:       q.Machine.Id,
			MachineName:     q.Machine.GetString("name"),
			BasePrice:       services.FormatUSD(q.BasePrice),
			StandardOptions: q.StandardOptions,
			Groups:          formGroups,
			Summary:         summaryData(q, quoteFormState{SelectedIDs: map[string]bool{}}),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuoteFormContent(data)
		} else {
			component = templates.QuoteFormPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
