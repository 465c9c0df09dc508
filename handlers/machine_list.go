package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/services"
	"quotebuilder/templates"
)

// HandleMachineList renders the machine catalog page.
func HandleMachineList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		machinesCol, err := app.FindCollectionByNameOrId("machines")
		if err != nil {
			log.Printf("machine_list: could not find machines collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(machinesCol, "id != ''", "name", 0, 0, nil)
		if err != nil {
			log.Printf("machine_list: could not query machines: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		active := GetActiveMachine(e.Request)

		var items []templates.MachineListItem
		for _, rec := range records {
			options, err := loadMachineOptions(app, rec.Id)
			if err != nil {
				log.Printf("machine_list: could not load options for %s: %v", rec.Id, err)
				options = nil
			}

			groups, extractedBase := services.GroupOptions(options)
			basePrice := rec.GetFloat("base_price")
			if extractedBase > 0 {
				basePrice = extractedBase
			}

			upgradeCount := 0
			for _, g := range groups {
				upgradeCount += len(g.Items)
			}

			standard := services.CleanStandardOptions(rec.GetStringSlice("standard_options"))

			items = append(items, templates.MachineListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				BasePrice:     services.FormatUSD(basePrice),
				StandardCount: len(standard),
				UpgradeCount:  upgradeCount,
				IsActive:      active != nil && active.ID == rec.Id,
			})
		}

		data := templates.MachineListData{
			Items:      items,
			TotalCount: len(records),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.MachineListContent(data)
		} else {
			component = templates.MachineListPage(data, GetHeaderData(e.Request))
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
