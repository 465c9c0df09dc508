package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/templates"
)

type contextKey string

const ActiveMachineKey contextKey = "activeMachine"
const HeaderDataKey contextKey = "headerData"

// GetActiveMachine extracts the active machine from the request context.
func GetActiveMachine(r *http.Request) *templates.ActiveMachine {
	if val, ok := r.Context().Value(ActiveMachineKey).(*templates.ActiveMachine); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// ActiveMachineMiddleware reads the "active_machine" cookie, loads the
// machine record, builds HeaderData with the full machine list for the
// header dropdown, and stores both in the request context.
func ActiveMachineMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var active *templates.ActiveMachine

		cookie, err := e.Request.Cookie("active_machine")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("machines", cookie.Value)
			if err == nil {
				active = &templates.ActiveMachine{
					ID:   rec.Id,
					Name: rec.GetString("name"),
				}
			} else {
				log.Printf("middleware: active machine %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   "active_machine",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		// Full machine list for the header dropdown, sorted by name to match
		// the catalog's selection order.
		machinesCol, _ := app.FindCollectionByNameOrId("machines")
		var selectorItems []templates.MachineSelectorItem
		if machinesCol != nil {
			records, _ := app.FindRecordsByFilter(machinesCol, "id != ''", "name", 0, 0, nil)
			for _, rec := range records {
				isActive := active != nil && rec.Id == active.ID
				selectorItems = append(selectorItems, templates.MachineSelectorItem{
					ID:       rec.Id,
					Name:     rec.GetString("name"),
					IsActive: isActive,
				})
			}
		}

		headerData := templates.HeaderData{
			ActiveMachine: active,
			Machines:      selectorItems,
		}

		ctx := context.WithValue(e.Request.Context(), ActiveMachineKey, active)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
