package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleMachineActivate sets the active machine cookie and returns a full
// page redirect via HX-Redirect so the header re-renders with the selection.
func HandleMachineActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		machineID := e.Request.PathValue("id")

		// Verify machine exists
		_, err := app.FindRecordById("machines", machineID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Machine not found")
		}

		// Set cookie (30-day expiry, HttpOnly)
		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_machine",
			Value:    machineID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Machine selected")

		e.Response.Header().Set("HX-Redirect", "/machines/"+machineID+"/quote")
		return e.String(200, "OK")
	}
}

// HandleMachineDeactivate clears the active machine cookie and redirects to
// the catalog page.
func HandleMachineDeactivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   "active_machine",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		SetToast(e, "success", "Machine selection cleared")

		e.Response.Header().Set("HX-Redirect", "/machines")
		return e.String(200, "OK")
	}
}
