// Package testhelpers provides utilities for testing the quote builder's
// PocketBase-backed handlers.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestMachine creates a machine record and returns it.
func CreateTestMachine(t *testing.T, app *pocketbase.PocketBase, name string, basePrice, discount float64, standardOptions []string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("machines")
	if err != nil {
		t.Fatalf("failed to find machines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("base_price", basePrice)
	record.Set("discount", discount)
	record.Set("standard_options", standardOptions)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test machine: %v", err)
	}

	return record
}

// CreateTestMachineOption creates an optional upgrade row for a machine.
func CreateTestMachineOption(t *testing.T, app *pocketbase.PocketBase, machineID string, sortOrder int, description string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("machine_options")
	if err != nil {
		t.Fatalf("failed to find machine_options collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("machine", machineID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test machine option: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
