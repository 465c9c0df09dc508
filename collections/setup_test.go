package collections_test

import (
	"testing"

	"quotebuilder/collections"
	"quotebuilder/testhelpers"
)

var expectedCollections = []string{
	"machines",
	"machine_options",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for _, name := range expectedCollections {
		t.Run(name, func(t *testing.T) {
			col, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				t.Fatalf("collection %q not found: %v", name, err)
			}
			if col.Name != name {
				t.Errorf("expected collection name %q, got %q", name, col.Name)
			}
		})
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Record the collection IDs after the first Setup (run by NewTestApp).
	idsBefore := make(map[string]string)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Fatalf("collection %q not found: %v", name, err)
		}
		idsBefore[name] = col.Id
	}

	// Running Setup again must not recreate or duplicate collections.
	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Fatalf("collection %q not found after second Setup: %v", name, err)
		}
		if col.Id != idsBefore[name] {
			t.Errorf("collection %q was recreated: id %q -> %q", name, idsBefore[name], col.Id)
		}
	}
}

func TestSetup_MachinesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("machines")
	if err != nil {
		t.Fatalf("machines collection not found: %v", err)
	}

	for _, field := range []string{"name", "base_price", "discount", "standard_options", "created", "updated"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("machines collection missing field %q", field)
		}
	}
}

func TestSetup_MachineOptionsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("machine_options")
	if err != nil {
		t.Fatalf("machine_options collection not found: %v", err)
	}

	for _, field := range []string{"machine", "sort_order", "description", "price"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("machine_options collection missing field %q", field)
		}
	}
}

func TestSetup_OptionsCascadeDeleteWithMachine(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	machine := testhelpers.CreateTestMachine(t, app, "HU40A", 465000, 15000, nil)
	opt := testhelpers.CreateTestMachineOption(t, app, machine.Id, 1, "Touch probe", 14500)

	if err := app.Delete(machine); err != nil {
		t.Fatalf("failed to delete machine: %v", err)
	}

	if _, err := app.FindRecordById("machine_options", opt.Id); err == nil {
		t.Error("expected option record to be cascade-deleted with its machine")
	}
}
