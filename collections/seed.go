package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/catalog"
)

// SeedFromCatalog populates the machines and machine_options collections
// from a loaded catalog. The catalog is read-only for the life of the
// process, so seeding is safe to run on every startup: it returns early if
// any machine records already exist.
func SeedFromCatalog(app *pocketbase.PocketBase, c catalog.Catalog) error {
	machinesCol, err := app.FindCollectionByNameOrId("machines")
	if err != nil {
		return fmt.Errorf("seed: could not find machines collection: %w", err)
	}
	existing, err := app.FindAllRecords(machinesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query machines: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: machines collection is empty – inserting catalog data …")

	optionsCol, err := app.FindCollectionByNameOrId("machine_options")
	if err != nil {
		return fmt.Errorf("seed: could not find machine_options collection: %w", err)
	}

	// Sorted order keeps seeding deterministic across runs.
	for _, name := range c.Names() {
		cfg := c[name]

		m := core.NewRecord(machinesCol)
		m.Set("name", name)
		m.Set("base_price", cfg.BasePrice)
		m.Set("discount", cfg.Discount)
		m.Set("standard_options", cfg.StandardOptions)
		if err := app.Save(m); err != nil {
			return fmt.Errorf("seed: save machine %q: %w", name, err)
		}

		for i, opt := range cfg.OptionalOptions {
			r := core.NewRecord(optionsCol)
			r.Set("machine", m.Id)
			r.Set("sort_order", i+1)
			r.Set("description", opt.Description)
			r.Set("price", opt.Price)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save option %q for machine %q: %w", opt.Description, name, err)
			}
		}
	}

	log.Printf("seed: inserted %d machines from catalog", len(c))
	return nil
}

// SeedFromFile loads the catalog file and seeds the collections from it.
// Catalog errors abort seeding; a malformed catalog is a configuration
// error, not something to coerce.
func SeedFromFile(app *pocketbase.PocketBase, path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	return SeedFromCatalog(app, c)
}
