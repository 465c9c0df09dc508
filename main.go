package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotebuilder/collections"
	"quotebuilder/handlers"
)

const defaultCatalogPath = "./data/machine_catalog.json"

func main() {
	// Optional .env; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = defaultCatalogPath
	}

	app := pocketbase.New()

	// Create collections and seed the catalog on startup. A malformed
	// catalog is a configuration error and stops the server.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.SeedFromFile(app, catalogPath); err != nil {
			log.Fatalf("catalog seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active machine middleware globally
		se.Router.BindFunc(handlers.ActiveMachineMiddleware(app))

		// ── Machine selection ────────────────────────────────────
		se.Router.POST("/machines/{id}/activate", handlers.HandleMachineActivate(app))
		se.Router.POST("/machines/deactivate", handlers.HandleMachineDeactivate(app))

		// ── Catalog list ─────────────────────────────────────────
		se.Router.GET("/machines", handlers.HandleMachineList(app))

		// ── Quote builder ────────────────────────────────────────
		se.Router.GET("/machines/{id}/quote", handlers.HandleQuoteForm(app))
		se.Router.POST("/machines/{id}/quote/preview", handlers.HandleQuotePreview(app))

		// ── Quote downloads ──────────────────────────────────────
		se.Router.POST("/machines/{id}/quote/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.POST("/machines/{id}/quote/export/excel", handlers.HandleQuoteExportExcel(app))

		// Redirect home to the machine catalog
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/machines")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
