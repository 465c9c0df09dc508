package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotebuilder/testhelpers"
)

func TestHandleQuotePreview_RecomputesSummary(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "HW63", 200000, 0, nil)
	o1 := testhelpers.CreateTestMachineOption(t, app, m.Id, 1, "Angle head attachment", 5000)
	o2 := testhelpers.CreateTestMachineOption(t, app, m.Id, 2, "Spindle torque upgrade", 3000)

	req := postFormRequest("/machines/"+m.Id+"/quote/preview",
		"option="+o1.Id+"&option="+o2.Id)
	req.SetPathValue("id", m.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePreview(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`id="price-summary"`,
		"$208,000.00",
		"Selected Upgrades (2)",
	)
}

func TestHandleQuotePreview_DiscountPriority(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "HU40A", 100000, 5000, nil)

	// Desired price wins over percent and flat.
	req := postFormRequest("/machines/"+m.Id+"/quote/preview",
		"desired_price=90000&percent_discount=50&flat_discount=10000")
	req.SetPathValue("id", m.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePreview(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"-$10,000.00",
		"$90,000.00",
	)
}

func TestHandleQuotePreview_CatalogDefaultDiscount(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "HU40A", 465000, 15000, nil)

	req := postFormRequest("/machines/"+m.Id+"/quote/preview", "")
	req.SetPathValue("id", m.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePreview(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"-$15,000.00",
		"$450,000.00",
	)
}

func TestHandleQuotePreview_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postFormRequest("/machines/doesnotexist/quote/preview", "")
	req.SetPathValue("id", "doesnotexist")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuotePreview(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap none so the summary panel is left alone")
	}
}
