package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotebuilder/testhelpers"
)

func postFormRequest(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseQuoteForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postFormRequest("/machines/x/quote/preview",
		"customer_name=Acme+Aerospace&desired_price=450000&percent_discount=&flat_discount=0&option=abc&option=def&option=")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	state := parseQuoteForm(e)

	if state.CustomerName != "Acme Aerospace" {
		t.Errorf("CustomerName = %q, want %q", state.CustomerName, "Acme Aerospace")
	}
	if state.Discount.DesiredPrice != 450000 {
		t.Errorf("DesiredPrice = %v, want 450000", state.Discount.DesiredPrice)
	}
	if state.Discount.PercentDiscount != 0 || state.Discount.FlatDiscount != 0 {
		t.Errorf("expected empty discount controls to be 0, got %+v", state.Discount)
	}
	if len(state.SelectedIDs) != 2 || !state.SelectedIDs["abc"] || !state.SelectedIDs["def"] {
		t.Errorf("SelectedIDs = %v, want abc and def", state.SelectedIDs)
	}
}

func TestParseQuoteForm_BadNumbersFallBackToZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := postFormRequest("/machines/x/quote/preview",
		"desired_price=abc&percent_discount=-5&flat_discount=1e999")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	state := parseQuoteForm(e)

	if state.Discount.DesiredPrice != 0 {
		t.Errorf("unparsable desired_price should be 0, got %v", state.Discount.DesiredPrice)
	}
	if state.Discount.PercentDiscount != 0 {
		t.Errorf("negative percent_discount should be 0, got %v", state.Discount.PercentDiscount)
	}
	if state.Discount.FlatDiscount != 0 {
		t.Errorf("overflowing flat_discount should be 0, got %v", state.Discount.FlatDiscount)
	}
}

func TestBuildMachineQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "HU40A", 465000, 15000,
		[]string{"40-taper spindle", "nan", "Chip  conveyor"})
	testhelpers.CreateTestMachineOption(t, app, m.Id, 1, "HU40A Model Base Machine", 498000)
	testhelpers.CreateTestMachineOption(t, app, m.Id, 2, "High-speed spindle upgrade", 68000)
	testhelpers.CreateTestMachineOption(t, app, m.Id, 3, "Renishaw OMP60 touch probe", 14500)

	q, err := buildMachineQuote(app, m.Id)
	if err != nil {
		t.Fatalf("buildMachineQuote() error = %v", err)
	}

	// Embedded base row overrides the catalog base price.
	if q.BasePrice != 498000 {
		t.Errorf("BasePrice = %v, want 498000", q.BasePrice)
	}
	if q.DefaultDiscount != 15000 {
		t.Errorf("DefaultDiscount = %v, want 15000", q.DefaultDiscount)
	}

	// Placeholder dropped, whitespace collapsed.
	wantStandard := []string{"40-taper spindle", "Chip conveyor"}
	if len(q.StandardOptions) != len(wantStandard) {
		t.Fatalf("StandardOptions = %v, want %v", q.StandardOptions, wantStandard)
	}
	for i := range wantStandard {
		if q.StandardOptions[i] != wantStandard[i] {
			t.Errorf("StandardOptions[%d] = %q, want %q", i, q.StandardOptions[i], wantStandard[i])
		}
	}

	// The base row is extracted, the two upgrades are grouped.
	total := 0
	for _, g := range q.Groups {
		total += len(g.Items)
	}
	if total != 2 {
		t.Errorf("expected 2 grouped upgrades, got %d", total)
	}
}

func TestBuildMachineQuote_NoEmbeddedBaseKeepsCatalogPrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "VERTEX 550-5X", 985000, 0, nil)
	testhelpers.CreateTestMachineOption(t, app, m.Id, 1, "Spindle chiller", 19500)

	q, err := buildMachineQuote(app, m.Id)
	if err != nil {
		t.Fatalf("buildMachineQuote() error = %v", err)
	}
	if q.BasePrice != 985000 {
		t.Errorf("BasePrice = %v, want catalog 985000", q.BasePrice)
	}
}

func TestBuildMachineQuote_MissingMachine(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := buildMachineQuote(app, "doesnotexist"); err == nil {
		t.Fatal("expected error for missing machine")
	}
}

func TestSummaryData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "HW63", 200000, 0, nil)
	o1 := testhelpers.CreateTestMachineOption(t, app, m.Id, 1, "Angle head attachment", 5000)
	o2 := testhelpers.CreateTestMachineOption(t, app, m.Id, 2, "Spindle torque upgrade", 3000)

	q, err := buildMachineQuote(app, m.Id)
	if err != nil {
		t.Fatalf("buildMachineQuote() error = %v", err)
	}

	state := quoteFormState{SelectedIDs: map[string]bool{o1.Id: true, o2.Id: true}}
	summary := summaryData(q, state)

	if summary.FinalPrice != "$208,000.00" {
		t.Errorf("FinalPrice = %q, want $208,000.00", summary.FinalPrice)
	}
	if summary.OptionsTotal != "$8,000.00" {
		t.Errorf("OptionsTotal = %q, want $8,000.00", summary.OptionsTotal)
	}
	if summary.SelectedCount != 2 {
		t.Errorf("SelectedCount = %d, want 2", summary.SelectedCount)
	}
}

func TestHandleQuoteForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	m := testhelpers.CreateTestMachine(t, app, "HU40A", 465000, 15000,
		[]string{"40-taper spindle"})
	testhelpers.CreateTestMachineOption(t, app, m.Id, 1, "Renishaw OMP60 touch probe", 14500)

	req := httptest.NewRequest(http.MethodGet, "/machines/"+m.Id+"/quote", nil)
	req.SetPathValue("id", m.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteForm(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"HU40A",
		"40-taper spindle",
		"Probing &amp; Measurement",
		"Renishaw OMP60 touch probe",
		`id="price-summary"`,
	)
}

func TestHandleQuoteForm_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/machines/doesnotexist/quote", nil)
	req.SetPathValue("id", "doesnotexist")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteForm(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
