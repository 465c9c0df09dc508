package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuoteFormOption is one selectable upgrade checkbox.
type QuoteFormOption struct {
	ID          string
	Description string
	Price       string // pre-formatted
}

// QuoteFormGroup is one category section of upgrade checkboxes.
type QuoteFormGroup struct {
	Name    string
	Options []QuoteFormOption
}

// QuoteFormData feeds the quote builder page for one machine.
type QuoteFormData struct {
	MachineID       string
	MachineName     string
	BasePrice       string // pre-formatted
	StandardOptions []string
	Groups          []QuoteFormGroup
	Summary         PriceSummaryData
}

// QuoteFormPage renders the full quote builder page.
func QuoteFormPage(data QuoteFormData, header HeaderData) templ.Component {
	return Layout(data.MachineName+" — Quote Builder", header, QuoteFormContent(data))
}

// QuoteFormContent renders the quote form itself. Every input change posts
// the form to the preview endpoint, which swaps the price summary.
func QuoteFormContent(data QuoteFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		machineID := templ.EscapeString(data.MachineID)

		if _, err := fmt.Fprintf(w, `<section id="quote-form">
<h1>%s</h1>
<p class="base-price">Base Machine Price: %s</p>
<form hx-post="/machines/%s/quote/preview" hx-target="#price-summary" hx-swap="outerHTML" hx-trigger="change, keyup delay:400ms from:input[type=number], keyup delay:400ms from:input[name=customer_name]">
<label>Customer Name
<input type="text" name="customer_name" placeholder="Customer Name">
</label>

<fieldset class="discounts">
<legend>Discount Options</legend>
<label>Desired Final Price (Optional)
<input type="number" name="desired_price" min="0" step="0.01" value="">
</label>
<label>Discount Percentage (%%)
<input type="number" name="percent_discount" min="0" max="100" step="0.01" value="">
</label>
<label>Flat Discount Amount ($)
<input type="number" name="flat_discount" min="0" step="0.01" value="">
</label>
</fieldset>

<h2>Standard Features (Included)</h2>
<ul class="standard-options">
`, templ.EscapeString(data.MachineName), templ.EscapeString(data.BasePrice), machineID); err != nil {
			return err
		}

		for _, opt := range data.StandardOptions {
			if _, err := fmt.Fprintf(w, "<li>%s</li>\n", templ.EscapeString(opt)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</ul>

<h2>Optional Upgrades</h2>
`); err != nil {
			return err
		}

		for _, group := range data.Groups {
			if _, err := fmt.Fprintf(w, `<fieldset class="upgrade-group">
<legend>%s</legend>
`, templ.EscapeString(group.Name)); err != nil {
				return err
			}
			for _, opt := range group.Options {
				if _, err := fmt.Fprintf(w, `<label class="upgrade">
<input type="checkbox" name="option" value="%s">
%s (+%s)
</label>
`, templ.EscapeString(opt.ID), templ.EscapeString(opt.Description), templ.EscapeString(opt.Price)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</fieldset>\n"); err != nil {
				return err
			}
		}

		if err := PriceSummary(data.Summary).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<div class="actions">
<button type="submit" formaction="/machines/%s/quote/export/pdf" formmethod="post" hx-disable>Download Quote PDF</button>
<button type="submit" formaction="/machines/%s/quote/export/excel" formmethod="post" hx-disable>Download Quote Excel</button>
</div>
</form>
</section>
`, machineID, machineID); err != nil {
			return err
		}
		return nil
	})
}
