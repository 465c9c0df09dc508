package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PriceSummaryData feeds the recomputed price panel.
type PriceSummaryData struct {
	BasePrice     string // pre-formatted
	Discount      string
	OptionsTotal  string
	FinalPrice    string
	SelectedCount int
}

// PriceSummary renders the price breakdown panel. The quote form swaps this
// fragment on every input change.
func PriceSummary(data PriceSummaryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="price-summary" class="price-summary">
<table>
<tr><th>Base Machine Price</th><td>%s</td></tr>
<tr><th>Discount</th><td>-%s</td></tr>
<tr><th>Selected Upgrades (%d)</th><td>+%s</td></tr>
<tr class="total"><th>Total Quote</th><td>%s</td></tr>
</table>
</div>
`,
			templ.EscapeString(data.BasePrice),
			templ.EscapeString(data.Discount),
			data.SelectedCount,
			templ.EscapeString(data.OptionsTotal),
			templ.EscapeString(data.FinalPrice))
		return err
	})
}
