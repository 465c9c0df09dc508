package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// MachineListItem is one machine card on the catalog page.
type MachineListItem struct {
	ID            string
	Name          string
	BasePrice     string // pre-formatted
	StandardCount int
	UpgradeCount  int
	IsActive      bool
}

// MachineListData feeds the machine catalog page.
type MachineListData struct {
	Items      []MachineListItem
	TotalCount int
}

// MachineListPage renders the full catalog page.
func MachineListPage(data MachineListData, header HeaderData) templ.Component {
	return Layout("Machines — Quote Builder", header, MachineListContent(data))
}

// MachineListContent renders just the catalog list, for HTMX swaps.
func MachineListContent(data MachineListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="machine-list">
<h1>Machine Catalog</h1>
<p class="count">%d machines</p>
<ul class="machine-cards">
`, data.TotalCount); err != nil {
			return err
		}
		for _, item := range data.Items {
			activeBadge := ""
			if item.IsActive {
				activeBadge = `<span class="badge badge-success">Active</span>`
			}
			if _, err := fmt.Fprintf(w, `<li class="machine-card">
<h2><a href="/machines/%s/quote">%s</a>%s</h2>
<p class="base-price">Base price: %s</p>
<p class="meta">%d standard features · %d optional upgrades</p>
<a class="btn" href="/machines/%s/quote">Build quote</a>
</li>
`,
				templ.EscapeString(item.ID), templ.EscapeString(item.Name), activeBadge,
				templ.EscapeString(item.BasePrice),
				item.StandardCount, item.UpgradeCount,
				templ.EscapeString(item.ID)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>
</section>
`); err != nil {
			return err
		}
		return nil
	})
}
