package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the quote document from QuoteData using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateQuotePDF(data QuoteData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(10).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteDetails(m, data)
	addStandardOptions(m, data.StandardOptions)
	addSelectedUpgrades(m, data.Groups)
	addQuoteTotal(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the company title and quote reference line.
func addQuoteHeader(m core.Maroto, data QuoteData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Mitsui Seiki USA - Machine Quote", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quote No: %s", data.QuoteNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuoteDetails adds the customer, machine, base price and discount lines.
func addQuoteDetails(m core.Maroto, data QuoteData) {
	lineText := props.Text{Size: 11, Align: align.Left}

	lines := []string{
		fmt.Sprintf("Customer: %s", data.CustomerName),
		fmt.Sprintf("Machine: %s", data.MachineType),
		fmt.Sprintf("Base Machine Price: %s", FormatUSD(data.BasePrice)),
		fmt.Sprintf("Standard Discount: -%s", FormatUSD(data.Discount)),
	}
	for _, line := range lines {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(line, lineText)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addStandardOptions adds the bulleted standard-features section.
func addStandardOptions(m core.Maroto, options []string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Standard Options:", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	itemText := props.Text{Size: 10, Align: align.Left}
	for _, opt := range options {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("- "+opt, itemText)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addSelectedUpgrades adds the categorized selected upgrades with prices.
func addSelectedUpgrades(m core.Maroto, groups []OptionGroup) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Selected Optional Upgrades:", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	groupText := props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left}
	itemText := props.Text{Size: 10, Align: align.Left}
	priceText := props.Text{Size: 10, Align: align.Right}

	for _, group := range groups {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(group.Name+":", groupText)),
			),
		)
		for _, opt := range group.Items {
			m.AddRows(
				row.New(6).Add(
					col.New(9).Add(text.New("- "+opt.Description, itemText)),
					col.New(3).Add(text.New(FormatUSD(opt.Price), priceText)),
				),
			)
		}
		m.AddRows(row.New(2))
	}
}

// addQuoteTotal adds the shaded total line at the bottom.
func addQuoteTotal(m core.Maroto, data QuoteData) {
	m.AddRows(row.New(4))

	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalCell := &props.Cell{BackgroundColor: totalBg}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("Total Quote", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(totalCell),
			col.New(4).Add(
				text.New(FormatUSD(data.Total), props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			).WithStyle(totalCell),
		),
	)
}

// addQuoteFooter adds the generated-date line.
func addQuoteFooter(m core.Maroto, data QuoteData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
