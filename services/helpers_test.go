package services

import "bytes"

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// sampleQuoteData returns a filled-in quote used by the export tests.
func sampleQuoteData() QuoteData {
	return QuoteData{
		QuoteNumber:  "MSU-QT-HU40A-25-26-1A2B3C4D",
		CustomerName: "Acme Aerospace",
		MachineType:  "HU40A",
		CreatedDate:  "15 Jan 2026",
		BasePrice:    498000,
		Discount:     15000,
		StandardOptions: []string{
			"40-taper spindle, 12,000 RPM",
			"Chip conveyor (hinge belt)",
		},
		Groups: []OptionGroup{
			{Name: CategorySpindle, Items: []OptionItem{
				{Description: "High-speed spindle upgrade, 20,000 RPM", Price: 68000},
			}},
			{Name: CategoryProbing, Items: []OptionItem{
				{Description: "Renishaw OMP60 touch probe", Price: 14500},
			}},
		},
		OptionsTotal: 82500,
		Total:        565500,
	}
}
