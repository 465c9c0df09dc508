package services

// QuoteData holds everything a quote document needs, in display order.
type QuoteData struct {
	QuoteNumber     string
	CustomerName    string
	MachineType     string
	CreatedDate     string
	BasePrice       float64
	Discount        float64
	StandardOptions []string
	Groups          []OptionGroup // selected upgrades, categorized
	OptionsTotal    float64
	Total           float64
}
