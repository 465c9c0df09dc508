package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook from the given QuoteData and
// returns the file contents as a byte slice.
func GenerateQuoteExcel(data QuoteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names are capped at 31 chars.
	sheetName := "Quote " + data.QuoteNumber
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 58); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	groupStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create group style: %w", err)
	}

	priceStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create price style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Mitsui Seiki USA - Machine Quote")
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	f.SetCellValue(sheetName, "A2", "Quote No: "+data.QuoteNumber)
	f.SetCellValue(sheetName, "B2", "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A2", "B2", subtitleStyle)

	f.SetCellValue(sheetName, "A3", "Customer: "+sanitizeQuoteCell(data.CustomerName))
	f.SetCellValue(sheetName, "A4", "Machine: "+sanitizeQuoteCell(data.MachineType))
	f.SetCellStyle(sheetName, "A3", "A4", subtitleStyle)

	f.SetCellValue(sheetName, "A5", "Base Machine Price")
	f.SetCellValue(sheetName, "B5", FormatUSD(data.BasePrice))
	f.SetCellValue(sheetName, "A6", "Standard Discount")
	f.SetCellValue(sheetName, "B6", "-"+FormatUSD(data.Discount))
	f.SetCellStyle(sheetName, "B5", "B6", priceStyle)

	// ── Standard options ────────────────────────────────────────────────

	rowNum := 8
	f.SetCellValue(sheetName, cellA(rowNum), "Standard Options (Included)")
	f.SetCellStyle(sheetName, cellA(rowNum), cellB(rowNum), sectionStyle)
	rowNum++

	for _, opt := range data.StandardOptions {
		f.SetCellValue(sheetName, cellA(rowNum), "- "+sanitizeQuoteCell(opt))
		rowNum++
	}
	rowNum++

	// ── Selected upgrades, grouped ──────────────────────────────────────

	f.SetCellValue(sheetName, cellA(rowNum), "Selected Optional Upgrades")
	f.SetCellStyle(sheetName, cellA(rowNum), cellB(rowNum), sectionStyle)
	rowNum++

	for _, group := range data.Groups {
		f.SetCellValue(sheetName, cellA(rowNum), group.Name)
		f.SetCellStyle(sheetName, cellA(rowNum), cellA(rowNum), groupStyle)
		rowNum++

		for _, opt := range group.Items {
			f.SetCellValue(sheetName, cellA(rowNum), "- "+sanitizeQuoteCell(opt.Description))
			f.SetCellValue(sheetName, cellB(rowNum), FormatUSD(opt.Price))
			f.SetCellStyle(sheetName, cellB(rowNum), cellB(rowNum), priceStyle)
			rowNum++
		}
	}
	rowNum++

	// ── Total ───────────────────────────────────────────────────────────

	f.SetCellValue(sheetName, cellA(rowNum), "Total Quote")
	f.SetCellValue(sheetName, cellB(rowNum), FormatUSD(data.Total))
	f.SetCellStyle(sheetName, cellA(rowNum), cellB(rowNum), totalStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

func cellA(row int) string { return fmt.Sprintf("A%d", row) }
func cellB(row int) string { return fmt.Sprintf("B%d", row) }

// sanitizeQuoteCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel interprets cells starting
// with =, +, -, @, \t or \r as formulas; a leading | is also escaped since
// some spreadsheet CSV paths treat it as a command separator.
func sanitizeQuoteCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
