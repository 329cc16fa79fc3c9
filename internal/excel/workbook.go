package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/minhvu-dev/shopee-track/internal/models"
)

// DateLayout heads price columns; one column per tracking day.
const DateLayout = "2006-01-02"

// Workbook wraps one xlsx file: product rows in, dated price columns and
// discount percentages out. Row 1 is reserved for headers and optional
// "key=value;key=value" configuration cells.
type Workbook struct {
	f     *excelize.File
	sheet string

	greenStyle int
	redStyle   int
}

func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Workbook{f: f, sheet: f.GetSheetName(0)}, nil
}

// FromFile wraps an already-open excelize file (used by tests).
func FromFile(f *excelize.File) *Workbook {
	return &Workbook{f: f, sheet: f.GetSheetName(0)}
}

func (w *Workbook) Save() error  { return w.f.Save() }
func (w *Workbook) Close() error { return w.f.Close() }

// Config reads the column layout from the first ten cells of row 1,
// falling back to the A/B/C/D defaults.
func (w *Workbook) Config() Config {
	cells := make([]string, 0, 10)
	for col := 1; col <= 10; col++ {
		name, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			continue
		}
		v, _ := w.f.GetCellValue(w.sheet, name)
		cells = append(cells, strings.TrimSpace(v))
	}
	return configFromCells(cells)
}

// Rows reads the product rows below the header. Rows whose link cell does
// not look like a marketplace URL are skipped; their index in the sheet is
// preserved so results can be written back in place.
func (w *Workbook) Rows(cfg Config) ([]models.Row, error) {
	all, err := w.f.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	var rows []models.Row
	for i := 2; i <= len(all); i++ {
		link, err := w.cell(cfg.LinkColumn, i)
		if err != nil {
			return nil, err
		}
		link = strings.TrimSpace(link)
		if link == "" || !strings.Contains(strings.ToLower(link), "shopee") {
			continue
		}

		var1, _ := w.cell(cfg.Var1Column, i)
		var2, _ := w.cell(cfg.Var2Column, i)
		rows = append(rows, models.Row{
			Index: i,
			URL:   link,
			Var1:  strings.TrimSpace(var1),
			Var2:  strings.TrimSpace(var2),
		})
	}
	return rows, nil
}

// WritePrices writes each present price into the column headed by date,
// creating the column after the last used one when absent. Failed rows are
// left blank.
func (w *Workbook) WritePrices(results []models.Result, date string) error {
	col, err := w.dateColumn(date)
	if err != nil {
		return err
	}
	for _, res := range results {
		if !res.OK() {
			continue
		}
		v, _ := res.Price.Float64()
		if err := w.f.SetCellValue(w.sheet, fmt.Sprintf("%s%d", col, res.Row.Index), v); err != nil {
			return fmt.Errorf("write price for row %d: %w", res.Row.Index, err)
		}
	}
	return nil
}

// ApplyDiscounts recomputes the discount column for every row that has at
// least one recorded price: the most recent date column against the
// average of them all. Positive discounts get a green font, negative red.
func (w *Workbook) ApplyDiscounts(discountCol string) error {
	dateCols, err := w.dateColumns()
	if err != nil {
		return err
	}
	if len(dateCols) == 0 {
		return nil
	}

	all, err := w.f.GetRows(w.sheet)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	for row := 2; row <= len(all); row++ {
		var prices []decimal.Decimal
		for _, col := range dateCols {
			raw, _ := w.cell(col, row)
			p, err := decimal.NewFromString(strings.TrimSpace(raw))
			if err != nil || p.Sign() <= 0 {
				continue
			}
			prices = append(prices, p)
		}
		if len(prices) == 0 {
			continue
		}

		avg := decimal.Avg(prices[0], prices[1:]...)
		current := prices[len(prices)-1]
		disc := DiscountPercent(current, avg)

		cell := fmt.Sprintf("%s%d", discountCol, row)
		v, _ := disc.Float64()
		if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
			return fmt.Errorf("write discount for row %d: %w", row, err)
		}
		if err := w.styleDiscount(cell, disc); err != nil {
			return err
		}
	}
	return nil
}

// dateColumn finds the column headed by date, creating it when missing.
func (w *Workbook) dateColumn(date string) (string, error) {
	headers, err := w.headerRow()
	if err != nil {
		return "", err
	}
	for idx, h := range headers {
		if strings.TrimSpace(h) == date {
			return excelize.ColumnNumberToName(idx + 1)
		}
	}

	col, err := excelize.ColumnNumberToName(len(headers) + 1)
	if err != nil {
		return "", err
	}
	if err := w.f.SetCellValue(w.sheet, col+"1", date); err != nil {
		return "", fmt.Errorf("create date column %s: %w", date, err)
	}
	return col, nil
}

// dateColumns lists the price columns left to right; that order is also
// chronological, since a new column is always appended at the end.
func (w *Workbook) dateColumns() ([]string, error) {
	headers, err := w.headerRow()
	if err != nil {
		return nil, err
	}
	var cols []string
	for idx, h := range headers {
		if _, err := time.Parse(DateLayout, strings.TrimSpace(h)); err != nil {
			continue
		}
		name, err := excelize.ColumnNumberToName(idx + 1)
		if err != nil {
			return nil, err
		}
		cols = append(cols, name)
	}
	return cols, nil
}

func (w *Workbook) headerRow() ([]string, error) {
	all, err := w.f.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (w *Workbook) cell(col string, row int) (string, error) {
	v, err := w.f.GetCellValue(w.sheet, fmt.Sprintf("%s%d", col, row))
	if err != nil {
		return "", fmt.Errorf("read cell %s%d: %w", col, row, err)
	}
	return v, nil
}

func (w *Workbook) styleDiscount(cell string, disc decimal.Decimal) error {
	var styleID int
	switch {
	case disc.Sign() > 0:
		if w.greenStyle == 0 {
			id, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "00AA00"}})
			if err != nil {
				return fmt.Errorf("create discount style: %w", err)
			}
			w.greenStyle = id
		}
		styleID = w.greenStyle
	case disc.Sign() < 0:
		if w.redStyle == 0 {
			id, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "AA0000"}})
			if err != nil {
				return fmt.Errorf("create discount style: %w", err)
			}
			w.redStyle = id
		}
		styleID = w.redStyle
	default:
		return nil
	}
	return w.f.SetCellStyle(w.sheet, cell, cell, styleID)
}
