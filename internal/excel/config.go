package excel

import "strings"

// Default column layout: link, first variation, second variation, discount.
const (
	DefaultLinkColumn     = "A"
	DefaultVar1Column     = "B"
	DefaultVar2Column     = "C"
	DefaultDiscountColumn = "D"
)

// Config names the workbook columns the tracker reads and writes.
type Config struct {
	LinkColumn     string
	Var1Column     string
	Var2Column     string
	DiscountColumn string
}

func DefaultColumns() Config {
	return Config{
		LinkColumn:     DefaultLinkColumn,
		Var1Column:     DefaultVar1Column,
		Var2Column:     DefaultVar2Column,
		DiscountColumn: DefaultDiscountColumn,
	}
}

// ParseConfigCell parses a "key1=value1;key2=value2" configuration cell.
// Malformed parts are skipped; keys are lowercased.
func ParseConfigCell(value string) map[string]string {
	result := make(map[string]string)
	for _, part := range strings.Split(value, ";") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		result[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(val)
	}
	return result
}

func configFromCells(cells []string) Config {
	merged := make(map[string]string)
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		for k, v := range ParseConfigCell(cell) {
			merged[k] = v
		}
	}

	cfg := DefaultColumns()
	if v, ok := merged["link_column"]; ok && v != "" {
		cfg.LinkColumn = strings.ToUpper(v)
	}
	if v, ok := merged["var1_column"]; ok && v != "" {
		cfg.Var1Column = strings.ToUpper(v)
	}
	if v, ok := merged["var2_column"]; ok && v != "" {
		cfg.Var2Column = strings.ToUpper(v)
	}
	if v, ok := merged["discount_column"]; ok && v != "" {
		cfg.DiscountColumn = strings.ToUpper(v)
	}
	return cfg
}
