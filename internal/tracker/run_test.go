package tracker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/minhvu-dev/shopee-track/internal/excel"
	"github.com/minhvu-dev/shopee-track/internal/marketplace"
)

func writeBatchWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Link")
	f.SetCellValue(sheet, "A2", "https://shopee.vn/phone-i.1.2")
	f.SetCellValue(sheet, "A3", "https://shopee.vn/gone-i.1.3")

	path := filepath.Join(t.TempDir(), "products.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRunWritesPricesAndDiscounts(t *testing.T) {
	path := writeBatchWorkbook(t)

	store := NewStore()
	pool := NewPool(2, func() marketplace.PriceSource {
		return &fakeSource{prices: map[string]int64{
			"https://shopee.vn/phone-i.1.2": 27500,
		}}
	})

	job, err := Run(context.Background(), store, pool, path, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, job.Status)
	assert.Equal(t, 2, job.Total)
	assert.Equal(t, 2, job.Done)
	assert.Equal(t, 1, job.Failed)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	// The only header is "Link" in column A, so today's column lands in B.
	today := time.Now().Format(excel.DateLayout)
	header, _ := f.GetCellValue(sheet, "B1")
	assert.Equal(t, today, header)

	price, _ := f.GetCellValue(sheet, "B2")
	assert.Equal(t, "27500", price)

	// The failed row stays blank for today.
	blank, _ := f.GetCellValue(sheet, "B3")
	assert.Empty(t, blank)
}

func TestRunFailsOnMissingWorkbook(t *testing.T) {
	store := NewStore()
	pool := NewPool(1, func() marketplace.PriceSource { return &fakeSource{} })

	job, err := Run(context.Background(), store, pool, filepath.Join(t.TempDir(), "missing.xlsx"), nil)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, job.Status)
	assert.NotEmpty(t, job.Error)
}

func TestRunFailsOnEmptyWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue(f.GetSheetName(0), "A1", "Link")
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	store := NewStore()
	pool := NewPool(1, func() marketplace.PriceSource { return &fakeSource{} })

	job, err := Run(context.Background(), store, pool, path, nil)
	require.Error(t, err)
	assert.Equal(t, StatusFailed, job.Status)
}
