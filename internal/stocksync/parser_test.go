package stocksync

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("stock")
	require.NoError(t, err)
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, value := range cells {
			row.AddCell().SetString(value)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"product", "location", "quantity"},
		{"elf-bar-bc5000-watermelon", "1", "25"},
		{"42", "2", "10"},
	})

	rows, skipped, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, rows, 2)
	require.Equal(t, Row{Product: "elf-bar-bc5000-watermelon", LocationID: 1, Quantity: 25}, rows[0])
	require.Equal(t, Row{Product: "42", LocationID: 2, Quantity: 10}, rows[1])
}

func TestParseWorkbookSkipsMalformedRows(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"product", "location", "quantity"},
		{"", "1", "25"},
		{"mango-cloud", "not-a-number", "25"},
		{"mango-cloud", "1", "lots"},
		{"mango-cloud", "1", "5"},
	})

	rows, skipped, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Equal(t, 3, skipped)
	require.Len(t, rows, 1)
	require.Equal(t, "mango-cloud", rows[0].Product)
}

func TestParseWorkbookClampsNegativeQuantity(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"product", "location", "quantity"},
		{"mango-cloud", "1", "-3"},
	})

	rows, skipped, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, rows, 1)
	require.Zero(t, rows[0].Quantity)
}

func TestParseWorkbookHeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"product", "location", "quantity"},
	})

	_, _, err := ParseWorkbook(data)
	require.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestParseWorkbookGarbageBytes(t *testing.T) {
	_, _, err := ParseWorkbook([]byte("not a spreadsheet"))
	require.Error(t, err)
}
