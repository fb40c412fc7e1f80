package stocksync

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
)

// Row is one stock line from the workbook. Product holds either a numeric
// product id or a slug; which one is decided during the run.
type Row struct {
	Product    string
	LocationID int64
	Quantity   int
}

// ErrEmptyWorkbook is returned when the workbook has no data rows.
var ErrEmptyWorkbook = errors.New("stocksync: workbook is empty or missing header row")

// ParseWorkbook reads stock rows from the first sheet. The first row is a
// header. Expected columns: product (id or slug), location id, quantity.
// Malformed rows are dropped and reported in the second return value.
func ParseWorkbook(data []byte) ([]Row, int, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, 0, err
	}
	if len(file.Sheets) == 0 || file.Sheets[0].MaxRow < 2 {
		return nil, 0, ErrEmptyWorkbook
	}

	sheet := file.Sheets[0]
	var rows []Row
	skipped := 0
	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]
		cell := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		product := cell(0)
		locationID, errLoc := strconv.ParseInt(cell(1), 10, 64)
		quantity, errQty := strconv.Atoi(cell(2))
		if product == "" || errLoc != nil || errQty != nil {
			skipped++
			continue
		}
		if quantity < 0 {
			quantity = 0
		}
		rows = append(rows, Row{Product: product, LocationID: locationID, Quantity: quantity})
	}

	if len(rows) == 0 && skipped == 0 {
		return nil, 0, ErrEmptyWorkbook
	}
	return rows, skipped, nil
}
