package parser

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Grid raw cell contents of one worksheet, no header assumed
type Grid struct {
	FileID string
	Path   string
	Rows   [][]string
}

// LoadGrid opens an xlsx file and returns the raw rows of its first sheet.
// Every load gets its own file ID so notices can reference the exact read.
func LoadGrid(path string) (*Grid, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return &Grid{
		FileID: uuid.New().String(),
		Path:   path,
		Rows:   rows,
	}, nil
}
