package ingest

import (
	"errors"
	"io"

	"radiology-workflow-api/study"
	"radiology-workflow-api/utils"
)

// RowsFromCSV reads a delimited export where the first record is the header
// row. Header names are taken as-is; the normalizer only looks at the
// recognized ones.
func RowsFromCSV(r io.Reader) ([]study.RawRow, error) {
	var header []string
	rows := make([]study.RawRow, 0)

	err := utils.ReadCSVByLines(r, func(items []string) {
		if header == nil {
			header = append([]string(nil), items...)
			return
		}

		row := make(study.RawRow, len(header))
		for i, name := range header {
			if i < len(items) {
				row[name] = items[i]
			}
		}
		rows = append(rows, row)
	})
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, errors.New("CSV input has no header row")
	}

	return rows, nil
}
