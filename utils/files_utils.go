package utils

import (
	"encoding/csv"
	"io"
)

// ReadCSVByLines parses CSV from a reader and hands each record to f.
func ReadCSVByLines(r io.Reader, f func(items []string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		f(record)
	}
	return nil
}
