package ingest

import (
	"strings"
	"testing"

	"radiology-workflow-api/constants"

	"github.com/stretchr/testify/assert"
)

func TestRowsFromCSV(t *testing.T) {
	input := "Date,Time,Mod.,Status,Report Signed By\n" +
		"1/15/2024,09:30,CT,Final,Dr. A\n" +
		"1/16/2024,14:05,MR,Pending,\n"

	rows, err := RowsFromCSV(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, "CT", rows[0][constants.ColModality])
	assert.Equal(t, "Dr. A", rows[0][constants.ColReportSigner])
	assert.Equal(t, "Pending", rows[1][constants.ColStatus])
}

func TestRowsFromCSVRagged(t *testing.T) {
	// short data rows fill only the columns they carry
	input := "Date,Time,Mod.\n1/15/2024,09:30\n"

	rows, err := RowsFromCSV(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(rows))
	_, found := rows[0][constants.ColModality]
	assert.Equal(t, false, found)
}

func TestRowsFromCSVEmpty(t *testing.T) {
	_, err := RowsFromCSV(strings.NewReader(""))
	assert.NotNil(t, err)
}
