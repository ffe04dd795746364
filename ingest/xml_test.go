package ingest

import (
	"strings"
	"testing"

	"radiology-workflow-api/constants"

	"github.com/stretchr/testify/assert"
)

func TestRowsFromXML(t *testing.T) {
	input := `<studies>
		<study>
			<Date>1/15/2024</Date>
			<Time>09:30</Time>
			<Modality>CT</Modality>
			<Status>Final</Status>
			<ReportSignedBy>Dr. A</ReportSignedBy>
		</study>
		<study>
			<Date>1/16/2024</Date>
			<Time>14:05</Time>
			<Modality>MR</Modality>
			<Status>Pending</Status>
		</study>
	</studies>`

	rows, err := RowsFromXML(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, "CT", rows[0][constants.ColModality])
	assert.Equal(t, "Dr. A", rows[0][constants.ColReportSigner])
	assert.Equal(t, "1/16/2024", rows[1][constants.ColDate])
}

func TestRowsFromXMLSingleStudy(t *testing.T) {
	input := `<studies><study><Date>1/15/2024</Date><Time>09:30</Time></study></studies>`

	rows, err := RowsFromXML(strings.NewReader(input))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(rows))
	assert.Equal(t, "09:30", rows[0][constants.ColTime])
}

func TestRowsFromXMLBadShape(t *testing.T) {
	{
		_, err := RowsFromXML(strings.NewReader(`<other/>`))
		assert.NotNil(t, err)
	}
	{
		_, err := RowsFromXML(strings.NewReader(`<studies></studies>`))
		assert.NotNil(t, err)
	}
}
