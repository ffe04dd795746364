package study

import (
	"testing"

	"radiology-workflow-api/constants"

	"github.com/stretchr/testify/assert"
)

func makeRow(date, tm, modality, status, signer string) RawRow {
	return RawRow{
		constants.ColDate:         date,
		constants.ColTime:         tm,
		constants.ColModality:     modality,
		constants.ColStatus:       status,
		constants.ColReportSigner: signer,
	}
}

func TestNormalizeRow(t *testing.T) {
	{
		record, skip := NormalizeRow(makeRow("1/15/2024", "09:30", "CT", "Final", "Dr. A"))
		assert.Nil(t, skip)
		assert.Equal(t, "CT", record.Modality)
		assert.Equal(t, "1/15/2024 09:30", record.Timestamp)
	}
	{
		// unknown fields default, signer stays empty
		record, skip := NormalizeRow(RawRow{constants.ColTime: "10:00"})
		assert.Nil(t, skip)
		assert.Equal(t, constants.FieldDefault, record.Modality)
		assert.Equal(t, constants.FieldDefault, record.PatientID)
		assert.Equal(t, "", record.ReportSignedBy)
	}
}

func TestNormalizeRowSkips(t *testing.T) {
	{
		record, skip := NormalizeRow(makeRow("1/15/2024", "", "CT", "Final", ""))
		assert.Nil(t, record)
		assert.Equal(t, constants.SkipReasonMissingTime, skip.Reason)
	}
	{
		record, skip := NormalizeRow(makeRow("1/15/2024", "morning", "CT", "Final", ""))
		assert.Nil(t, record)
		assert.Equal(t, constants.SkipReasonBadTime, skip.Reason)
		assert.Equal(t, "morning", skip.Time)
	}
}

func TestNormalizeRows(t *testing.T) {
	rows := []RawRow{
		makeRow("1/15/2024", "09:30", "CT", "Final", "Dr. A"),
		makeRow("1/15/2024", "bad", "MR", "Final", "Dr. B"),
		makeRow("1/16/2024", "14:05", "MR", "Pending", ""),
		makeRow("1/16/2024", "", "US", "Final", "Dr. A"),
	}

	result := NormalizeRows(rows)

	assert.Equal(t, 2, len(result.Records))
	assert.Equal(t, 2, len(result.Skipped))
	assert.Equal(t, 1, result.Skipped[0].Row)
	assert.Equal(t, 3, result.Skipped[1].Row)

	// options come from surviving records only, sorted, signers never empty
	assert.Equal(t, []string{"CT", "MR"}, result.Options.Modalities)
	assert.Equal(t, []string{"Final", "Pending"}, result.Options.Statuses)
	assert.Equal(t, []string{"Dr. A"}, result.Options.Signers)
}
