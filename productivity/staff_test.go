package productivity

import (
	"testing"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/study"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []study.Record {
	return []study.Record{
		{Date: "1/15/2024", Time: "09:30", Modality: "CT", ReportSignedBy: "Dr. A"},
		{Date: "1/16/2024", Time: "09:10", Modality: "CT", ReportSignedBy: "Dr. A"},
		{Date: "1/15/2024", Time: "14:05", Modality: "MR"},
	}
}

func TestAggregate(t *testing.T) {
	result := Aggregate(sampleRecords())

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.WorkingDays)
	assert.Equal(t, 2, len(result.Staff))

	// highest count first
	assert.Equal(t, "Dr. A", result.Staff[0].Signer)
	assert.Equal(t, 2, result.Staff[0].Count)
	assert.Equal(t, 2, result.Staff[0].Modalities["CT"])
	assert.Equal(t, constants.SignerUnassigned, result.Staff[1].Signer)
	assert.Equal(t, 1, result.Staff[1].Count)
}

func TestAggregateModalities(t *testing.T) {
	result := Aggregate(sampleRecords())

	assert.Equal(t, 2, len(result.Modalities))
	assert.Equal(t, "CT", result.Modalities[0].Modality)
	assert.Equal(t, 2, result.Modalities[0].Count)
	assert.InDelta(t, 66.66, result.Modalities[0].Percentage, 0.01)
	assert.Equal(t, "MR", result.Modalities[1].Modality)
	assert.InDelta(t, 33.33, result.Modalities[1].Percentage, 0.01)
}

func TestAggregateTies(t *testing.T) {
	records := []study.Record{
		{Date: "1/15/2024", Modality: "MR", ReportSignedBy: "Dr. B"},
		{Date: "1/15/2024", Modality: "CT", ReportSignedBy: "Dr. A"},
	}
	result := Aggregate(records)

	// equal counts fall back to name order
	assert.Equal(t, "Dr. A", result.Staff[0].Signer)
	assert.Equal(t, "Dr. B", result.Staff[1].Signer)
	assert.Equal(t, "CT", result.Modalities[0].Modality)
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate([]study.Record{})

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.WorkingDays)
	assert.Equal(t, 0, len(result.Staff))
	assert.Equal(t, 0, len(result.Modalities))
}
