package study

import (
	"testing"

	"radiology-workflow-api/constants"

	"github.com/stretchr/testify/assert"
)

var record = Record{
	Date:           "1/15/2024",
	Time:           "09:30",
	PatientID:      "P001",
	PatientName:    "DOE^JOHN",
	Modality:       "CT",
	Description:    "CHEST",
	Status:         "Final",
	Accession:      "A001",
	BodyPart:       "CHEST",
	ReportSignedBy: "Dr. A",
	Timestamp:      "1/15/2024 09:30",
}

func TestString(t *testing.T) {
	{
		assert.NotEqual(t, "{}", record.String())
	}
	{
		record := Record{}
		assert.Equal(t, "{\"date\":\"\",\"time\":\"\",\"patient_id\":\"\",\"patient_name\":\"\",\"modality\":\"\",\"description\":\"\",\"status\":\"\",\"accession\":\"\",\"body_part\":\"\",\"report_signed_by\":\"\",\"timestamp\":\"\"}", record.String())
	}
}

func TestSignerLabel(t *testing.T) {
	{
		assert.Equal(t, "Dr. A", record.SignerLabel())
	}
	{
		record := Record{}
		assert.Equal(t, constants.SignerUnassigned, record.SignerLabel())
	}
	{
		record := Record{ReportSignedBy: "   "}
		assert.Equal(t, constants.SignerUnassigned, record.SignerLabel())
	}
}
