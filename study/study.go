package study

import (
	"encoding/json"
	"strings"

	"radiology-workflow-api/constants"
)

// RawRow is one loosely-typed ingested row, field name to value.
// Recognized keys are exact-match and case-sensitive; anything else is ignored.
type RawRow map[string]string

// Record is one normalized imaging study. Created once during ingestion,
// immutable afterwards.
type Record struct {
	Date           string `json:"date"`
	Time           string `json:"time"`
	PatientID      string `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	Modality       string `json:"modality"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Accession      string `json:"accession"`
	BodyPart       string `json:"body_part"`
	ReportSignedBy string `json:"report_signed_by"`
	// Timestamp is date and raw time joined, used for display ordering only.
	Timestamp string `json:"timestamp"`
}

func (record *Record) String() string {
	b, _ := json.Marshal(record)
	return string(b)
}

// SignerLabel is the display label for the productivity view, where an
// unsigned study is attributed to "Unassigned".
func (record *Record) SignerLabel() string {
	if strings.TrimSpace(record.ReportSignedBy) == "" {
		return constants.SignerUnassigned
	}
	return record.ReportSignedBy
}

func fieldOrDefault(row RawRow, key string) string {
	if v, found := row[key]; found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return constants.FieldDefault
}

func fieldOrEmpty(row RawRow, key string) string {
	if v, found := row[key]; found {
		return strings.TrimSpace(v)
	}
	return ""
}
