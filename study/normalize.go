package study

import (
	"sort"
	"strings"

	"radiology-workflow-api/constants"
)

// SkipReason records one dropped row. Rows never fail the whole batch; the
// reasons are collected so the caller can surface them.
type SkipReason struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
	Time   string `json:"time,omitempty"`
}

// FilterOptions are the distinct values observed during normalization, used
// to populate the filter selection lists. Signers are only collected when
// non-empty; the "Unassigned" sentinel belongs to the productivity view, not
// to the option lists.
type FilterOptions struct {
	Modalities []string `json:"modalities"`
	Statuses   []string `json:"statuses"`
	Signers    []string `json:"signers"`
}

type NormalizeResult struct {
	Records []Record      `json:"records"`
	Skipped []SkipReason  `json:"skipped"`
	Options FilterOptions `json:"options"`
}

// NormalizeRow maps one raw row to a Record, or reports why it was skipped.
// A row survives only if its time field yields a valid hour; no placeholder
// record is ever created for a failed row.
func NormalizeRow(row RawRow) (*Record, *SkipReason) {
	rawTime := strings.TrimSpace(row[constants.ColTime])
	if rawTime == "" {
		return nil, &SkipReason{Reason: constants.SkipReasonMissingTime}
	}
	if _, err := ParseClockTime(rawTime); err != nil {
		return nil, &SkipReason{Reason: constants.SkipReasonBadTime, Time: rawTime}
	}

	date := fieldOrDefault(row, constants.ColDate)
	record := &Record{
		Date:           date,
		Time:           rawTime,
		PatientID:      fieldOrDefault(row, constants.ColPatientID),
		PatientName:    fieldOrDefault(row, constants.ColPatientName),
		Modality:       fieldOrDefault(row, constants.ColModality),
		Description:    fieldOrDefault(row, constants.ColDescription),
		Status:         fieldOrDefault(row, constants.ColStatus),
		Accession:      fieldOrDefault(row, constants.ColAccession),
		BodyPart:       fieldOrDefault(row, constants.ColBodyPart),
		ReportSignedBy: fieldOrEmpty(row, constants.ColReportSigner),
		Timestamp:      date + " " + rawTime,
	}
	return record, nil
}

// NormalizeRows runs NormalizeRow over a batch, accumulating records, skip
// diagnostics and the distinct filter options in one pass.
func NormalizeRows(rows []RawRow) NormalizeResult {
	result := NormalizeResult{
		Records: make([]Record, 0, len(rows)),
		Skipped: make([]SkipReason, 0),
	}

	modalities := make(map[string]bool)
	statuses := make(map[string]bool)
	signers := make(map[string]bool)

	for i, row := range rows {
		record, skip := NormalizeRow(row)
		if skip != nil {
			skip.Row = i
			result.Skipped = append(result.Skipped, *skip)
			continue
		}

		result.Records = append(result.Records, *record)
		modalities[record.Modality] = true
		statuses[record.Status] = true
		if record.ReportSignedBy != "" {
			signers[record.ReportSignedBy] = true
		}
	}

	result.Options = FilterOptions{
		Modalities: sortedKeys(modalities),
		Statuses:   sortedKeys(statuses),
		Signers:    sortedKeys(signers),
	}
	return result
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
