package productivity

import (
	"sort"

	"radiology-workflow-api/study"
)

// StaffAggregate is the per-signer rollup. Empty signer values fall under
// the "Unassigned" label.
type StaffAggregate struct {
	Signer     string         `json:"signer"`
	Count      int            `json:"count"`
	Studies    []study.Record `json:"studies"`
	Modalities map[string]int `json:"modalities"`
}

// ModalityAggregate is the per-modality rollup with its share of the current
// filtered total.
type ModalityAggregate struct {
	Modality   string  `json:"modality"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Productivity is a full value snapshot derived from one filtered record
// set. It is rebuilt whole on every filter change, never patched.
type Productivity struct {
	Total       int                 `json:"total"`
	WorkingDays int                 `json:"working_days"`
	Staff       []StaffAggregate    `json:"staff"`
	Modalities  []ModalityAggregate `json:"modalities"`
	// StaffModalities restricts the distribution to studies attributed to
	// staff with a nonzero count, for proportional display next to the
	// staff breakdown.
	StaffModalities []ModalityAggregate `json:"staff_modalities"`
}

// Aggregate derives the productivity view in a single pass over the filtered
// records. Staff with zero studies simply do not appear; the filter option
// lists keep them selectable elsewhere.
func Aggregate(records []study.Record) Productivity {
	staffBySigner := make(map[string]*StaffAggregate)
	modalityCounts := make(map[string]int)
	staffModalityCounts := make(map[string]int)
	days := make(map[string]bool)

	for i := range records {
		record := &records[i]
		signer := record.SignerLabel()

		agg, found := staffBySigner[signer]
		if !found {
			agg = &StaffAggregate{
				Signer:     signer,
				Studies:    make([]study.Record, 0),
				Modalities: make(map[string]int),
			}
			staffBySigner[signer] = agg
		}
		agg.Count++
		agg.Studies = append(agg.Studies, *record)
		agg.Modalities[record.Modality]++

		modalityCounts[record.Modality]++
		staffModalityCounts[record.Modality]++
		days[record.Date] = true
	}

	result := Productivity{
		Total:           len(records),
		WorkingDays:     len(days),
		Staff:           make([]StaffAggregate, 0, len(staffBySigner)),
		Modalities:      materializeModalities(modalityCounts, len(records)),
		StaffModalities: materializeModalities(staffModalityCounts, len(records)),
	}

	for _, agg := range staffBySigner {
		result.Staff = append(result.Staff, *agg)
	}
	sort.Slice(result.Staff, func(i, j int) bool {
		if result.Staff[i].Count != result.Staff[j].Count {
			return result.Staff[i].Count > result.Staff[j].Count
		}
		return result.Staff[i].Signer < result.Staff[j].Signer
	})

	return result
}

// materializeModalities turns the counting map into the sorted display
// sequence. Percentages are of the filtered grand total; a zero total yields
// zero percentages rather than a division fault.
func materializeModalities(counts map[string]int, total int) []ModalityAggregate {
	aggs := make([]ModalityAggregate, 0, len(counts))
	for modality, count := range counts {
		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}
		aggs = append(aggs, ModalityAggregate{
			Modality:   modality,
			Count:      count,
			Percentage: percentage,
		})
	}
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].Count != aggs[j].Count {
			return aggs[i].Count > aggs[j].Count
		}
		return aggs[i].Modality < aggs[j].Modality
	})
	return aggs
}
