package stats

import (
	"strings"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/workflow"
)

// Summary is the three-section payload handed verbatim to export
// collaborators. The section names are part of the export contract.
type Summary struct {
	Overview             []MetricValue   `json:"Overview"`
	ModalityDistribution []ModalityCount `json:"Modality Distribution"`
	AppliedFilters       []FilterValue   `json:"Applied Filters"`
}

type MetricValue struct {
	Metric string      `json:"metric"`
	Value  interface{} `json:"value"`
}

type ModalityCount struct {
	Modality string `json:"modality"`
	Count    int    `json:"count"`
}

type FilterValue struct {
	Filter string `json:"filter"`
	Value  string `json:"value"`
}

// BuildSummary reduces a filtered workflow view to its export payload. The
// peak hour is picked by a left-to-right scan keeping the first bucket whose
// count strictly exceeds the running maximum, so ties resolve to the lowest
// hour. An empty view gets an explicit no-data peak, never a bucket
// reference.
func BuildSummary(buckets []workflow.HourBucket, crit workflow.Criteria) Summary {
	total := 0
	activeHours := 0
	peakHour := constants.NoData
	peakCount := 0

	for i := range buckets {
		total += buckets[i].Count
		if buckets[i].Count > 0 {
			activeHours++
		}
		if buckets[i].Count > peakCount {
			peakCount = buckets[i].Count
			peakHour = buckets[i].Label24
		}
	}

	modalityCounts := make(map[string]int)
	modalityOrder := make([]string, 0)
	for i := range buckets {
		for j := range buckets[i].Entries {
			modality := buckets[i].Entries[j].Modality
			if _, seen := modalityCounts[modality]; !seen {
				modalityOrder = append(modalityOrder, modality)
			}
			modalityCounts[modality]++
		}
	}

	distribution := make([]ModalityCount, 0, len(modalityOrder))
	for _, modality := range modalityOrder {
		distribution = append(distribution, ModalityCount{
			Modality: modality,
			Count:    modalityCounts[modality],
		})
	}

	return Summary{
		Overview: []MetricValue{
			{Metric: "Total Studies", Value: total},
			{Metric: "Active Hours", Value: activeHours},
			{Metric: "Peak Hour", Value: peakHour},
			{Metric: "Peak Hour Count", Value: peakCount},
		},
		ModalityDistribution: distribution,
		AppliedFilters: []FilterValue{
			{Filter: "Modality", Value: echoSet(crit.Modalities)},
			{Filter: "Status", Value: echoSet(crit.Statuses)},
			{Filter: "Signed By", Value: echoSet(crit.Signers)},
			{Filter: "Date Range", Value: echoRange(crit.DateStart, crit.DateEnd)},
			{Filter: "Time Range", Value: echoRange(crit.TimeStart, crit.TimeEnd)},
		},
	}
}

// echoSet renders a categorical selection for the filter echo; an empty
// dimension reads as the literal "All".
func echoSet(selection []string) string {
	if len(selection) == 0 {
		return constants.FilterAll
	}
	return strings.Join(selection, ", ")
}

func echoRange(start, end string) string {
	if start == "" && end == "" {
		return constants.FilterAll
	}
	return strings.TrimSpace(start + " - " + end)
}
