package workflow

import (
	"time"

	"radiology-workflow-api/study"
	"radiology-workflow-api/utils"
)

// TimeGranularity selects how the time range excludes data: whole hour
// buckets at once, or individual records by minute of day. The two analytic
// views historically diverged here, so both stay selectable.
type TimeGranularity string

const (
	GranularityHour   TimeGranularity = "HOUR"
	GranularityMinute TimeGranularity = "MINUTE"
)

// DateComparisonMode selects how the date range compares: raw string order,
// or parsed month/day/year calendar dates where a parse failure means the
// date filter does not apply to that record.
type DateComparisonMode string

const (
	DateCompareLexicographic      DateComparisonMode = "LEXICOGRAPHIC"
	DateCompareCalendarPermissive DateComparisonMode = "CALENDAR_PERMISSIVE"
)

// dateLayout is the single fixed date pattern of the source data.
const dateLayout = "1/2/2006"

// Criteria is the active filter state. Empty categorical sets and empty
// range bounds mean "no restriction", never "match nothing".
type Criteria struct {
	Modalities []string `json:"modalities"`
	Statuses   []string `json:"statuses"`
	Signers    []string `json:"signers"`
	DateStart  string   `json:"date_start"`
	DateEnd    string   `json:"date_end"`
	// TimeStart and TimeEnd are inclusive "HH:MM" bounds; empty means the
	// full day.
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`

	TimeGranularity TimeGranularity    `json:"time_granularity"`
	DateMode        DateComparisonMode `json:"date_mode"`
}

func (crit *Criteria) matchesCategorical(record *study.Record) bool {
	return matchesDimension(crit.Modalities, record.Modality) &&
		matchesDimension(crit.Statuses, record.Status) &&
		matchesDimension(crit.Signers, record.ReportSignedBy)
}

func matchesDimension(selection []string, value string) bool {
	if len(selection) == 0 {
		return true
	}
	_, found := utils.FindInSlice(selection, value)
	return found
}

func (crit *Criteria) matchesDate(record *study.Record) bool {
	if crit.DateStart == "" && crit.DateEnd == "" {
		return true
	}

	switch crit.DateMode {
	case DateCompareCalendarPermissive:
		recordDate, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			return true
		}
		if crit.DateStart != "" {
			start, err := time.Parse(dateLayout, crit.DateStart)
			if err != nil {
				return true
			}
			if recordDate.Before(start) {
				return false
			}
		}
		if crit.DateEnd != "" {
			end, err := time.Parse(dateLayout, crit.DateEnd)
			if err != nil {
				return true
			}
			if recordDate.After(end) {
				return false
			}
		}
		return true
	default:
		if crit.DateStart != "" && record.Date < crit.DateStart {
			return false
		}
		if crit.DateEnd != "" && record.Date > crit.DateEnd {
			return false
		}
		return true
	}
}

// timeBounds resolves the "HH:MM" range to inclusive minute-of-day bounds.
// Empty or unparseable bounds widen to the full day.
func (crit *Criteria) timeBounds() (int, int) {
	startMin := 0
	endMin := 23*60 + 59

	if crit.TimeStart != "" {
		if t, err := study.ParseClockTime(crit.TimeStart); err == nil {
			startMin = t.MinuteOfDay()
		}
	}
	if crit.TimeEnd != "" {
		if t, err := study.ParseClockTime(crit.TimeEnd); err == nil {
			endMin = t.MinuteOfDay()
		}
	}
	return startMin, endMin
}

func (crit *Criteria) matchesTime(record *study.Record) bool {
	t, err := study.ParseClockTime(record.Time)
	if err != nil {
		return false
	}

	startMin, endMin := crit.timeBounds()
	if crit.TimeGranularity == GranularityMinute {
		m := t.MinuteOfDay()
		return m >= startMin && m <= endMin
	}
	return t.Hour >= startMin/60 && t.Hour <= endMin/60
}

// FilterBuckets applies the criteria to a bucketed workflow view and returns
// fresh buckets with recomputed counts plus the retained total. At hour
// granularity a bucket outside the time range is zeroed whole and entries of
// an included bucket are never re-excluded by time; at minute granularity the
// time check moves to the individual record. Inputs are never mutated, so the
// same criteria can be applied repeatedly with identical results.
func FilterBuckets(buckets []HourBucket, crit Criteria) ([]HourBucket, int) {
	startMin, endMin := crit.timeBounds()
	startHour, endHour := startMin/60, endMin/60

	filtered := NewHourBuckets()
	total := 0

	for h := range buckets {
		if crit.TimeGranularity != GranularityMinute {
			if buckets[h].Hour < startHour || buckets[h].Hour > endHour {
				continue
			}
		}

		for i := range buckets[h].Entries {
			record := &buckets[h].Entries[i]
			if crit.TimeGranularity == GranularityMinute && !crit.matchesTime(record) {
				continue
			}
			if !crit.matchesCategorical(record) || !crit.matchesDate(record) {
				continue
			}
			filtered[h].Entries = append(filtered[h].Entries, *record)
			filtered[h].Count++
			total++
		}
	}

	return filtered, total
}

// FilterRecords applies the criteria record by record, for the productivity
// view. Pure, like FilterBuckets.
func FilterRecords(records []study.Record, crit Criteria) []study.Record {
	filtered := make([]study.Record, 0, len(records))
	for i := range records {
		record := &records[i]
		if !crit.matchesTime(record) {
			continue
		}
		if !crit.matchesCategorical(record) || !crit.matchesDate(record) {
			continue
		}
		filtered = append(filtered, *record)
	}
	return filtered
}
