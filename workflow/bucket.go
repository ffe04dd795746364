package workflow

import (
	"fmt"
	"sort"

	"radiology-workflow-api/study"
)

// HourBucket is one of 24 fixed aggregation slots keyed by 24-hour clock
// hour. All 24 exist regardless of data presence.
type HourBucket struct {
	Hour    int            `json:"hour"`
	Label24 string         `json:"hour_label_24"`
	Label12 string         `json:"hour_label_12"`
	Count   int            `json:"count"`
	Entries []study.Record `json:"entries"`
}

// NewHourBuckets initializes the 24 empty slots in ascending hour order.
func NewHourBuckets() []HourBucket {
	buckets := make([]HourBucket, 24)
	for h := 0; h < 24; h++ {
		buckets[h] = HourBucket{
			Hour:    h,
			Label24: fmt.Sprintf("%02d:00", h),
			Label12: hourLabel12(h),
			Entries: make([]study.Record, 0),
		}
	}
	return buckets
}

func hourLabel12(h int) string {
	meridiem := "AM"
	if h >= 12 {
		meridiem = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, meridiem)
}

// BuildBuckets places each record into its hour slot and returns the buckets
// with the count of placed entries. The hour is recomputed from the raw time
// string, not cached from normalization. Entries inside a bucket are ordered
// by the raw timestamp string ascending; that comparison is lexicographic,
// not calendar-correct, and is kept that way on purpose.
//
// This runs once per ingested dataset; filtering never re-runs it.
func BuildBuckets(records []study.Record) ([]HourBucket, int) {
	buckets := NewHourBuckets()
	total := 0

	for i := range records {
		t, err := study.ParseClockTime(records[i].Time)
		if err != nil {
			continue
		}
		buckets[t.Hour].Entries = append(buckets[t.Hour].Entries, records[i])
		buckets[t.Hour].Count++
		total++
	}

	for h := range buckets {
		entries := buckets[h].Entries
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp < entries[j].Timestamp
		})
	}

	return buckets, total
}
