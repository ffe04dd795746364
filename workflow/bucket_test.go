package workflow

import (
	"testing"

	"radiology-workflow-api/study"

	"github.com/stretchr/testify/assert"
)

func sampleRecords() []study.Record {
	return []study.Record{
		{Date: "1/15/2024", Time: "09:30", Modality: "CT", Status: "Final", ReportSignedBy: "Dr. A", Timestamp: "1/15/2024 09:30"},
		{Date: "1/15/2024", Time: "14:05", Modality: "MR", Status: "Pending", Timestamp: "1/15/2024 14:05"},
		{Date: "1/16/2024", Time: "09:10", Modality: "CT", Status: "Final", ReportSignedBy: "Dr. B", Timestamp: "1/16/2024 09:10"},
	}
}

func sampleRecord(date, tm string) study.Record {
	return study.Record{
		Date:      date,
		Time:      tm,
		Modality:  "CT",
		Status:    "Final",
		Timestamp: date + " " + tm,
	}
}

func TestNewHourBuckets(t *testing.T) {
	buckets := NewHourBuckets()
	assert.Equal(t, 24, len(buckets))
	assert.Equal(t, "00:00", buckets[0].Label24)
	assert.Equal(t, "12:00 AM", buckets[0].Label12)
	assert.Equal(t, "12:00 PM", buckets[12].Label12)
	assert.Equal(t, "1:00 PM", buckets[13].Label12)
	assert.Equal(t, "23:00", buckets[23].Label24)
	assert.Equal(t, "11:00 PM", buckets[23].Label12)
}

func TestBuildBuckets(t *testing.T) {
	buckets, total := BuildBuckets(sampleRecords())

	assert.Equal(t, 3, total)
	assert.Equal(t, 24, len(buckets))
	assert.Equal(t, 2, buckets[9].Count)
	assert.Equal(t, 1, buckets[14].Count)
	assert.Equal(t, 0, buckets[0].Count)

	sum := 0
	for i := range buckets {
		sum += buckets[i].Count
		assert.Equal(t, len(buckets[i].Entries), buckets[i].Count)
	}
	assert.Equal(t, total, sum)
}

func TestBuildBucketsOrdering(t *testing.T) {
	// entries sort by the raw timestamp string, so "1/15" precedes "1/16"
	// while "1/2" would follow "1/15"
	records := []study.Record{
		{Time: "09:00", Timestamp: "1/16/2024 09:00"},
		{Time: "09:00", Timestamp: "1/2/2024 09:00"},
		{Time: "09:00", Timestamp: "1/15/2024 09:00"},
	}
	buckets, _ := BuildBuckets(records)

	entries := buckets[9].Entries
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "1/15/2024 09:00", entries[0].Timestamp)
	assert.Equal(t, "1/16/2024 09:00", entries[1].Timestamp)
	assert.Equal(t, "1/2/2024 09:00", entries[2].Timestamp)
}

func TestBuildBucketsSkipsUnparseable(t *testing.T) {
	records := []study.Record{
		{Time: "09:00", Timestamp: "1/15/2024 09:00"},
		{Time: "not a time"},
	}
	buckets, total := BuildBuckets(records)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, buckets[9].Count)
}
