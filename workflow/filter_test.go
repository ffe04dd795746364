package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterBucketsIdentity(t *testing.T) {
	buckets, total := BuildBuckets(sampleRecords())

	filtered, kept := FilterBuckets(buckets, Criteria{TimeGranularity: GranularityHour})

	assert.Equal(t, total, kept)
	for h := range buckets {
		assert.Equal(t, buckets[h].Count, filtered[h].Count)
	}
}

func TestFilterBucketsCategorical(t *testing.T) {
	buckets, _ := BuildBuckets(sampleRecords())
	{
		filtered, kept := FilterBuckets(buckets, Criteria{Modalities: []string{"CT"}})
		assert.Equal(t, 2, kept)
		assert.Equal(t, 2, filtered[9].Count)
		assert.Equal(t, 0, filtered[14].Count)
	}
	{
		_, kept := FilterBuckets(buckets, Criteria{Statuses: []string{"Pending"}})
		assert.Equal(t, 1, kept)
	}
	{
		_, kept := FilterBuckets(buckets, Criteria{Modalities: []string{"CT"}, Signers: []string{"Dr. B"}})
		assert.Equal(t, 1, kept)
	}
	{
		_, kept := FilterBuckets(buckets, Criteria{Modalities: []string{"XA"}})
		assert.Equal(t, 0, kept)
	}
}

func TestFilterBucketsGranularity(t *testing.T) {
	buckets, _ := BuildBuckets(sampleRecords())
	{
		// hour granularity keeps the whole 09 bucket even though 09:30
		// exceeds the minute bound
		crit := Criteria{TimeStart: "09:00", TimeEnd: "09:15", TimeGranularity: GranularityHour}
		filtered, kept := FilterBuckets(buckets, crit)
		assert.Equal(t, 2, kept)
		assert.Equal(t, 2, filtered[9].Count)
	}
	{
		crit := Criteria{TimeStart: "09:00", TimeEnd: "09:15", TimeGranularity: GranularityMinute}
		filtered, kept := FilterBuckets(buckets, crit)
		assert.Equal(t, 1, kept)
		assert.Equal(t, 1, filtered[9].Count)
	}
	{
		// unparseable bounds widen to the full day
		crit := Criteria{TimeStart: "dawn", TimeEnd: "dusk", TimeGranularity: GranularityMinute}
		_, kept := FilterBuckets(buckets, crit)
		assert.Equal(t, 3, kept)
	}
}

func TestFilterBucketsDateModes(t *testing.T) {
	buckets, _ := BuildBuckets(sampleRecords())
	{
		crit := Criteria{DateStart: "1/16/2024", DateMode: DateCompareLexicographic}
		_, kept := FilterBuckets(buckets, crit)
		assert.Equal(t, 1, kept)
	}
	{
		crit := Criteria{DateStart: "1/16/2024", DateMode: DateCompareCalendarPermissive}
		_, kept := FilterBuckets(buckets, crit)
		assert.Equal(t, 1, kept)
	}
	{
		// a record date the calendar mode cannot parse is let through
		extra, _ := BuildBuckets(append(sampleRecords(),
			sampleRecord("garbage-date", "09:45")))
		crit := Criteria{DateStart: "1/16/2024", DateMode: DateCompareCalendarPermissive}
		_, kept := FilterBuckets(extra, crit)
		assert.Equal(t, 2, kept)
	}
	{
		// lexicographic mode compares the garbage date as a plain string
		extra, _ := BuildBuckets(append(sampleRecords(),
			sampleRecord("garbage-date", "09:45")))
		crit := Criteria{DateStart: "1/16/2024", DateMode: DateCompareLexicographic}
		_, kept := FilterBuckets(extra, crit)
		assert.Equal(t, 2, kept)
	}
}

func TestFilterBucketsPure(t *testing.T) {
	buckets, _ := BuildBuckets(sampleRecords())
	crit := Criteria{Modalities: []string{"CT"}, TimeGranularity: GranularityHour}

	first, keptFirst := FilterBuckets(buckets, crit)
	second, keptSecond := FilterBuckets(buckets, crit)

	assert.Equal(t, keptFirst, keptSecond)
	assert.Equal(t, first, second)

	// source buckets untouched
	assert.Equal(t, 2, buckets[9].Count)
	assert.Equal(t, 1, buckets[14].Count)
}

func TestFilterRecords(t *testing.T) {
	records := sampleRecords()
	{
		kept := FilterRecords(records, Criteria{})
		assert.Equal(t, len(records), len(kept))
	}
	{
		crit := Criteria{Signers: []string{"Dr. A"}, TimeGranularity: GranularityMinute}
		kept := FilterRecords(records, crit)
		assert.Equal(t, 1, len(kept))
		assert.Equal(t, "Dr. A", kept[0].ReportSignedBy)
	}
	{
		crit := Criteria{TimeStart: "10:00", TimeEnd: "15:00", TimeGranularity: GranularityMinute}
		kept := FilterRecords(records, crit)
		assert.Equal(t, 1, len(kept))
		assert.Equal(t, "14:05", kept[0].Time)
	}
}
