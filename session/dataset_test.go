package session

import (
	"testing"

	"radiology-workflow-api/study"

	"github.com/stretchr/testify/assert"
)

func TestVerifyDatasetData(t *testing.T) {
	dataset := Dataset{
		Records: []study.Record{},
	}
	assert.Equal(t, false, dataset.IsValidData(), "should be false")
}

func TestVerifyDatasetData2(t *testing.T) {
	dataset := Dataset{
		Records: []study.Record{{
			Time: "09:30",
		}},
	}
	assert.Equal(t, true, dataset.IsValidData(), "should be true")
}

func TestDatasetString(t *testing.T) {
	dataset := Dataset{ID: "id"}
	assert.NotEqual(t, "{}", dataset.String())
	assert.Contains(t, dataset.String(), "\"id\":\"id\"")
}
