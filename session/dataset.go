package session

import (
	"encoding/json"

	"radiology-workflow-api/study"
)

// Dataset is the hand-off between ingestion and the analytic views: the full
// normalized record set plus the ingestion diagnostics. It lives for one
// browsing session and is read whole by each view.
type Dataset struct {
	ID      string              `json:"id"`
	Created int64               `json:"created"`
	Source  string              `json:"source"`
	Records []study.Record      `json:"records"`
	Skipped []study.SkipReason  `json:"skipped"`
	Options study.FilterOptions `json:"options"`
}

func (dataset *Dataset) IsValidData() bool {
	return len(dataset.Records) > 0
}

func (dataset *Dataset) String() string {
	b, err := json.Marshal(dataset)
	if err != nil {
		return "{}"
	}
	return string(b)
}
