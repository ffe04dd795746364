package stats

import (
	"encoding/json"
	"time"

	"radiology-workflow-api/workflow"

	"github.com/google/uuid"
)

// SummaryExport is the audit record of one export job: requested with a
// unique tag, built in the background, flipped to DONE once the payload
// lands in object storage.
type SummaryExport struct {
	ID        string            `json:"id"`
	Created   int64             `json:"created"`
	FilePath  string            `json:"file_path"`
	CreatorID string            `json:"creator_id"`
	DatasetID string            `json:"dataset_id"`
	Tag       string            `json:"tag"`
	Status    string            `json:"status"`
	Criteria  workflow.Criteria `json:"criteria"`
}

func (export *SummaryExport) String() string {
	b, _ := json.Marshal(export)
	return string(b)
}

func (export *SummaryExport) New() {
	export.ID = uuid.New().String()
	export.Created = time.Now().UnixNano() / int64(time.Millisecond)
	export.FilePath = export.Tag + ".json"
}
