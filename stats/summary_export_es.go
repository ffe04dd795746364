package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"radiology-workflow-api/entities"
	"radiology-workflow-api/utils"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"go.uber.org/zap"
)

type SummaryExportES struct {
	esClient    *elasticsearch.Client
	indexPrefix string
	logger      *zap.Logger
}

func NewSummaryExportStore(es *elasticsearch.Client, indexPrefix string, logger *zap.Logger) *SummaryExportES {
	return &SummaryExportES{
		es, indexPrefix, logger,
	}
}

type kvStr2Inf = map[string]interface{}

func getExportIndexName(indexPrefix string, export SummaryExport) string {
	indexTime := time.Unix(export.Created/1000, 0)
	index := fmt.Sprintf("%s_%d%02d", indexPrefix, indexTime.Year(), indexTime.Month())
	return index
}

func getExportIndexWildcard(indexPrefix string) string {
	index := fmt.Sprintf("%s_*", indexPrefix)
	return index
}

// Create indexes an export record. Re-creating with the same ID overwrites,
// which is how status moves from PENDING to DONE.
func (store *SummaryExportES) Create(export SummaryExport) error {
	req := esapi.IndexRequest{
		Index:      getExportIndexName(store.indexPrefix, export),
		DocumentID: export.ID,
		Body:       bytes.NewReader([]byte(export.String())),
		Refresh:    "true",
	}

	ctx := context.Background()
	res, err := req.Do(ctx, store.esClient.Transport)
	if err != nil {
		return fmt.Errorf(fmt.Sprintf("IndexRequest ERROR: %s", err))
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%s ERROR indexing document ID=%s", res.Status(), export.ID)
	}

	var resMap map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&resMap); err != nil {
		return fmt.Errorf("Error parsing the response body: %s", err)
	}

	return nil
}

func (store *SummaryExportES) Get(queries map[string][]string, qs string) (*SummaryExport, *entities.ESReturn, error) {
	exports, esReturn, err := store.GetSlice(queries, qs, 0, 1, "")
	if err != nil {
		return nil, nil, err
	}
	if len(exports) > 0 {
		return &exports[0], esReturn, nil
	}
	return nil, esReturn, errors.New("Return is empty")
}

func (store *SummaryExportES) GetSlice(queries map[string][]string, qs string,
	from, size int, sort string) ([]SummaryExport, *entities.ESReturn, error) {
	es := store.esClient

	var (
		esReturn entities.ESReturn
		buf      bytes.Buffer
		esError  entities.ESError
	)

	body := utils.ConvertInputsToESQueryBody(queries, qs, from, size, sort)
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, fmt.Errorf("Error encoding query: %s", err)
	}
	utils.LogDebug(utils.ConvertMapToString(*body))

	res, err := es.Search(
		es.Search.WithContext(context.Background()),
		es.Search.WithIndex(getExportIndexWildcard(store.indexPrefix)),
		es.Search.WithBody(&buf),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("Error getting response: %s", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if err := json.NewDecoder(res.Body).Decode(&esError); err != nil {
			return nil, nil, fmt.Errorf("Error parsing the response body: %s", err)
		}
		return nil, nil, fmt.Errorf("[%s] %s: %s", res.Status(), esError.Error.Type, esError.Error.Reason)
	}

	if err := json.NewDecoder(res.Body).Decode(&esReturn); err != nil {
		return nil, nil, fmt.Errorf("Error parsing the response body: %s", err)
	}

	utils.LogDebug("[%s] %d hits; took: %dms", res.Status(), esReturn.Hits.Total.Value, esReturn.Took)

	exports := make([]SummaryExport, 0)
	for _, hit := range esReturn.Hits.Hits {
		var export SummaryExport
		bytesData, _ := json.Marshal(hit.Source)
		if err := json.Unmarshal(bytesData, &export); err == nil {
			exports = append(exports, export)
		}
	}

	return exports, &esReturn, nil
}
