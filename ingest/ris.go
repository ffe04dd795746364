package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"radiology-workflow-api/study"

	"github.com/gojektech/heimdall/v6/httpclient"
)

// RISClient pulls study rows from a remote RIS worklist endpoint. The
// endpoint returns the same loosely-typed rows a file upload would.
type RISClient struct {
	uri        string
	httpClient *httpclient.Client
}

func NewRISClient(uri string) *RISClient {
	timeout := 5000 * time.Millisecond
	return &RISClient{
		uri: uri,
		httpClient: httpclient.NewClient(
			httpclient.WithHTTPTimeout(timeout),
			httpclient.WithRetryCount(3),
		),
	}
}

func (ris *RISClient) FetchRows() ([]study.RawRow, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/studies/export", ris.uri), nil)
	if err != nil {
		return nil, err
	}

	res, err := ris.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.New(res.Status)
	}

	rows := make([]study.RawRow, 0)
	if err := json.NewDecoder(res.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("Error parsing the response body: %s", err)
	}

	return rows, nil
}
