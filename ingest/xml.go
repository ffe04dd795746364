package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/study"

	xj "github.com/basgys/goxml2json"
)

// XML element names cannot carry the spaces and dots of the recognized
// column names, so the extractor maps them here.
var xmlFieldAliases = map[string]string{
	"PatientID":      constants.ColPatientID,
	"PatientName":    constants.ColPatientName,
	"Modality":       constants.ColModality,
	"Accession":      constants.ColAccession,
	"BodyPart":       constants.ColBodyPart,
	"ReportSignedBy": constants.ColReportSigner,
}

// RowsFromXML reads an XML report export of the shape
// <studies><study><Date>...</Date>...</study></studies>. The document is
// converted to JSON first so rows can be walked as generic maps.
func RowsFromXML(r io.Reader) ([]study.RawRow, error) {
	converted, err := xj.Convert(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(converted.Bytes(), &doc); err != nil {
		return nil, err
	}

	root, found := doc["studies"].(map[string]interface{})
	if !found {
		return nil, errors.New("XML input has no studies element")
	}

	rows := make([]study.RawRow, 0)
	switch items := root["study"].(type) {
	case []interface{}:
		for _, item := range items {
			if fields, ok := item.(map[string]interface{}); ok {
				rows = append(rows, rowFromFields(fields))
			}
		}
	case map[string]interface{}:
		rows = append(rows, rowFromFields(items))
	default:
		return nil, errors.New("XML input has no study elements")
	}

	return rows, nil
}

func rowFromFields(fields map[string]interface{}) study.RawRow {
	row := make(study.RawRow, len(fields))
	for name, value := range fields {
		if alias, found := xmlFieldAliases[name]; found {
			name = alias
		}
		switch v := value.(type) {
		case string:
			row[name] = v
		case float64, bool:
			row[name] = fmt.Sprintf("%v", v)
		}
	}
	return row
}
