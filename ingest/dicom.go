package ingest

import (
	"time"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/study"
	"radiology-workflow-api/utils"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/dicomtag"
)

// RowFromDICOM extracts one study row from the header of a DICOM file. Tag
// values come back in DICOM's own date/time encoding and are rewritten into
// the tabular source formats before normalization.
func RowFromDICOM(path string) (study.RawRow, error) {
	parser, err := dicom.NewParserFromFile(path, nil)
	if err != nil {
		return nil, err
	}

	dataset, err := parser.Parse(dicom.ParseOptions{DropPixelData: true})
	if err != nil {
		return nil, err
	}

	row := make(study.RawRow)
	setFromTag := func(key string, tag dicomtag.Tag) {
		element, err := dataset.FindElementByTag(tag)
		if err != nil {
			return
		}
		value, err := element.GetString()
		if err != nil {
			utils.LogError(err)
			return
		}
		row[key] = value
	}

	setFromTag(constants.ColDate, dicomtag.StudyDate)
	setFromTag(constants.ColTime, dicomtag.StudyTime)
	setFromTag(constants.ColPatientID, dicomtag.PatientID)
	setFromTag(constants.ColPatientName, dicomtag.PatientName)
	setFromTag(constants.ColModality, dicomtag.Modality)
	setFromTag(constants.ColDescription, dicomtag.StudyDescription)
	setFromTag(constants.ColAccession, dicomtag.AccessionNumber)
	setFromTag(constants.ColBodyPart, dicomtag.BodyPartExamined)
	setFromTag(constants.ColReportSigner, dicomtag.ReferringPhysicianName)

	row[constants.ColDate] = reformatDICOMDate(row[constants.ColDate])
	row[constants.ColTime] = reformatDICOMTime(row[constants.ColTime])

	return row, nil
}

// reformatDICOMDate turns YYYYMMDD into the tabular month/day/year form.
// Anything else passes through untouched.
func reformatDICOMDate(value string) string {
	parsed, err := time.Parse("20060102", value)
	if err != nil {
		return value
	}
	return parsed.Format("01/02/2006")
}

// reformatDICOMTime turns HHMMSS (with optional fraction) into HH:MM.
func reformatDICOMTime(value string) string {
	if len(value) < 4 {
		return value
	}
	return value[0:2] + ":" + value[2:4]
}
