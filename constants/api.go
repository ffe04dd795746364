package constants

const (
	ENV = "API_ENV"

	ParamID        = "id"
	ParamDatasetID = "dataset_id"
	ParamSource    = "source"
	ParamFile      = "file"
	ParamAuth      = "Authorization"

	ParamModality  = "modality"
	ParamStatus    = "status"
	ParamSigner    = "signer"
	ParamDateStart = "date_start"
	ParamDateEnd   = "date_end"
	ParamTimeStart = "time_start"
	ParamTimeEnd   = "time_end"
	ParamTimeGran  = "time_granularity"
	ParamDateMode  = "date_mode"

	ParamLimit  = "_limit"
	ParamOffset = "_offset"
	ParamSort   = "_sort"
	ParamSearch = "_search"

	DefaultLimit  = 100
	DefaultOffset = 0

	// Recognized ingestion column names, exact match, case-sensitive.
	ColDate         = "Date"
	ColTime         = "Time"
	ColPatientID    = "Patient ID"
	ColPatientName  = "Patient Name"
	ColModality     = "Mod."
	ColDescription  = "Description"
	ColStatus       = "Status"
	ColAccession    = "Accession"
	ColBodyPart     = "Body Part"
	ColReportSigner = "Report Signed By"

	FieldDefault     = "N/A"
	SignerUnassigned = "Unassigned"
	FilterAll        = "All"
	NoData           = "No data"

	SourceCSV   = "csv"
	SourceXML   = "xml"
	SourceDICOM = "dicom"
	SourceRIS   = "ris"

	ExportStatusPending = "PENDING"
	ExportStatusDone    = "DONE"

	SkipReasonMissingTime = "MISSING_TIME"
	SkipReasonBadTime     = "UNPARSEABLE_TIME"
)

const (
	ServerOK          = 0
	ServerError       = 1000
	ServerInvalidData = 1001
	ServerNotFound    = 1002
)
