package ingest

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/entities"
	"radiology-workflow-api/mw"
	"radiology-workflow-api/session"
	"radiology-workflow-api/study"
	"radiology-workflow-api/utils"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IngestAPI struct {
	datasetStore *session.DatasetRedis
	risClient    *RISClient
	logger       *zap.Logger
}

func NewIngestAPI(datasetStore *session.DatasetRedis, risClient *RISClient, logger *zap.Logger) (app *IngestAPI) {
	app = &IngestAPI{
		datasetStore: datasetStore,
		risClient:    risClient,
		logger:       logger,
	}
	return app
}

func (app *IngestAPI) InitRoute(engine *gin.Engine, path string) {
	group := engine.Group(path, mw.WrapAuthInfo(app.logger))
	group.POST("", mw.ValidPerms(path, mw.PERM_C), app.CreateDataset)
}

// CreateDataset extracts rows from an uploaded file (or pulls them from the
// RIS), normalizes them and stores the result as a new dataset. Rows that
// fail normalization are dropped individually and reported back; only a
// batch that cannot be decoded at all fails the request.
func (app *IngestAPI) CreateDataset(c *gin.Context) {
	resp := entities.NewResponse()

	var (
		rows      []study.RawRow
		source    string
		sizeBytes int64
		err       error
	)

	if c.Query(constants.ParamSource) == constants.SourceRIS {
		source = constants.SourceRIS
		rows, err = app.risClient.FetchRows()
		if err != nil {
			utils.LogError(err)
			resp.ErrorCode = constants.ServerError
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
	} else {
		fileHeader, err := c.FormFile(constants.ParamFile)
		if err != nil {
			resp.ErrorCode = constants.ServerInvalidData
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		sizeBytes = fileHeader.Size

		rows, source, err = app.extractRows(c, fileHeader.Filename)
		if err != nil {
			utils.LogError(err)
			resp.ErrorCode = constants.ServerInvalidData
			c.JSON(http.StatusBadRequest, resp)
			return
		}
	}

	result := study.NormalizeRows(rows)

	dataset := session.Dataset{
		ID:      uuid.New().String(),
		Created: time.Now().UnixNano() / int64(time.Millisecond),
		Source:  source,
		Records: result.Records,
		Skipped: result.Skipped,
		Options: result.Options,
	}

	if err := app.datasetStore.Save(c.Request.Context(), dataset); err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	resp.Data = map[string]interface{}{
		constants.ParamDatasetID: dataset.ID,
		"source":                 source,
		"records":                len(result.Records),
		"skipped":                result.Skipped,
		"options":                result.Options,
		"size":                   humanize.Bytes(uint64(sizeBytes)),
	}
	resp.Count = len(result.Records)

	c.JSON(http.StatusOK, resp)
}

func (app *IngestAPI) extractRows(c *gin.Context, filename string) ([]study.RawRow, string, error) {
	fileHeader, err := c.FormFile(constants.ParamFile)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		rows, err := RowsFromCSV(file)
		return rows, constants.SourceCSV, err

	case ".xml":
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		rows, err := RowsFromXML(file)
		return rows, constants.SourceXML, err

	case ".dcm":
		// The DICOM parser wants a file on disk.
		tmp := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s.dcm", uuid.New().String()))
		if err := c.SaveUploadedFile(fileHeader, tmp); err != nil {
			return nil, "", err
		}
		defer os.Remove(tmp)
		row, err := RowFromDICOM(tmp)
		if err != nil {
			return nil, "", err
		}
		return []study.RawRow{row}, constants.SourceDICOM, nil

	default:
		return nil, "", fmt.Errorf("unsupported upload type: %s", filename)
	}
}
