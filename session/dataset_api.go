package session

import (
	"net/http"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/entities"
	"radiology-workflow-api/mw"
	"radiology-workflow-api/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DatasetAPI struct {
	store  *DatasetRedis
	logger *zap.Logger
}

func NewDatasetAPI(store *DatasetRedis, logger *zap.Logger) (app *DatasetAPI) {
	app = &DatasetAPI{
		store:  store,
		logger: logger,
	}
	return app
}

func (app *DatasetAPI) InitRoute(engine *gin.Engine, path string) {
	group := engine.Group(path, mw.WrapAuthInfo(app.logger))
	group.GET("/:id", mw.ValidPerms(path, mw.PERM_R), app.GetDataset)
	group.DELETE("/:id", mw.ValidPerms(path, mw.PERM_D), app.ClearDataset)
}

// GetDataset reports dataset presence and its ingestion summary without the
// record payload itself; the analytic views pull the records through their
// own endpoints.
func (app *DatasetAPI) GetDataset(c *gin.Context) {
	resp := entities.NewResponse()

	datasetID := c.Param(constants.ParamID)
	if datasetID == "" {
		resp.ErrorCode = constants.ServerInvalidData
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	dataset, err := app.store.Get(c.Request.Context(), datasetID)
	if err == ErrDatasetNotFound {
		resp.ErrorCode = constants.ServerNotFound
		c.JSON(http.StatusNotFound, resp)
		return
	}
	if err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	resp.Data = map[string]interface{}{
		constants.ParamID: dataset.ID,
		"created":         dataset.Created,
		"source":          dataset.Source,
		"records":         len(dataset.Records),
		"skipped":         dataset.Skipped,
		"options":         dataset.Options,
	}
	resp.Count = len(dataset.Records)

	c.JSON(http.StatusOK, resp)
}

// ClearDataset drops the hand-off entry, the "navigate back to ingestion"
// path.
func (app *DatasetAPI) ClearDataset(c *gin.Context) {
	resp := entities.NewResponse()

	datasetID := c.Param(constants.ParamID)
	if datasetID == "" {
		resp.ErrorCode = constants.ServerInvalidData
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	if err := app.store.Clear(c.Request.Context(), datasetID); err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
