package workflow

import (
	"net/http"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/entities"
	"radiology-workflow-api/mw"
	"radiology-workflow-api/session"
	"radiology-workflow-api/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WorkflowAPI struct {
	datasetStore *session.DatasetRedis
	logger       *zap.Logger
}

func NewWorkflowAPI(datasetStore *session.DatasetRedis, logger *zap.Logger) (app *WorkflowAPI) {
	app = &WorkflowAPI{
		datasetStore: datasetStore,
		logger:       logger,
	}
	return app
}

func (app *WorkflowAPI) InitRoute(engine *gin.Engine, path string) {
	group := engine.Group(path, mw.WrapAuthInfo(app.logger))
	group.GET("", mw.ValidPerms(path, mw.PERM_R), app.GetWorkflow)
}

// CriteriaFromQuery reads the filter state off the request. Each view passes
// its own historical defaults for granularity and date comparison; both stay
// overridable by query param.
func CriteriaFromQuery(c *gin.Context, granularity TimeGranularity, dateMode DateComparisonMode) Criteria {
	crit := Criteria{
		Modalities:      c.QueryArray(constants.ParamModality),
		Statuses:        c.QueryArray(constants.ParamStatus),
		Signers:         c.QueryArray(constants.ParamSigner),
		DateStart:       c.Query(constants.ParamDateStart),
		DateEnd:         c.Query(constants.ParamDateEnd),
		TimeStart:       c.Query(constants.ParamTimeStart),
		TimeEnd:         c.Query(constants.ParamTimeEnd),
		TimeGranularity: granularity,
		DateMode:        dateMode,
	}

	switch TimeGranularity(c.Query(constants.ParamTimeGran)) {
	case GranularityHour:
		crit.TimeGranularity = GranularityHour
	case GranularityMinute:
		crit.TimeGranularity = GranularityMinute
	}
	switch DateComparisonMode(c.Query(constants.ParamDateMode)) {
	case DateCompareLexicographic:
		crit.DateMode = DateCompareLexicographic
	case DateCompareCalendarPermissive:
		crit.DateMode = DateCompareCalendarPermissive
	}

	return crit
}

// GetWorkflow returns the filtered hourly distribution of the dataset named
// by dataset_id. A missing dataset is a precondition failure: the caller is
// expected to go back through ingestion, no degraded view is rendered.
func (app *WorkflowAPI) GetWorkflow(c *gin.Context) {
	resp := entities.NewResponse()

	datasetID := c.Query(constants.ParamDatasetID)
	if datasetID == "" {
		resp.ErrorCode = constants.ServerInvalidData
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	dataset, err := app.datasetStore.Get(c.Request.Context(), datasetID)
	if err == session.ErrDatasetNotFound {
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

	crit := CriteriaFromQuery(c, GranularityHour, DateCompareLexicographic)

	buckets, _ := BuildBuckets(dataset.Records)
	filtered, total := FilterBuckets(buckets, crit)

	resp.Data = filtered
	resp.Count = total
	resp.Meta = &map[string]interface{}{
		"criteria": crit,
		"options":  dataset.Options,
	}

	c.JSON(http.StatusOK, resp)
}
