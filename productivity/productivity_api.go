package productivity

import (
	"net/http"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/entities"
	"radiology-workflow-api/mw"
	"radiology-workflow-api/session"
	"radiology-workflow-api/utils"
	"radiology-workflow-api/workflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductivityAPI struct {
	datasetStore *session.DatasetRedis
	logger       *zap.Logger
}

func NewProductivityAPI(datasetStore *session.DatasetRedis, logger *zap.Logger) (app *ProductivityAPI) {
	app = &ProductivityAPI{
		datasetStore: datasetStore,
		logger:       logger,
	}
	return app
}

func (app *ProductivityAPI) InitRoute(engine *gin.Engine, path string) {
	group := engine.Group(path, mw.WrapAuthInfo(app.logger))
	group.GET("", mw.ValidPerms(path, mw.PERM_R), app.GetProductivity)
}

// GetProductivity returns the staff and modality aggregates of the filtered
// record set. This view historically filters time at minute granularity and
// compares dates as parsed calendar dates with a permissive fallback, unlike
// the workflow view; those stay the defaults here.
func (app *ProductivityAPI) GetProductivity(c *gin.Context) {
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

	crit := workflow.CriteriaFromQuery(c, workflow.GranularityMinute, workflow.DateCompareCalendarPermissive)

	filtered := workflow.FilterRecords(dataset.Records, crit)
	result := Aggregate(filtered)

	resp.Data = result
	resp.Count = result.Total
	resp.Meta = &map[string]interface{}{
		"criteria": crit,
		"options":  dataset.Options,
	}

	c.JSON(http.StatusOK, resp)
}
