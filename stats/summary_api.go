package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/entities"
	"radiology-workflow-api/mw"
	"radiology-workflow-api/session"
	"radiology-workflow-api/utils"
	"radiology-workflow-api/workflow"

	"github.com/bsm/redislock"
	"github.com/enriquebris/goconcurrentqueue"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatsAPI struct {
	exportStore  *SummaryExportES
	datasetStore *session.DatasetRedis
	minioStorage *MinIOStorage
	lockerRedis  *redislock.Client
	logger       *zap.Logger
}

func NewStatsAPI(exportStore *SummaryExportES, datasetStore *session.DatasetRedis,
	minioStorage *MinIOStorage, lockerRedis *redislock.Client, logger *zap.Logger) (app *StatsAPI) {
	app = &StatsAPI{
		exportStore:  exportStore,
		datasetStore: datasetStore,
		minioStorage: minioStorage,
		lockerRedis:  lockerRedis,
		logger:       logger,
	}
	return app
}

func (app *StatsAPI) InitRoute(engine *gin.Engine, path string) {
	group := engine.Group(path, mw.WrapAuthInfo(app.logger))
	group.GET("/summary", mw.ValidPerms(path, mw.PERM_R), app.GetSummary)
	group.POST("/summary_exports", mw.ValidPerms("summary_exports", mw.PERM_C), app.CreateSummaryExport)
	group.GET("/summary_exports", mw.ValidPerms("summary_exports", mw.PERM_R), app.GetSummaryExports)
	group.GET("/summary_exports/download/:id", mw.ValidPerms("summary_exports", mw.PERM_R), app.DownloadSummaryExport)
}

// GetSummary builds the export payload for the current filters without
// persisting anything, for the on-screen summary panel.
func (app *StatsAPI) GetSummary(c *gin.Context) {
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

	crit := workflow.CriteriaFromQuery(c, workflow.GranularityHour, workflow.DateCompareLexicographic)
	buckets, _ := workflow.BuildBuckets(dataset.Records)
	filtered, total := workflow.FilterBuckets(buckets, crit)

	resp.Data = BuildSummary(filtered, crit)
	resp.Count = total

	c.JSON(http.StatusOK, resp)
}

var existedTags = map[string]bool{}

// CreateSummaryExport registers a PENDING export record and queues the build.
// Tags are unique across the export history, like any other audit trail key.
func (app *StatsAPI) CreateSummaryExport(c *gin.Context) {
	resp := entities.NewResponse()

	var export SummaryExport
	err := c.ShouldBindJSON(&export)
	if err != nil || export.Tag == "" || export.DatasetID == "" {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerInvalidData
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	if len(existedTags) == 0 {
		exports, _, _ := app.exportStore.GetSlice(nil, "", 0, constants.DefaultLimit, "")
		for _, item := range exports {
			existedTags[item.Tag] = true
		}
	}
	if _, existedTag := existedTags[export.Tag]; existedTag {
		app.logger.Info("Export tag is already existed", zap.String("tag", export.Tag))
		resp.ErrorCode = constants.ServerInvalidData
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	existedTags[export.Tag] = true

	authInfo := mw.GetAuthInfoFromGin(c)
	export.New()
	export.Status = constants.ExportStatusPending
	if authInfo != nil {
		export.CreatorID = authInfo.ID
	}

	if err := app.exportStore.Create(export); err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	app.QueueExport(export)

	resp.Data = kvStr2Inf{
		constants.ParamID: export.ID,
	}
	c.JSON(http.StatusOK, resp)
}

var exportQueue *goconcurrentqueue.FIFO

func (app *StatsAPI) QueueExport(export SummaryExport) {
	if exportQueue == nil {
		exportQueue = goconcurrentqueue.NewFIFO()
	}
	exportQueue.Enqueue(export)
}

// DequeueExports drains the export queue in the background, one job at a
// time. Runs for the life of the process.
func (app *StatsAPI) DequeueExports() {
	for {
		if exportQueue != nil && exportQueue.GetLen() > 0 {
			item, err := exportQueue.Dequeue()
			if err == nil && item != nil {
				if err := app.ProcessExport(item.(SummaryExport)); err != nil {
					utils.LogError(err)
				}
			}
		} else {
			time.Sleep(2 * time.Second)
		}
	}
}

// ProcessExport builds the summary payload and moves the record to DONE. A
// redis lock per tag keeps a re-submitted job from racing the upload.
func (app *StatsAPI) ProcessExport(export SummaryExport) error {
	ctx := context.Background()

	lock, err := app.lockerRedis.Obtain(ctx, fmt.Sprintf("summary_export:%s", export.Tag), time.Minute, nil)
	if err == redislock.ErrNotObtained {
		return fmt.Errorf("export %s is already being processed", export.Tag)
	}
	if err != nil {
		return err
	}
	defer lock.Release(ctx)

	dataset, err := app.datasetStore.Get(ctx, export.DatasetID)
	if err != nil {
		return err
	}

	buckets, _ := workflow.BuildBuckets(dataset.Records)
	filtered, _ := workflow.FilterBuckets(buckets, export.Criteria)
	summary := BuildSummary(filtered, export.Criteria)

	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	if err := app.minioStorage.StoreFile(export.FilePath, payload); err != nil {
		return err
	}

	export.Status = constants.ExportStatusDone
	return app.exportStore.Create(export)
}

func (app *StatsAPI) GetSummaryExports(c *gin.Context) {
	resp := entities.NewResponse()

	qs, from, size, sort := utils.ConvertGinRequestToParams(c)
	if sort == "" {
		sort = "-created"
	}

	exports, esReturn, err := app.exportStore.GetSlice(nil, qs, from, size, sort)
	if err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	resp.Data = exports
	resp.Count = esReturn.Hits.Total.Value

	c.JSON(http.StatusOK, resp)
}

func (app *StatsAPI) DownloadSummaryExport(c *gin.Context) {
	resp := entities.NewResponse()

	exportID := c.Param(constants.ParamID)
	if exportID == "" {
		resp.ErrorCode = constants.ServerInvalidData
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	export, _, err := app.exportStore.Get(nil, fmt.Sprintf("_id:%s", exportID))
	if err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	file, err := app.minioStorage.DownloadFile(*export)
	if err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%s", export.FilePath),
	}
	c.DataFromReader(http.StatusOK, fileInfo.Size, "application/json", file, extraHeaders)
}
