package account

import (
	"net/http"

	"radiology-workflow-api/constants"
	"radiology-workflow-api/entities"
	"radiology-workflow-api/mw"
	"radiology-workflow-api/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AccountAPI struct {
	kcStore *KeycloakStore
	logger  *zap.Logger
}

func NewAccountAPI(kcStore *KeycloakStore, logger *zap.Logger) (app *AccountAPI) {
	app = &AccountAPI{
		kcStore: kcStore,
		logger:  logger,
	}
	return app
}

func (app *AccountAPI) InitRoute(engine *gin.Engine, path string) {
	group := engine.Group(path, mw.WrapAuthInfo(app.logger))
	group.GET("", mw.ValidPerms(path, mw.PERM_R), app.FetchAccounts)
}

// FetchAccounts lists the signer directory, optionally narrowed by username.
func (app *AccountAPI) FetchAccounts(c *gin.Context) {
	resp := entities.NewResponse()

	username := c.Query("username")
	accounts, err := app.kcStore.GetAccounts(username)
	if err != nil {
		utils.LogError(err)
		resp.ErrorCode = constants.ServerError
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	resp.Data = accounts
	resp.Count = len(accounts)

	c.JSON(http.StatusOK, resp)
}
