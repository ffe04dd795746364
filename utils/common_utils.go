package utils

import (
	"encoding/json"
	"fmt"
	"strconv"

	"radiology-workflow-api/constants"

	"github.com/gin-gonic/gin"
)

// ConvertGinRequestToParams pulls the shared paging/search params off a request.
func ConvertGinRequestToParams(c *gin.Context) (string, int, int, string) {
	queryStr := c.Query(constants.ParamSearch)

	size, err := strconv.Atoi(c.Query(constants.ParamLimit))
	if err != nil {
		size = constants.DefaultLimit
	}
	from, err := strconv.Atoi(c.Query(constants.ParamOffset))
	if err != nil {
		from = constants.DefaultOffset
	}
	sort := c.Query(constants.ParamSort)

	return queryStr, from, size, sort
}

// FindInSlice takes a slice and looks for an element in it. If found it will
// return it's key, otherwise it will return -1 and a bool of false.
func FindInSlice(slice []string, val string) (int, bool) {
	for i, item := range slice {
		if item == val {
			return i, true
		}
	}
	return -1, false
}

func ConvertMapToString(m map[string]interface{}) string {
	jsonString, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(jsonString)
}
