package utils

import (
	"strings"
)

type kvStr2Inf = map[string]interface{}

var nonKeywordFields = map[string]bool{
	"created":  true,
	"modified": true,
}

func MakeSortQuery(sortRaw string) []kvStr2Inf {
	if sortRaw == "" {
		return nil
	}

	sorts := strings.Split(sortRaw, ",")
	sortQuery := make([]kvStr2Inf, 0)
	for _, sort := range sorts {
		var order string
		var criteria string
		if strings.HasPrefix(sort, "-") {
			order = "desc"
			criteria = strings.TrimPrefix(sort, "-")
		} else {
			order = "asc"
			criteria = sort
		}

		if _, found := nonKeywordFields[criteria]; !found {
			criteria += ".keyword"
		}

		sortQuery = append(sortQuery, kvStr2Inf{
			criteria: kvStr2Inf{
				"order": order,
			},
		})
	}

	return sortQuery
}

// ConvertInputsToESQueryBody builds a bool query body from term filters plus
// an optional query_string, the way every store in this service searches.
func ConvertInputsToESQueryBody(queries map[string][]string, qs string, from, size int, sort string) *kvStr2Inf {
	body := kvStr2Inf{}

	if size != -1 {
		body["size"] = size
	}
	if from != -1 {
		body["from"] = from
	}

	filter := make([]kvStr2Inf, 0)
	should := make([]kvStr2Inf, 0)
	must := make([]kvStr2Inf, 0)

	if len(queries) > 0 {
		for k, v := range queries {
			if len(v) == 1 {
				filter = append(filter, kvStr2Inf{
					"term": kvStr2Inf{
						k: v[0],
					},
				})
			} else if len(v) > 1 {
				for i := range v {
					should = append(should, kvStr2Inf{
						"term": kvStr2Inf{
							k: v[i],
						},
					})
				}
			}
		}
	}

	if qs != "" {
		must = append(must, kvStr2Inf{
			"query_string": kvStr2Inf{
				"query": qs,
			},
		})
	}

	boolQ := kvStr2Inf{
		"must":   must,
		"filter": filter,
		"should": should,
	}
	if len(should) > 0 {
		boolQ["minimum_should_match"] = 1
	}

	body["query"] = kvStr2Inf{
		"bool": boolQ,
	}

	if sortParam := MakeSortQuery(sort); sortParam != nil {
		body["sort"] = sortParam
	}

	return &body
}
