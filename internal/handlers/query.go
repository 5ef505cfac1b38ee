package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-dashboard/internal/table"
)

const (
	defaultPage = 1
	maxPageSize = 100
)

// getPaginationParams obtiene y valida los parámetros de paginación; page es 1-based
func getPaginationParams(c *gin.Context, defaultPageSize int) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

// buildSortSpecs interpreta sort=campo:asc,campo2:desc
func buildSortSpecs(c *gin.Context) []table.SortSpec {
	sortQuery := c.Query("sort")
	if sortQuery == "" {
		return nil
	}

	var specs []table.SortSpec
	for _, part := range strings.Split(sortQuery, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if fields[0] == "" {
			continue
		}

		specs = append(specs, table.SortSpec{
			Key:  fields[0],
			Desc: len(fields) > 1 && fields[1] == "desc",
		})
	}
	return specs
}

// listParam separa un parámetro con valores separados por coma
func listParam(c *gin.Context, key string) []string {
	var out []string
	for _, v := range strings.Split(c.Query(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// tableState arma el estado de la tabla a partir de la query
func tableState(c *gin.Context, defaultPageSize int) table.State {
	page, pageSize := getPaginationParams(c, defaultPageSize)
	return table.State{
		Sorting:   buildSortSpecs(c),
		Filter:    c.Query("search"),
		Hidden:    listParam(c, "hidden"),
		Selected:  listParam(c, "selected"),
		Expanded:  listParam(c, "expanded"),
		PageIndex: page - 1,
		PageSize:  pageSize,
	}
}

func renderTable[T any](opts table.Options[T], data []T, state table.State) table.View[T] {
	t := table.New(opts, data)
	t.Restore(state)
	return t.View()
}
