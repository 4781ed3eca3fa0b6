package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/pkg/services"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

type pageParams struct {
	limit  int
	offset int
}

// bindPage parses limit/offset query parameters with bounds checking.
func bindPage(c *gin.Context) (pageParams, error) {
	p := pageParams{limit: defaultPageLimit}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageLimit {
			return p, services.NewValidationError("limit",
				"must be an integer between 1 and 200")
		}
		p.limit = n
	}
	if raw := c.Query("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, services.NewValidationError("offset",
				"must be a non-negative integer")
		}
		p.offset = n
	}
	return p, nil
}
