package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
)

// ListStartupsQueryParams holds query parameters for GET /startups
type ListStartupsQueryParams struct {
	SearchTerm string `form:"q"`
	Sector     string `form:"sector"`
	Category   string `form:"category"`
	Industry   string `form:"industry"`
	Sort       string `form:"sort,default=newest"`
}

// ParseListStartupsQuery binds and validates the directory query
func ParseListStartupsQuery(c *gin.Context) (dto.ListStartupsRequest, error) {
	var params ListStartupsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return dto.ListStartupsRequest{}, err
	}

	req := dto.ListStartupsRequest{
		SearchTerm: params.SearchTerm,
		Sector:     params.Sector,
		Category:   params.Category,
		Industry:   params.Industry,
		Sort:       params.Sort,
	}
	if err := req.Validate(); err != nil {
		return dto.ListStartupsRequest{}, err
	}
	return req, nil
}
