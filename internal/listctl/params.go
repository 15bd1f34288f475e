package listctl

import "github.com/gin-gonic/gin"

// Params is the pagination state every list endpoint binds from the query
// string. Filters beyond page/limit are entity-specific and read separately.
type Params struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// BindParams reads page/limit from the request query with sane defaults.
func BindParams(c *gin.Context) (Params, error) {
	var p Params
	if err := c.ShouldBindQuery(&p); err != nil {
		return Params{}, err
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p, nil
}
