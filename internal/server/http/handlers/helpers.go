package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the {id} path parameter. Non-numeric and non-positive
// values are treated the same as unknown identifiers.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
