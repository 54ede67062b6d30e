package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ResourceID reads the id of the addressed row from the path (/clients/:id) or
// from the query string (?id=).
func ResourceID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
