package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive numeric path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pageQuery reads ?page=, defaulting to 1 when absent or blank. Range
// checks are left to the services so out-of-range pages surface as 404.
func pageQuery(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Query("page"))
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}
