package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const CacheNoCache = 0

// CacheRouter sets a default cache-control header for every page. Feeds
// and forms must never be cached, so the server installs it with
// CacheNoCache; individual end-points can still override the header.
type CacheRouter struct {
	CacheTime int // seconds, defaults to CacheNoCache = 0
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if cr.CacheTime == CacheNoCache {
			c.Header("cache-control", "no-cache")
		} else {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(cr.CacheTime))
		}
		c.Next()
	}
}
