package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 6

type pageParams struct {
	Page  int
	Limit int
}

// pagination reads the page and limit query parameters, falling back
// to the defaults on anything unparsable.
func pagination(c *gin.Context) pageParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	return pageParams{Page: page, Limit: limit}
}

func (p pageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func requestScheme(c *gin.Context) string {
	if c.Request.TLS != nil {
		return "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	return "http"
}

// pageLink rebuilds the request URL pointing at another page.
func pageLink(c *gin.Context, page int) string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return requestScheme(c) + "://" + c.Request.Host + u.String()
}

// paginated wraps results in the count/next/previous/results envelope.
func paginated(c *gin.Context, count int64, p pageParams, results interface{}) gin.H {
	var next, previous interface{}
	if int64(p.Page*p.Limit) < count {
		next = pageLink(c, p.Page+1)
	}
	if p.Page > 1 {
		previous = pageLink(c, p.Page-1)
	}
	return gin.H{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}
