// Package response centralizes HTTP responses. Admin listing endpoints speak
// JSON; everything user-facing (errors included) is plain text or a rendered
// page.
package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Pagination metadata returned with paginated responses.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
}

// pagedResponse is the envelope for paginated list responses.
type pagedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// OK sends a 200 JSON response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Paged sends a paginated JSON response.
func Paged(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, pagedResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// Text sends a 200 plain-text response.
func Text(c *gin.Context, message string) {
	c.String(http.StatusOK, message)
}

// BadRequest sends a 400 plain-text error. Validation failures and
// store-level uniqueness conflicts both land here.
func BadRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
	c.Abort()
}

// NotFound sends a 404 plain-text error.
func NotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not found")
	c.Abort()
}

// InternalError sends a 500 plain-text error.
func InternalError(c *gin.Context, err error) {
	c.String(http.StatusInternalServerError, "internal error: %s", err.Error())
	c.Abort()
}

// PublicRoot is the advertised base for short links: the configured public
// URL when set, the request host otherwise.
func PublicRoot(c *gin.Context, baseURL string) string {
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/")
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
