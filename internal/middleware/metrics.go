package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acorta_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	redirectsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acorta_redirects_total",
		Help: "Redirect lookups by outcome (hit or miss).",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(requestsTotal, redirectsTotal)
}

// Metrics counts every request. The route label uses the matched gin route
// pattern so alias values do not explode the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// CountRedirect records a redirect lookup outcome.
func CountRedirect(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	redirectsTotal.WithLabelValues(outcome).Inc()
}
