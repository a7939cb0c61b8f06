package stats

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/modules/shorten"
	"github.com/divoslabs/acorta/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      *Service
	mappings *shorten.Service
	cfg      *config.AppConfig
}

func NewHandler(svc *Service, mappings *shorten.Service, cfg *config.AppConfig) *Handler {
	return &Handler{svc: svc, mappings: mappings, cfg: cfg}
}

// RegisterAliasRoutes mounts the per-alias stats page at the root.
func (h *Handler) RegisterAliasRoutes(r gin.IRoutes) {
	r.GET("/:short/stats", h.stats)
}

// RegisterAdminRoutes mounts the retention cleanup endpoint.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/clean", h.clean)
}

// GET /{alias}/stats?since=DATE
// since accepts 2006-01-02 dates or the anchors today|week|month|year.
func (h *Handler) stats(c *gin.Context) {
	short := c.Param("short")
	m, err := h.mappings.GetByAlias(short)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}

	since, err := parseSince(c.Query("since"), time.Now())
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	platforms, total, err := h.svc.Aggregate(short, since)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "stats.html", gin.H{
		"Short":      short,
		"Long":       m.Long,
		"Descr":      m.Descr,
		"Platforms":  platforms,
		"TotalCount": total,
		"Since":      c.Query("since"),
	})
}

// GET /{admin}/clean?months=N
func (h *Handler) clean(c *gin.Context) {
	months := h.cfg.RetentionMonths
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "months must be a non-negative integer")
			return
		}
		months = n
	}

	cutoff := time.Now().AddDate(0, -months, 0)
	deleted, err := h.svc.Purge(cutoff)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Text(c, fmt.Sprintf("purged %d log entries older than %d months", deleted, months))
}

func parseSince(raw string, now time.Time) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	var t time.Time
	switch raw {
	case "today":
		y, m, d := now.Date()
		t = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case "week":
		t = now.AddDate(0, 0, -7)
	case "month":
		t = now.AddDate(0, -1, 0)
	case "year":
		t = now.AddDate(-1, 0, 0)
	default:
		parsed, err := time.ParseInLocation("2006-01-02", raw, now.Location())
		if err != nil {
			return nil, fmt.Errorf("since must be YYYY-MM-DD or one of today/week/month/year")
		}
		t = parsed
	}
	return &t, nil
}
