package redirect

import (
	"net/http"
	"strings"
	"time"

	"github.com/divoslabs/acorta/internal/middleware"
	"github.com/divoslabs/acorta/internal/modules/shorten"
	"github.com/divoslabs/acorta/internal/modules/stats"
	"github.com/divoslabs/acorta/internal/pkg/platform"
	"github.com/divoslabs/acorta/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	mappings *shorten.Service
	visits   *stats.Service
	logger   *zap.Logger
}

func NewHandler(mappings *shorten.Service, visits *stats.Service, logger *zap.Logger) *Handler {
	return &Handler{mappings: mappings, visits: visits, logger: logger.Named("Redirect")}
}

// RegisterAliasRoutes mounts the catch-all alias redirect at the root.
func (h *Handler) RegisterAliasRoutes(r gin.IRoutes) {
	r.GET("/:short", h.redirect)
}

// GET /{alias}
//
// Every lookup is logged with its classified platform, misses included, so
// the visit log doubles as a probe trail for unknown aliases.
func (h *Handler) redirect(c *gin.Context) {
	short := c.Param("short")

	m, err := h.mappings.GetByAlias(short)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	visitor := platform.Classify(c.Request.Header)
	if err := h.visits.Record(short, visitor, time.Now()); err != nil {
		h.logger.Error("failed to record visit", zap.String("short", short), zap.Error(err))
	}

	if m == nil {
		middleware.CountRedirect(false)
		response.NotFound(c)
		return
	}

	middleware.CountRedirect(true)
	target := strings.NewReplacer("\n", "", "\r", "").Replace(m.Long)
	c.Redirect(http.StatusFound, target)
}
