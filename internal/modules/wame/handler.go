package wame

import (
	"errors"
	"net/http"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/modules/shorten"
	"github.com/divoslabs/acorta/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
	cfg *config.AppConfig
}

func NewHandler(svc *Service, cfg *config.AppConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// RegisterAdminRoutes mounts the click-to-chat generator under the admin
// prefix group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/wame", h.showForm)
	rg.POST("/wame", h.create)
}

// GET /{admin}/wame
func (h *Handler) showForm(c *gin.Context) {
	tpl, err := h.svc.Template()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	c.HTML(http.StatusOK, "wame.html", gin.H{"Template": tpl})
}

// POST /{admin}/wame — form or JSON body
func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, existed, err := h.svc.CreateLink(req.Phone, req.Text, req.Name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	shortURL := response.PublicRoot(c, h.cfg.BaseURL) + "/" + m.Short
	if c.ContentType() == "application/json" {
		response.OK(c, gin.H{
			"short":           m.Short,
			"short_url":       shortURL,
			"long":            m.Long,
			"already_existed": existed,
		})
		return
	}
	c.HTML(http.StatusOK, "success.html", gin.H{
		"ShortURL":       shortURL,
		"Long":           m.Long,
		"Descr":          m.Descr,
		"AlreadyExisted": existed,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBadPhone),
		errors.Is(err, shorten.ErrURLTooLong),
		errors.Is(err, shorten.ErrConflict):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
