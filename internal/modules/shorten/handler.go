package shorten

import (
	"errors"
	"net/http"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/pkg/pagination"
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

// RegisterAdminRoutes mounts the creation/export/listing endpoints under the
// admin prefix group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/shorten", h.showForm)
	rg.POST("/shorten", h.create)
	rg.GET("/export", h.exportCSV)
	rg.GET("/mappings", h.list)
}

// RegisterAliasRoutes mounts the per-alias edit/delete endpoints at the root.
func (h *Handler) RegisterAliasRoutes(r gin.IRoutes) {
	r.GET("/:short/edit", h.showEdit)
	r.POST("/:short/edit", h.edit)
	r.GET("/:short/delete", h.showDelete)
	r.POST("/:short/delete", h.delete)
}

// GET /{admin}/shorten
func (h *Handler) showForm(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// POST /{admin}/shorten — form or JSON body
func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, existed, err := h.svc.Create(CreateInput{
		Long:  req.LongURL,
		Short: req.ShortURL,
		Nmbr:  req.Nmbr,
		Descr: req.Description,
	})
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	shortURL := response.PublicRoot(c, h.cfg.BaseURL) + "/" + m.Short
	if c.ContentType() == "application/json" {
		response.OK(c, gin.H{
			"short":           m.Short,
			"short_url":       shortURL,
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

// GET /{admin}/export
func (h *Handler) exportCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="mappings.csv"`)
	if err := h.svc.ExportCSV(c.Writer); err != nil {
		response.InternalError(c, err)
	}
}

// GET /{admin}/mappings — admin JSON listing
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	out := make([]mappingResponse, len(items))
	for i := range items {
		out[i] = toResponse(&items[i])
	}
	response.Paged(c, out, pag)
}

// GET /{alias}/edit
func (h *Handler) showEdit(c *gin.Context) {
	m, err := h.svc.GetByAlias(c.Param("short"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Short": m.Short,
		"Long":  m.Long,
		"Descr": m.Descr,
	})
}

// POST /{alias}/edit
func (h *Handler) edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	short := c.Param("short")
	_, err := h.svc.Update(short, req.LongURL, req.Description)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/"+short+"/stats")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c)
	case errors.Is(err, ErrMissingURL), errors.Is(err, ErrURLTooLong):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

// GET /{alias}/delete
func (h *Handler) showDelete(c *gin.Context) {
	m, err := h.svc.GetByAlias(c.Param("short"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, "delete.html", gin.H{
		"Short": m.Short,
		"Long":  m.Long,
	})
}

// POST /{alias}/delete
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Param("short"))
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/"+h.cfg.AdminPrefix+"/shorten")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c)
	default:
		response.InternalError(c, err)
	}
}

func (h *Handler) writeCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingURL),
		errors.Is(err, ErrURLTooLong),
		errors.Is(err, ErrBadAlias),
		errors.Is(err, ErrConflict):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
