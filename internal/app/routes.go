package app

import (
	"context"
	"fmt"

	"github.com/divoslabs/acorta/internal/modules/redirect"
	"github.com/divoslabs/acorta/internal/modules/shorten"
	"github.com/divoslabs/acorta/internal/modules/stats"
	"github.com/divoslabs/acorta/internal/modules/wame"
	"github.com/divoslabs/acorta/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	mappingSvc := shorten.NewService(a.db, a.cfg)
	visitSvc := stats.NewService(a.db)
	waSvc := wame.NewService(a.db, mappingSvc)

	mappingH := shorten.NewHandler(mappingSvc, a.cfg)
	statsH := stats.NewHandler(visitSvc, mappingSvc, a.cfg)
	waH := wame.NewHandler(waSvc, a.cfg)
	redirectH := redirect.NewHandler(mappingSvc, visitSvc, a.logger)

	// Admin surface, namespaced under the configured prefix.
	admin := r.Group("/" + a.cfg.AdminPrefix)
	mappingH.RegisterAdminRoutes(admin)
	waH.RegisterAdminRoutes(admin)
	statsH.RegisterAdminRoutes(admin)
	admin.GET("/jobs", func(c *gin.Context) {
		response.OK(c, a.sched.List())
	})
	admin.POST("/jobs/:name/run", func(c *gin.Context) {
		name := c.Param("name")
		// The job outlives the request, so it must not run on the request ctx.
		if err := a.sched.Run(context.Background(), name); err != nil {
			response.NotFound(c)
			return
		}
		response.Text(c, fmt.Sprintf("job %s triggered", name))
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Root-level alias routes. The literal /{alias}/... routes must register
	// before gin resolves the bare /:short wildcard, all with the same param
	// name so they share a radix subtree.
	mappingH.RegisterAliasRoutes(r)
	statsH.RegisterAliasRoutes(r)
	redirectH.RegisterAliasRoutes(r)
}
