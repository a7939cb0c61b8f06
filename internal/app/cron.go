package app

import (
	"context"
	"fmt"
	"time"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/modules/stats"
	pkgcron "github.com/divoslabs/acorta/internal/pkg/cron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, cfg *config.AppConfig, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")
	visitSvc := stats.NewService(db)

	sched.Register(pkgcron.Job{
		Name:        "cleanup_visit_logs",
		Description: fmt.Sprintf("purge visit logs older than %d months", cfg.RetentionMonths),
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, -cfg.RetentionMonths, 0)
			deleted, err := visitSvc.Purge(cutoff)
			if err != nil {
				cronLogger.Warn("visit log purge failed", zap.Error(err))
				return err
			}
			cronLogger.Info("visit log purge done", zap.Int64("deleted", deleted))
			return nil
		},
	})
}
