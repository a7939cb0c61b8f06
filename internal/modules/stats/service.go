package stats

import (
	"time"

	"github.com/divoslabs/acorta/internal/models"
	"gorm.io/gorm"
)

// Service owns the visit log: append on redirect, aggregate for the stats
// page, purge for retention.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Record appends one visit row. It is called for every redirect lookup,
// whether or not the alias resolved, so the log also captures misses.
func (s *Service) Record(short, platform string, ts time.Time) error {
	return s.db.Create(&models.VisitModel{
		Timestamp: ts,
		Platform:  platform,
		Short:     short,
	}).Error
}

// Aggregate groups visits for short by platform, optionally restricted to
// timestamps on/after since, and returns per-platform counts plus the total.
func (s *Service) Aggregate(short string, since *time.Time) (map[string]int64, int64, error) {
	type row struct {
		Platform string
		Count    int64
	}

	tx := s.db.Model(&models.VisitModel{}).Where("short = ?", short)
	if since != nil {
		tx = tx.Where("timestamp >= ?", *since)
	}

	var rows []row
	if err := tx.Select("platform, COUNT(*) as count").Group("platform").Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	counts := make(map[string]int64, len(rows))
	var total int64
	for _, r := range rows {
		counts[r.Platform] = r.Count
		total += r.Count
	}
	return counts, total, nil
}

// Purge deletes all visit rows with a timestamp strictly before cutoff and
// reports how many were removed.
func (s *Service) Purge(cutoff time.Time) (int64, error) {
	result := s.db.Where("timestamp < ?", cutoff).Delete(&models.VisitModel{})
	return result.RowsAffected, result.Error
}
