package models

import "time"

// VisitModel is one redirect lookup. Rows are appended whether or not the
// alias resolved, so Short may reference an alias that never existed or has
// since been deleted. Rows are never updated; only the retention purge
// deletes them.
type VisitModel struct {
	Base
	Timestamp time.Time `json:"timestamp" gorm:"index;index:idx_short_ts,priority:2"`
	Platform  string    `json:"platform"  gorm:"size:16;not null"`
	Short     string    `json:"short"     gorm:"index:idx_short_ts,priority:1;size:16;not null"`
}

func (VisitModel) TableName() string { return "logs" }
