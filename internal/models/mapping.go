package models

// MappingModel stores a long-URL → short-alias association.
// Short and Nmbr are immutable after creation; edits touch Long and Descr only.
type MappingModel struct {
	Base
	Long  string  `json:"long"  gorm:"type:text;not null"`
	Short string  `json:"short" gorm:"uniqueIndex;size:16;not null"`
	Nmbr  *string `json:"nmbr"  gorm:"uniqueIndex;size:32"` // optional phone tag, unique when present
	Descr string  `json:"descr"`
}

func (MappingModel) TableName() string { return "mappings" }

// NmbrValue returns the tag or "" when unset.
func (m *MappingModel) NmbrValue() string {
	if m.Nmbr == nil {
		return ""
	}
	return *m.Nmbr
}
