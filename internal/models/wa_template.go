package models

// WaTemplateModel holds the currently configured WhatsApp broadcast text.
// At most one row exists; every write replaces the previous one.
type WaTemplateModel struct {
	ID      uint   `json:"-"       gorm:"primaryKey;autoIncrement"`
	Message string `json:"message" gorm:"type:text;not null"`
}

func (WaTemplateModel) TableName() string { return "wamessage" }
