package wame

import (
	"strings"

	"github.com/divoslabs/acorta/internal/models"
	"github.com/divoslabs/acorta/internal/modules/shorten"
	"gorm.io/gorm"
)

const minPhoneDigits = 10

// Service builds shortened wa.me click-to-chat links. Message templates are
// a single-row store: each explicit message replaces the previous one, and
// requests without a message fall back to whatever was stored last.
type Service struct {
	db       *gorm.DB
	mappings *shorten.Service
}

func NewService(db *gorm.DB, mappings *shorten.Service) *Service {
	return &Service{db: db, mappings: mappings}
}

// Template returns the stored fallback message, empty when none was saved.
func (s *Service) Template() (string, error) {
	var row models.WaTemplateModel
	err := s.db.First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return row.Message, nil
}

// SetTemplate replaces the stored fallback message with msg.
func (s *Service) SetTemplate(msg string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WaTemplateModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.WaTemplateModel{Message: msg}).Error
	})
}

// CreateLink builds the wa.me URL for phone with a prefilled text and runs it
// through the shortener. The digits of phone become the mapping tag, so
// shortening the same phone twice returns the same alias. The second return
// value reports whether an existing mapping was reused.
func (s *Service) CreateLink(phone, text, name string) (*models.MappingModel, bool, error) {
	digits := digitsOf(phone)
	if len(digits) < minPhoneDigits {
		return nil, false, ErrBadPhone
	}

	text = strings.TrimSpace(text)
	if text == "" {
		stored, err := s.Template()
		if err != nil {
			return nil, false, err
		}
		text = stored
	} else if err := s.SetTemplate(text); err != nil {
		return nil, false, err
	}

	long := "https://wa.me/" + digits
	if text != "" {
		encoded := strings.ReplaceAll(text, " ", "%20")
		long += "?text=" + encoded
		if name = strings.TrimSpace(name); name != "" {
			long += "," + strings.ReplaceAll(name, " ", "%20")
		}
	}

	return s.mappings.Create(shorten.CreateInput{Long: long, Nmbr: digits})
}

func digitsOf(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
