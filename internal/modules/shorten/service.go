package shorten

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/divoslabs/acorta/internal/config"
	"github.com/divoslabs/acorta/internal/models"
	"github.com/divoslabs/acorta/internal/pkg/alias"
	"github.com/divoslabs/acorta/internal/pkg/pagination"
	"github.com/divoslabs/acorta/internal/pkg/response"
	"gorm.io/gorm"
)

// Service implements the mapping store on top of GORM.
type Service struct {
	db  *gorm.DB
	cfg *config.AppConfig
}

func NewService(db *gorm.DB, cfg *config.AppConfig) *Service {
	return &Service{db: db, cfg: cfg}
}

// Create shortens a long URL. The second return value reports whether an
// existing mapping was reused (idempotent re-shortening by tag or by URL).
//
// The alias check-then-insert below is not atomic; the unique index on the
// short column is the backstop. A race surfaces as gorm.ErrDuplicatedKey and
// is returned as ErrConflict rather than retried.
func (s *Service) Create(in CreateInput) (*models.MappingModel, bool, error) {
	long := strings.TrimSpace(in.Long)
	if long == "" {
		return nil, false, ErrMissingURL
	}
	if len(long) > s.cfg.MaxURLLength {
		return nil, false, ErrURLTooLong
	}

	nmbr := strings.TrimSpace(in.Nmbr)
	if nmbr != "" {
		existing, err := s.firstWhere("nmbr = ?", nmbr)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	existing, err := s.firstWhere("long = ?", long)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	short := strings.TrimSpace(in.Short)
	if short != "" && !alias.Valid(short) {
		return nil, false, ErrBadAlias
	}
	if short == "" {
		if short, err = alias.Generate(s.cfg.AliasLength); err != nil {
			return nil, false, err
		}
	}
	for {
		taken, err := s.aliasTaken(short)
		if err != nil {
			return nil, false, err
		}
		if !taken {
			break
		}
		if short, err = alias.Generate(s.cfg.AliasLength); err != nil {
			return nil, false, err
		}
	}

	descr := strings.TrimSpace(in.Descr)
	if nmbr == "" || descr == "" {
		inferredNmbr, inferredDescr := Describe(long)
		if nmbr == "" {
			nmbr = inferredNmbr
		}
		if descr == "" {
			descr = inferredDescr
		}
	}

	row := models.MappingModel{Long: long, Short: short, Descr: descr}
	if nmbr != "" {
		row.Nmbr = &nmbr
	}
	if err := s.db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, ErrConflict
		}
		return nil, false, err
	}
	return &row, false, nil
}

// GetByAlias returns the mapping for short, or nil when none exists.
func (s *Service) GetByAlias(short string) (*models.MappingModel, error) {
	return s.firstWhere("short = ?", short)
}

// Update changes the long URL and description of an existing mapping. The
// alias and tag are immutable after creation.
func (s *Service) Update(short, long, descr string) (*models.MappingModel, error) {
	long = strings.TrimSpace(long)
	if long == "" {
		return nil, ErrMissingURL
	}
	if len(long) > s.cfg.MaxURLLength {
		return nil, ErrURLTooLong
	}

	m, err := s.GetByAlias(short)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}

	updates := map[string]interface{}{
		"long":  long,
		"descr": strings.TrimSpace(descr),
	}
	if err := s.db.Model(m).Updates(updates).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the mapping for short.
func (s *Service) Delete(short string) error {
	result := s.db.Where("short = ?", short).Delete(&models.MappingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns mappings in insertion order, paginated, for the admin API.
func (s *Service) List(q pagination.Query) ([]models.MappingModel, response.Pagination, error) {
	tx := s.db.Model(&models.MappingModel{}).Order("created_at ASC")
	var items []models.MappingModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// ExportCSV streams all mappings as long,short,nmbr,description rows in
// insertion order.
func (s *Service) ExportCSV(w io.Writer) error {
	var rows []models.MappingModel
	if err := s.db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"long", "short", "nmbr", "description"}); err != nil {
		return err
	}
	for _, m := range rows {
		if err := cw.Write([]string{m.Long, m.Short, m.NmbrValue(), m.Descr}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *Service) firstWhere(query string, args ...interface{}) (*models.MappingModel, error) {
	var m models.MappingModel
	if err := s.db.Where(query, args...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) aliasTaken(short string) (bool, error) {
	m, err := s.GetByAlias(short)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

func toResponse(m *models.MappingModel) mappingResponse {
	return mappingResponse{
		Long:    m.Long,
		Short:   m.Short,
		Nmbr:    m.NmbrValue(),
		Descr:   m.Descr,
		Created: m.CreatedAt.Format(time.RFC3339),
	}
}
