package repository

import (
	"errors"

	"portfolio-go-server/domain/entity"
	domainErrors "portfolio-go-server/domain/errors"
	domainRepo "portfolio-go-server/domain/repository"

	"gorm.io/gorm"
)

// sectionRepository implements SectionRepository on GORM.
type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) domainRepo.SectionRepository {
	return &sectionRepository{db: db}
}

// GetBySectionID looks a section up by its business id.
func (r *sectionRepository) GetBySectionID(sectionID string) (*entity.Section, error) {
	var section entity.Section
	err := r.db.Where("section_id = ?", sectionID).First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // absent, not an error at this layer
	}
	return &section, err
}

// UpdateContent overwrites only the content column.
// A full-row Save would clobber created_at, so the update stays targeted.
func (r *sectionRepository) UpdateContent(sectionID string, content []byte) error {
	result := r.db.Model(&entity.Section{}).
		Where("section_id = ?", sectionID).
		Update("content", string(content))

	if result.Error != nil {
		return result.Error
	}

	// RowsAffected == 0 means the row never existed; surface that instead
	// of silently succeeding.
	if result.RowsAffected == 0 {
		return domainErrors.ErrSectionNotFound
	}

	return nil
}

// Insert creates a new section row (seo lazy-create and seeding only).
func (r *sectionRepository) Insert(section *entity.Section) error {
	return r.db.Create(section).Error
}
