package repository

import "portfolio-go-server/domain/entity"

// SectionRepository is the keyed record store backing all section content.
type SectionRepository interface {
	// GetBySectionID fetches a section by its business id.
	// Returns (nil, nil) when the record does not exist; callers decide
	// whether absence is an error.
	GetBySectionID(sectionID string) (*entity.Section, error)

	// UpdateContent overwrites the content blob of an existing section.
	// Returns ErrSectionNotFound when no row matched.
	UpdateContent(sectionID string, content []byte) error

	// Insert creates a new section record. Used by the seo lazy-create
	// path and the seeder; every other section assumes the row pre-exists.
	Insert(section *entity.Section) error
}
