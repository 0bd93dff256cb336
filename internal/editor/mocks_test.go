package editor

import (
	"portfolio-go-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSectionRepository implements repository.SectionRepository for the
// session unit tests.
type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) GetBySectionID(sectionID string) (*entity.Section, error) {
	args := m.Called(sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Section), args.Error(1)
}

func (m *MockSectionRepository) UpdateContent(sectionID string, content []byte) error {
	args := m.Called(sectionID, content)
	return args.Error(0)
}

func (m *MockSectionRepository) Insert(section *entity.Section) error {
	args := m.Called(section)
	return args.Error(0)
}
