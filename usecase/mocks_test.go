package usecase

import (
	"sync"

	"portfolio-go-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSectionRepository implements repository.SectionRepository for the
// usecase unit tests.
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

// recordingPublisher captures everything pushed to the preview hub.
type recordingPublisher struct {
	mu       sync.Mutex
	sections []string
	contents [][]byte
}

func (p *recordingPublisher) Publish(sectionID string, content []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sections = append(p.sections, sectionID)
	p.contents = append(p.contents, content)
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.sections...)
}
