package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"portfolio-go-server/domain/entity"
	domainErrors "portfolio-go-server/domain/errors"
	"portfolio-go-server/internal/schema"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func newRenderer(repo *MockSectionRepository) *RendererUseCase {
	return NewRendererUseCase(repo, schema.NewRegistry())
}

func TestRenderSection_UnknownSection(t *testing.T) {
	repo := new(MockSectionRepository)
	renderer := newRenderer(repo)

	got, err := renderer.RenderSection("bogus")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainErrors.ErrUnknownSection)
	repo.AssertNotCalled(t, "GetBySectionID")
}

func TestRenderSection_StoreFailureServesFallbacks(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(nil, errors.New("connection refused"))
	renderer := newRenderer(repo)

	got, err := renderer.RenderSection("hero")

	assert.NoError(t, err)
	assert.Equal(t, "Hello, I'm", got["title"])
	assert.Equal(t, "Haseeb", got["subtitle"])
	assert.Equal(t, "Full Stack Developer", got["description"])
	assert.Equal(t, map[string]any{"text": "View My Work", "url": "#projects"}, got["primaryCTA"])
}

func TestRenderSection_MissingRecordServesFallbacks(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "contact").Return(nil, nil)
	renderer := newRenderer(repo)

	got, err := renderer.RenderSection("contact")

	assert.NoError(t, err)
	assert.Equal(t, "Get In Touch", got["title"])
	assert.Equal(t, "contact@example.com", got["email"])
	assert.Equal(t, "+1 (234) 567-890", got["phone"])
}

func TestRenderSection_MalformedContentServesFallbacks(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte("{not json")),
	}, nil)
	renderer := newRenderer(repo)

	got, err := renderer.RenderSection("hero")

	assert.NoError(t, err)
	assert.Equal(t, "Hello, I'm", got["title"])
}

func TestRenderSection_StoredContentWins(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte(`{"title":"Hey,","subtitle":""}`)),
	}, nil)
	renderer := newRenderer(repo)

	got, err := renderer.RenderSection("hero")

	assert.NoError(t, err)
	assert.Equal(t, "Hey,", got["title"])
	// empty string still falls back
	assert.Equal(t, "Haseeb", got["subtitle"])
}

func TestResolvedContent(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "skills").Return(nil, nil)
	renderer := newRenderer(repo)

	raw, err := renderer.ResolvedContent("skills")

	assert.NoError(t, err)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "My Skills", got["title"])
	assert.Equal(t, []any{}, got["skills"])
}
