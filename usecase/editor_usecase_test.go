package usecase

import (
	"errors"
	"testing"

	"portfolio-go-server/domain/entity"
	domainErrors "portfolio-go-server/domain/errors"
	"portfolio-go-server/internal/editor"
	"portfolio-go-server/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func newEditorUseCase(repo *MockSectionRepository, pub Publisher) *EditorUseCase {
	registry := schema.NewRegistry()
	renderer := NewRendererUseCase(repo, registry)
	return NewEditorUseCase(repo, registry, renderer, pub)
}

func TestOpenSession_UnknownSection(t *testing.T) {
	repo := new(MockSectionRepository)
	uc := newEditorUseCase(repo, nil)

	id, _, err := uc.OpenSession("bogus")

	assert.Empty(t, id)
	assert.ErrorIs(t, err, domainErrors.ErrUnknownSection)
}

func TestOpenSession_LoadsRecord(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte(`{"title":"Custom title"}`)),
	}, nil)
	uc := newEditorUseCase(repo, nil)

	id, state, err := uc.OpenSession("hero")

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, editor.LoadReady, state.LoadPhase)
	assert.Equal(t, editor.SaveIdle, state.SavePhase)
	assert.Equal(t, "Custom title", state.Draft["title"])

	// the session stays addressable by its id
	again, err := uc.Session(id)
	assert.NoError(t, err)
	assert.Equal(t, state.Draft, again.Draft)
}

func TestOpenSession_LoadFailureStillReturnsSession(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(nil, errors.New("connection refused"))
	uc := newEditorUseCase(repo, nil)

	id, state, err := uc.OpenSession("hero")

	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, editor.LoadFailed, state.LoadPhase)
	assert.Equal(t, "connection refused", state.ErrorMessage)
	// the default draft is still editable
	assert.Equal(t, "", state.Draft["title"])
}

func TestSession_NotFound(t *testing.T) {
	repo := new(MockSectionRepository)
	uc := newEditorUseCase(repo, nil)

	_, err := uc.Session("nope")

	assert.ErrorIs(t, err, domainErrors.ErrSessionNotFound)
}

func TestEditOperations(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "skills").Return(&entity.Section{
		SectionID: "skills",
		Content:   datatypes.JSON([]byte(`{}`)),
	}, nil)
	uc := newEditorUseCase(repo, nil)

	id, _, err := uc.OpenSession("skills")
	assert.NoError(t, err)

	state, err := uc.SetField(id, "title", "What I Do")
	assert.NoError(t, err)
	assert.Equal(t, "What I Do", state.Draft["title"])

	state, err = uc.AddListItem(id, "skills")
	assert.NoError(t, err)
	assert.Len(t, state.Draft["skills"], 1)

	state, err = uc.SetField(id, "skills.0.name", "Go")
	assert.NoError(t, err)
	item := state.Draft["skills"].([]any)[0].(map[string]any)
	assert.Equal(t, "Go", item["name"])

	state, err = uc.RemoveListItem(id, "skills", 0)
	assert.NoError(t, err)
	assert.Empty(t, state.Draft["skills"])
}

func TestApplyPatch(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte(`{}`)),
	}, nil)
	uc := newEditorUseCase(repo, nil)

	id, _, err := uc.OpenSession("hero")
	assert.NoError(t, err)

	patch := []byte(`[
		{"op":"replace","path":"/title","value":"Hi,"},
		{"op":"replace","path":"/subtitle","value":"Sam"}
	]`)

	state, err := uc.ApplyPatch(id, patch)

	assert.NoError(t, err)
	assert.Equal(t, "Hi,", state.Draft["title"])
	assert.Equal(t, "Sam", state.Draft["subtitle"])
}

func TestSave_PublishesResolvedContent(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte(`{"title":"Live title"}`)),
	}, nil)
	repo.On("UpdateContent", "hero", mock.Anything).Return(nil)
	pub := new(recordingPublisher)
	uc := newEditorUseCase(repo, pub)

	id, _, err := uc.OpenSession("hero")
	assert.NoError(t, err)

	state, err := uc.Save(id)

	assert.NoError(t, err)
	assert.Equal(t, editor.SaveSaved, state.SavePhase)
	assert.Equal(t, []string{"hero"}, pub.published())
	repo.AssertCalled(t, "UpdateContent", "hero", mock.Anything)
}

func TestSave_StoreRejection(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte(`{}`)),
	}, nil)
	repo.On("UpdateContent", "hero", mock.Anything).Return(errors.New("disk full"))
	pub := new(recordingPublisher)
	uc := newEditorUseCase(repo, pub)

	id, _, err := uc.OpenSession("hero")
	assert.NoError(t, err)

	state, err := uc.Save(id)

	// the rejection is state, not a transport error
	assert.NoError(t, err)
	assert.Equal(t, editor.SaveFailed, state.SavePhase)
	assert.Equal(t, "disk full", state.ErrorMessage)
	assert.Empty(t, pub.published())
}

func TestSave_SessionNotFound(t *testing.T) {
	repo := new(MockSectionRepository)
	uc := newEditorUseCase(repo, nil)

	_, err := uc.Save("nope")

	assert.ErrorIs(t, err, domainErrors.ErrSessionNotFound)
}

func TestCloseSession(t *testing.T) {
	repo := new(MockSectionRepository)
	repo.On("GetBySectionID", "hero").Return(&entity.Section{
		SectionID: "hero",
		Content:   datatypes.JSON([]byte(`{}`)),
	}, nil)
	uc := newEditorUseCase(repo, nil)

	id, _, err := uc.OpenSession("hero")
	assert.NoError(t, err)

	assert.NoError(t, uc.CloseSession(id))
	assert.ErrorIs(t, uc.CloseSession(id), domainErrors.ErrSessionNotFound)
	_, err = uc.Session(id)
	assert.ErrorIs(t, err, domainErrors.ErrSessionNotFound)
}
