package usecase

import (
	"log"
	"sync"

	domainErrors "portfolio-go-server/domain/errors"
	domainRepo "portfolio-go-server/domain/repository"
	"portfolio-go-server/internal/editor"
	"portfolio-go-server/internal/schema"

	"github.com/google/uuid"
)

// Publisher receives freshly saved, resolved section content. The live
// preview hub implements it; tests swap in a recorder.
type Publisher interface {
	Publish(sectionID string, content []byte)
}

// EditorUseCase owns the open editor sessions, keyed by an opaque session
// id. Each session belongs to exactly one admin editor view; there is no
// cross-session sharing.
type EditorUseCase struct {
	repo     domainRepo.SectionRepository
	registry *schema.Registry
	renderer *RendererUseCase
	hub      Publisher
	ids      *editor.IDGenerator

	mu       sync.RWMutex
	sessions map[string]*editor.Session
}

func NewEditorUseCase(repo domainRepo.SectionRepository, registry *schema.Registry, renderer *RendererUseCase, hub Publisher) *EditorUseCase {
	return &EditorUseCase{
		repo:     repo,
		registry: registry,
		renderer: renderer,
		hub:      hub,
		ids:      editor.NewIDGenerator(),
		sessions: make(map[string]*editor.Session),
	}
}

// OpenSession creates a session for a section and performs its one load.
// A load failure still returns the session: the view renders the default
// draft alongside the load error, exactly like the admin page does.
func (uc *EditorUseCase) OpenSession(sectionID string) (string, editor.State, error) {
	session, err := editor.NewSession(sectionID, uc.registry, uc.repo, uc.ids)
	if err != nil {
		return "", editor.State{}, err
	}

	if err := session.Load(); err != nil {
		log.Printf("[Editor] load %s failed: %v", sectionID, err)
	}

	id := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[id] = session
	uc.mu.Unlock()

	return id, session.Snapshot(), nil
}

// Session returns a snapshot of an open session.
func (uc *EditorUseCase) Session(sessionID string) (editor.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return editor.State{}, err
	}
	return session.Snapshot(), nil
}

// SetField mutates one draft field.
func (uc *EditorUseCase) SetField(sessionID, path string, value any) (editor.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return editor.State{}, err
	}
	if err := session.SetField(path, value); err != nil {
		return editor.State{}, err
	}
	return session.Snapshot(), nil
}

// AddListItem appends a default item to a list field.
func (uc *EditorUseCase) AddListItem(sessionID, path string) (editor.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return editor.State{}, err
	}
	if err := session.AddListItem(path); err != nil {
		return editor.State{}, err
	}
	return session.Snapshot(), nil
}

// RemoveListItem removes a list item by position.
func (uc *EditorUseCase) RemoveListItem(sessionID, path string, index int) (editor.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return editor.State{}, err
	}
	if err := session.RemoveListItem(path, index); err != nil {
		return editor.State{}, err
	}
	return session.Snapshot(), nil
}

// ApplyPatch applies a batched RFC 6902 patch to the draft.
func (uc *EditorUseCase) ApplyPatch(sessionID string, patch []byte) (editor.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return editor.State{}, err
	}
	if err := session.ApplyPatch(patch); err != nil {
		return editor.State{}, err
	}
	return session.Snapshot(), nil
}

// Save persists the draft and, on success, pushes the resolved content to
// the section's preview viewers. The save error, if any, is already folded
// into the session state; the returned snapshot carries it.
func (uc *EditorUseCase) Save(sessionID string) (editor.State, error) {
	session, err := uc.get(sessionID)
	if err != nil {
		return editor.State{}, err
	}

	if err := session.Save(); err != nil {
		if err == domainErrors.ErrSaveInFlight || err == domainErrors.ErrSessionClosed {
			return editor.State{}, err
		}
		// store rejection: state carries SaveFailed + message
		return session.Snapshot(), nil
	}

	if uc.hub != nil {
		if content, rerr := uc.renderer.ResolvedContent(session.SectionID()); rerr == nil {
			uc.hub.Publish(session.SectionID(), content)
		}
	}

	return session.Snapshot(), nil
}

// CloseSession tears a session down. In-flight operations that finish
// afterwards discard their results.
func (uc *EditorUseCase) CloseSession(sessionID string) error {
	uc.mu.Lock()
	session, ok := uc.sessions[sessionID]
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()

	if !ok {
		return domainErrors.ErrSessionNotFound
	}
	session.Close()
	return nil
}

func (uc *EditorUseCase) get(sessionID string) (*editor.Session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, domainErrors.ErrSessionNotFound
	}
	return session, nil
}
