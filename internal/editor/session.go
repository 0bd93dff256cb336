// Package editor implements the section editor engine: one Session per open
// admin editor, owning a draft copy of the section content and a small
// load/save state machine. Persistence is always an explicit Save; nothing
// writes back automatically.
package editor

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"portfolio-go-server/domain/entity"
	domainErrors "portfolio-go-server/domain/errors"
	domainRepo "portfolio-go-server/domain/repository"
	"portfolio-go-server/internal/schema"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"gorm.io/datatypes"
)

type LoadPhase string

const (
	LoadLoading LoadPhase = "loading"
	LoadReady   LoadPhase = "ready"
	LoadFailed  LoadPhase = "load-failed"
)

type SavePhase string

const (
	SaveIdle   SavePhase = "idle"
	SaveSaving SavePhase = "saving"
	SaveSaved  SavePhase = "saved"
	SaveFailed SavePhase = "save-failed"
)

// Session is one editing session. It exclusively owns its state; the store
// owns the authoritative record.
type Session struct {
	sectionID string
	schema    *schema.Schema
	store     domainRepo.SectionRepository
	ids       *IDGenerator

	mu           sync.Mutex
	draft        []byte // JSON bytes, replaced wholesale on every mutation
	loadPhase    LoadPhase
	savePhase    SavePhase
	errorMessage string
	loaded       bool
	closed       bool
}

// State is a point-in-time snapshot of a session.
type State struct {
	SectionID    string         `json:"sectionId"`
	LoadPhase    LoadPhase      `json:"loadPhase"`
	SavePhase    SavePhase      `json:"savePhase"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	Draft        map[string]any `json:"draft"`
}

// NewSession creates a session for a section. Unknown section ids are a
// configuration error: no form is ever rendered for them.
func NewSession(sectionID string, reg *schema.Registry, store domainRepo.SectionRepository, ids *IDGenerator) (*Session, error) {
	sch, err := reg.SchemaFor(sectionID)
	if err != nil {
		return nil, err
	}

	// Seed the draft with the schema default so a failed load still leaves
	// every field present for bound inputs.
	seed, err := json.Marshal(sch.Default())
	if err != nil {
		return nil, err
	}

	return &Session{
		sectionID: sectionID,
		schema:    sch,
		store:     store,
		ids:       ids,
		draft:     seed,
		loadPhase: LoadLoading,
		savePhase: SaveIdle,
	}, nil
}

// Load fetches the current record and seeds the draft from it, filling
// absent fields with schema defaults. Exactly one load happens per session;
// later calls are no-ops. A store error leaves the default draft in place
// and marks the session LoadFailed; it never tears the session down.
func (s *Session) Load() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domainErrors.ErrSessionClosed
	}
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.loaded = true
	s.mu.Unlock()

	section, err := s.store.GetBySectionID(s.sectionID)
	if err == nil && section == nil {
		if s.schema.LazyCreate {
			// First load of a lazy section creates the default record
			// (the seo path in the original admin).
			section = &entity.Section{
				SectionID: s.sectionID,
				Content:   datatypes.JSON(mustMarshal(s.schema.Default())),
			}
			err = s.store.Insert(section)
		} else {
			err = domainErrors.ErrSectionNotFound
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// The view went away mid-fetch; drop the result.
		return domainErrors.ErrSessionClosed
	}

	if err != nil {
		s.loadPhase = LoadFailed
		s.errorMessage = err.Error()
		return err
	}

	var content map[string]any
	if len(section.Content) > 0 {
		if uerr := json.Unmarshal(section.Content, &content); uerr != nil {
			s.loadPhase = LoadFailed
			s.errorMessage = uerr.Error()
			return uerr
		}
	}

	s.draft = mustMarshal(s.schema.Normalize(content))
	s.loadPhase = LoadReady
	s.errorMessage = ""
	return nil
}

// SetField replaces the draft value at a dot/array path. The previous draft
// bytes are never mutated in place, so earlier snapshots stay valid. A
// mutation after a terminal save result returns the save phase to idle.
func (s *Session) SetField(path string, value any) error {
	return s.mutate(op{Op: "replace", Path: jsonPointer(path), Value: value})
}

// AddListItem appends a schema-default item to the list at path, assigning
// a fresh id when the item shape requires one. Order is preserved; there is
// no reorder operation.
func (s *Session) AddListItem(path string) error {
	field, ok := s.schema.FieldAt(path)
	if !ok || field.Kind != schema.KindList {
		return domainErrors.ErrNotAList
	}

	var item any
	if field.Item != nil && field.Item.Kind == schema.KindObject {
		obj := field.ItemDefault()
		if field.Item.GeneratedID {
			obj["id"] = s.ids.Next()
		}
		item = obj
	} else {
		item = ""
	}

	return s.mutate(op{Op: "add", Path: jsonPointer(path) + "/-", Value: item})
}

// RemoveListItem removes the item at a positional index, keeping the
// relative order of the remaining items.
func (s *Session) RemoveListItem(path string, index int) error {
	ptr := jsonPointer(path) + "/" + strconv.Itoa(index)
	return s.mutate(op{Op: "remove", Path: ptr})
}

// ApplyPatch applies a caller-supplied RFC 6902 patch to the draft, for
// clients that batch several edits into one request.
func (s *Session) ApplyPatch(patchBytes []byte) error {
	patch, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domainErrors.ErrSessionClosed
	}

	next, err := patch.Apply(s.draft)
	if err != nil {
		return err
	}
	s.draft = next
	s.touchLocked()
	return nil
}

// Save persists the full current draft. It never retries, never rolls the
// draft back, and rejects overlapping calls instead of queueing them.
func (s *Session) Save() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domainErrors.ErrSessionClosed
	}
	if s.savePhase == SaveSaving {
		s.mu.Unlock()
		return domainErrors.ErrSaveInFlight
	}
	s.savePhase = SaveSaving
	s.errorMessage = ""
	draft := s.draft
	s.mu.Unlock()

	err := s.store.UpdateContent(s.sectionID, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Completion after close: the result is discarded.
		return domainErrors.ErrSessionClosed
	}

	if err != nil {
		s.savePhase = SaveFailed
		s.errorMessage = err.Error() // echoed verbatim to the admin
		return err
	}

	s.savePhase = SaveSaved
	return nil
}

// Close marks the session dead. In-flight loads and saves that resolve
// afterwards discard their results instead of mutating a torn-down session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// SectionID returns the section this session edits.
func (s *Session) SectionID() string {
	return s.sectionID
}

// Snapshot returns the current state with a decoded copy of the draft.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	var draft map[string]any
	_ = json.Unmarshal(s.draft, &draft)

	return State{
		SectionID:    s.sectionID,
		LoadPhase:    s.loadPhase,
		SavePhase:    s.savePhase,
		ErrorMessage: s.errorMessage,
		Draft:        draft,
	}
}

// DraftBytes returns the raw draft JSON.
func (s *Session) DraftBytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// op is a single RFC 6902 operation.
type op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// mutate applies one patch op to the draft under the session lock.
func (s *Session) mutate(o op) error {
	patchBytes, err := json.Marshal([]op{o})
	if err != nil {
		return err
	}
	patch, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domainErrors.ErrSessionClosed
	}

	next, err := patch.Apply(s.draft)
	if err != nil {
		return err
	}
	s.draft = next
	s.touchLocked()
	return nil
}

// touchLocked resets a terminal save result once the admin edits again.
func (s *Session) touchLocked() {
	if s.savePhase == SaveSaved || s.savePhase == SaveFailed {
		s.savePhase = SaveIdle
		s.errorMessage = ""
	}
}

// jsonPointer converts a dot/array path to an RFC 6901 pointer.
func jsonPointer(path string) string {
	segs := strings.Split(path, ".")
	var b strings.Builder
	for _, seg := range segs {
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		b.WriteString("/")
		b.WriteString(seg)
	}
	return b.String()
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
