package usecase

import (
	"encoding/json"
	"log"

	domainRepo "portfolio-go-server/domain/repository"
	"portfolio-go-server/internal/schema"
)

// RendererUseCase is the read-only half of the section pipeline: fetch the
// record once, substitute fallback literals for empty fields, return the
// render-ready tree. No caching, no retry.
type RendererUseCase struct {
	repo     domainRepo.SectionRepository
	registry *schema.Registry
}

func NewRendererUseCase(repo domainRepo.SectionRepository, registry *schema.Registry) *RendererUseCase {
	return &RendererUseCase{repo: repo, registry: registry}
}

// RenderSection resolves a section for public display. A store failure or a
// missing record is logged and rendering proceeds entirely on fallback
// defaults; only an unknown section id is an error.
func (uc *RendererUseCase) RenderSection(sectionID string) (map[string]any, error) {
	sch, err := uc.registry.SchemaFor(sectionID)
	if err != nil {
		return nil, err
	}

	var content map[string]any
	section, err := uc.repo.GetBySectionID(sectionID)
	switch {
	case err != nil:
		log.Printf("[Renderer] fetch %s failed, serving fallbacks: %v", sectionID, err)
	case section == nil:
		// no admin content yet; fallbacks keep the site non-empty
	default:
		if uerr := json.Unmarshal(section.Content, &content); uerr != nil {
			log.Printf("[Renderer] malformed content for %s, serving fallbacks: %v", sectionID, uerr)
			content = nil
		}
	}

	return sch.Resolve(content), nil
}

// ResolvedContent implements ws.SectionService for the live preview hub.
func (uc *RendererUseCase) ResolvedContent(sectionID string) ([]byte, error) {
	resolved, err := uc.RenderSection(sectionID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resolved)
}
