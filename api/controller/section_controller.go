package controller

import (
	"errors"
	"net/http"

	domainErrors "portfolio-go-server/domain/errors"
	"portfolio-go-server/usecase"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SectionResponse is a resolved public section.
type SectionResponse struct {
	SectionID string         `json:"sectionId"`
	Content   map[string]any `json:"content"`
}

// SectionController serves the public, read-only section surface.
type SectionController struct {
	renderer *usecase.RendererUseCase
}

func NewSectionController(renderer *usecase.RendererUseCase) *SectionController {
	return &SectionController{renderer: renderer}
}

// GetSection returns the render-ready content of one section.
// GET /api/sections/:sectionId
// Store failures degrade to fallback content, so the only client-visible
// error is an unknown section id.
func (sc *SectionController) GetSection(c *gin.Context) {
	sectionID := c.Param("sectionId")

	content, err := sc.renderer.RenderSection(sectionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnknownSection) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown section", Details: sectionID})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SectionResponse{SectionID: sectionID, Content: content})
}
