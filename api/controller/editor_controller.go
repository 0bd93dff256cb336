package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	domainErrors "portfolio-go-server/domain/errors"
	"portfolio-go-server/internal/editor"
	"portfolio-go-server/usecase"

	"github.com/gin-gonic/gin"
)

// EditorController exposes the section editor engine over HTTP. Every
// route operates on a session id handed out by OpenSession; the session
// holds the draft, so these handlers stay thin.
type EditorController struct {
	editorUseCase *usecase.EditorUseCase
}

func NewEditorController(editorUseCase *usecase.EditorUseCase) *EditorController {
	return &EditorController{editorUseCase: editorUseCase}
}

// SessionResponse wraps a session id with its current state.
type SessionResponse struct {
	SessionID string       `json:"sessionId"`
	State     editor.State `json:"state"`
}

type openSessionRequest struct {
	SectionID string `json:"sectionId" binding:"required"`
}

// OpenSession starts an editing session and performs its single load.
// POST /api/admin/editor
func (ec *EditorController) OpenSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "sectionId is required"})
		return
	}

	sessionID, state, err := ec.editorUseCase.OpenSession(req.SectionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnknownSection) {
			// configuration error: refuse to render a form for it
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown section", Details: req.SectionID})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{SessionID: sessionID, State: state})
}

// GetSession returns the current session state and draft.
// GET /api/admin/editor/:sessionId
func (ec *EditorController) GetSession(c *gin.Context) {
	state, err := ec.editorUseCase.Session(c.Param("sessionId"))
	if err != nil {
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("sessionId"), State: state})
}

type setFieldRequest struct {
	Path  string          `json:"path" binding:"required"`
	Value json.RawMessage `json:"value"`
}

// SetField mutates one draft field at a dot/array path.
// PUT /api/admin/editor/:sessionId/field
func (ec *EditorController) SetField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "path is required"})
		return
	}

	var value any
	if len(req.Value) > 0 {
		if err := json.Unmarshal(req.Value, &value); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid value", Details: err.Error()})
			return
		}
	}

	state, err := ec.editorUseCase.SetField(c.Param("sessionId"), req.Path, value)
	if err != nil {
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("sessionId"), State: state})
}

type listItemRequest struct {
	Path  string `json:"path" binding:"required"`
	Index *int   `json:"index,omitempty"`
}

// AddListItem appends a default item to a list field.
// POST /api/admin/editor/:sessionId/items
func (ec *EditorController) AddListItem(c *gin.Context) {
	var req listItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "path is required"})
		return
	}

	state, err := ec.editorUseCase.AddListItem(c.Param("sessionId"), req.Path)
	if err != nil {
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("sessionId"), State: state})
}

// RemoveListItem removes a list item by position.
// DELETE /api/admin/editor/:sessionId/items
func (ec *EditorController) RemoveListItem(c *gin.Context) {
	var req listItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "path and index are required"})
		return
	}

	state, err := ec.editorUseCase.RemoveListItem(c.Param("sessionId"), req.Path, *req.Index)
	if err != nil {
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("sessionId"), State: state})
}

// ApplyPatch applies a batched RFC 6902 patch to the draft.
// POST /api/admin/editor/:sessionId/patch
func (ec *EditorController) ApplyPatch(c *gin.Context) {
	var patch json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid patch", Details: err.Error()})
		return
	}

	state, err := ec.editorUseCase.ApplyPatch(c.Param("sessionId"), patch)
	if err != nil {
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("sessionId"), State: state})
}

// Save persists the draft. A store rejection is not an HTTP error: the
// returned state carries savePhase=save-failed with the store's message,
// and the draft is kept so the admin can retry without re-entering data.
// POST /api/admin/editor/:sessionId/save
func (ec *EditorController) Save(c *gin.Context) {
	state, err := ec.editorUseCase.Save(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrSaveInFlight) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, SessionResponse{SessionID: c.Param("sessionId"), State: state})
}

// CloseSession ends a session.
// DELETE /api/admin/editor/:sessionId
func (ec *EditorController) CloseSession(c *gin.Context) {
	if err := ec.editorUseCase.CloseSession(c.Param("sessionId")); err != nil {
		ec.writeSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true})
}

func (ec *EditorController) writeSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrSessionClosed):
		c.JSON(http.StatusGone, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}
