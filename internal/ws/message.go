package ws

import "encoding/json"

type MessageType string

const (
	// TypeSync carries the full resolved section content on subscribe.
	TypeSync MessageType = "sync"
	// TypeSectionUpdated carries the resolved content after an admin save.
	TypeSectionUpdated MessageType = "section-updated"
	// TypeError carries a structured error to the subscriber.
	TypeError MessageType = "error"
)

// Message is the single wire envelope for preview traffic.
type Message struct {
	Type      MessageType     `json:"type"`
	SectionID string          `json:"sectionId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts"`
}

// Error codes are what clients branch on; the message text is for logs.
type ErrorCode string

const (
	ErrUnknownSectionCode ErrorCode = "UNKNOWN_SECTION"
	ErrInternalCode       ErrorCode = "INTERNAL_ERROR"
)

// ErrorPayload is the payload of a TypeError message.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
