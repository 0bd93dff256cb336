package ws

import (
	"log"
	"sync"
)

// SectionService supplies the resolved content a new room starts from.
type SectionService interface {
	// ResolvedContent returns the render-ready content for a section,
	// with fallback literals already substituted. It errors only for
	// unknown section ids.
	ResolvedContent(sectionID string) ([]byte, error)
}

// Hub owns the room directory and is the only thing that creates or
// destroys rooms.
type Hub struct {
	rooms          map[string]*Room
	mu             sync.RWMutex
	idleRoom       chan *Room
	destroyRoom    chan *Room
	sectionService SectionService
}

func NewHub(sectionService SectionService) *Hub {
	return &Hub{
		rooms:          make(map[string]*Room),
		idleRoom:       make(chan *Room, 16),
		destroyRoom:    make(chan *Room, 16),
		sectionService: sectionService,
	}
}

// Run processes room lifecycle signals. Meant to run as a goroutine for
// the life of the process.
func (h *Hub) Run() {
	log.Println("[Hub] started")

	for {
		select {
		case room := <-h.idleRoom:
			go h.handleIdleRoom(room)
		case room := <-h.destroyRoom:
			h.removeRoom(room)
		}
	}
}

// handleIdleRoom double-checks before tearing an empty room down: a viewer
// may have joined between the idle signal and now.
func (h *Hub) handleIdleRoom(room *Room) {
	if room.ClientCount() > 0 {
		return
	}
	room.Stop()
}

// removeRoom deletes a stopped room, guarding against the slot having been
// replaced by a newer room with the same section id.
func (h *Hub) removeRoom(room *Room) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.rooms[room.SectionID]; ok && current == room {
		delete(h.rooms, room.SectionID)
		log.Printf("[Hub] room %s destroyed", room.SectionID)
	}
}

// GetOrCreateRoom returns the room for a section, creating it from the
// current resolved content on first subscribe. Unknown sections error out
// instead of creating a ghost room.
func (h *Hub) GetOrCreateRoom(sectionID string) (*Room, error) {
	h.mu.RLock()
	room, exists := h.rooms[sectionID]
	h.mu.RUnlock()
	if exists {
		return room, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// double check under the write lock
	if room, exists = h.rooms[sectionID]; exists {
		return room, nil
	}

	content, err := h.sectionService.ResolvedContent(sectionID)
	if err != nil {
		log.Printf("[Hub] refusing room for %s: %v", sectionID, err)
		return nil, err
	}

	room = NewRoom(sectionID, content, h)
	h.rooms[sectionID] = room
	log.Printf("[Hub] room %s created", sectionID)
	return room, nil
}

// Publish pushes freshly saved content to the section's viewers. Sections
// nobody is watching have no room and nothing happens.
func (h *Hub) Publish(sectionID string, content []byte) {
	h.mu.RLock()
	room, exists := h.rooms[sectionID]
	h.mu.RUnlock()

	if exists {
		room.Publish(content)
	}
}

// NotifyIdle is called by a room when its last viewer leaves.
func (h *Hub) NotifyIdle(room *Room) {
	h.idleRoom <- room
}
