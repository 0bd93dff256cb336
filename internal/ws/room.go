package ws

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// Room fans resolved section content out to the viewers of one section.
// Subscriber bookkeeping happens only inside run(), so the clients map
// needs no lock; only the cached content does.

type Room struct {
	SectionID string

	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	stopChan   chan struct{}

	contentMu sync.RWMutex
	content   []byte // latest resolved content, sent to joiners as sync

	count atomic.Int64

	hub      *Hub
	stopOnce sync.Once
}

// NewRoom creates the room and starts its event loop.
func NewRoom(sectionID string, content []byte, hub *Hub) *Room {
	r := &Room{
		SectionID:  sectionID,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stopChan:   make(chan struct{}),
		content:    content,
		hub:        hub,
	}

	go r.run()
	return r
}

func (r *Room) run() {
	defer func() {
		if r.hub != nil {
			r.hub.destroyRoom <- r
		}
	}()

	for {
		select {
		case client := <-r.register:
			r.clients[client] = true
			r.count.Store(int64(len(r.clients)))
			client.Room = r
			r.sendSyncToClient(client)
			log.Printf("[Room %s] viewer joined, now %d", r.SectionID, len(r.clients))

		case client := <-r.unregister:
			if _, ok := r.clients[client]; ok {
				delete(r.clients, client)
				r.count.Store(int64(len(r.clients)))
				close(client.send)
				log.Printf("[Room %s] viewer left, now %d", r.SectionID, len(r.clients))

				// Last viewer gone: ask the hub to tear the room down.
				if len(r.clients) == 0 {
					r.hub.NotifyIdle(r)
				}
			}

		case message := <-r.broadcast:
			for client := range r.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than stall the room.
					delete(r.clients, client)
					r.count.Store(int64(len(r.clients)))
					close(client.send)
				}
			}

		case <-r.stopChan:
			for client := range r.clients {
				delete(r.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Publish caches the latest resolved content and broadcasts it.
func (r *Room) Publish(content []byte) {
	r.contentMu.Lock()
	r.content = content
	r.contentMu.Unlock()

	msg, err := json.Marshal(Message{
		Type:      TypeSectionUpdated,
		SectionID: r.SectionID,
		Payload:   content,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}

	select {
	case r.broadcast <- msg:
	case <-r.stopChan:
	}
}

// Register queues a subscriber for the event loop.
func (r *Room) Register(c *Client) {
	select {
	case r.register <- c:
	case <-r.stopChan:
		close(c.send)
	}
}

// Unregister removes a subscriber.
func (r *Room) Unregister(c *Client) {
	select {
	case r.unregister <- c:
	case <-r.stopChan:
	}
}

// ClientCount is used by the hub's idle double-check. The counter is kept
// by run(), so a read during a teardown race may be momentarily stale;
// the hub re-checks under its own lock before deleting.
func (r *Room) ClientCount() int {
	return int(r.count.Load())
}

// Stop ends the event loop. Safe to call more than once.
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

func (r *Room) sendSyncToClient(c *Client) {
	r.contentMu.RLock()
	content := r.content
	r.contentMu.RUnlock()

	msg, err := json.Marshal(Message{
		Type:      TypeSync,
		SectionID: r.SectionID,
		Payload:   content,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}

	select {
	case c.send <- msg:
	default:
	}
}
