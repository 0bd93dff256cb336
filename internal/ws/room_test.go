package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoom_SyncCarriesLatestPublishedContent(t *testing.T) {
	hub := newTestHub(t)

	room, err := hub.GetOrCreateRoom("skills")
	assert.NoError(t, err)

	room.Publish([]byte(`{"title":"Updated Skills"}`))

	// a viewer joining after the publish syncs to the cached content
	late := NewClient(nil, "skills")
	room.Register(late)

	sync := receiveMessage(t, late)
	assert.Equal(t, TypeSync, sync.Type)
	assert.JSONEq(t, `{"title":"Updated Skills"}`, string(sync.Payload))
}

func TestRoom_SlowConsumerIsDropped(t *testing.T) {
	hub := newTestHub(t)

	room, err := hub.GetOrCreateRoom("hero")
	assert.NoError(t, err)

	// unbuffered send channel with no reader: every delivery would block
	slow := &Client{SectionID: "hero", send: make(chan []byte)}
	room.Register(slow)

	assert.Eventually(t, func() bool {
		return room.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	room.Publish([]byte(`{"title":"x"}`))

	assert.Eventually(t, func() bool {
		return room.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)

	// the dropped client's channel is closed
	_, ok := <-slow.send
	assert.False(t, ok)
}

func TestRoom_StopClosesAllClients(t *testing.T) {
	hub := newTestHub(t)

	room, err := hub.GetOrCreateRoom("hero")
	assert.NoError(t, err)

	client := NewClient(nil, "hero")
	room.Register(client)
	receiveMessage(t, client)

	room.Stop()
	room.Stop() // idempotent

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-client.send:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return hub.roomCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRoom_RegisterAfterStop(t *testing.T) {
	hub := newTestHub(t)

	room, err := hub.GetOrCreateRoom("hero")
	assert.NoError(t, err)
	room.Stop()

	client := NewClient(nil, "hero")
	room.Register(client)

	// a stopped room closes the joiner instead of leaking it
	_, ok := <-client.send
	assert.False(t, ok)
}
