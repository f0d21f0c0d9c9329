// Package spectate streams live rounds to web spectators.
package spectate

import (
	"sync"

	"github.com/google/uuid"
	"github.com/tomz197/invaders/internal/object"
)

// Frame operations.
const (
	OpPlace  = "place"
	OpTag    = "tag"
	OpRemove = "remove"
)

// Frame is one renderer call of one round.
type Frame struct {
	Round string `json:"round"`
	Op    string `json:"op"`
	Kind  string `json:"kind"`
	ID    int    `json:"id"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Hub fans frames out to subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the frame.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]chan Frame
	buffer int
}

func NewHub(buffer int) *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]chan Frame),
		buffer: buffer,
	}
}

func (h *Hub) Subscribe() (uuid.UUID, <-chan Frame) {
	id := uuid.New()
	ch := make(chan Frame, h.buffer)
	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()
	return id, ch
}

// Unsubscribe closes the subscriber's channel.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}

// Publish returns how many subscribers dropped the frame.
func (h *Hub) Publish(f Frame) (dropped int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- f:
		default:
			dropped++
		}
	}
	return dropped
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Recorder is a Renderer that forwards every call and publishes it.
type Recorder struct {
	round string
	next  object.Renderer
	hub   *Hub
}

func NewRecorder(round string, next object.Renderer, hub *Hub) *Recorder {
	return &Recorder{round: round, next: next, hub: hub}
}

func (r *Recorder) Place(id object.EntityID, x, y int) {
	r.next.Place(id, x, y)
	r.hub.Publish(Frame{Round: r.round, Op: OpPlace, Kind: id.Kind.String(), ID: id.Seq, X: x, Y: y})
}

func (r *Recorder) SetVisualState(id object.EntityID, tag string) {
	r.next.SetVisualState(id, tag)
	r.hub.Publish(Frame{Round: r.round, Op: OpTag, Kind: id.Kind.String(), ID: id.Seq, Tag: tag})
}

func (r *Recorder) Remove(id object.EntityID) {
	r.next.Remove(id)
	r.hub.Publish(Frame{Round: r.round, Op: OpRemove, Kind: id.Kind.String(), ID: id.Seq})
}
