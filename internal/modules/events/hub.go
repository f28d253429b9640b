package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

// Event is the frame pushed to every connected dashboard after a device
// write. Device is nil for deletions.
type Event struct {
	Type      string         `json:"type"`
	Action    string         `json:"action,omitempty"`
	DeviceID  string         `json:"device_id"`
	Device    *domain.Device `json:"device,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Hub fans device events out to all connected clients. A write failure drops
// that client; the others are unaffected.
type Hub struct {
	connections map[*websocket.Conn]bool
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = true
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

// DeviceChanged pushes a device snapshot to every client.
func (h *Hub) DeviceChanged(action string, d *domain.Device) {
	h.broadcast(Event{
		Type:      "device_changed",
		Action:    action,
		DeviceID:  d.ID,
		Device:    d,
		Timestamp: time.Now().UTC(),
	})
}

// DeviceDeleted tells every client a device is gone.
func (h *Hub) DeviceDeleted(id string) {
	h.broadcast(Event{
		Type:      "device_deleted",
		DeviceID:  id,
		Timestamp: time.Now().UTC(),
	})
}

func (h *Hub) broadcast(event Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
