package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// Upgrade runs on the server goroutine; wait for registration.
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	require.Equal(t, 1, hub.ClientCount())

	return conn
}

func TestHub_BroadcastDeviceChanged(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestHub(t, hub)

	hub.DeviceChanged("transferred", &domain.Device{
		ID:     "d1",
		Status: domain.StatusTransferred,
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, "device_changed", event.Type)
	assert.Equal(t, "transferred", event.Action)
	assert.Equal(t, "d1", event.DeviceID)
	require.NotNil(t, event.Device)
	assert.Equal(t, domain.StatusTransferred, event.Device.Status)
}

func TestHub_BroadcastDeviceDeleted(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestHub(t, hub)

	hub.DeviceDeleted("d2")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, "device_deleted", event.Type)
	assert.Equal(t, "d2", event.DeviceID)
	assert.Nil(t, event.Device)
}

func TestHub_UnregisterDropsClient(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestHub(t, hub)
	_ = conn

	hub.mutex.RLock()
	var registered *websocket.Conn
	for c := range hub.connections {
		registered = c
	}
	hub.mutex.RUnlock()

	hub.Unregister(registered)
	assert.Zero(t, hub.ClientCount())
}
