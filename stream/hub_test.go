package stream

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", h.ClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	h := NewHub()
	defer h.Close()
	srv := httptest.NewServer(h)
	defer srv.Close()

	first := dialHub(t, srv)
	second := dialHub(t, srv)
	waitForClients(t, h, 2)

	h.Broadcast(websocket.TextMessage, []byte("frame-1"))

	for i, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		kind, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("client %d read: %v", i, err)
		}
		if kind != websocket.TextMessage {
			t.Errorf("client %d message type = %d, want text", i, kind)
		}
		if string(data) != "frame-1" {
			t.Errorf("client %d got %q, want \"frame-1\"", i, data)
		}
	}
}

func TestHub_DisconnectRemovesClient(t *testing.T) {
	h := NewHub()
	defer h.Close()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dialHub(t, srv)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)
}

func TestHub_CloseRejectsNewClients(t *testing.T) {
	h := NewHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dialHub(t, srv)
	waitForClients(t, h, 1)

	h.Close()
	if got := h.ClientCount(); got != 0 {
		t.Errorf("ClientCount() after Close = %d, want 0", got)
	}

	// The existing connection is torn down.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	// New connections are upgraded and immediately dropped.
	late := dialHub(t, srv)
	late.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := late.ReadMessage(); err == nil {
		t.Error("read on post-Close connection succeeded, want error")
	}
	if got := h.ClientCount(); got != 0 {
		t.Errorf("ClientCount() = %d, want 0", got)
	}
}
