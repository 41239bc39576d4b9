package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nnonaka/KeePassium/internal/events"
	"github.com/nnonaka/KeePassium/internal/settings"
)

type testRelay struct {
	hubBus    *events.Bus[settings.Key]
	clientBus *events.Bus[settings.Key]
	hub       *Hub
	client    *Client
}

func setupTestRelay(t *testing.T) *testRelay {
	t.Helper()

	hubBus := events.NewBus[settings.Key]()
	hub := NewHub(hubBus)
	hub.Start()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Stop)

	clientBus := events.NewBus[settings.Key]()
	client, err := Dial(wsURL(srv), clientBus)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	// The server goroutine registers the peer just after the handshake;
	// wait for it so an immediate publish is not lost.
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.Lock()
		n := len(hub.peers)
		hub.mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("peer was never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	return &testRelay{hubBus: hubBus, clientBus: clientBus, hub: hub, client: client}
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitKey(t *testing.T, ch <-chan settings.Key) settings.Key {
	t.Helper()
	select {
	case k := <-ch:
		return k
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for relayed change")
		return ""
	}
}

func TestHubForwardsLocalChangeToClient(t *testing.T) {
	r := setupTestRelay(t)

	received := make(chan settings.Key, 1)
	r.clientBus.Subscribe(func(k settings.Key) {
		received <- k
	})

	r.hubBus.Publish(settings.KeyAppLockEnabled)

	if got := waitKey(t, received); got != settings.KeyAppLockEnabled {
		t.Errorf("client received %s, want %s", got, settings.KeyAppLockEnabled)
	}
}

func TestClientForwardsLocalChangeToHub(t *testing.T) {
	r := setupTestRelay(t)

	received := make(chan settings.Key, 1)
	r.hubBus.Subscribe(func(k settings.Key) {
		received <- k
	})

	r.clientBus.Publish(settings.KeyClipboardTimeout)

	if got := waitKey(t, received); got != settings.KeyClipboardTimeout {
		t.Errorf("hub received %s, want %s", got, settings.KeyClipboardTimeout)
	}
}

func TestUnknownKeyIsDroppedNotFatal(t *testing.T) {
	hubBus := events.NewBus[settings.Key]()
	hub := NewHub(hubBus)
	hub.Start()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	defer srv.Close()
	defer hub.Stop()

	var count atomic.Int32
	hubBus.Subscribe(func(k settings.Key) {
		count.Add(1)
	})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	// A key from some future app version, then a known one.
	if err := conn.WriteJSON(changeFrame{Key: "shinyFutureSetting"}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if err := conn.WriteJSON(changeFrame{Key: string(settings.KeyStartWithSearch)}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	// Only the known key made it through; the unknown one was dropped
	// without killing the connection.
	if count.Load() != 1 {
		t.Errorf("expected 1 published change, got %d", count.Load())
	}
}

func TestNoEchoBackToOrigin(t *testing.T) {
	r := setupTestRelay(t)

	clientGot := make(chan settings.Key, 1)
	r.clientBus.Subscribe(func(k settings.Key) {
		clientGot <- k
	})

	var hubCount atomic.Int32
	r.hubBus.Subscribe(func(k settings.Key) {
		hubCount.Add(1)
	})

	r.hubBus.Publish(settings.KeyGroupSortOrder)
	waitKey(t, clientGot)

	// Give a bounced frame time to come back if echo suppression failed.
	time.Sleep(200 * time.Millisecond)

	// The hub bus saw only the original publish.
	if hubCount.Load() != 1 {
		t.Errorf("expected 1 hub-side event, got %d (change echoed back)", hubCount.Load())
	}
}
