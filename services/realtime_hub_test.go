package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealtimeHubConcurrentWrites(t *testing.T) {
	hub := NewRealtimeHub()
	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

	var cl *WSClient
	ready := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		cl = &WSClient{UserID: 1, Conn: conn}
		hub.Register(cl)
		close(ready)
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()
	<-ready

	// broadcasts race against keep-alive pings on the same connection; the
	// per-client lock must serialize them
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Broadcast(1, map[string]any{"kind": "insight.progress"})
		}()
		go func() {
			defer wg.Done()
			_ = cl.Write(websocket.PingMessage, nil)
		}()
	}
	wg.Wait()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "insight.progress")

	hub.Unregister(cl)
	assert.Empty(t, hub.clients)
}
