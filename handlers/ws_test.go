package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestBroadcastStaysWithinOneUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ws := NewWSHandler()

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		c.Set("user_id", c.Query("uid"))
		ws.HandleWS(c)
	})

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?uid="

	dial := func(uid string) *websocket.Conn {
		t.Helper()
		conn, _, err := websocket.DefaultDialer.Dial(wsURL+uid, nil)
		if err != nil {
			t.Fatalf("dial as %s: %v", uid, err)
		}
		return conn
	}

	alice := dial("alice")
	defer alice.Close()
	bob := dial("bob")
	defer bob.Close()

	// Give the hub a moment to register both sessions.
	time.Sleep(100 * time.Millisecond)

	ws.BroadcastToUser("bob", "transaction_created")

	bob.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := bob.ReadMessage()
	if err != nil {
		t.Fatalf("bob never received his event: %v", err)
	}
	if !strings.Contains(string(msg), "transaction_created") {
		t.Errorf("bob received %q, want a transaction_created event", msg)
	}

	alice.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, leaked, err := alice.ReadMessage(); err == nil {
		t.Errorf("alice received another user's event: %q", leaked)
	}
}
