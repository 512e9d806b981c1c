package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/utils"
)

func init() {
	utils.InitLogger()
}

// dialTestConn establishes a real websocket pair and registers the server
// side with the hub under email.
func dialTestConn(t *testing.T, hub *Hub, email string) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(conn, email)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHubPushToRecipient(t *testing.T) {
	hub := NewHub()
	client := dialTestConn(t, hub, "v@x.com")

	// Registration runs in the server handler goroutine.
	assert.Eventually(t, func() bool { return hub.ClientCount("v@x.com") == 1 },
		time.Second, 10*time.Millisecond)

	hub.Push("v@x.com", models.Notification{
		ID:      1,
		To:      "v@x.com",
		Message: "You have accepted this volunteering request",
		Type:    models.NotificationTypeResponse,
	})

	client.SetReadDeadline(time.Now().Add(time.Second))
	_, raw, err := client.ReadMessage()
	assert.NoError(t, err)

	var msg Message
	assert.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, EventNotification, msg.Event)
	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "You have accepted this volunteering request", data["message"])
}

func TestHubPushSkipsOtherUsers(t *testing.T) {
	hub := NewHub()
	client := dialTestConn(t, hub, "other@x.com")

	assert.Eventually(t, func() bool { return hub.ClientCount("other@x.com") == 1 },
		time.Second, 10*time.Millisecond)

	hub.Push("v@x.com", models.Notification{ID: 1, To: "v@x.com", Message: "x"})

	client.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := client.ReadMessage()
	assert.Error(t, err)
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	dialTestConn(t, hub, "v@x.com")

	assert.Eventually(t, func() bool { return hub.ClientCount("v@x.com") == 1 },
		time.Second, 10*time.Millisecond)

	// Unregister every connection for the user.
	hub.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(hub.clients))
	for conn := range hub.clients {
		conns = append(conns, conn)
	}
	hub.mu.Unlock()
	for _, conn := range conns {
		hub.Unregister(conn)
	}

	assert.Zero(t, hub.ClientCount("v@x.com"))
}
