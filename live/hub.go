package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/charityIO/charityIOBack/models"
	"github.com/charityIO/charityIOBack/utils"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

const EventNotification = "notification"

// Hub tracks the websocket connections of signed-in users, keyed by email.
// A user may be connected from several tabs at once.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string // conn -> email
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]string),
	}
}

func (h *Hub) Register(conn *websocket.Conn, email string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = email
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Push sends a freshly persisted notification to every connection the
// recipient has open. Delivery is best-effort: a failed write only logs,
// the recipient still sees the notification on the next poll.
func (h *Hub) Push(email string, notification models.Notification) {
	data, err := json.Marshal(Message{
		Event: EventNotification,
		Data:  notification,
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling notification %d: %v", notification.ID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, connEmail := range h.clients {
		if connEmail != email {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error pushing notification to %s: %v", email, err)
		}
	}
}

// ClientCount reports how many connections are registered for email.
func (h *Hub) ClientCount(email string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	count := 0
	for _, connEmail := range h.clients {
		if connEmail == email {
			count++
		}
	}
	return count
}
