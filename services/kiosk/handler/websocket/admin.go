package websocket

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/jwt"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

const (
	// Per-client frame buffer; a dashboard this far behind starts
	// losing frames.
	adminSendBuffer = 16

	// A write that cannot complete within this window marks the
	// connection dead.
	adminWriteWait = 5 * time.Second
)

// adminClient is one connected dashboard. Frames go through the send
// channel so a stalled socket never holds up the broadcaster; the
// write loop owns the connection for writing.
type adminClient struct {
	ws   *websocket.Conn
	send chan models.WSMessage
}

// AdminFeedManager fans the live punch feed out to connected admin
// dashboards. Connections authenticate with the same JWT as the admin
// HTTP routes, passed as a query parameter because browsers cannot set
// websocket headers.
type AdminFeedManager struct {
	sync.RWMutex
	clients  map[string]*adminClient
	jwtCfg   models.JWTConfig
	upgrader websocket.Upgrader
}

// NewAdminFeedManager creates a new admin feed manager
func NewAdminFeedManager(jwtCfg models.JWTConfig) *AdminFeedManager {
	return &AdminFeedManager{
		clients: make(map[string]*adminClient),
		jwtCfg:  jwtCfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleAdmin upgrades an admin dashboard connection after validating
// its JWT and keeps it registered until it closes.
func (m *AdminFeedManager) HandleAdmin(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		auth := c.Request().Header.Get("Authorization")
		token = strings.TrimPrefix(auth, "Bearer ")
	}
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token is required")
	}

	claims, err := jwt.ValidateToken(token, m.jwtCfg.Secret)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if role, _ := (*claims)["role"].(string); role != "admin" {
		return echo.NewHTTPError(http.StatusForbidden, "admin role required")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	clientID := uuid.New().String()
	client := &adminClient{ws: ws, send: make(chan models.WSMessage, adminSendBuffer)}
	m.register(clientID, client)
	defer m.unregister(clientID)

	go m.writeLoop(clientID, client)

	logger.Info("Admin dashboard connected",
		logger.String("client_id", clientID))

	// Inbound frames are ignored; the read loop only detects closure.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// writeLoop drains the client's send channel onto the socket. A write
// that misses the deadline unregisters the client, which also closes
// the channel and ends the loop.
func (m *AdminFeedManager) writeLoop(clientID string, client *adminClient) {
	for msg := range client.send {
		_ = client.ws.SetWriteDeadline(time.Now().Add(adminWriteWait))
		if err := client.ws.WriteJSON(msg); err != nil {
			logger.Warn("Disconnecting stalled admin dashboard",
				logger.String("client_id", clientID),
				logger.Err(err))
			m.unregister(clientID)
			return
		}
	}
}

func (m *AdminFeedManager) register(clientID string, client *adminClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[clientID] = client
}

// unregister is idempotent: both the read loop and a failed write may
// call it for the same client.
func (m *AdminFeedManager) unregister(clientID string) {
	m.Lock()
	defer m.Unlock()
	if client, ok := m.clients[clientID]; ok {
		delete(m.clients, clientID)
		close(client.send)
		client.ws.Close()
	}
}

// Broadcast queues an event for every connected dashboard. The send is
// non-blocking: a client whose buffer is full loses the frame instead
// of stalling the feed for everyone else.
func (m *AdminFeedManager) Broadcast(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal admin feed payload",
			logger.String("event", event),
			logger.Err(err))
		return
	}
	msg := models.WSMessage{Event: event, Data: data}

	// Membership and channel sends share the read lock; unregister
	// closes channels under the write lock, so a send can never race a
	// close.
	m.RLock()
	defer m.RUnlock()
	for clientID, client := range m.clients {
		select {
		case client.send <- msg:
		default:
			logger.Warn("Admin feed buffer full, dropping frame",
				logger.String("client_id", clientID),
				logger.String("event", event))
		}
	}
}
