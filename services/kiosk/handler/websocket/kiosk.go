package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/strikelab/punchkiosk/internal/pkg/constants"
	"github.com/strikelab/punchkiosk/internal/pkg/logger"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/services/kiosk"
)

// KioskHandler owns the kiosk UI websocket. The kiosk connects once and
// drives plays with start_session / cancel_session; each play runs the
// orchestrator in its own goroutine and streams lifecycle events back
// over the same connection.
type KioskHandler struct {
	kioskUC  kiosk.KioskUC
	upgrader websocket.Upgrader
}

// NewKioskHandler creates a new kiosk websocket handler
func NewKioskHandler(kioskUC kiosk.KioskUC) *KioskHandler {
	return &KioskHandler{
		kioskUC: kioskUC,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// kioskConn wraps a websocket connection with a write lock: the
// orchestrator goroutine and the read loop both send frames.
type kioskConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *kioskConn) send(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal websocket payload",
			logger.String("event", event),
			logger.Err(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.WriteJSON(models.WSMessage{Event: event, Data: data}); err != nil {
		logger.Warn("Failed to write websocket frame",
			logger.String("event", event),
			logger.Err(err))
	}
}

func (c *kioskConn) sendError(code, message string) {
	data, _ := json.Marshal(models.WSErrorMessage{Code: code, Message: message})
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.WriteJSON(models.WSMessage{Event: constants.EventError, Data: data})
}

// HandleKiosk upgrades the kiosk UI connection and runs its read loop.
func (h *KioskHandler) HandleKiosk(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	conn := &kioskConn{ws: ws}
	ctx := c.Request().Context()

	var (
		mu     sync.Mutex
		cancel context.CancelFunc
		done   chan struct{}
	)

	defer func() {
		mu.Lock()
		if cancel != nil {
			cancel()
		}
		mu.Unlock()
	}()

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Kiosk websocket closed unexpectedly", logger.Err(err))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventStartSession:
			var req models.InitiatePaymentRequest
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				conn.sendError(constants.ErrorInvalidFormat, "invalid start_session payload")
				continue
			}

			mu.Lock()
			if done != nil {
				select {
				case <-done:
					// previous play finished
				default:
					mu.Unlock()
					conn.sendError(constants.ErrorSessionActive, "a session is already running")
					continue
				}
			}

			runCtx, runCancel := context.WithCancel(ctx)
			cancel = runCancel
			runDone := make(chan struct{})
			done = runDone
			mu.Unlock()

			go func() {
				defer close(runDone)
				defer runCancel()
				if err := h.kioskUC.RunSession(runCtx, &req, conn.send); err != nil && !errorsIsCanceled(err) {
					logger.Warn("Kiosk session ended with error", logger.Err(err))
				}
			}()

		case constants.EventCancelSession:
			mu.Lock()
			if cancel != nil {
				cancel()
			}
			mu.Unlock()

		case constants.EventPing:
			conn.send(constants.EventPong, map[string]string{})

		default:
			conn.sendError(constants.ErrorInvalidFormat, "unknown event: "+msg.Event)
		}
	}
}

func errorsIsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
