package ws

import (
	"net/http"

	"storefront/pkg/logger"
	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// TrackStream pushes simulated order-status transitions to the tracking
// view. Closing the connection unsubscribes the client; the simulation
// itself is torn down by navigation, not by the socket.
type TrackStream struct {
	Orders *services.OrderService
}

func NewTrackStream(svc *services.OrderService) *TrackStream {
	return &TrackStream{Orders: svc}
}

// GET /orders/current/stream
func (h *TrackStream) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Errorf("ws upgrade: %v", err)
		return
	}

	ch := h.Orders.Subscribe()
	defer func() {
		h.Orders.Unsubscribe(ch)
		conn.Close()
	}()

	// read pump only detects the peer going away
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case state := <-ch:
			if err := conn.WriteJSON(state); err != nil {
				logger.Log.Errorf("ws write: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
