// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rural-health-api-server/internal/medreq"
)

// Maximum wait for a ping from the client before the connection is considered dead.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Service *medreq.Service
}

// ServeRequests streams full medicine-request snapshots to a volunteer
// dashboard. The current snapshot is sent on connect and a fresh one after
// every write, so the dashboard never polls.
func (h *WebSocketHandler) ServeRequests(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	sub, err := h.Service.Subscribe(c.Request.Context())
	if err != nil {
		log.Printf("Failed to open dashboard subscription: %v", err)
		return
	}
	defer sub.Close()

	remote := conn.RemoteAddr().String()
	log.Printf("Volunteer dashboard connected: %s", remote)

	// Read loop: the client only ever sends pings. Any read error tears the
	// subscription down, which in turn ends the write loop below.
	go func() {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPingHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("Unexpected close error: %v", err)
				}
				sub.Close()
				return
			}
		}
	}()

	for snapshot := range sub.Updates() {
		if err := conn.WriteJSON(snapshot); err != nil {
			// The dashboard goes stale from here; the client is expected
			// to reconnect and resubscribe.
			log.Printf("Dashboard sync dropped for %s: %v", remote, err)
			return
		}
	}

	log.Printf("Volunteer dashboard disconnected: %s", remote)
}
