package web

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/elifdikmn/elif-dev/internal/logging"
)

const writeWait = 5 * time.Second

// LiveReload tells open pages to reload when the site content changes.
type LiveReload struct {
	upgrader websocket.Upgrader
	logger   *logrus.Entry

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewLiveReload returns an empty hub.
func NewLiveReload() *LiveReload {
	return &LiveReload{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  256,
			WriteBufferSize: 256,
		},
		logger:  logging.NewLogger("livereload"),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handle upgrades the request and keeps the connection until the page goes
// away.
func (lr *LiveReload) Handle(c *gin.Context) {
	conn, err := lr.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		lr.logger.WithError(err).Debug("upgrade failed")
		return
	}

	lr.mu.Lock()
	lr.clients[conn] = struct{}{}
	lr.mu.Unlock()

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	lr.remove(conn)
}

// Clients returns the number of connected pages.
func (lr *LiveReload) Clients() int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return len(lr.clients)
}

// Broadcast sends a reload to every connected page.
func (lr *LiveReload) Broadcast() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	for conn := range lr.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			lr.logger.WithError(err).Debug("dropping client")
			conn.Close()
			delete(lr.clients, conn)
		}
	}
	lr.logger.Debugf("reload sent to %d pages", len(lr.clients))
}

// Close disconnects every page.
func (lr *LiveReload) Close() {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	for conn := range lr.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait))
		conn.Close()
		delete(lr.clients, conn)
	}
}

func (lr *LiveReload) remove(conn *websocket.Conn) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	if _, ok := lr.clients[conn]; ok {
		conn.Close()
		delete(lr.clients, conn)
	}
}
