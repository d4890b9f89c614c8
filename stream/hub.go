// @lixen: #focus{sys[net,stream]}
// Package stream mirrors terminal output to websocket viewers
package stream

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
)

// Path is the websocket endpoint served by Hub
const Path = "/stream"

const (
	sendQueue    = 64
	writeTimeout = time.Second
)

// Hub is an io.Writer fanning every write out to connected viewers as binary
// websocket messages; safe for concurrent use
// A viewer that cannot keep up is disconnected rather than blocking the writer
type Hub struct {
	router   *way.Router
	upgrader websocket.Upgrader
	log      logrus.FieldLogger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	joined chan struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
	})
}

// NewHub creates a hub; log may be nil
func NewHub(log logrus.FieldLogger) *Hub {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	h := &Hub{
		router:  way.NewRouter(),
		log:     log,
		clients: make(map[*client]struct{}),
		joined:  make(chan struct{}, 1),
	}
	h.router.HandleFunc(http.MethodGet, Path, h.handleStream)
	return h
}

// ServeHTTP routes GET /stream to the websocket upgrade
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Joined signals after a viewer connects; pending signals coalesce
func (h *Hub) Joined() <-chan struct{} {
	return h.joined
}

// Clients returns the number of connected viewers
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Write copies p to every viewer queue and never fails
func (h *Hub) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	msg := make([]byte, len(p))
	copy(msg, p)

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.log.WithField("remote", c.conn.RemoteAddr().String()).Warn("viewer too slow, dropping")
			delete(h.clients, c)
			c.close()
		}
	}
	return len(p), nil
}

// Close disconnects every viewer and refuses new ones
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
	return nil
}

func (h *Hub) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		h.log.WithError(err).Debug("websocket upgrade failed")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendQueue)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.log.WithField("remote", conn.RemoteAddr().String()).Info("viewer joined")
	select {
	case h.joined <- struct{}{}:
	default:
	}

	go h.writeLoop(c)
	h.readLoop(c)
}

// readLoop discards viewer input and unregisters on disconnect
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.close()
	}()
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			h.log.WithError(err).Debug("viewer left")
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			h.log.WithError(err).Debug("viewer write failed")
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}
