package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeTimeout bounds how long a slow dashboard client can
// block a write before being dropped.
const writeTimeout = 5 * time.Second

// sendBuffer is the per-client queue depth. Broadcasts to a
// client whose queue is full are skipped, never blocked on.
const sendBuffer = 32

// Server streams verification events to WebSocket clients and
// serves a JSON statistics snapshot. Each client owns a send
// channel drained by a single writer goroutine, so a connection
// is only ever written to from one goroutine.
type Server struct {
	mu        sync.Mutex
	collector *EventCollector
	upgrader  websocket.Upgrader
	clients   map[*websocket.Conn]chan []byte
	addr      string
	server    *http.Server
}

// NewServer creates a monitor server for the given collector.
func NewServer(addr string, collector *EventCollector) *Server {
	return &Server{
		collector: collector,
		addr:      addr,
		clients:   make(map[*websocket.Conn]chan []byte),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Start begins serving the WebSocket endpoint and blocks until
// the context is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(
		w http.ResponseWriter, _ *http.Request,
	) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.collector.OnEvent(func(event CheckEvent) {
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleWS(
	w http.ResponseWriter, r *http.Request,
) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	// Replay recorded events so late-joining dashboards see the
	// full history. The client is not registered yet, so this
	// goroutine is the connection's only writer here.
	for _, event := range s.collector.Events() {
		data, err := json.Marshal(event)
		if err != nil {
			continue
		}
		if s.writeTo(conn, data) != nil {
			conn.Close()
			return
		}
	}

	ch := make(chan []byte, sendBuffer)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()

	// Single writer: all post-replay writes to this connection
	// funnel through its channel.
	go func() {
		for data := range ch {
			if s.writeTo(conn, data) != nil {
				s.dropClient(conn)
			}
		}
		conn.Close()
	}()

	// Reader loop exists only to detect disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropClient(conn)
				return
			}
		}
	}()
}

func (s *Server) handleStats(
	w http.ResponseWriter, _ *http.Request,
) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.collector.Stats())
}

// broadcast queues data for every connected client. Sends are
// non-blocking; a client whose queue is full misses the message
// rather than stalling the collector.
func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- data:
		default:
			// Client too slow, skip.
		}
	}
}

func (s *Server) writeTo(
	conn *websocket.Conn, data []byte,
) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// dropClient unregisters a client and closes its send channel,
// which terminates the writer goroutine. The channel is only
// ever closed here, under the same lock broadcast sends under.
func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	ch, ok := s.clients[conn]
	if ok {
		delete(s.clients, conn)
		close(ch)
	}
	s.mu.Unlock()
	if ok {
		conn.Close()
	}
}
