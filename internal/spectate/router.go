package spectate

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gorilla/mux"
)

const writeTimeout = 5 * time.Second

//go:embed index.html
var htmlPage string

// NewRouter serves the landing page, a health check and the frame stream.
// sshHost is shown on the landing page as the address to play at.
func NewRouter(hub *Hub, sshHost string, logger *log.Logger) http.Handler {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "ok %d\n", hub.Len())
	}).Methods(http.MethodGet)
	r.Handle("/ws", &streamHandler{hub: hub, logger: logger}).Methods(http.MethodGet)
	return r
}

type streamHandler struct {
	hub    *Hub
	logger *log.Logger
}

func (h *streamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // read-only feed
	})
	if err != nil {
		h.logger.Error("failed to accept spectator", "err", err)
		return
	}
	defer conn.CloseNow()

	// Spectators never send; CloseRead notices when they leave.
	ctx := conn.CloseRead(r.Context())

	id, frames := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)
	h.logger.Debug("spectator joined", "spectator", id)

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("spectator left", "spectator", id)
			return
		case f, ok := <-frames:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			if err := write(ctx, conn, f); err != nil {
				h.logger.Debug("spectator write failed", "spectator", id, "err", err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, f Frame) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, f)
}
