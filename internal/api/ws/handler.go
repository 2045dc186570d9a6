package ws

import (
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/infrastructure/tracing"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Recorder receives connection and frame counts
type Recorder interface {
	IncWSConnections()
	DecWSConnections()
	RecordWSMessage(direction, msgType string)
}

type nopRecorder struct{}

func (nopRecorder) IncWSConnections()              {}
func (nopRecorder) DecWSConnections()              {}
func (nopRecorder) RecordWSMessage(string, string) {}

// Handler manages WebSocket connections. Each connection owns one desktop
// session for its lifetime.
type Handler struct {
	sessions *session.Manager
	log      *zap.Logger
	recorder Recorder
	tracer   *tracing.Tracer
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. recorder and tracer may be nil.
func NewHandler(sessions *session.Manager, log *zap.Logger, recorder Recorder, tracer *tracing.Tracer) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Handler{
		sessions: sessions,
		log:      log,
		recorder: recorder,
		tracer:   tracer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // origin policy is enforced by the CORS middleware
			},
		},
	}
}

// HandleConnection upgrades the request and serves frames until the client leaves
func (h *Handler) HandleConnection(c *gin.Context) {
	ws, err := h.sessions.Create()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, session.ErrTooManySessions) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	desktopID := ws.ID.String()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", zap.Error(err))
		_ = h.sessions.Delete(desktopID)
		return
	}

	connID := uuid.NewString()
	log := h.log.With(zap.String("conn_id", connID), zap.String("desktop_id", desktopID))
	log.Info("WebSocket connected", zap.String("remote", c.ClientIP()))

	h.recorder.IncWSConnections()
	done := make(chan struct{})
	defer func() {
		close(done)
		conn.Close()
		_ = h.sessions.Delete(desktopID)
		h.recorder.DecWSConnections()
		log.Info("WebSocket disconnected")
	}()

	go h.keepalive(conn, done, log)

	hello := frame(TypeHello)
	view := ws.View()
	hello.DesktopID = desktopID
	hello.State = &view
	if err := h.send(conn, hello); err != nil {
		log.Debug("Failed to send hello", zap.Error(err))
		return
	}

	conn.SetReadLimit(utils.MaxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var f Inbound
		if err := sonic.Unmarshal(data, &f); err != nil {
			if err := h.send(conn, errorFrame("invalid frame: "+err.Error())); err != nil {
				return
			}
			continue
		}
		h.recorder.RecordWSMessage("in", f.Type)

		replies := h.handle(c, ws, f)
		for _, r := range replies {
			if err := h.send(conn, r); err != nil {
				log.Debug("WebSocket write failed", zap.Error(err))
				return
			}
		}
	}
}

func (h *Handler) handle(c *gin.Context, ws *session.Workspace, f Inbound) []Outbound {
	if h.tracer == nil {
		return apply(ws, f)
	}
	span, _ := h.tracer.StartSpan(c.Request.Context(), "ws."+f.Type)
	span.SetTag("desktop.id", ws.ID.String())
	if f.AppID != "" {
		span.SetTag("app.id", f.AppID)
	}
	replies := apply(ws, f)
	if n := len(replies); n > 0 && replies[0].Type == TypeError {
		span.SetError(errors.New(replies[0].Message))
	}
	span.Finish()
	h.tracer.Submit(span)
	return replies
}

// keepalive pings the client until done is closed. WriteControl is safe to
// call alongside the read loop's writes.
func (h *Handler) keepalive(conn *websocket.Conn, done <-chan struct{}, log *zap.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug("Ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (h *Handler) send(conn *websocket.Conn, f Outbound) error {
	data, err := sonic.Marshal(f)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return err
	}
	h.recorder.RecordWSMessage("out", f.Type)
	return nil
}
