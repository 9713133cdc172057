// Package ws bridges a simulation to remote renderers over WebSocket. Each
// connection owns one game; its tick loop runs in the handler goroutine
// while a reader goroutine forwards intents and a writer goroutine drains
// outbound snapshots.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/wanderer/internal/config"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/protocol"
	"github.com/vovakirdan/wanderer/internal/storage"
)

const (
	handshakeTimeout = 5 * time.Second
	readTimeout      = 60 * time.Second
	writeTimeout     = 5 * time.Second
	outQueue         = 8
	intentQueue      = 64
)

// Options configure a bridge server.
type Options struct {
	Game       config.Config
	Difficulty string
	Store      *storage.Store // Optional; runs are recorded when set
	Logger     *log.Logger

	// MaxSessions caps concurrent sessions; zero means no limit.
	MaxSessions int
}

type Server struct {
	opts      Options
	log       *log.Logger
	validator *protocol.Validator
	upgrader  websocket.Upgrader
	sessions  *sessionRegistry

	base context.Context
	stop context.CancelFunc
	now  func() time.Time
}

func NewServer(opts Options) (*Server, error) {
	v, err := protocol.NewValidator()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wanderer-ws",
		})
	}
	base, stop := context.WithCancel(context.Background())
	return &Server{
		opts:      opts,
		log:       logger,
		validator: v,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		sessions: newSessionRegistry(),
		base:     base,
		stop:     stop,
		now:      time.Now,
	}, nil
}

// Sessions returns the live sessions, oldest first.
func (s *Server) Sessions() []SessionInfo {
	return s.sessions.list()
}

// Close ends every running session.
func (s *Server) Close() {
	s.stop()
}

// ListenAndServe serves the bridge on addr until ctx is cancelled. The
// WebSocket endpoint is /ws; /healthz answers plain liveness checks and
// /sessions lists live sessions as JSON.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s.Handler())
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok\n"))
	})
	mux.HandleFunc("/sessions", func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(s.Sessions())
	})
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting bridge", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down...")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		hello, ok := s.handshake(conn)
		if !ok {
			return
		}
		player := hello.Player
		if player == "" {
			player = "remote"
		}
		sess := &session{
			id:      uuid.NewString(),
			player:  player,
			game:    s.newGame(),
			out:     make(chan []byte, outQueue),
			intents: make(chan protocol.IntentMsg, intentQueue),
		}
		start := s.now()
		admitted := s.sessions.register(SessionInfo{
			ID:      sess.id,
			Player:  player,
			Remote:  r.RemoteAddr,
			Seed:    sess.game.Seed(),
			Started: start,
		}, s.opts.MaxSessions)
		if !admitted {
			s.log.Warn("session refused", "player", player, "reason", "server full")
			closeWith(conn, websocket.CloseTryAgainLater, "server full")
			return
		}
		defer s.sessions.unregister(sess.id)

		welcome := protocol.NewWelcome(sess.id, sess.game, s.opts.Game.Runtime.TickRate)
		if err := writeJSON(conn, welcome); err != nil {
			return
		}
		logger := s.log.With("session", sess.id, "player", player)
		logger.Info("session started", "remote", r.RemoteAddr, "client", hello.ClientName, "seed", sess.game.Seed(), "live", s.sessions.count())

		ctx, cancel := context.WithCancel(s.base)
		defer cancel()

		// Writer goroutine. A nil message closes the connection normally
		// after everything queued before it has been written.
		writerDone := make(chan struct{})
		go func() {
			defer close(writerDone)
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-sess.out:
					if b == nil {
						closeWith(conn, websocket.CloseNormalClosure, "game over")
						return
					}
					_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader goroutine.
		go func() {
			defer cancel()
			s.readLoop(ctx, conn, sess)
		}()

		reason := s.run(ctx, sess)
		if reason == storage.CauseStarved {
			select {
			case <-writerDone:
			case <-time.After(writeTimeout):
			}
		}
		s.record(sess, reason)
		logger.Info("session ended",
			"reason", reason,
			"tick", sess.game.Tick(),
			"duration", s.now().Sub(start).Round(time.Second),
		)
	}
}

func (s *Server) newGame() *game.Game {
	settings := s.opts.Game.GameSettings()
	if settings.Seed == 0 {
		settings.Seed = s.now().UnixNano()
	}
	return game.New(settings)
}

func (s *Server) handshake(conn *websocket.Conn) (protocol.HelloMsg, bool) {
	var hello protocol.HelloMsg
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return hello, false
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		closeWith(conn, websocket.ClosePolicyViolation, "expected HELLO")
		return hello, false
	}
	if base.ProtocolVersion != protocol.Version {
		_ = writeJSON(conn, protocol.NewError(protocol.ErrProtoVersion, "protocol_version must be "+protocol.Version))
		closeWith(conn, websocket.ClosePolicyViolation, "bad protocol_version")
		return hello, false
	}
	if err := s.validator.Validate(protocol.TypeHello, msg); err != nil {
		_ = writeJSON(conn, protocol.NewError(protocol.ErrProtoBadRequest, err.Error()))
		closeWith(conn, websocket.ClosePolicyViolation, "invalid HELLO")
		return hello, false
	}
	if err := json.Unmarshal(msg, &hello); err != nil {
		return hello, false
	}
	return hello, true
}

// readLoop decodes client messages and hands valid intents to the tick
// loop. Bad messages are answered with ERROR and otherwise ignored.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, sess *session) {
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		base, err := protocol.DecodeBase(msg)
		if err != nil {
			sess.reject(protocol.ErrProtoBadRequest, "malformed JSON")
			continue
		}
		if base.Type != protocol.TypeIntent {
			sess.reject(protocol.ErrProtoBadRequest, "unexpected message type "+base.Type)
			continue
		}
		if base.ProtocolVersion != protocol.Version {
			sess.reject(protocol.ErrProtoVersion, "protocol_version must be "+protocol.Version)
			continue
		}
		if err := s.validator.Validate(protocol.TypeIntent, msg); err != nil {
			sess.reject(protocol.ErrProtoBadRequest, err.Error())
			continue
		}
		var intent protocol.IntentMsg
		if err := json.Unmarshal(msg, &intent); err != nil {
			sess.reject(protocol.ErrProtoBadRequest, err.Error())
			continue
		}
		select {
		case sess.intents <- intent:
		case <-ctx.Done():
			return
		}
	}
}

// record saves the run when a store is configured and the game advanced.
func (s *Server) record(sess *session, cause string) {
	if s.opts.Store == nil {
		return
	}
	sum := sess.game.Summary()
	if sum.ElapsedMs == 0 {
		return
	}
	run := storage.NewRun(sess.player, s.opts.Difficulty, cause, sum)
	if _, err := s.opts.Store.SaveRun(run); err != nil {
		s.log.Warn("could not record run", "session", sess.id, "error", err)
	}
}

func closeWith(conn *websocket.Conn, code int, text string) {
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(time.Second))
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, b)
}
