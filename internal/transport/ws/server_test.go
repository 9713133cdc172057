package ws

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/wanderer/internal/config"
	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/protocol"
	"github.com/vovakirdan/wanderer/internal/storage"
)

const readWait = 5 * time.Second

func startServer(t *testing.T, opts Options) string {
	t.Helper()
	if opts.Game.World.Size == 0 {
		opts.Game = config.Default()
	}
	opts.Logger = log.New(io.Discard)
	srv, err := NewServer(opts)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sendJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func readMsg(t *testing.T, conn *websocket.Conn) (protocol.BaseMessage, []byte) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	base, err := protocol.DecodeBase(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return base, raw
}

func hello(player string) protocol.HelloMsg {
	return protocol.HelloMsg{
		Type:            protocol.TypeHello,
		ProtocolVersion: protocol.Version,
		ClientName:      "test",
		Player:          player,
	}
}

func intent(seq uint64, held []string, actions ...string) protocol.IntentMsg {
	return protocol.IntentMsg{
		Type:            protocol.TypeIntent,
		ProtocolVersion: protocol.Version,
		Seq:             seq,
		Held:            held,
		Actions:         actions,
	}
}

func join(t *testing.T, conn *websocket.Conn, player string) protocol.WelcomeMsg {
	t.Helper()
	sendJSON(t, conn, hello(player))
	base, raw := readMsg(t, conn)
	if base.Type != protocol.TypeWelcome {
		t.Fatalf("first message = %s, expected WELCOME", base.Type)
	}
	var w protocol.WelcomeMsg
	if err := json.Unmarshal(raw, &w); err != nil {
		t.Fatalf("welcome: %v", err)
	}
	return w
}

// readUntil reads snapshots until pred holds, skipping other messages.
func readUntil(t *testing.T, conn *websocket.Conn, pred func(protocol.SnapshotMsg) bool) protocol.SnapshotMsg {
	t.Helper()
	deadline := time.Now().Add(readWait)
	for time.Now().Before(deadline) {
		base, raw := readMsg(t, conn)
		if base.Type != protocol.TypeSnapshot {
			continue
		}
		var snap protocol.SnapshotMsg
		if err := json.Unmarshal(raw, &snap); err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if pred(snap) {
			return snap
		}
	}
	t.Fatal("condition not reached before deadline")
	return protocol.SnapshotMsg{}
}

func readError(t *testing.T, conn *websocket.Conn) protocol.ErrorMsg {
	t.Helper()
	deadline := time.Now().Add(readWait)
	for time.Now().Before(deadline) {
		base, raw := readMsg(t, conn)
		if base.Type != protocol.TypeError {
			continue
		}
		var e protocol.ErrorMsg
		if err := json.Unmarshal(raw, &e); err != nil {
			t.Fatalf("error message: %v", err)
		}
		return e
	}
	t.Fatal("no ERROR before deadline")
	return protocol.ErrorMsg{}
}

func waitForRuns(t *testing.T, store *storage.Store, n int) []storage.Run {
	t.Helper()
	deadline := time.Now().Add(readWait)
	for time.Now().Before(deadline) {
		runs, err := store.RecentRuns(10)
		if err != nil {
			t.Fatalf("RecentRuns: %v", err)
		}
		if len(runs) >= n {
			return runs
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("expected %d recorded runs", n)
	return nil
}

func TestHandshakeSendsWorld(t *testing.T) {
	url := startServer(t, Options{})
	conn := dial(t, url)
	w := join(t, conn, "ann")

	if w.SessionID == "" {
		t.Error("empty session id")
	}
	p := w.WorldParams
	if p.Seed != 12345 || p.Size != 60 || p.TickRateHz != 60 {
		t.Errorf("world params = %+v", p)
	}
	if len(w.Terrain.Kinds) != 60*60 {
		t.Errorf("terrain cells = %d", len(w.Terrain.Kinds))
	}
	if len(w.Resources) != 378 {
		t.Errorf("resources = %d, expected 378", len(w.Resources))
	}
	if w.Resources[0] != (protocol.ResourceMsg{ID: 1, X: 5, Z: 0, Kind: "herb"}) {
		t.Errorf("first resource = %+v", w.Resources[0])
	}
	if pos := w.Snapshot.Player.Pos; pos[0] != 122 || pos[2] != 122 {
		t.Errorf("spawn = %v, expected (122, 122)", pos)
	}

	v, err := protocol.NewValidator()
	if err != nil {
		t.Fatal(err)
	}
	if err := v.ValidateValue(protocol.TypeWelcome, w); err != nil {
		t.Errorf("welcome does not match schema: %v", err)
	}
}

func TestHeldKeyMovesPlayer(t *testing.T) {
	url := startServer(t, Options{})
	conn := dial(t, url)
	join(t, conn, "ann")

	sendJSON(t, conn, intent(1, []string{"forward"}))
	snap := readUntil(t, conn, func(s protocol.SnapshotMsg) bool {
		return s.Ack == 1 && s.Player.Pos[2] < 121
	})
	if snap.Player.Pos[0] != 122 {
		t.Errorf("x drifted to %v", snap.Player.Pos[0])
	}

	sendJSON(t, conn, intent(2, nil))
	readUntil(t, conn, func(s protocol.SnapshotMsg) bool { return s.Ack == 2 })
}

func TestActionOutcomeEvent(t *testing.T) {
	url := startServer(t, Options{})
	conn := dial(t, url)
	join(t, conn, "ann")

	sendJSON(t, conn, intent(1, nil, "craft_axe"))
	snap := readUntil(t, conn, func(s protocol.SnapshotMsg) bool { return len(s.Events) > 0 })
	ev := snap.Events[0]
	if ev.Action != "craft_axe" || ev.OK || ev.Code != protocol.ErrInsufficient {
		t.Errorf("event = %+v", ev)
	}
	if snap.Ack != 1 {
		t.Errorf("ack = %d, expected 1", snap.Ack)
	}
}

func TestHandshakeRejections(t *testing.T) {
	tests := []struct {
		name     string
		first    any
		wantCode string // ERROR sent before the close, if any
	}{
		{"intent first", intent(1, nil), ""},
		{"old version", protocol.HelloMsg{Type: protocol.TypeHello, ProtocolVersion: "0"}, protocol.ErrProtoVersion},
		{"unknown field", map[string]any{"type": "HELLO", "protocol_version": "1", "token": "x"}, protocol.ErrProtoBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := startServer(t, Options{})
			conn := dial(t, url)
			sendJSON(t, conn, tt.first)

			if tt.wantCode != "" {
				base, raw := readMsg(t, conn)
				var e protocol.ErrorMsg
				_ = json.Unmarshal(raw, &e)
				if base.Type != protocol.TypeError || e.Code != tt.wantCode {
					t.Fatalf("got %s %q, expected ERROR %s", base.Type, e.Code, tt.wantCode)
				}
			}

			_ = conn.SetReadDeadline(time.Now().Add(readWait))
			_, _, err := conn.ReadMessage()
			if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
				t.Errorf("err = %v, expected policy violation close", err)
			}
		})
	}
}

func TestBadMessagesAnsweredWithError(t *testing.T) {
	url := startServer(t, Options{})
	conn := dial(t, url)
	join(t, conn, "ann")

	sendJSON(t, conn, map[string]any{"type": "INTENT", "protocol_version": "1", "seq": 1, "held": []string{"jump"}})
	if e := readError(t, conn); e.Code != protocol.ErrProtoBadRequest {
		t.Errorf("code = %q", e.Code)
	}

	sendJSON(t, conn, hello("again"))
	if e := readError(t, conn); e.Code != protocol.ErrProtoBadRequest {
		t.Errorf("code = %q", e.Code)
	}

	// The session survives bad input.
	sendJSON(t, conn, intent(7, nil))
	readUntil(t, conn, func(s protocol.SnapshotMsg) bool { return s.Ack == 7 })
}

func TestDisconnectRecordsRun(t *testing.T) {
	store := openStore(t)
	url := startServer(t, Options{Store: store, Difficulty: "hard"})
	conn := dial(t, url)
	join(t, conn, "ann")
	readUntil(t, conn, func(s protocol.SnapshotMsg) bool { return s.Tick >= 3 })
	conn.Close()

	runs := waitForRuns(t, store, 1)
	r := runs[0]
	if r.Cause != storage.CauseDisconnect || r.Player != "ann" || r.Difficulty != "hard" || r.Seed != 12345 {
		t.Errorf("run = %+v", r)
	}
	if r.DurationSecs <= 0 {
		t.Errorf("duration = %v", r.DurationSecs)
	}
}

func TestStarvationEndsSession(t *testing.T) {
	cfg := config.Default()
	cfg.Player.MaxHunger = 1
	cfg.Survival.HungerInterval = 0.01
	cfg.Survival.HungerDrain = 1
	cfg.Survival.StarveInterval = 0.01
	cfg.Survival.StarveDamage = 1000

	store := openStore(t)
	url := startServer(t, Options{Game: cfg, Store: store})
	conn := dial(t, url)
	join(t, conn, "")

	snap := readUntil(t, conn, func(s protocol.SnapshotMsg) bool { return s.GameOver })
	if snap.Player.Health != 0 {
		t.Errorf("health = %v", snap.Player.Health)
	}

	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("err = %v, expected normal close", err)
	}

	runs := waitForRuns(t, store, 1)
	if runs[0].Cause != storage.CauseStarved || runs[0].Player != "remote" {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestIntentBuffer(t *testing.T) {
	var b intentBuffer
	b.add(game.Intent{Held: core.MoveForward, Harvest: true, YawDelta: 1}, 1)
	b.add(game.Intent{Held: core.MoveLeft, YawDelta: 0.5, PitchDelta: -1}, 2)

	in, ack := b.take()
	want := game.Intent{Held: core.MoveLeft, Harvest: true, YawDelta: 1.5, PitchDelta: -1}
	if in != want || ack != 2 {
		t.Fatalf("take = %+v ack %d, expected %+v ack 2", in, ack, want)
	}

	// Held keys stay down across ticks; edges do not repeat.
	in, ack = b.take()
	if in != (game.Intent{Held: core.MoveLeft}) || ack != 2 {
		t.Errorf("second take = %+v ack %d", in, ack)
	}

	b.add(game.Intent{}, 3)
	if in, _ = b.take(); !in.Empty() {
		t.Errorf("release = %+v, expected empty", in)
	}
}

func TestDroppedSnapshotsCarryDeltas(t *testing.T) {
	sess := &session{out: make(chan []byte, 1)}
	sess.sendSnapshot(protocol.SnapshotMsg{Tick: 1, Removed: []uint32{1}})
	sess.sendSnapshot(protocol.SnapshotMsg{
		Tick:    2,
		Removed: []uint32{2},
		Events:  []protocol.EventMsg{{Action: "harvest", OK: true}},
		Decay:   protocol.DecayMsg{Starved: true},
	})

	var first protocol.SnapshotMsg
	if err := json.Unmarshal(<-sess.out, &first); err != nil {
		t.Fatal(err)
	}
	if first.Tick != 1 {
		t.Fatalf("first tick = %d", first.Tick)
	}

	sess.sendSnapshot(protocol.SnapshotMsg{Tick: 3, Removed: []uint32{3}})
	var next protocol.SnapshotMsg
	if err := json.Unmarshal(<-sess.out, &next); err != nil {
		t.Fatal(err)
	}
	if next.Tick != 3 || len(next.Removed) != 2 || next.Removed[0] != 2 || next.Removed[1] != 3 {
		t.Errorf("next = tick %d removed %v", next.Tick, next.Removed)
	}
	if len(next.Events) != 1 || next.Events[0].Action != "harvest" {
		t.Errorf("events = %+v", next.Events)
	}
	if !next.Decay.Starved || next.Decay.HungerDrained {
		t.Errorf("decay = %+v, expected the dropped starvation flag", next.Decay)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	srv, err := NewServer(Options{Game: config.Default(), Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe: %v", err)
		}
	case <-time.After(readWait):
		t.Fatal("server did not stop")
	}
}

func TestSessionRegistry(t *testing.T) {
	r := newSessionRegistry()
	t0 := time.Unix(100, 0)
	if !r.register(SessionInfo{ID: "b", Started: t0.Add(time.Second)}, 2) {
		t.Fatal("first session refused")
	}
	if !r.register(SessionInfo{ID: "a", Started: t0}, 2) {
		t.Fatal("second session refused")
	}
	if r.register(SessionInfo{ID: "c", Started: t0}, 2) {
		t.Error("third session admitted over limit")
	}
	list := r.list()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("list = %+v, expected a then b", list)
	}
	r.unregister("a")
	if !r.register(SessionInfo{ID: "c", Started: t0}, 2) {
		t.Error("session refused after a slot freed")
	}
	if !r.register(SessionInfo{ID: "d"}, 0) {
		t.Error("zero limit refused a session")
	}
	if r.count() != 3 {
		t.Errorf("count = %d, expected 3", r.count())
	}
}

func TestServerFullRefusesSession(t *testing.T) {
	srv, err := NewServer(Options{Game: config.Default(), Logger: log.New(io.Discard), MaxSessions: 1})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	url := "ws" + strings.TrimPrefix(ts.URL, "http")

	first := dial(t, url)
	w := join(t, first, "ann")
	live := srv.Sessions()
	if len(live) != 1 || live[0].ID != w.SessionID || live[0].Player != "ann" {
		t.Fatalf("Sessions() = %+v", live)
	}

	second := dial(t, url)
	sendJSON(t, second, hello("bob"))
	_ = second.SetReadDeadline(time.Now().Add(readWait))
	_, _, err = second.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		t.Fatalf("second session: %v, expected try-again-later close", err)
	}

	first.Close()
	deadline := time.Now().Add(readWait)
	for len(srv.Sessions()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("session not unregistered after disconnect")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
