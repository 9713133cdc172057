package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/vovakirdan/wanderer/internal/core"
	"github.com/vovakirdan/wanderer/internal/game"
	"github.com/vovakirdan/wanderer/internal/protocol"
	"github.com/vovakirdan/wanderer/internal/storage"
)

type session struct {
	id      string
	player  string
	game    *game.Game
	out     chan []byte
	intents chan protocol.IntentMsg

	// Deltas of snapshots dropped for a slow client, resent with the next.
	carryRemoved []uint32
	carryEvents  []protocol.EventMsg
	carryDecay   protocol.DecayMsg
}

// intentBuffer folds client intents between ticks. Held keys are a level
// and the latest message wins; actions and look deltas accumulate until
// the tick takes them.
type intentBuffer struct {
	held    core.MoveSet
	pending game.Intent
	ack     uint64
}

func (b *intentBuffer) add(in game.Intent, seq uint64) {
	b.held = in.Held
	b.pending.Harvest = b.pending.Harvest || in.Harvest
	b.pending.Eat = b.pending.Eat || in.Eat
	b.pending.CraftCampfire = b.pending.CraftCampfire || in.CraftCampfire
	b.pending.CraftAxe = b.pending.CraftAxe || in.CraftAxe
	b.pending.YawDelta += in.YawDelta
	b.pending.PitchDelta += in.PitchDelta
	b.ack = seq
}

func (b *intentBuffer) take() (game.Intent, uint64) {
	in := b.pending
	in.Held = b.held
	b.pending = game.Intent{}
	return in, b.ack
}

// run drives the session's game at the configured tick rate until the
// player starves or ctx is cancelled, and returns the run end cause.
func (s *Server) run(ctx context.Context, sess *session) string {
	rate := s.opts.Game.Runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	var buf intentBuffer
	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return storage.CauseDisconnect

		case m := <-sess.intents:
			in, err := m.Intent()
			if err != nil {
				sess.reject(protocol.ErrProtoBadRequest, err.Error())
				continue
			}
			buf.add(in, m.Seq)

		case <-ticker.C:
			now := s.now()
			dt := s.opts.Game.ClampFrame(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now

			in, ack := buf.take()
			snap := sess.game.Advance(dt, in)
			msg := protocol.NewSnapshot(snap, ack)
			if snap.GameOver {
				sess.sendFinal(ctx, msg)
				return storage.CauseStarved
			}
			sess.sendSnapshot(msg)
		}
	}
}

// sendSnapshot queues msg without blocking. When the queue is full the
// snapshot is dropped and its removals and events ride on the next one.
func (s *session) sendSnapshot(msg protocol.SnapshotMsg) {
	s.merge(&msg)
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case s.out <- b:
	default:
		s.carryRemoved = msg.Removed
		s.carryEvents = msg.Events
		s.carryDecay = msg.Decay
	}
}

// sendFinal queues the last snapshot followed by the close marker.
func (s *session) sendFinal(ctx context.Context, msg protocol.SnapshotMsg) {
	s.merge(&msg)
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	for _, m := range [][]byte{b, nil} {
		select {
		case s.out <- m:
		case <-ctx.Done():
			return
		}
	}
}

func (s *session) merge(msg *protocol.SnapshotMsg) {
	if len(s.carryRemoved) > 0 {
		msg.Removed = append(s.carryRemoved, msg.Removed...)
	}
	if len(s.carryEvents) > 0 {
		msg.Events = append(s.carryEvents, msg.Events...)
	}
	msg.Decay.HungerDrained = msg.Decay.HungerDrained || s.carryDecay.HungerDrained
	msg.Decay.Starved = msg.Decay.Starved || s.carryDecay.Starved
	s.carryRemoved, s.carryEvents = nil, nil
	s.carryDecay = protocol.DecayMsg{}
}

// reject queues an ERROR reply, dropping it if the client is not reading.
func (s *session) reject(code, message string) {
	b, err := json.Marshal(protocol.NewError(code, message))
	if err != nil {
		return
	}
	select {
	case s.out <- b:
	default:
	}
}
