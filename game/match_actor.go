// File: game/match_actor.go
package game

import (
	"fmt"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/lguibr/bollywood"

	"github.com/pong3d/pong3d/utils"
)

// SnapshotObserver receives every emitted snapshot. Implementations must be
// fast; Observe runs on the simulation goroutine.
type SnapshotObserver interface {
	Observe(Snapshot)
}

// MatchActor is the tick driver. It exclusively owns a Match, drains input
// commands from its mailbox, advances the simulation once per tick with a
// measured and clamped dt, and hands the resulting snapshot to the
// broadcaster. All simulation state stays inside this actor; the rest of
// the process only ever sees snapshots.
type MatchActor struct {
	cfg            utils.Config
	match          *Match
	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID
	observer       SnapshotObserver
	selfPID        *bollywood.PID

	ticker       *time.Ticker
	stopTickerCh chan struct{}
	lastTick     time.Time

	lastSnapshot Snapshot
}

// NewMatchActorProducer creates a producer for the MatchActor. rng feeds AI
// prediction error; observer may be nil to disable telemetry.
func NewMatchActorProducer(engine *bollywood.Engine, cfg utils.Config, rng *rand.Rand, broadcasterPID *bollywood.PID, observer SnapshotObserver) bollywood.Producer {
	return func() bollywood.Actor {
		a := &MatchActor{
			cfg:            cfg,
			match:          NewMatch(cfg, rng),
			engine:         engine,
			broadcasterPID: broadcasterPID,
			observer:       observer,
			stopTickerCh:   make(chan struct{}),
		}
		a.lastSnapshot = a.match.Snapshot()
		return a
	}
}

// Receive is the MatchActor's message handler.
func (a *MatchActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in MatchActor Receive: %v\nStack trace:\n%s\n", r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.lastTick = time.Now()
		a.ticker = time.NewTicker(a.cfg.TickPeriod())
		go a.runTickerLoop()

	case MatchTick:
		a.step()

	case CommandMessage:
		if err := a.match.Apply(msg.Cmd); err != nil {
			// Rejected at the boundary; previous state is retained.
			fmt.Printf("MatchActor %s: rejected command: %v\n", a.selfPID, err)
		}

	case GetSnapshotRequest:
		// Reply with the last emitted snapshot, minus its events: the
		// broadcast stream is the only place events appear, and it
		// delivers each one exactly once.
		snap := a.lastSnapshot
		snap.Events = nil
		ctx.Reply(SnapshotResponse{Snapshot: snap})

	case bollywood.Stopping:
		if a.ticker != nil {
			a.ticker.Stop()
			select {
			case <-a.stopTickerCh:
			default:
				close(a.stopTickerCh)
			}
		}

	case bollywood.Stopped:

	default:
		fmt.Printf("MatchActor %s: unknown message type %T\n", a.selfPID, msg)
	}
}

// step advances the match by the elapsed wall-clock time and emits the
// tick's snapshot. Commands already in the mailbox were applied before this
// message, which gives the drain-then-advance ordering for free.
func (a *MatchActor) step() {
	now := time.Now()
	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now
	if dt > a.cfg.MaxDelta {
		dt = a.cfg.MaxDelta
	}

	a.match.Advance(dt)
	snap := a.match.Snapshot()
	a.lastSnapshot = snap

	if a.observer != nil {
		a.observer.Observe(snap)
	}
	if a.broadcasterPID != nil {
		a.engine.Send(a.broadcasterPID, BroadcastSnapshotCommand{Snapshot: snap}, a.selfPID)
	}
}

// runTickerLoop sends MatchTick messages to the actor's own mailbox at the
// configured rate until stopped.
func (a *MatchActor) runTickerLoop() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in MatchActor ticker loop: %v\n", r)
		}
	}()

	for {
		select {
		case <-a.stopTickerCh:
			return
		case _, ok := <-a.ticker.C:
			if !ok {
				return
			}
			if a.selfPID != nil {
				a.engine.Send(a.selfPID, MatchTick{}, nil)
			}
		}
	}
}
