// Package tracker drives the player poller on a timer and turns the end of a
// playback session into a rename and a history entry.
//
// A single goroutine (Run) owns the current snapshot and the history store.
// Everything else talks to it through request channels.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/log"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/progress"
	"github.com/vlctrack/vlctrack/rename"
)

// ErrNotRunning is returned by requests made after Run has returned.
var ErrNotRunning = errors.New("tracker is not running")

// Poller is the part of player.Poller the tracker needs.
type Poller interface {
	Poll(ctx context.Context) player.Result
}

// Publisher receives the current snapshot after every poll.
type Publisher interface {
	Publish(current mo.Option[player.Status])
}

// State of the tracking state machine.
type State int

const (
	Idle State = iota
	Tracking
)

func (s State) String() string {
	return lo.Ternary(s == Tracking, "tracking", "idle")
}

// Options tune the polling loop.
type Options struct {
	Interval time.Duration
	// UnavailableGrace is how many consecutive unreachable polls end a session.
	UnavailableGrace int
	Publisher        Publisher
}

// OptionsFromConfig reads the tracker.* keys.
func OptionsFromConfig() Options {
	return Options{
		Interval:         time.Duration(viper.GetInt(key.TrackerInterval)) * time.Millisecond,
		UnavailableGrace: viper.GetInt(key.TrackerUnavailableGrace),
	}
}

const eventBuffer = 16

// Tracker polls the player and records finished sessions.
type Tracker struct {
	poller    Poller
	store     history.Store
	interval  time.Duration
	grace     int
	publisher Publisher

	// owned by Run
	state   State
	current mo.Option[player.Status]
	misses  int

	events   chan Event
	requests chan func()
	stopped  chan struct{}
}

// New returns a tracker. Call Run to start polling.
func New(poller Poller, store history.Store, opts Options) *Tracker {
	if opts.Interval <= 0 {
		opts.Interval = 2 * time.Second
	}
	if opts.UnavailableGrace < 1 {
		opts.UnavailableGrace = 1
	}

	return &Tracker{
		poller:    poller,
		store:     store,
		interval:  opts.Interval,
		grace:     opts.UnavailableGrace,
		publisher: opts.Publisher,
		current:   mo.None[player.Status](),
		events:    make(chan Event, eventBuffer),
		requests:  make(chan func()),
		stopped:   make(chan struct{}),
	}
}

// Events returns the event stream. Events are dropped while the channel is
// full and the channel is closed when Run returns.
func (t *Tracker) Events() <-chan Event {
	return t.events
}

// Run polls until ctx is cancelled. It polls once immediately, then on every
// tick. Ticks that arrive while a poll is still running are skipped.
func (t *Tracker) Run(ctx context.Context) error {
	defer close(t.events)
	defer close(t.stopped)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	results := make(chan player.Result, 1)
	inFlight := false

	poll := func() {
		inFlight = true
		go func() {
			results <- t.poller.Poll(ctx)
		}()
	}

	poll()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !inFlight {
				poll()
			}
		case result := <-results:
			inFlight = false
			t.handle(result)
		case fn := <-t.requests:
			fn()
		}
	}
}

func (t *Tracker) handle(result player.Result) {
	defer t.publish()

	switch result.Outcome {
	case player.Loaded:
		t.misses = 0
		t.state = Tracking
		t.current = mo.Some(result.Status)
		t.emit(Event{Type: EventNowPlaying, Status: result.Status})
	case player.Absent:
		log.Debug("player not running")
		if t.state == Tracking {
			t.finish()
		}
	case player.Unavailable:
		log.Debugf("player unavailable: %v", result.Err)
		if t.state != Tracking {
			return
		}

		t.misses++
		if errors.Is(result.Err, player.ErrNothingPlaying) || t.misses >= t.grace {
			t.finish()
		}
	}
}

// finish ends the tracked session: classify, rename, record.
func (t *Tracker) finish() {
	status, _ := t.current.Get()

	t.state = Idle
	t.misses = 0
	t.current = mo.None[player.Status]()

	stopped := Event{Type: EventStopped, Status: status, Entry: mo.None[history.Entry]()}

	// nothing was watched
	if status.Position <= 0 {
		t.emit(stopped)
		return
	}

	watched := progress.IsWatched(status.Position, status.Length)
	path := rename.Apply(status.File, watched, progress.FilenameMarker(status.Position))
	timestamp := progress.Timestamp(status.Position)

	if err := t.store.Upsert(path, timestamp, watched, status.Length); err != nil {
		log.Errorf("record %s: %v", path, err)
		t.emit(stopped)
		return
	}

	log.Infof("recorded %s at %s (watched: %t)", path, timestamp, watched)

	stopped.Entry = mo.Some(history.Entry{
		File:      path,
		Timestamp: lo.Ternary(watched, constant.WatchedMarker, timestamp),
		Watched:   watched,
		Length:    status.Length,
	})
	t.emit(stopped)
	t.emit(Event{Type: EventHistoryChanged})
}

func (t *Tracker) publish() {
	if t.publisher != nil {
		t.publisher.Publish(t.current)
	}
}

func (t *Tracker) emit(e Event) {
	e.Timestamp = time.Now()

	select {
	case t.events <- e:
	default:
		// Drop event if channel is full
	}
}

// do runs fn on the owner goroutine and waits for it to finish.
func (t *Tracker) do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	req := func() {
		defer close(done)
		fn()
	}

	select {
	case t.requests <- req:
	case <-t.stopped:
		return ErrNotRunning
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Current returns the status of the file being tracked, if any.
func (t *Tracker) Current(ctx context.Context) (mo.Option[player.Status], error) {
	var current mo.Option[player.Status]
	if err := t.do(ctx, func() { current = t.current }); err != nil {
		return mo.None[player.Status](), err
	}
	return current, nil
}

// State returns whether a session is being tracked.
func (t *Tracker) State(ctx context.Context) (State, error) {
	var state State
	if err := t.do(ctx, func() { state = t.state }); err != nil {
		return Idle, err
	}
	return state, nil
}

// History loads all history entries.
func (t *Tracker) History(ctx context.Context) ([]history.Entry, error) {
	var (
		entries []history.Entry
		err     error
	)
	if e := t.do(ctx, func() { entries, err = t.store.Load() }); e != nil {
		return nil, e
	}
	return entries, err
}

// Delete removes the entry for path, and the file itself when removeFile is set.
// A failed file removal returns a *history.DeletionError and keeps the entry.
func (t *Tracker) Delete(ctx context.Context, path string, removeFile bool) error {
	var err error
	if e := t.do(ctx, func() {
		if err = t.store.Delete(path, removeFile); err == nil {
			t.emit(Event{Type: EventHistoryChanged})
		}
	}); e != nil {
		return e
	}
	return err
}

// Clear removes every history entry.
func (t *Tracker) Clear(ctx context.Context) error {
	var err error
	if e := t.do(ctx, func() {
		if err = t.store.Clear(); err == nil {
			t.emit(Event{Type: EventHistoryChanged})
		}
	}); e != nil {
		return e
	}
	return err
}
