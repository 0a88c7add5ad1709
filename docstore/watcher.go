package docstore

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	appLog "tripkit/internal/log"
)

const pollTimeout = 10 * time.Second

// Snapshot is the observed state of a watched document at one poll.
type Snapshot struct {
	Exists bool
	Data   map[string]any
}

// Watcher emulates document snapshot listeners over a polling REST
// backend: each registered document is re-read on a cron schedule and the
// callback fires whenever the observed data changes (including the first
// observation and deletion).
type Watcher struct {
	client   *Client
	schedule string
	cron     *cron.Cron

	mu      sync.Mutex
	started bool
}

// NewWatcher builds a watcher polling on the given cron schedule
// (e.g. "@every 30s" or "*/1 * * * *").
func NewWatcher(client *Client, schedule string) (*Watcher, error) {
	if client == nil {
		return nil, errors.New("docstore client is nil")
	}
	if schedule == "" {
		return nil, errors.New("watch schedule is empty")
	}
	return &Watcher{
		client:   client,
		schedule: schedule,
		cron:     cron.New(),
	}, nil
}

// OnSnapshot registers a callback for a single document. Callbacks are
// serialized per registration; keep them short. Polls that outlast the
// schedule interval overlap, so the change-detection state is guarded.
func (w *Watcher) OnSnapshot(collection, id string, fn func(Snapshot)) error {
	if fn == nil {
		return errors.New("snapshot callback is nil")
	}

	var (
		mu   sync.Mutex
		seen bool
		last Snapshot
	)

	_, err := w.cron.AddFunc(w.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
		defer cancel()

		snap, err := w.poll(ctx, collection, id)
		if err != nil {
			appLog.Error("docstore watch poll failed", err, "collection", collection, "id", id)
			return
		}

		mu.Lock()
		defer mu.Unlock()
		if seen && reflect.DeepEqual(last, snap) {
			return
		}
		seen = true
		last = snap
		fn(snap)
	})
	return err
}

// Start begins polling in the background.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	w.cron.Start()
	appLog.Info("docstore watcher started", "schedule", w.schedule)
}

// Stop halts polling and waits for in-flight polls to finish.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	w.started = false
	<-w.cron.Stop().Done()
	appLog.Info("docstore watcher stopped")
}

func (w *Watcher) poll(ctx context.Context, collection, id string) (Snapshot, error) {
	data, err := w.client.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Snapshot{Exists: false}, nil
		}
		return Snapshot{}, err
	}
	return Snapshot{Exists: true, Data: data}, nil
}
