package workspace

import (
	"sync"
	"time"

	"innoevent/internal/app/portal"
	"innoevent/internal/pkg/logx"
)

// Result is what a request sees after running an operation: the resulting view and the notices
// raised along the way.
type Result struct {
	View    portal.Snapshot `json:"view"`
	Notices []portal.Notice `json:"notices"`
}

// Workspace is one browser's portal.
type Workspace struct {
	ID string

	portal *portal.Portal
	queue  *portal.Queue

	// mu serializes operations on the portal.
	mu sync.Mutex

	// seenMu guards lastSeen, which the cleanup loop reads without taking mu.
	seenMu   sync.Mutex
	lastSeen time.Time

	idleTimeout time.Duration
	idleTimer   *time.Timer
	stopOnce    sync.Once
}

func newWorkspace(id string, factory Factory, idleTimeout time.Duration, cleanup chan<- cleanupMsg) *Workspace {
	queue := &portal.Queue{}
	ws := &Workspace{
		ID:          id,
		portal:      factory(queue),
		queue:       queue,
		lastSeen:    time.Now(),
		idleTimeout: idleTimeout,
	}

	ws.idleTimer = time.AfterFunc(idleTimeout, func() {
		defer func() {
			if r := recover(); r != nil {
				logx.Warn("Recovered from panic during workspace cleanup notification (channel likely closed).", "workspace_id", id)
			}
		}()

		select {
		case cleanup <- cleanupMsg{ID: id}:
		default:
			logx.Warn("Workspace cleanup channel full. Skipping cleanup notification.", "workspace_id", id)
		}
	})

	return ws
}

// Do runs fn on the portal while holding the workspace lock and returns the resulting view with
// the drained notices. fn's error is returned alongside the result.
func (w *Workspace) Do(fn func(p *portal.Portal) error) (Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.touch()

	err := fn(w.portal)
	return Result{View: w.portal.Snapshot(), Notices: w.queue.Drain()}, err
}

func (w *Workspace) touch() {
	w.seenMu.Lock()
	w.lastSeen = time.Now()
	w.seenMu.Unlock()

	w.idleTimer.Reset(w.idleTimeout)
}

func (w *Workspace) idleSince(timeout time.Duration) bool {
	w.seenMu.Lock()
	defer w.seenMu.Unlock()

	return time.Since(w.lastSeen) >= timeout
}

func (w *Workspace) stop() {
	w.stopOnce.Do(func() {
		w.idleTimer.Stop()
	})
}
