/*
Package workspace keeps one portal per browser.

A Workspace wraps a portal.Portal behind a mutex so requests from the same browser run one at a time,
the way a single-page client processes one user action at a time. The Manager creates workspaces,
looks them up by id and removes them once they have been idle for the configured timeout.
*/
package workspace

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"innoevent/internal/app/portal"
	"innoevent/internal/pkg/logx"
)

// Factory builds the portal of a new workspace. Notices raised by the portal go to notifier.
type Factory func(notifier portal.Notifier) *portal.Portal

// cleanupMsg asks the Manager to drop an idle workspace.
type cleanupMsg struct {
	ID string
}

// Manager tracks every live workspace.
type Manager struct {
	// workspaces is keyed by workspace id.
	workspaces map[string]*Workspace

	factory     Factory
	idleTimeout time.Duration

	// mu protects the workspaces map.
	mu sync.RWMutex

	// cleanup receives idle notifications from workspaces.
	cleanup chan cleanupMsg

	// wg waits for runCleanupLoop during shutdown.
	wg sync.WaitGroup

	logger zerolog.Logger
}

// NewManager starts a Manager whose workspaces expire after idleTimeout without a request.
func NewManager(factory Factory, idleTimeout time.Duration) *Manager {
	m := &Manager{
		workspaces:  make(map[string]*Workspace),
		factory:     factory,
		idleTimeout: idleTimeout,
		cleanup:     make(chan cleanupMsg, 16),
		logger:      logx.Component("workspace"),
	}

	m.wg.Add(1)
	go m.runCleanupLoop()

	return m
}

func (m *Manager) runCleanupLoop() {
	defer m.wg.Done()

	m.logger.Info().Msg("Cleanup loop started.")

	for msg := range m.cleanup {
		m.expire(msg.ID)
	}

	m.logger.Info().Msg("Cleanup loop stopped.")
}

// expire removes the workspace unless it was used again after its idle timer fired.
func (m *Manager) expire(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, ok := m.workspaces[id]
	if !ok {
		return
	}
	if !ws.idleSince(m.idleTimeout) {
		return
	}

	ws.stop()
	delete(m.workspaces, id)
	m.logger.Debug().Str("workspace_id", id).Msg("Idle workspace removed.")
}

// Create registers a new workspace with a fresh id.
func (m *Manager) Create() *Workspace {
	id := uuid.NewString()
	ws := newWorkspace(id, m.factory, m.idleTimeout, m.cleanup)

	m.mu.Lock()
	m.workspaces[id] = ws
	m.mu.Unlock()

	m.logger.Debug().Str("workspace_id", id).Msg("Workspace created.")
	return ws
}

// Get returns the workspace with id, or nil.
func (m *Manager) Get(id string) *Workspace {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.workspaces[id]
}

// Len returns the number of live workspaces.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.workspaces)
}

// Shutdown stops every workspace timer, closes the cleanup loop and waits for it to exit.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down workspace manager...")

	m.mu.Lock()
	for _, ws := range m.workspaces {
		ws.stop()
	}
	m.workspaces = make(map[string]*Workspace)
	m.mu.Unlock()

	close(m.cleanup)
	m.wg.Wait()

	m.logger.Info().Msg("Workspace manager shutdown complete.")
}
