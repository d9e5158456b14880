// Package session pairs one draft controller with one list controller per
// opened view, the way a page mounts its form and its list together.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"table-booking/internal/infra/notify"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Draft     commands.DraftCommands
	List      queries.ReservationListQueries
	Inbox     *notify.Inbox

	activated chan struct{}
	lastSeen  time.Time // guarded by Registry.mu
}

// Activated is closed once the list's first load has finished, successfully or not.
func (s *Session) Activated() <-chan struct{} {
	return s.activated
}

func (s *Session) close() {
	s.Draft.Close()
	s.List.Close()
}

type Registry struct {
	creator   commands.ReservationCreator
	lister    queries.ReservationLister
	clock     clock.Clock
	logger    *slog.Logger
	draftOpts commands.DraftOptions
	idleTTL   time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewRegistry(
	creator commands.ReservationCreator,
	lister queries.ReservationLister,
	clk clock.Clock,
	logger *slog.Logger,
	draftCfg config.DraftConfig,
	sessionCfg config.SessionConfig,
) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		creator:   creator,
		lister:    lister,
		clock:     clk,
		logger:    logger,
		draftOpts: commands.DraftOptions{SingleFlight: draftCfg.SingleFlight},
		idleTTL:   sessionCfg.IdleTTL,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Open mounts a new view and starts its single list load in the background.
// The load outlives ctx's cancellation but keeps its values.
func (r *Registry) Open(ctx context.Context) *Session {
	id := uuid.New()
	logger := r.logger.With("session_id", id.String())
	inbox := notify.NewInbox(r.clock, logger)

	now := r.clock.Now()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		Draft:     commands.NewDraftCommands(r.creator, inbox, logger, r.draftOpts),
		List:      queries.NewReservationListQueries(r.lister, logger),
		Inbox:     inbox,
		activated: make(chan struct{}),
	}

	r.mu.Lock()
	expired := r.evictIdleLocked(now)
	r.sessions[id] = s
	r.mu.Unlock()
	r.closeEvicted(expired)

	logger.Info("Session opened")

	activateCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(s.activated)
		_ = s.List.Activate(activateCtx)
	}()

	return s
}

// Get returns the session and marks it as seen. Sessions idle for longer
// than the configured TTL are closed first and no longer found.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	now := r.clock.Now()
	r.mu.Lock()
	expired := r.evictIdleLocked(now)
	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = now
	}
	r.mu.Unlock()
	r.closeEvicted(expired)

	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return s, nil
}

// evictIdleLocked removes the sessions idle past the TTL. A zero TTL keeps
// every session. r.mu must be held.
func (r *Registry) evictIdleLocked(now time.Time) []*Session {
	if r.idleTTL <= 0 {
		return nil
	}
	var expired []*Session
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.idleTTL {
			delete(r.sessions, id)
			expired = append(expired, s)
		}
	}
	return expired
}

func (r *Registry) closeEvicted(expired []*Session) {
	for _, s := range expired {
		s.close()
		r.logger.Info("Session expired", "session_id", s.ID.String(), "idle_ttl", r.idleTTL.String())
	}
}

// Close tears the view down. Requests still in flight finish but their
// results are dropped.
func (r *Registry) Close(id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return errs.ErrSessionNotFound
	}
	s.close()
	r.logger.Info("Session closed", "session_id", id.String())
	return nil
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[uuid.UUID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
