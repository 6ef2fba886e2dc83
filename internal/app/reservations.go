package app

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/movie-booking-client/internal/reservation"
)

// reservationStore holds the live reservation session of each browser
// session, keyed by scs token. Sessions are in-memory only; nothing here
// survives a restart, matching the purely client-side nature of a hold.
type reservationStore struct {
	mu       sync.Mutex
	sessions map[string]*reservation.Session
}

func newReservationStore() *reservationStore {
	return &reservationStore{
		sessions: make(map[string]*reservation.Session),
	}
}

func (rs *reservationStore) get(token string) (*reservation.Session, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	session, ok := rs.sessions[token]

	return session, ok
}

func (rs *reservationStore) put(token string, session *reservation.Session) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if old, ok := rs.sessions[token]; ok && old != session {
		old.Close()
	}

	rs.sessions[token] = session
}

func (rs *reservationStore) remove(token string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if session, ok := rs.sessions[token]; ok {
		session.Close()
		delete(rs.sessions, token)
	}
}

func (rs *reservationStore) snapshot() []*reservation.Session {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	sessions := make([]*reservation.Session, 0, len(rs.sessions))
	for _, s := range rs.sessions {
		sessions = append(sessions, s)
	}

	return sessions
}

// run drives every live session's countdown at one tick per second until the
// context is cancelled. The store is the single ticking goroutine; sessions
// serialize ticks against toggles and confirms internally.
func (rs *reservationStore) run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, session := range rs.snapshot() {
				session.Tick()
			}
		}
	}
}
