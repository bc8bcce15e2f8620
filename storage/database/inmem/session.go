package inmemdb

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core/session"
)

var errSessionExists = errors.New("a session with this ID already exists")

type sessionRepository struct {
	db *sessionTable
}

func NewSessionRepository(db *DB) session.Repository {
	return &sessionRepository{db: db.session}
}

// query returns all sessions, oldest first. Must be called with the table locked.
func (repo *sessionRepository) query() []*session.Session {
	sessions := make([]*session.Session, 0, len(repo.db.table))
	for _, sess := range repo.db.table {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.Before(sessions[j].CreatedAt) })
	return sessions
}

func (repo *sessionRepository) CreateSession(sess *session.Session) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[sess.ID]; ok {
		return errSessionExists
	}
	repo.db.table[sess.ID] = sess
	return nil
}

func (repo *sessionRepository) GetSession(id string) (*session.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sess, ok := repo.db.table[id]; ok {
		return sess, nil
	}
	return nil, session.ErrNotFound
}

func (repo *sessionRepository) QueryAllSessions() ([]*session.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *sessionRepository) QueryIdleSessions(before time.Time) ([]*session.Session, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	idle := make([]*session.Session, 0)
	for _, sess := range repo.query() {
		if sess.LastSeen().Before(before) {
			idle = append(idle, sess)
		}
	}
	return idle, nil
}

func (repo *sessionRepository) DeleteSession(id string) (*session.Session, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sess, ok := repo.db.table[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	delete(repo.db.table, id)
	return sess, nil
}
