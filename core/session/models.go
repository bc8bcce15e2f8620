package session

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/chat"
	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/workflow"
)

// Roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var (
	ErrNotFound    = errors.New("session not found")
	ErrInvalidRole = errors.New("role must be one of [teacher, student]")
)

type (
	// Session is the state of one visitor of a portal. The pending flags, chat history and
	// studio results live here and nowhere else.
	Session struct {
		ID        string
		Role      string
		CreatedAt time.Time

		// exactly one of them is set, depending on Role
		Conversation *chat.Conversation
		Studio       *classroom.Studio

		dashboard *workflow.Workflow

		mu       sync.RWMutex
		lastSeen time.Time
	}

	Info struct {
		ID        string    `json:"id"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
		LastSeen  time.Time `json:"last_seen"`
	}

	DashboardView struct {
		Pending   bool         `json:"pending"`
		Dashboard interface{}  `json:"dashboard,omitempty"`
		Notice    *core.Notice `json:"notice,omitempty"`
	}
)

func IsValidRole(role string) bool { return role == RoleTeacher || role == RoleStudent }

func (s *Session) IsTeacher() bool { return s.Role == RoleTeacher }
func (s *Session) IsStudent() bool { return s.Role == RoleStudent }

func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) Info() Info {
	return Info{ID: s.ID, Role: s.Role, CreatedAt: s.CreatedAt, LastSeen: s.LastSeen()}
}

func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Info())
}

// Dashboard returns the role's dashboard once it has loaded, along with the welcome toast.
func (s *Session) Dashboard() DashboardView {
	res, ok := s.dashboard.Result()
	if !ok {
		return DashboardView{Pending: s.dashboard.Pending()}
	}
	notice := classroom.StudentWelcome
	if s.IsTeacher() {
		notice = classroom.TeacherWelcome
	}
	return DashboardView{Dashboard: res, Notice: &notice}
}

// DashboardDone is closed once the dashboard has loaded or the session is closed.
func (s *Session) DashboardDone() <-chan struct{} { return s.dashboard.Done() }

// close cancels every operation in flight.
func (s *Session) close() {
	s.dashboard.Stop()
	if s.Conversation != nil {
		s.Conversation.Close()
	}
	if s.Studio != nil {
		s.Studio.Close()
	}
}
