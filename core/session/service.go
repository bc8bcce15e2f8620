// Package session manages the per-visitor state of both portals.
package session

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/chat"
	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/workflow"
)

type (
	Repository interface {
		CreateSession(sess *Session) error
		GetSession(id string) (*Session, error)
		QueryAllSessions() ([]*Session, error)
		// QueryIdleSessions returns the sessions last seen before `before`.
		QueryIdleSessions(before time.Time) ([]*Session, error)
		DeleteSession(id string) (*Session, error)
	}

	Service struct {
		repo      Repository
		clock     clockwork.Clock
		conf      *core.Config
		mailSvc   core.EmailService
		logger    core.Logger
		classList []mail.Address
		onClose   []func(sess *Session)
	}
)

func NewService(
	conf *core.Config,
	clock clockwork.Clock,
	repo Repository,
	mailSvc core.EmailService,
	logger core.Logger,
) *Service {
	classList, err := mail.ParseAddressList(conf.ClassroomEmail)
	if err != nil {
		logger.Warn(fmt.Sprintf("invalid classroom email %q: %v", conf.ClassroomEmail, err))
	}
	return &Service{
		repo:      repo,
		clock:     clock,
		conf:      conf,
		mailSvc:   mailSvc,
		logger:    logger,
		classList: addresses(classList),
	}
}

func addresses(list []*mail.Address) []mail.Address {
	addrs := make([]mail.Address, 0, len(list))
	for _, a := range list {
		addrs = append(addrs, *a)
	}
	return addrs
}

// OnClose registers fn to be called whenever a session is closed.
// It must be called before the service is used.
func (svc *Service) OnClose(fn func(sess *Session)) {
	svc.onClose = append(svc.onClose, fn)
}

// Open starts a session for role and starts loading its dashboard.
func (svc *Service) Open(role string) (*Session, error) {
	role = core.CleanString(role, true /* lower */)
	if !IsValidRole(role) {
		return nil, core.NewFieldError("role", ErrInvalidRole)
	}

	now := svc.clock.Now().UTC()
	sess := &Session{
		ID:        uuid.New().String(),
		Role:      role,
		CreatedAt: now,
		lastSeen:  now,
		dashboard: workflow.New("dashboard_load", svc.clock),
	}

	var dashboard interface{}
	if role == RoleTeacher {
		sess.Studio = classroom.NewStudio(classroom.StudioOptions{
			Clock:           svc.clock,
			UploadDelay:     svc.conf.Workflow.UploadDelay,
			GenerationDelay: svc.conf.Workflow.GenerationDelay,
			MailSvc:         svc.mailSvc,
			ClassList:       svc.classList,
		})
		dashboard = classroom.NewTeacherDashboard()
	} else {
		sess.Conversation = chat.NewConversation(svc.clock, svc.conf.Workflow.ResponseDelay)
		dashboard = classroom.NewStudentDashboard()
	}

	if err := svc.repo.CreateSession(sess); err != nil {
		return nil, errors.Wrap(err, "creating session")
	}
	sess.dashboard.Run(workflow.Task{Delay: svc.conf.Workflow.DashboardLoadDelay, Result: dashboard})
	return sess, nil
}

// Get returns the session and marks it as seen.
func (svc *Service) Get(id string) (*Session, error) {
	sess, err := svc.repo.GetSession(id)
	if err != nil {
		return nil, err
	}
	sess.touch(svc.clock.Now().UTC())
	return sess, nil
}

func (svc *Service) QueryAll() ([]*Session, error) {
	return svc.repo.QueryAllSessions()
}

// Close removes the session and cancels its operations in flight.
func (svc *Service) Close(id string) error {
	sess, err := svc.repo.DeleteSession(id)
	if err != nil {
		return err
	}
	sess.close()
	for _, fn := range svc.onClose {
		fn(sess)
	}
	return nil
}

// Sweep closes the sessions idle for longer than the configured idle timeout.
// It returns how many sessions were closed.
func (svc *Service) Sweep() (int, error) {
	before := svc.clock.Now().UTC().Add(-svc.conf.Session.IdleTimeout)
	idle, err := svc.repo.QueryIdleSessions(before)
	if err != nil {
		return 0, errors.Wrap(err, "querying idle sessions")
	}

	var n int
	for _, sess := range idle {
		if err := svc.Close(sess.ID); err != nil {
			if err == ErrNotFound { // closed meanwhile
				continue
			}
			return n, errors.Wrap(err, "closing session")
		}
		n++
	}
	return n, nil
}

// RunJanitor sweeps idle sessions every sweep interval until ctx is done.
func (svc *Service) RunJanitor(ctx context.Context) {
	ticker := svc.clock.NewTicker(svc.conf.Session.SweepInterval)
	defer ticker.Stop()
	svc.logger.Info(fmt.Sprintf("session janitor started : interval %v, idle timeout %v",
		svc.conf.Session.SweepInterval, svc.conf.Session.IdleTimeout))

	for {
		select {
		case <-ticker.Chan():
			n, err := svc.Sweep()
			if err != nil {
				svc.logger.Error(fmt.Sprintf("sweeping sessions: %v", err), err)
			} else if n > 0 {
				svc.logger.Info(fmt.Sprintf("session janitor closed %d idle session(s)", n))
			}
		case <-ctx.Done():
			svc.logger.Info(fmt.Sprintf("session janitor stopped : %v", ctx.Err()))
			return
		}
	}
}
