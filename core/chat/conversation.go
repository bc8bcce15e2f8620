// Package chat implements the student conversation with a teacher persona.
package chat

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/tutor"
	"github.com/trezcool/edumind/core/workflow"
)

var (
	ErrNoPersona       = errors.New("select a teacher first")
	ErrEmptyMessage    = errors.New("message cannot be blank")
	ErrReplyPending    = errors.New("the teacher is still answering")
	ErrTeacherSwitched = errors.New("the teacher changed while sending, send the message again")
)

// Conversation is the chat of one student session.
// At most one reply is in flight: a message sent while the previous one is unanswered is rejected.
type Conversation struct {
	clock clockwork.Clock
	delay time.Duration
	reply *workflow.Workflow

	mu       sync.RWMutex
	persona  *tutor.Persona
	messages []Message
	epoch    uint64 // bumped on every persona change; replies from an older epoch are dropped
}

func NewConversation(clock clockwork.Clock, responseDelay time.Duration) *Conversation {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Conversation{
		clock:    clock,
		delay:    responseDelay,
		reply:    workflow.New("teacher_response", clock),
		messages: []Message{},
	}
}

// SelectPersona switches the teacher. The history is discarded, any pending reply is cancelled
// and the conversation restarts with the persona's welcome message.
func (c *Conversation) SelectPersona(p tutor.Persona) core.Notice {
	c.mu.Lock()
	c.epoch++
	c.persona = &p
	c.messages = []Message{newMessage(SenderAssistant, tutor.Welcome(p), c.clock.Now())}
	c.mu.Unlock()

	// after the epoch bump: a send racing with the switch is either rejected or cancelled here
	c.reply.Stop()

	return core.Notice{
		Title:       "Teacher Selected",
		Description: fmt.Sprintf("You are now learning from %s's materials.", p.Name),
	}
}

// Send appends the user message and schedules the persona's reply.
// The reply is selected now, from the content as typed, and revealed once the response delay has elapsed.
func (c *Conversation) Send(content string) (Message, error) {
	if core.CleanString(content) == "" {
		return Message{}, ErrEmptyMessage
	}

	c.mu.RLock()
	persona, epoch := c.persona, c.epoch
	c.mu.RUnlock()
	if persona == nil {
		return Message{}, ErrNoPersona
	}
	return c.send(content, *persona, epoch)
}

// send schedules the reply of persona, as it was at epoch. The message is rejected
// if the persona changed since.
func (c *Conversation) send(content string, persona tutor.Persona, epoch uint64) (Message, error) {
	var msg Message
	err := c.reply.TryRun(workflow.Task{
		Delay:  c.delay,
		Result: tutor.SelectResponse(content, persona),
		Accept: func() bool {
			c.mu.RLock()
			defer c.mu.RUnlock()
			return c.epoch == epoch
		},
		OnStart: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			msg = newMessage(SenderUser, content, c.clock.Now())
			c.messages = append(c.messages, msg)
		},
		OnComplete: func(res interface{}) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.epoch != epoch {
				return
			}
			c.messages = append(c.messages, newMessage(SenderAssistant, res.(string), c.clock.Now()))
		},
	})
	switch err {
	case workflow.ErrPending:
		return Message{}, ErrReplyPending
	case workflow.ErrRejected:
		return Message{}, ErrTeacherSwitched
	}
	return msg, err
}

// Messages returns a copy of the history, oldest first.
func (c *Conversation) Messages() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	msgs := make([]Message, len(c.messages))
	copy(msgs, c.messages)
	return msgs
}

func (c *Conversation) Persona() (tutor.Persona, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.persona == nil {
		return tutor.Persona{}, false
	}
	return *c.persona, true
}

// Pending reports whether a reply is in flight.
func (c *Conversation) Pending() bool { return c.reply.Pending() }

// ReplyDone is closed when the reply in flight is appended or cancelled.
func (c *Conversation) ReplyDone() <-chan struct{} { return c.reply.Done() }

// Close cancels the pending reply, if any.
func (c *Conversation) Close() { c.reply.Stop() }
