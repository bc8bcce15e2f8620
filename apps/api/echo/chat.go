package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/chat"
	"github.com/trezcool/edumind/core/session"
	"github.com/trezcool/edumind/core/tutor"
)

type (
	chatApi struct {
		validate *validator.Validate
	}

	ChatView struct {
		Persona  *tutor.Persona `json:"persona"`
		Messages []chat.Message `json:"messages"`
		Pending  bool           `json:"pending"`
		Notice   *core.Notice   `json:"notice,omitempty"`
	}
)

func registerChatAPI(sg *echo.Group, deps ServerDeps) {
	api := chatApi{validate: deps.Validate}
	student := roleMiddleware(session.RoleStudent)

	sg.PUT("/chat/persona", api.selectPersona, student)
	sg.GET("/chat", api.retrieve, student)
	sg.POST("/chat/messages", api.send, student)
}

func getContextConversation(ctx echo.Context) (*chat.Conversation, error) {
	sess, err := getContextSession(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "getting context session")
	}
	if sess.Conversation == nil {
		return nil, errHttpForbidden
	}
	return sess.Conversation, nil
}

func newChatView(conv *chat.Conversation) ChatView {
	view := ChatView{Pending: conv.Pending(), Messages: conv.Messages()}
	if p, ok := conv.Persona(); ok {
		view.Persona = &p
	}
	return view
}

// Handlers

func (api *chatApi) selectPersona(ctx echo.Context) error {
	conv, err := getContextConversation(ctx)
	if err != nil {
		return err
	}

	var data SelectPersonaRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectPersonaRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	persona, err := tutor.FindPersona(data.PersonaID)
	if err != nil {
		return core.NewFieldError("persona_id", err)
	}

	notice := conv.SelectPersona(persona)
	view := newChatView(conv)
	view.Notice = &notice
	return ctx.JSON(http.StatusOK, view)
}

func (api *chatApi) retrieve(ctx echo.Context) error {
	conv, err := getContextConversation(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newChatView(conv))
}

func (api *chatApi) send(ctx echo.Context) error {
	conv, err := getContextConversation(ctx)
	if err != nil {
		return err
	}

	var data SendMessageRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SendMessageRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := conv.Send(data.Content); err != nil {
		if err == chat.ErrEmptyMessage {
			return core.NewFieldError("content", err)
		}
		return errors.Wrap(err, "sending message")
	}
	return ctx.JSON(http.StatusAccepted, newChatView(conv))
}
