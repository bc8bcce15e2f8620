package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/edumind/core"
)

type (
	OpenSessionRequest struct {
		Role string `json:"role" validate:"required,oneof=teacher student"`
	}

	SelectPersonaRequest struct {
		PersonaID string `json:"persona_id" validate:"required"`
	}

	SendMessageRequest struct {
		Content string `json:"content" validate:"required,notblank"`
	}

	SearchQuery struct {
		Q string `query:"q"`
	}
)

func (r *OpenSessionRequest) Validate(validate *validator.Validate) error {
	r.Role = core.CleanString(r.Role, true /* lower */)
	return validate.Struct(r)
}

func (r *SelectPersonaRequest) Validate(validate *validator.Validate) error {
	r.PersonaID = core.CleanString(r.PersonaID)
	return validate.Struct(r)
}

// Validate only checks the content is not blank: the message is kept as typed.
func (r *SendMessageRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}
