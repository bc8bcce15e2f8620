// Package classroom implements the teacher studio (material uploads, content generation and assignment)
// and the static dashboards of both portals.
package classroom

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/edumind/core"
)

// Generated content types
const (
	ContentAssignment = "assignment"
	ContentTest       = "test"
	ContentQuiz       = "quiz"
	ContentPractice   = "practice"
)

// MaxUploadSize is the largest accepted material, in bytes.
const MaxUploadSize = 50 << 20

// DateLayout is the layout of due dates.
const DateLayout = "2006-01-02"

type (
	// Material describes an uploaded teaching material. File contents are never stored.
	Material struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Subject     string    `json:"subject"`
		Description string    `json:"description"`
		Filename    string    `json:"filename"`
		SizeBytes   int64     `json:"size_bytes"`
		UploadedAt  time.Time `json:"uploaded_at"`
	}

	NewMaterial struct {
		Title       string `json:"title" validate:"required,notblank"`
		Subject     string `json:"subject" validate:"required,subject"`
		Description string `json:"description"`
		Filename    string `json:"filename" validate:"required,material_ext"`
		SizeBytes   int64  `json:"size_bytes" validate:"gte=0,max_upload_size"`
	}

	GenerateRequest struct {
		ContentType  string `json:"content_type" validate:"required,oneof=assignment test quiz practice"`
		Topic        string `json:"topic" validate:"required,oneof=calculus physics chemistry biology"`
		Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard mixed"`
		NumQuestions int    `json:"num_questions" validate:"required,oneof=5 10 15 20"`
		DueDate      string `json:"due_date,omitempty" validate:"omitempty,date"`
	}

	GeneratedContent struct {
		GenerateRequest
		Body        string    `json:"body"`
		GeneratedAt time.Time `json:"generated_at"`
	}
)

func (nm *NewMaterial) Validate(validate *validator.Validate) error {
	nm.Title = core.CleanString(nm.Title)
	nm.Subject = core.CleanString(nm.Subject, true /* lower */)
	nm.Description = core.CleanString(nm.Description)
	nm.Filename = core.CleanString(nm.Filename)
	return validate.Struct(nm)
}

func (gr *GenerateRequest) Validate(validate *validator.Validate) error {
	gr.ContentType = core.CleanString(gr.ContentType, true /* lower */)
	gr.Topic = core.CleanString(gr.Topic, true /* lower */)
	gr.Difficulty = core.CleanString(gr.Difficulty, true /* lower */)
	gr.DueDate = core.CleanString(gr.DueDate)
	return validate.Struct(gr)
}
