package classroom_test

import (
	"errors"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/classroom"
	"github.com/trezcool/edumind/core/workflow"
	emailsvc "github.com/trezcool/edumind/services/email"
	logsvc "github.com/trezcool/edumind/services/logger"
)

var classList = []mail.Address{{Name: "Grade 11-A", Address: "grade11a@school.test"}}

func wait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the studio")
	}
}

func newTestStudio(t *testing.T) (*classroom.Studio, clockwork.FakeClock, *emailsvc.ConsoleServiceMock) {
	t.Helper()
	conf := core.NewTestConfig()
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logsvc.NewTestLogger(conf))
	clock := clockwork.NewFakeClock()
	studio := classroom.NewStudio(classroom.StudioOptions{
		Clock:           clock,
		UploadDelay:     workflow.UploadDelay,
		GenerationDelay: workflow.GenerationDelay,
		MailSvc:         mailSvc,
		ClassList:       classList,
	})
	t.Cleanup(studio.Close)
	return studio, clock, mailSvc
}

func newValidator() *validator.Validate {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	classroom.InitValidators(validate, translator)
	return validate
}

func TestGeneratedBody(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"calculus", classroom.CalculusAssignment},
		{"physics", classroom.PhysicsTest},
		{"chemistry", classroom.PhysicsTest},
		{"biology", classroom.PhysicsTest},
		{"", classroom.PhysicsTest},
	}
	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			if got := classroom.GeneratedBody(tt.topic); got != tt.want {
				t.Errorf("GeneratedBody(%q) = %v; want %v", tt.topic, got, tt.want)
			}
		})
	}
}

func TestStudio_Upload(t *testing.T) {
	studio, clock, _ := newTestStudio(t)

	mat, err := studio.Upload(classroom.NewMaterial{Title: "Kinematics", Subject: "physics", Filename: "kinematics.pdf", SizeBytes: 1024})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if mat.ID == "" || mat.Title != "Kinematics" {
		t.Errorf("Upload() = %+v", mat)
	}

	view := studio.Uploads()
	if !view.Pending || len(view.Materials) != 0 || view.Notice != nil {
		t.Errorf("Uploads() right after Upload() = %+v; want pending, empty", view)
	}
	if _, err := studio.Upload(classroom.NewMaterial{Title: "Again"}); err != classroom.ErrUploadPending {
		t.Errorf("Upload() while pending error = %v; want %v", err, classroom.ErrUploadPending)
	}

	done := studio.UploadDone()
	clock.Advance(workflow.UploadDelay)
	wait(t, done)

	view = studio.Uploads()
	if view.Pending {
		t.Error("Uploads().Pending = true after the delay elapsed")
	}
	if len(view.Materials) != 1 || view.Materials[0].ID != mat.ID {
		t.Errorf("Uploads().Materials = %+v; want [%s]", view.Materials, mat.ID)
	}
	if view.Notice == nil || view.Notice.Title != "Upload Successful" {
		t.Errorf("Uploads().Notice = %+v", view.Notice)
	}

	lib := studio.Library()
	if lib.RecentUploads[0].Title != "Kinematics" || len(lib.RecentUploads) != 5 {
		t.Errorf("Library().RecentUploads = %+v", lib.RecentUploads)
	}
}

func TestStudio_GenerateAndAssign(t *testing.T) {
	studio, clock, mailSvc := newTestStudio(t)

	if _, err := studio.Assign(); err != classroom.ErrNothingToAssign {
		t.Fatalf("Assign() before generation error = %v; want %v", err, classroom.ErrNothingToAssign)
	}

	req := classroom.GenerateRequest{ContentType: "assignment", Topic: "calculus", Difficulty: "medium", NumQuestions: 10, DueDate: "2026-11-02"}
	if err := studio.Generate(req); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if err := studio.Generate(req); err != classroom.ErrGenerationPending {
		t.Errorf("Generate() while pending error = %v; want %v", err, classroom.ErrGenerationPending)
	}

	done := studio.GenerationDone()
	clock.Advance(workflow.GenerationDelay - time.Millisecond)
	if view := studio.Generation(); !view.Pending || view.Content != nil {
		t.Fatalf("Generation() before the delay elapsed = %+v", view)
	}
	clock.Advance(time.Millisecond)
	wait(t, done)

	view := studio.Generation()
	if view.Pending || view.Content == nil {
		t.Fatalf("Generation() = %+v; want content", view)
	}
	if view.Content.Body != classroom.CalculusAssignment || view.Content.Topic != "calculus" {
		t.Errorf("Generation().Content = %+v", view.Content)
	}
	if view.Notice == nil || view.Notice.Title != "Content Generated" {
		t.Errorf("Generation().Notice = %+v", view.Notice)
	}

	notice, err := studio.Assign()
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if notice.Title != "Content Assigned" {
		t.Errorf("Assign() notice = %+v", notice)
	}

	sent := mailSvc.SentMessages()
	if len(sent) != 1 {
		t.Fatalf("sent %d emails; want 1", len(sent))
	}
	assert.Equal(t, classList, sent[0].To)
	if !strings.Contains(sent[0].TextContent, "New assignment work was assigned to your class on calculus.") ||
		!strings.Contains(sent[0].TextContent, "Find the derivative of f(x) = 3x² + 2x - 5") ||
		!strings.Contains(sent[0].TextContent, "Due date: 2026-11-02") {
		t.Errorf("email text = %v", sent[0].TextContent)
	}
	if !strings.Contains(sent[0].HTMLContent, "<strong>calculus</strong>") {
		t.Errorf("email html = %v", sent[0].HTMLContent)
	}
}

func TestStudio_RegenerateKeepsPreviousContent(t *testing.T) {
	studio, clock, _ := newTestStudio(t)

	_ = studio.Generate(classroom.GenerateRequest{Topic: "calculus"})
	done := studio.GenerationDone()
	clock.Advance(workflow.GenerationDelay)
	wait(t, done)

	if err := studio.Generate(classroom.GenerateRequest{Topic: "physics"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	view := studio.Generation()
	if !view.Pending || view.Content == nil || view.Content.Body != classroom.CalculusAssignment {
		t.Errorf("Generation() while regenerating = %+v; want pending with the calculus content", view)
	}
	if _, err := studio.Assign(); err != nil {
		t.Errorf("Assign() while regenerating error = %v", err)
	}
}

func TestStudio_IndependentWorkflows(t *testing.T) {
	studio, clock, _ := newTestStudio(t)

	_ = studio.Generate(classroom.GenerateRequest{Topic: "physics"})
	if _, err := studio.Upload(classroom.NewMaterial{Title: "Optics"}); err != nil {
		t.Fatalf("Upload() during generation error = %v", err)
	}

	uploaded := studio.UploadDone()
	clock.Advance(workflow.UploadDelay)
	wait(t, uploaded)
	if !studio.Generation().Pending {
		t.Error("generation completed together with the upload")
	}
	if !studio.Pending() {
		t.Error("Pending() = false while generating")
	}
}

func TestStudio_Close(t *testing.T) {
	studio, clock, _ := newTestStudio(t)
	_, _ = studio.Upload(classroom.NewMaterial{Title: "Optics"})
	_ = studio.Generate(classroom.GenerateRequest{Topic: "physics"})

	studio.Close()
	clock.Advance(workflow.GenerationDelay)

	if studio.Pending() {
		t.Error("Pending() = true after Close()")
	}
	if got := studio.Uploads(); len(got.Materials) != 0 {
		t.Errorf("Uploads() after Close() = %+v", got)
	}
	if got := studio.Generation(); got.Content != nil {
		t.Errorf("Generation() after Close() = %+v", got)
	}
}

func TestNewMaterial_Validate(t *testing.T) {
	validate := newValidator()

	tests := []struct {
		name      string
		data      classroom.NewMaterial
		wantField string
	}{
		{name: "valid", data: classroom.NewMaterial{Title: " Optics ", Subject: "Physics", Filename: "optics.PPTX", SizeBytes: 2 << 20}},
		{name: "blank title", data: classroom.NewMaterial{Title: "  ", Subject: "physics", Filename: "optics.pdf"}, wantField: "title"},
		{name: "unknown subject", data: classroom.NewMaterial{Title: "Optics", Subject: "astrology", Filename: "optics.pdf"}, wantField: "subject"},
		{name: "unsupported file", data: classroom.NewMaterial{Title: "Optics", Subject: "physics", Filename: "optics.exe"}, wantField: "filename"},
		{name: "too large", data: classroom.NewMaterial{Title: "Optics", Subject: "physics", Filename: "optics.pdf", SizeBytes: classroom.MaxUploadSize + 1}, wantField: "size_bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate(validate)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			var vErrs validator.ValidationErrors
			if !errors.As(err, &vErrs) || len(vErrs) != 1 || vErrs[0].Field() != tt.wantField {
				t.Errorf("Validate() error = %v; want an error on %s", err, tt.wantField)
			}
		})
	}
}

func TestGenerateRequest_Validate(t *testing.T) {
	validate := newValidator()

	tests := []struct {
		name      string
		data      classroom.GenerateRequest
		wantField string
	}{
		{name: "valid", data: classroom.GenerateRequest{ContentType: "Quiz", Topic: "biology", Difficulty: "mixed", NumQuestions: 20}},
		{name: "valid with due date", data: classroom.GenerateRequest{ContentType: "test", Topic: "calculus", Difficulty: "hard", NumQuestions: 5, DueDate: "2026-12-01"}},
		{name: "bad content type", data: classroom.GenerateRequest{ContentType: "essay", Topic: "biology", Difficulty: "easy", NumQuestions: 5}, wantField: "content_type"},
		{name: "bad topic", data: classroom.GenerateRequest{ContentType: "test", Topic: "history", Difficulty: "easy", NumQuestions: 5}, wantField: "topic"},
		{name: "bad difficulty", data: classroom.GenerateRequest{ContentType: "test", Topic: "physics", Difficulty: "insane", NumQuestions: 5}, wantField: "difficulty"},
		{name: "bad question count", data: classroom.GenerateRequest{ContentType: "test", Topic: "physics", Difficulty: "easy", NumQuestions: 7}, wantField: "num_questions"},
		{name: "bad due date", data: classroom.GenerateRequest{ContentType: "test", Topic: "physics", Difficulty: "easy", NumQuestions: 5, DueDate: "next friday"}, wantField: "due_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.data.Validate(validate)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			var vErrs validator.ValidationErrors
			if !errors.As(err, &vErrs) || len(vErrs) != 1 || vErrs[0].Field() != tt.wantField {
				t.Errorf("Validate() error = %v; want an error on %s", err, tt.wantField)
			}
		})
	}
}
