package classroom

import (
	"errors"
	"net/mail"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/workflow"
)

var (
	ErrUploadPending     = errors.New("an upload is already in progress")
	ErrGenerationPending = errors.New("content is already being generated")
	ErrNothingToAssign   = errors.New("generate content before assigning it")
)

var (
	uploadNotice = core.Notice{
		Title:       "Upload Successful",
		Description: "Your teaching material has been uploaded successfully.",
	}
	generationNotice = core.Notice{
		Title:       "Content Generated",
		Description: "AI has successfully generated content based on your selected topic.",
	}
	assignNotice = core.Notice{
		Title:       "Content Assigned",
		Description: "The generated content has been assigned to your students.",
	}
)

type (
	StudioOptions struct {
		Clock           clockwork.Clock
		UploadDelay     time.Duration
		GenerationDelay time.Duration
		MailSvc         core.EmailService
		ClassList       []mail.Address // recipients of assigned content
	}

	UploadView struct {
		Pending   bool         `json:"pending"`
		Materials []Material   `json:"materials"`
		Notice    *core.Notice `json:"notice,omitempty"`
	}

	GenerationView struct {
		Pending bool              `json:"pending"`
		Content *GeneratedContent `json:"content"`
		Notice  *core.Notice      `json:"notice,omitempty"`
	}

	// Studio is the teacher's workspace of one session.
	// Uploads and generations run independently; each accepts one invocation at a time.
	Studio struct {
		opts       StudioOptions
		upload     *workflow.Workflow
		generation *workflow.Workflow

		mu               sync.RWMutex
		materials        []Material // newest first
		content          *GeneratedContent
		uploadNotice     *core.Notice
		generationNotice *core.Notice
	}

	assignmentData struct {
		ContentType string
		Topic       string
		DueDate     string
		Content     string
	}
)

func NewStudio(opts StudioOptions) *Studio {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Studio{
		opts:       opts,
		upload:     workflow.New("upload", opts.Clock),
		generation: workflow.New("generation", opts.Clock),
		materials:  []Material{},
	}
}

// Upload registers the material once the upload delay has elapsed. nm must have been validated.
func (s *Studio) Upload(nm NewMaterial) (Material, error) {
	mat := Material{
		ID:          uuid.New().String(),
		Title:       nm.Title,
		Subject:     nm.Subject,
		Description: nm.Description,
		Filename:    nm.Filename,
		SizeBytes:   nm.SizeBytes,
		UploadedAt:  s.opts.Clock.Now().UTC(),
	}
	err := s.upload.TryRun(workflow.Task{
		Delay:  s.opts.UploadDelay,
		Result: mat,
		OnStart: func() {
			s.mu.Lock()
			s.uploadNotice = nil
			s.mu.Unlock()
		},
		OnComplete: func(res interface{}) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.materials = append([]Material{res.(Material)}, s.materials...)
			notice := uploadNotice
			s.uploadNotice = &notice
		},
	})
	if err == workflow.ErrPending {
		return Material{}, ErrUploadPending
	}
	return mat, err
}

func (s *Studio) Uploads() UploadView {
	pending := s.upload.Pending()

	s.mu.RLock()
	defer s.mu.RUnlock()
	mats := make([]Material, len(s.materials))
	copy(mats, s.materials)
	return UploadView{Pending: pending, Materials: mats, Notice: s.uploadNotice}
}

// Generate produces content for the request once the generation delay has elapsed. req must have been validated.
// Previously generated content stays available until it is replaced.
func (s *Studio) Generate(req GenerateRequest) error {
	err := s.generation.TryRun(workflow.Task{
		Delay:  s.opts.GenerationDelay,
		Result: GeneratedContent{GenerateRequest: req, Body: GeneratedBody(req.Topic)},
		OnStart: func() {
			s.mu.Lock()
			s.generationNotice = nil
			s.mu.Unlock()
		},
		OnComplete: func(res interface{}) {
			content := res.(GeneratedContent)
			content.GeneratedAt = s.opts.Clock.Now().UTC()

			s.mu.Lock()
			defer s.mu.Unlock()
			s.content = &content
			notice := generationNotice
			s.generationNotice = &notice
		},
	})
	if err == workflow.ErrPending {
		return ErrGenerationPending
	}
	return err
}

func (s *Studio) Generation() GenerationView {
	pending := s.generation.Pending()

	s.mu.RLock()
	defer s.mu.RUnlock()
	view := GenerationView{Pending: pending, Notice: s.generationNotice}
	if s.content != nil {
		content := *s.content
		view.Content = &content
	}
	return view
}

// Assign mails the generated content to the class.
func (s *Studio) Assign() (core.Notice, error) {
	s.mu.RLock()
	content := s.content
	s.mu.RUnlock()
	if content == nil {
		return core.Notice{}, ErrNothingToAssign
	}

	if s.opts.MailSvc != nil {
		s.opts.MailSvc.SendMessages(&core.EmailMessage{
			To:           s.opts.ClassList,
			Subject:      "New " + content.ContentType + ": " + content.Topic,
			TemplateName: "content_assigned",
			TemplateData: assignmentData{
				ContentType: content.ContentType,
				Topic:       content.Topic,
				DueDate:     content.DueDate,
				Content:     content.Body,
			},
		})
	}
	return assignNotice, nil
}

// Library lists the recent uploads (including the ones of this session), assignments and tests.
func (s *Studio) Library() Library {
	lib := newLibrary()

	s.mu.RLock()
	defer s.mu.RUnlock()
	uploads := make([]LibraryItem, 0, len(s.materials)+len(lib.RecentUploads))
	for _, m := range s.materials {
		uploads = append(uploads, LibraryItem{Title: m.Title, Date: "Just now"})
	}
	lib.RecentUploads = append(uploads, lib.RecentUploads...)
	return lib
}

// Pending reports whether an upload or a generation is in flight.
func (s *Studio) Pending() bool { return s.upload.Pending() || s.generation.Pending() }

// UploadDone and GenerationDone are closed when the operation in flight completes or is cancelled.
func (s *Studio) UploadDone() <-chan struct{}     { return s.upload.Done() }
func (s *Studio) GenerationDone() <-chan struct{} { return s.generation.Done() }

// Close cancels the operations in flight.
func (s *Studio) Close() {
	s.upload.Stop()
	s.generation.Stop()
}
