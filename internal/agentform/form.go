// Package agentform holds the state behind the create/edit agent screen:
// field values, validation messages, reference-data uploads and the
// create-or-update save.
package agentform

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/rohits-web03/voxdesk/internal/client"
	"github.com/rohits-web03/voxdesk/internal/notify"
	"github.com/rohits-web03/voxdesk/internal/upload"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

const (
	DefaultLatency = 0.5
	DefaultSpeed   = 110
)

var ErrInvalid = errors.New("agent form has validation errors")

// Fields are the agent settings sent on save.
type Fields struct {
	AgentName          string  `form:"agentName" validate:"notblank"`
	Description        string  `form:"description"`
	CallType           string  `form:"callType" validate:"required"`
	Language           string  `form:"language" validate:"required"`
	Voice              string  `form:"voice" validate:"required"`
	Prompt             string  `form:"prompt" validate:"required"`
	Model              string  `form:"model" validate:"required"`
	Latency            float64 `form:"latency"`
	Speed              float64 `form:"speed"`
	CallScript         string  `form:"callScript"`
	ServiceDescription string  `form:"serviceDescription"`
	Tools              client.AgentTools
}

// TestCall is the contact used for a trial call. It is validated with the
// form but never sent with the agent.
type TestCall struct {
	FirstName string `form:"testFirstName" validate:"notblank"`
	LastName  string `form:"testLastName" validate:"notblank"`
	Gender    string `form:"testGender" validate:"required"`
	Phone     string `form:"testPhone" validate:"notblank,phone"`
}

type InitialData struct {
	ID                 string
	AgentName          string
	Description        string
	CallType           string
	Language           string
	Voice              string
	Prompt             string
	Model              string
	Latency            float64
	Speed              float64
	CallScript         string
	ServiceDescription string
}

// AgentSaver creates and updates agents.
type AgentSaver interface {
	CreateAgent(ctx context.Context, in client.AgentRequest) (*client.Agent, error)
	UpdateAgent(ctx context.Context, id string, in client.AgentRequest) (*client.Agent, error)
}

type Form struct {
	Mode     Mode
	Fields   Fields
	TestCall TestCall
	// Errors maps field names to messages from the last Validate.
	Errors map[string]string

	saver    AgentSaver
	files    *upload.List
	pipeline *upload.Pipeline
	notifier notify.Notifier

	mu      sync.Mutex
	agentID string
}

type Option func(*formOptions)

type formOptions struct {
	notifier    notify.Notifier
	concurrency int
}

func WithNotifier(n notify.Notifier) Option {
	return func(o *formOptions) { o.notifier = n }
}

// WithUploadConcurrency caps parallel uploads per AddFiles call.
func WithUploadConcurrency(n int) Option {
	return func(o *formOptions) { o.concurrency = n }
}

// New builds a form. In edit mode the agent id comes from initial; saves
// then update that agent.
func New(mode Mode, initial *InitialData, saver AgentSaver, uploads upload.Backend, opts ...Option) *Form {
	o := formOptions{notifier: notify.Log{}}
	for _, opt := range opts {
		opt(&o)
	}

	f := &Form{
		Mode:     mode,
		Errors:   map[string]string{},
		saver:    saver,
		files:    upload.NewList(),
		notifier: o.notifier,
		Fields: Fields{
			Latency: DefaultLatency,
			Speed:   DefaultSpeed,
		},
	}
	f.pipeline = upload.NewPipeline(uploads, f.files,
		upload.WithNotifier(o.notifier),
		upload.WithConcurrency(o.concurrency),
	)

	if initial != nil {
		f.Fields.AgentName = initial.AgentName
		f.Fields.Description = initial.Description
		f.Fields.CallType = initial.CallType
		f.Fields.Language = initial.Language
		f.Fields.Voice = initial.Voice
		f.Fields.Prompt = initial.Prompt
		f.Fields.Model = initial.Model
		f.Fields.CallScript = initial.CallScript
		f.Fields.ServiceDescription = initial.ServiceDescription
		if initial.Latency != 0 {
			f.Fields.Latency = initial.Latency
		}
		if initial.Speed != 0 {
			f.Fields.Speed = initial.Speed
		}
		if mode == ModeEdit {
			f.agentID = initial.ID
		}
	}
	return f
}

func (f *Form) Heading() string {
	if f.Mode == ModeCreate {
		return "Create Agent"
	}
	return "Edit Agent"
}

func (f *Form) SaveLabel() string {
	if f.Mode == ModeCreate {
		return "Save Agent"
	}
	return "Save Changes"
}

func (f *Form) AgentID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.agentID
}

// MissingBasicSettings counts the empty required fields of the basic
// settings section.
func (f *Form) MissingBasicSettings() int {
	n := 0
	for _, v := range []string{f.Fields.AgentName, f.Fields.CallType, f.Fields.Language, f.Fields.Voice, f.Fields.Prompt, f.Fields.Model} {
		if v == "" {
			n++
		}
	}
	return n
}

// AddFiles lists and starts uploading every accepted file that is not
// already in the list (same name and size). Other files are skipped.
func (f *Form) AddFiles(ctx context.Context, files []upload.File) *upload.Batch {
	var fresh []upload.File
	seen := map[upload.Identity]bool{}
	for _, file := range files {
		if !Accepted(file.Name) {
			log.Printf("skipping %s: unsupported file type", file.Name)
			continue
		}
		id := file.Identity()
		if seen[id] || f.files.Contains(id) {
			continue
		}
		seen[id] = true
		fresh = append(fresh, file)
	}
	return f.pipeline.Start(ctx, fresh)
}

// RemoveFile drops a file from the list. An upload still running for it
// finishes without touching the list.
func (f *Form) RemoveFile(id upload.Identity) bool {
	return f.files.Remove(id)
}

func (f *Form) Files() []upload.Item {
	return f.files.Items()
}

// Validate refreshes Errors and reports whether the form can be saved.
func (f *Form) Validate() bool {
	errs := fieldErrors(f.Fields)
	for k, v := range fieldErrors(f.TestCall) {
		errs[k] = v
	}
	f.Errors = errs
	return len(errs) == 0
}

// Payload is the agent request built from the current state. Only files
// that finished uploading are attached.
func (f *Form) Payload() client.AgentRequest {
	return client.AgentRequest{
		Name:               f.Fields.AgentName,
		Description:        f.Fields.Description,
		CallType:           f.Fields.CallType,
		Language:           f.Fields.Language,
		Voice:              f.Fields.Voice,
		Prompt:             f.Fields.Prompt,
		Model:              f.Fields.Model,
		Latency:            f.Fields.Latency,
		Speed:              f.Fields.Speed,
		CallScript:         f.Fields.CallScript,
		ServiceDescription: f.Fields.ServiceDescription,
		Attachments:        f.files.AttachmentIDs(),
		Tools:              f.Fields.Tools,
	}
}

// Save validates the form, then updates the known agent or creates a new
// one and remembers its id so later saves update it.
func (f *Form) Save(ctx context.Context) (*client.Agent, error) {
	if !f.Validate() {
		return nil, ErrInvalid
	}

	payload := f.Payload()
	payload.Name = strings.TrimSpace(payload.Name)

	f.mu.Lock()
	defer f.mu.Unlock()

	var (
		agent *client.Agent
		err   error
	)
	if f.agentID != "" {
		agent, err = f.saver.UpdateAgent(ctx, f.agentID, payload)
	} else {
		agent, err = f.saver.CreateAgent(ctx, payload)
	}
	if err != nil {
		f.notifier.Failure("Failed to save agent", err)
		return nil, err
	}

	if f.agentID == "" {
		f.agentID = agent.ID
	}
	f.notifier.Success("Agent saved successfully")
	return agent, nil
}
