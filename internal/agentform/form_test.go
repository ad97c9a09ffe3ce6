package agentform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/rohits-web03/voxdesk/internal/client"
	"github.com/rohits-web03/voxdesk/internal/notify"
	"github.com/rohits-web03/voxdesk/internal/upload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploads struct {
	mu        sync.Mutex
	n         int
	transfers []string
	failNames map[string]bool
}

func (s *stubUploads) GetUploadURL(ctx context.Context) (*client.UploadURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return &client.UploadURL{Key: fmt.Sprintf("attachments/%d", s.n), SignedURL: fmt.Sprintf("https://store.test/%d", s.n)}, nil
}

func (s *stubUploads) UploadToSignedURL(ctx context.Context, url string, body io.Reader, size int64, onProgress client.ProgressFunc) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.transfers = append(s.transfers, string(data))
	s.mu.Unlock()
	onProgress(int64(len(data)), size)
	return nil
}

func (s *stubUploads) RegisterAttachment(ctx context.Context, in client.RegisterAttachmentRequest) (*client.Attachment, error) {
	if s.failNames[in.FileName] {
		return nil, errors.New("catalog unavailable")
	}
	return &client.Attachment{ID: "id-" + in.FileName, Key: in.Key, FileName: in.FileName}, nil
}

func (s *stubUploads) Transfers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transfers)
}

type stubSaver struct {
	created []client.AgentRequest
	updated map[string]client.AgentRequest
	err     error
}

func (s *stubSaver) CreateAgent(ctx context.Context, in client.AgentRequest) (*client.Agent, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &client.Agent{ID: "agent-1", AgentRequest: in}, nil
}

func (s *stubSaver) UpdateAgent(ctx context.Context, id string, in client.AgentRequest) (*client.Agent, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.updated == nil {
		s.updated = map[string]client.AgentRequest{}
	}
	s.updated[id] = in
	return &client.Agent{ID: id, AgentRequest: in}, nil
}

func validForm(f *Form) {
	f.Fields.AgentName = "Support Bot"
	f.Fields.CallType = "inbound"
	f.Fields.Language = "en-US"
	f.Fields.Voice = "aria"
	f.Fields.Prompt = "support"
	f.Fields.Model = "gpt-4o"
	f.TestCall = TestCall{FirstName: "Sarah", LastName: "Lee", Gender: "female", Phone: "+201012345678"}
}

func newTestForm(mode Mode, initial *InitialData) (*Form, *stubSaver, *stubUploads, *notify.Recorder) {
	saver := &stubSaver{}
	uploads := &stubUploads{failNames: map[string]bool{}}
	rec := &notify.Recorder{}
	return New(mode, initial, saver, uploads, WithNotifier(rec)), saver, uploads, rec
}

func TestNewDefaults(t *testing.T) {
	f, _, _, _ := newTestForm(ModeCreate, nil)
	assert.Equal(t, 0.5, f.Fields.Latency)
	assert.Equal(t, 110.0, f.Fields.Speed)
	assert.Equal(t, "Create Agent", f.Heading())
	assert.Equal(t, "Save Agent", f.SaveLabel())
	assert.Equal(t, 6, f.MissingBasicSettings())
	assert.Empty(t, f.AgentID())

	edit, _, _, _ := newTestForm(ModeEdit, &InitialData{ID: "a-9", AgentName: "Sales", Speed: 120})
	assert.Equal(t, "Edit Agent", edit.Heading())
	assert.Equal(t, "Save Changes", edit.SaveLabel())
	assert.Equal(t, "a-9", edit.AgentID())
	assert.Equal(t, 120.0, edit.Fields.Speed)
	assert.Equal(t, 0.5, edit.Fields.Latency)
	assert.Equal(t, 5, edit.MissingBasicSettings())

	create, _, _, _ := newTestForm(ModeCreate, &InitialData{ID: "ignored"})
	assert.Empty(t, create.AgentID(), "create mode never starts with an id")
}

func TestValidateEmptyForm(t *testing.T) {
	f, _, _, _ := newTestForm(ModeCreate, nil)
	f.Fields.AgentName = "   "

	assert.False(t, f.Validate())
	assert.Equal(t, map[string]string{
		"agentName":     "Agent name is required",
		"callType":      "Call type is required",
		"language":      "Language is required",
		"voice":         "Voice is required",
		"prompt":        "Prompt is required",
		"model":         "Model is required",
		"testFirstName": "First name is required",
		"testLastName":  "Last name is required",
		"testGender":    "Gender is required",
		"testPhone":     "Phone number is required",
	}, f.Errors)
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+201012345678", true},
		{"2015550123", true},
		{"+123456789012345", true},
		{"12345", false},
		{"+1 555 0100 123", false},
		{"+1234567890123456", false},
		{"phone-number", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			f, _, _, _ := newTestForm(ModeCreate, nil)
			validForm(f)
			f.TestCall.Phone = tt.phone

			assert.Equal(t, tt.valid, f.Validate())
			if !tt.valid {
				assert.Equal(t, map[string]string{"testPhone": "Enter a valid phone number"}, f.Errors)
			}
		})
	}
}

func TestValidateClearsPreviousErrors(t *testing.T) {
	f, _, _, _ := newTestForm(ModeCreate, nil)
	assert.False(t, f.Validate())
	validForm(f)
	assert.True(t, f.Validate())
	assert.Empty(t, f.Errors)
}

func TestAddFilesFiltersAndDedupes(t *testing.T) {
	f, _, uploads, rec := newTestForm(ModeCreate, nil)

	results := f.AddFiles(context.Background(), []upload.File{
		upload.BytesFile("pricing.PDF", "application/pdf", []byte("pdf")),
		upload.BytesFile("setup.exe", "application/octet-stream", []byte("MZ")),
		upload.BytesFile("pricing.PDF", "application/pdf", []byte("pdf")),
		upload.BytesFile("faq.txt", "text/plain", []byte("q&a")),
		upload.BytesFile("noext", "text/plain", []byte("x")),
	}).Wait()

	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
	items := f.Files()
	require.Len(t, items, 2)
	assert.Equal(t, "pricing.PDF", items[0].File.Name)
	assert.Equal(t, "faq.txt", items[1].File.Name)
	assert.Equal(t, 2, uploads.Transfers())
	assert.Len(t, rec.Messages(notify.LevelSuccess), 2)

	// Adding the same files again does nothing.
	again := f.AddFiles(context.Background(), []upload.File{
		upload.BytesFile("faq.txt", "text/plain", []byte("q&a")),
	}).Wait()
	assert.Empty(t, again)
	assert.Equal(t, 2, uploads.Transfers())
}

func TestRemoveFileThenReAdd(t *testing.T) {
	f, _, uploads, _ := newTestForm(ModeCreate, nil)
	uploads.failNames["broken.csv"] = true
	file := upload.BytesFile("broken.csv", "text/csv", []byte("a,b"))

	res := f.AddFiles(context.Background(), []upload.File{file}).Wait()
	require.Len(t, res, 1)
	assert.Equal(t, upload.StatusError, res[0].Item.Status)

	assert.True(t, f.RemoveFile(file.Identity()))
	assert.Empty(t, f.Files())

	uploads.failNames["broken.csv"] = false
	res = f.AddFiles(context.Background(), []upload.File{file}).Wait()
	require.Len(t, res, 1)
	assert.Equal(t, upload.StatusSuccess, res[0].Item.Status)
}

func TestPayloadAttachesOnlySuccessfulUploads(t *testing.T) {
	f, _, uploads, _ := newTestForm(ModeCreate, nil)
	validForm(f)
	uploads.failNames["bad.docx"] = true

	f.AddFiles(context.Background(), []upload.File{
		upload.BytesFile("good.pdf", "application/pdf", []byte("1")),
		upload.BytesFile("bad.docx", "", []byte("22")),
		upload.BytesFile("also-good.xls", "", []byte("333")),
	}).Wait()

	p := f.Payload()
	assert.Equal(t, []string{"id-good.pdf", "id-also-good.xls"}, p.Attachments)
	assert.Equal(t, "Support Bot", p.Name)
	assert.Equal(t, 0.5, p.Latency)
	assert.Equal(t, 110.0, p.Speed)
}

func TestPayloadWithoutFilesHasEmptyAttachments(t *testing.T) {
	f, _, _, _ := newTestForm(ModeCreate, nil)
	assert.NotNil(t, f.Payload().Attachments)
	assert.Empty(t, f.Payload().Attachments)
}

func TestSaveCreatesThenUpdates(t *testing.T) {
	f, saver, _, rec := newTestForm(ModeCreate, nil)
	validForm(f)
	f.Fields.Tools.LiveTransfer = true

	agent, err := f.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "agent-1", agent.ID)
	assert.Equal(t, "agent-1", f.AgentID())
	require.Len(t, saver.created, 1)
	assert.True(t, saver.created[0].Tools.LiveTransfer)

	f.Fields.Description = "Handles tier-1 support"
	_, err = f.Save(context.Background())
	require.NoError(t, err)
	assert.Len(t, saver.created, 1, "second save must update")
	assert.Equal(t, "Handles tier-1 support", saver.updated["agent-1"].Description)
	assert.Equal(t, []string{"Agent saved successfully", "Agent saved successfully"}, rec.Messages(notify.LevelSuccess))
}

func TestSaveEditModeUpdates(t *testing.T) {
	f, saver, _, _ := newTestForm(ModeEdit, &InitialData{ID: "existing"})
	validForm(f)

	_, err := f.Save(context.Background())
	require.NoError(t, err)
	assert.Empty(t, saver.created)
	assert.Contains(t, saver.updated, "existing")
}

func TestSaveInvalidSendsNothing(t *testing.T) {
	f, saver, _, _ := newTestForm(ModeCreate, nil)

	_, err := f.Save(context.Background())
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, saver.created)
	assert.NotEmpty(t, f.Errors)
}

func TestSaveFailureKeepsCreateMode(t *testing.T) {
	f, saver, _, rec := newTestForm(ModeCreate, nil)
	validForm(f)
	saver.err = &client.APIError{StatusCode: 500, Message: "Failed to create agent"}

	_, err := f.Save(context.Background())
	var apiErr *client.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Empty(t, f.AgentID())
	assert.Equal(t, []string{"Failed to save agent"}, rec.Messages(notify.LevelFailure))
}
