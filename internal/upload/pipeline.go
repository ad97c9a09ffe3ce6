// Package upload moves attachment files from the console to object
// storage and registers them with the attachment catalog.
//
// Each file goes through three calls in order: acquire a signed write
// location, PUT the bytes there, register the metadata. The first failure
// ends the item in StatusError. Nothing is retried and nothing is rolled
// back; a RegisterError leaves the stored object behind.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/rohits-web03/voxdesk/internal/client"
	"github.com/rohits-web03/voxdesk/internal/notify"
	"golang.org/x/sync/errgroup"
)

// Backend is the subset of the API client the pipeline needs.
type Backend interface {
	GetUploadURL(ctx context.Context) (*client.UploadURL, error)
	UploadToSignedURL(ctx context.Context, signedURL string, body io.Reader, size int64, onProgress client.ProgressFunc) error
	RegisterAttachment(ctx context.Context, in client.RegisterAttachmentRequest) (*client.Attachment, error)
}

type Pipeline struct {
	backend  Backend
	list     *List
	notifier notify.Notifier
	limit    int
}

type Option func(*Pipeline)

func WithNotifier(n notify.Notifier) Option {
	return func(p *Pipeline) { p.notifier = n }
}

// WithConcurrency caps how many files of one batch transfer at once.
// Zero or less means no cap.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) { p.limit = n }
}

func NewPipeline(backend Backend, list *List, opts ...Option) *Pipeline {
	p := &Pipeline{
		backend:  backend,
		list:     list,
		notifier: notify.Log{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) List() *List { return p.list }

// Submit runs one file through the pipeline and returns its final state.
// The file is added to the list if absent; an item already listed is
// accepted only while it is still idle, otherwise ErrDuplicate is returned
// and nothing runs. A stage failure is returned as *TargetError,
// *TransferError or *RegisterError and is also recorded on the item.
func (p *Pipeline) Submit(ctx context.Context, f File) (Item, error) {
	r, _ := p.list.add(f)
	if !p.list.update(r, (*Item).begin) {
		current, _ := p.list.Get(f.Identity())
		return current, ErrDuplicate
	}

	t := &tracker{list: p.list, ref: r, item: newItem(f)}
	t.item.begin()

	attachmentID, err := p.run(ctx, f, t)
	if err != nil {
		t.apply(func(it *Item) bool { return it.fail(err) })
		p.notifier.Failure(fmt.Sprintf("Upload failed: %s", f.Name), err)
		return t.snapshot(), err
	}

	t.apply(func(it *Item) bool { return it.succeed(attachmentID) })
	p.notifier.Success(fmt.Sprintf("Uploaded successfully: %s", f.Name))
	return t.snapshot(), nil
}

func (p *Pipeline) run(ctx context.Context, f File, t *tracker) (string, error) {
	target, err := p.backend.GetUploadURL(ctx)
	if err != nil {
		return "", &TargetError{Err: err}
	}
	if target == nil || target.SignedURL == "" || target.Key == "" {
		return "", &TargetError{Err: errors.New("empty upload target")}
	}

	body, err := f.Open()
	if err != nil {
		return "", &TransferError{Key: target.Key, Err: err}
	}
	err = p.backend.UploadToSignedURL(ctx, target.SignedURL, body, f.Size, func(sent, total int64) {
		if total <= 0 {
			return
		}
		pct := percent(sent, total)
		t.apply(func(it *Item) bool { return it.advance(pct) })
	})
	body.Close()
	if err != nil {
		return "", &TransferError{Key: target.Key, Err: err}
	}

	attachment, err := p.backend.RegisterAttachment(ctx, client.RegisterAttachmentRequest{
		Key:      target.Key,
		FileName: f.Name,
		FileSize: f.Size,
		MimeType: f.MimeType,
	})
	if err != nil {
		return "", &RegisterError{Key: target.Key, Err: err}
	}
	if attachment == nil || attachment.ID == "" {
		return "", &RegisterError{Key: target.Key, Err: errors.New("no attachment id in response")}
	}
	return attachment.ID, nil
}

func percent(sent, total int64) int {
	return int(math.Round(float64(sent) * 100 / float64(total)))
}

// tracker mirrors one upload's transitions onto its list entry. Progress
// callbacks may arrive from the transport's goroutine, hence the lock.
type tracker struct {
	mu   sync.Mutex
	list *List
	ref  ref
	item Item
}

func (t *tracker) apply(fn func(*Item) bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if fn(&t.item) {
		t.list.update(t.ref, fn)
	}
}

func (t *tracker) snapshot() Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.item
}

// Result is the outcome of one file in a batch.
type Result struct {
	Item Item
	Err  error
}

// Batch is a set of uploads running independently of each other.
type Batch struct {
	g         errgroup.Group
	scheduled chan struct{}
	results   []Result
}

// Start lists every file as idle, then submits each in its own goroutine
// and returns at once. One file failing never cancels or alters another.
func (p *Pipeline) Start(ctx context.Context, files []File) *Batch {
	b := &Batch{
		scheduled: make(chan struct{}),
		results:   make([]Result, len(files)),
	}
	if p.limit > 0 {
		b.g.SetLimit(p.limit)
	}
	for _, f := range files {
		p.list.Add(f)
	}
	go func() {
		defer close(b.scheduled)
		for i, f := range files {
			b.g.Go(func() error {
				item, err := p.Submit(ctx, f)
				b.results[i] = Result{Item: item, Err: err}
				return nil
			})
		}
	}()
	return b
}

// Wait blocks until every upload in the batch is terminal. Results are in
// submission order.
func (b *Batch) Wait() []Result {
	<-b.scheduled
	_ = b.g.Wait()
	return b.results
}

// SubmitAll is Start followed by Wait.
func (p *Pipeline) SubmitAll(ctx context.Context, files []File) []Result {
	return p.Start(ctx, files).Wait()
}
