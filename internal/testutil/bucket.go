// bucket.go - Fake object store that honours its own presigned URLs
package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rohits-web03/voxdesk/internal/repositories"
)

// Bucket is an httptest server standing in for R2/MinIO. PresignPut hands
// out URLs on the server; a PUT to one stores the body under its key.
type Bucket struct {
	Server *httptest.Server

	mu         sync.Mutex
	objects    map[string][]byte
	tokens     map[string]string // token -> key
	seq        int
	putStatus  int
	presignErr error
}

var _ repositories.ObjectStorage = (*Bucket)(nil)

func NewBucket() *Bucket {
	b := &Bucket{
		objects: make(map[string][]byte),
		tokens:  make(map[string]string),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	return b
}

func (b *Bucket) Close() { b.Server.Close() }

func (b *Bucket) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.presignErr != nil {
		return "", b.presignErr
	}
	b.seq++
	token := fmt.Sprintf("sig-%d", b.seq)
	b.tokens[token] = key
	return fmt.Sprintf("%s/%s?X-Amz-Signature=%s&X-Amz-Expires=%d",
		b.Server.URL, url.PathEscape(key), token, int(expires.Seconds())), nil
}

func (b *Bucket) Exists(ctx context.Context, key string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.objects[key]
	return ok, nil
}

// FailPuts makes every PUT answer with status. Zero restores normal behaviour.
func (b *Bucket) FailPuts(status int) {
	b.mu.Lock()
	b.putStatus = status
	b.mu.Unlock()
}

// FailPresign makes PresignPut return err.
func (b *Bucket) FailPresign(err error) {
	b.mu.Lock()
	b.presignErr = err
	b.mu.Unlock()
}

// Object returns the stored bytes for key.
func (b *Bucket) Object(key string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	return data, ok
}

// Put stores data directly, bypassing the signed URL.
func (b *Bucket) Put(key string, data []byte) {
	b.mu.Lock()
	b.objects[key] = data
	b.mu.Unlock()
}

func (b *Bucket) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.putStatus != 0 {
		w.WriteHeader(b.putStatus)
		return
	}
	token := r.URL.Query().Get("X-Amz-Signature")
	key, ok := b.tokens[token]
	if !ok || key != strings.TrimPrefix(r.URL.Path, "/") {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		return
	}
	delete(b.tokens, token) // one-time
	b.objects[key] = data
	w.WriteHeader(http.StatusOK)
}
