package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ProgressFunc receives the cumulative number of bytes sent and the total
// body size. total is 0 when the size is not known.
type ProgressFunc func(sent, total int64)

// GetUploadURL asks the API for a one-time write location.
func (c *Client) GetUploadURL(ctx context.Context) (*UploadURL, error) {
	var out UploadURL
	if err := c.do(ctx, http.MethodPost, "/attachments/upload-url", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadToSignedURL PUTs body to signedURL as application/octet-stream.
// size must be the exact body length, or <= 0 if unknown.
func (c *Client) UploadToSignedURL(ctx context.Context, signedURL string, body io.Reader, size int64, onProgress ProgressFunc) error {
	if size < 0 {
		size = 0
	}
	var reqBody io.Reader = http.NoBody
	if body != nil {
		reqBody = &progressReader{r: body, total: size, onProgress: onProgress}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, reqBody)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if size > 0 {
		req.ContentLength = size
	} else {
		req.ContentLength = -1
	}

	resp, err := c.transfer.Do(req)
	if err != nil {
		return fmt.Errorf("upload to signed url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// RegisterAttachment records metadata for bytes already transferred.
func (c *Client) RegisterAttachment(ctx context.Context, in RegisterAttachmentRequest) (*Attachment, error) {
	var out Attachment
	if err := c.do(ctx, http.MethodPost, "/attachments", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type progressReader struct {
	r          io.Reader
	sent       int64
	total      int64
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.onProgress != nil {
			p.onProgress(p.sent, p.total)
		}
	}
	return n, err
}
