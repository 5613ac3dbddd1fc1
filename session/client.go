package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Ramesh-HM-001/aimeetingnotes/models"
	pkgerrors "github.com/pkg/errors"
)

// Client submits one upload at a time to the summarization gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Minute
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Process posts the multipart payload and parses the gateway response.
// Success returns the result with absent fields left as zero values. A
// non-success status returns the response body as the error message; a
// transport failure returns the generic failure message. The second return
// distinguishes the two so callers can display server errors verbatim.
func (c *Client) Process(ctx context.Context, req *UploadRequest, media io.Reader) (*models.ProcessingResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("audio", req.FileName)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "create form file")
	}
	if _, err := io.Copy(fw, media); err != nil {
		return nil, pkgerrors.Wrap(err, "copy media into form")
	}
	if err := mw.WriteField("language", req.Language); err != nil {
		return nil, pkgerrors.Wrap(err, "write language field")
	}
	if err := mw.WriteField("focus_prompt", req.FocusInstruction); err != nil {
		return nil, pkgerrors.Wrap(err, "write focus_prompt field")
	}
	if err := mw.Close(); err != nil {
		return nil, pkgerrors.Wrap(err, "close multipart writer")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/process", &body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.New(GenericFailureMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = GenericFailureMessage
		}
		return nil, pkgerrors.New(msg)
	}

	var result models.ProcessingResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, pkgerrors.New(GenericFailureMessage)
	}
	return &result, nil
}

// Submit drives one full request lifecycle: validate and transition to
// Submitting, call the gateway, and apply the outcome. Loading is cleared on
// every exit path.
func (c *Controller) Submit(ctx context.Context, client *Client, media io.Reader) error {
	req, err := c.BeginSubmit()
	if err != nil {
		return err
	}

	result, err := client.Process(ctx, req, media)
	if err != nil {
		c.ReceiveFailure(err.Error())
		return nil
	}

	c.ReceiveSuccess(*result)
	return nil
}
