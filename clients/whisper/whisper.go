package whisper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Transcriber converts an audio file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client talks to the OpenAI audio/transcriptions endpoint.
type Client struct {
	config Config
	http   *http.Client
	logger *logrus.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "whisper-1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}

	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logrus.StandardLogger(),
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", pkgerrors.Wrap(err, "open audio file")
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.config.Model); err != nil {
		return "", pkgerrors.Wrap(err, "write model field")
	}

	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", pkgerrors.Wrap(err, "create form file")
	}
	if _, err := io.Copy(fw, f); err != nil {
		return "", pkgerrors.Wrap(err, "copy audio into form")
	}
	if err := mw.Close(); err != nil {
		return "", pkgerrors.Wrap(err, "close multipart writer")
	}

	url := c.config.BaseURL + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", pkgerrors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logger.WithFields(logrus.Fields{
		"model": c.config.Model,
		"file":  filepath.Base(audioPath),
	}).Debug("Sending transcription request")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", pkgerrors.Wrap(err, "transcription request")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", pkgerrors.Errorf("transcription service http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", pkgerrors.Wrap(err, "decode transcription response")
	}

	return strings.TrimSpace(tr.Text), nil
}
