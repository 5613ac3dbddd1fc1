// Package session implements the upload-side request lifecycle as an
// explicit state machine: select file, submit, receive success or failure,
// export. All user-visible state lives in one serializable State struct
// updated only through the Controller's transition methods.
package session

import (
	"strings"

	"github.com/Ramesh-HM-001/aimeetingnotes/errors"
	"github.com/Ramesh-HM-001/aimeetingnotes/models"
	"github.com/Ramesh-HM-001/aimeetingnotes/validation"
	"github.com/sirupsen/logrus"
)

// DefaultFocusInstruction is sent when the user leaves the focus prompt
// empty.
const DefaultFocusInstruction = "Provide focused summary ONLY in English."

// focusLanguageSuffix pins the focused summary's output language when the
// user supplies their own focus text.
const focusLanguageSuffix = " (Output must be ONLY in English)"

// GenericFailureMessage is shown when the gateway cannot be reached at all.
const GenericFailureMessage = "Request failed. Please check your connection and try again."

// DefaultLanguage is the preselected target language.
const DefaultLanguage = "English"

// Languages is the fixed language choice set; anything else is entered as
// free text via the "Other" option.
var Languages = []string{"English", "Hindi", "Spanish", "French", "German", "Other"}

// Phase is the request lifecycle state: Idle -> Submitting -> Idle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
)

// State is the full serializable session state.
type State struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	PlaybackURL string `json:"playback_url"`

	Language    string `json:"language"`
	FocusPrompt string `json:"focus_prompt"`

	Phase   Phase  `json:"phase"`
	Loading bool   `json:"loading"`
	Error   string `json:"error"`

	Result models.ProcessingResult `json:"result"`
}

// UploadRequest is the resolved payload for one submission.
type UploadRequest struct {
	FileName         string
	Language         string
	FocusInstruction string
}

// Controller owns a State and the playback resource derived from the
// selected file. Not safe for concurrent use; the driving loop is
// single-threaded by design.
type Controller struct {
	state    State
	pool     *Pool
	playback *Resource
	logger   *logrus.Logger
}

func NewController(pool *Pool) *Controller {
	if pool == nil {
		pool = NewPool()
	}
	return &Controller{
		state: State{
			Language: DefaultLanguage,
			Phase:    PhaseIdle,
		},
		pool:   pool,
		logger: logrus.StandardLogger(),
	}
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) SetLanguage(language string) {
	c.state.Language = language
}

func (c *Controller) SetFocusPrompt(prompt string) {
	c.state.FocusPrompt = prompt
}

// SelectFile replaces the selected file. The previous playback resource is
// revoked before the new one is acquired, so at most one is ever live.
func (c *Controller) SelectFile(name, contentType string) error {
	const op = "Controller.SelectFile"

	if !validation.IsMediaFile(name, contentType) {
		return errors.InvalidInput(op, nil, "Selected file must be audio or video")
	}

	if c.playback != nil {
		c.playback.Revoke()
		c.playback = nil
	}

	c.playback = c.pool.Acquire(name)
	c.state.FileName = name
	c.state.ContentType = contentType
	c.state.PlaybackURL = c.playback.URL()
	c.state.Error = ""
	c.state.Result = models.ProcessingResult{}

	c.logger.WithField("file", name).Debug("File selected")
	return nil
}

// BeginSubmit validates the session and transitions to Submitting. It never
// touches the network; the caller sends the returned request through a
// Client and feeds the outcome back via ReceiveSuccess or ReceiveFailure.
func (c *Controller) BeginSubmit() (*UploadRequest, error) {
	const op = "Controller.BeginSubmit"

	if c.state.FileName == "" {
		return nil, errors.InvalidInput(op, nil, "Please select an audio or video file first")
	}
	if c.state.Loading {
		return nil, errors.InvalidInput(op, nil, "A request is already in flight")
	}

	c.state.Phase = PhaseSubmitting
	c.state.Loading = true
	c.state.Error = ""
	c.state.Result = models.ProcessingResult{}

	return &UploadRequest{
		FileName:         c.state.FileName,
		Language:         c.state.Language,
		FocusInstruction: ResolveFocusInstruction(c.state.FocusPrompt),
	}, nil
}

// ReceiveSuccess stores the gateway result and returns to Idle. Loading is
// cleared on every path.
func (c *Controller) ReceiveSuccess(result models.ProcessingResult) {
	c.state.Result = result
	c.state.Error = ""
	c.state.Loading = false
	c.state.Phase = PhaseIdle
}

// ReceiveFailure surfaces the error message and returns to Idle. The file
// selection is preserved so the user can retry without re-selecting.
func (c *Controller) ReceiveFailure(message string) {
	if message == "" {
		message = GenericFailureMessage
	}
	c.state.Error = message
	c.state.Loading = false
	c.state.Phase = PhaseIdle
	c.logger.WithField("error", message).Warn("Request failed")
}

// Close revokes any resources the session still holds. Call on teardown.
func (c *Controller) Close() {
	if c.playback != nil {
		c.playback.Revoke()
		c.playback = nil
	}
	c.state.PlaybackURL = ""
}

// ResolveFocusInstruction maps the raw focus text to the instruction sent to
// the gateway. Pure and idempotent: empty input yields the default
// English-only instruction, and the language suffix is appended exactly once.
func ResolveFocusInstruction(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultFocusInstruction
	}
	if trimmed == DefaultFocusInstruction || strings.HasSuffix(trimmed, focusLanguageSuffix) {
		return trimmed
	}
	return trimmed + focusLanguageSuffix
}
