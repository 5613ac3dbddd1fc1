package session

import (
	"strings"
	"testing"
)

func TestSelectFileRevokesPriorPlayback(t *testing.T) {
	pool := NewPool()
	c := NewController(pool)

	if err := c.SelectFile("first.mp3", "audio/mpeg"); err != nil {
		t.Fatalf("SelectFile() failed: %v", err)
	}
	firstURL := c.State().PlaybackURL

	if err := c.SelectFile("second.mp3", "audio/mpeg"); err != nil {
		t.Fatalf("SelectFile() failed: %v", err)
	}

	if pool.LiveCount() != 1 {
		t.Errorf("expected exactly one live playback resource, got %d", pool.LiveCount())
	}
	if pool.IsLive(firstURL) {
		t.Error("previous playback resource was not revoked")
	}
	if !pool.IsLive(c.State().PlaybackURL) {
		t.Error("current playback resource is not live")
	}
}

func TestSelectFileRejectsNonMedia(t *testing.T) {
	pool := NewPool()
	c := NewController(pool)

	if err := c.SelectFile("notes.pdf", "application/pdf"); err == nil {
		t.Error("expected error for non-media file")
	}
	if pool.LiveCount() != 0 {
		t.Errorf("no resource should be acquired for a rejected file, got %d live", pool.LiveCount())
	}
}

func TestCloseRevokesPlayback(t *testing.T) {
	pool := NewPool()
	c := NewController(pool)

	if err := c.SelectFile("meeting.mp3", "audio/mpeg"); err != nil {
		t.Fatal(err)
	}
	c.Close()

	if pool.LiveCount() != 0 {
		t.Errorf("expected no live resources after Close, got %d", pool.LiveCount())
	}
	if c.State().PlaybackURL != "" {
		t.Error("playback URL should be cleared on Close")
	}
}

func TestBeginSubmitWithoutFile(t *testing.T) {
	c := NewController(nil)

	req, err := c.BeginSubmit()
	if err == nil {
		t.Fatal("expected validation error without a file")
	}
	if req != nil {
		t.Error("no request should be produced without a file")
	}
	if c.State().Loading {
		t.Error("loading must stay false when validation fails")
	}
	if c.State().Phase != PhaseIdle {
		t.Errorf("expected phase idle, got %s", c.State().Phase)
	}
}

func TestBeginSubmitLifecycle(t *testing.T) {
	c := NewController(nil)
	if err := c.SelectFile("meeting.mp3", "audio/mpeg"); err != nil {
		t.Fatal(err)
	}
	c.SetFocusPrompt("")

	req, err := c.BeginSubmit()
	if err != nil {
		t.Fatalf("BeginSubmit() failed: %v", err)
	}

	if !c.State().Loading || c.State().Phase != PhaseSubmitting {
		t.Error("expected loading/submitting state after BeginSubmit")
	}
	if req.Language != "English" {
		t.Errorf("expected default language English, got %q", req.Language)
	}
	if req.FocusInstruction != DefaultFocusInstruction {
		t.Errorf("expected default focus instruction, got %q", req.FocusInstruction)
	}

	// Only one submission may be in flight.
	if _, err := c.BeginSubmit(); err == nil {
		t.Error("expected error for second submit while in flight")
	}
}

func TestReceiveFailurePreservesFileSelection(t *testing.T) {
	c := NewController(nil)
	if err := c.SelectFile("meeting.mp3", "audio/mpeg"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.BeginSubmit(); err != nil {
		t.Fatal(err)
	}

	c.ReceiveFailure("Transcription failed")

	s := c.State()
	if s.Error != "Transcription failed" {
		t.Errorf("expected verbatim error, got %q", s.Error)
	}
	if s.Loading {
		t.Error("loading must clear on failure")
	}
	if s.Phase != PhaseIdle {
		t.Errorf("expected return to idle, got %s", s.Phase)
	}
	if s.FileName != "meeting.mp3" {
		t.Error("file selection must survive failure so the user can retry")
	}
}

func TestReceiveFailureEmptyMessageFallsBack(t *testing.T) {
	c := NewController(nil)
	c.ReceiveFailure("")
	if c.State().Error != GenericFailureMessage {
		t.Errorf("expected generic failure message, got %q", c.State().Error)
	}
}

func TestResolveFocusInstruction(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input yields default",
			raw:  "",
			want: "Provide focused summary ONLY in English.",
		},
		{
			name: "whitespace-only input yields default",
			raw:  "   \t ",
			want: "Provide focused summary ONLY in English.",
		},
		{
			name: "user text gets language suffix",
			raw:  "list decisions only",
			want: "list decisions only (Output must be ONLY in English)",
		},
		{
			name: "suffix is appended exactly once",
			raw:  "list decisions only (Output must be ONLY in English)",
			want: "list decisions only (Output must be ONLY in English)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFocusInstruction(tt.raw)
			if got != tt.want {
				t.Errorf("ResolveFocusInstruction(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			// Idempotence over the resolved output.
			if again := ResolveFocusInstruction(got); again != got {
				t.Errorf("resolution not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestResolveFocusInstructionSuffixCount(t *testing.T) {
	resolved := ResolveFocusInstruction(ResolveFocusInstruction("budget approvals"))
	if n := strings.Count(resolved, "(Output must be ONLY in English)"); n != 1 {
		t.Errorf("expected suffix exactly once, found %d in %q", n, resolved)
	}
}
