package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubmitSuccess(t *testing.T) {
	var gotLanguage, gotFocus, gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/process" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotLanguage = r.FormValue("language")
		gotFocus = r.FormValue("focus_prompt")
		if fhs := r.MultipartForm.File["audio"]; len(fhs) == 1 {
			gotFilename = fhs[0].Filename
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"summary": "the summary", "focused_summary": "• a bullet"}`))
	}))
	defer srv.Close()

	c := NewController(nil)
	if err := c.SelectFile("meeting.mp3", "audio/mpeg"); err != nil {
		t.Fatal(err)
	}

	client := NewClient(srv.URL, time.Minute)
	if err := c.Submit(context.Background(), client, strings.NewReader("audio bytes")); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	if gotLanguage != "English" {
		t.Errorf("gateway received language %q", gotLanguage)
	}
	if gotFocus != DefaultFocusInstruction {
		t.Errorf("gateway received focus_prompt %q, want default instruction", gotFocus)
	}
	if gotFilename != "meeting.mp3" {
		t.Errorf("gateway received filename %q", gotFilename)
	}

	s := c.State()
	if s.Loading {
		t.Error("loading must clear after success")
	}
	if s.Result.Summary != "the summary" {
		t.Errorf("unexpected summary %q", s.Result.Summary)
	}
	if s.Result.FocusedSummary != "• a bullet" {
		t.Errorf("unexpected focused summary %q", s.Result.FocusedSummary)
	}
	// Absent fields default to empty strings.
	if s.Result.Transcript != "" {
		t.Errorf("expected empty transcript, got %q", s.Result.Transcript)
	}
}

func TestSubmitServerErrorShownVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Transcription failed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewController(nil)
	if err := c.SelectFile("meeting.mp3", "audio/mpeg"); err != nil {
		t.Fatal(err)
	}

	client := NewClient(srv.URL, time.Minute)
	if err := c.Submit(context.Background(), client, strings.NewReader("audio")); err != nil {
		t.Fatalf("Submit() returned error for server failure: %v", err)
	}

	s := c.State()
	if s.Error != "Transcription failed" {
		t.Errorf("expected verbatim server error, got %q", s.Error)
	}
	if s.Loading {
		t.Error("loading must clear after failure")
	}
	if s.FileName != "meeting.mp3" {
		t.Error("file selection must remain intact after failure")
	}
}

func TestSubmitTransportError(t *testing.T) {
	c := NewController(nil)
	if err := c.SelectFile("meeting.mp3", "audio/mpeg"); err != nil {
		t.Fatal(err)
	}

	// Closed server to force a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second)
	if err := c.Submit(context.Background(), client, strings.NewReader("audio")); err != nil {
		t.Fatalf("Submit() returned error for transport failure: %v", err)
	}

	s := c.State()
	if s.Error != GenericFailureMessage {
		t.Errorf("expected generic failure message, got %q", s.Error)
	}
	if s.Loading {
		t.Error("loading must clear after transport failure")
	}
}

func TestSubmitWithoutFileMakesNoNetworkCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewController(nil)
	client := NewClient(srv.URL, time.Minute)

	if err := c.Submit(context.Background(), client, strings.NewReader("audio")); err == nil {
		t.Fatal("expected validation error without a file")
	}
	if called {
		t.Error("no network call may be made when validation fails")
	}
}
