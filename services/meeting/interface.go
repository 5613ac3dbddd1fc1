package meeting

import (
	"context"
	"io"

	"github.com/Ramesh-HM-001/aimeetingnotes/models"
)

// Service orchestrates one meeting-processing request: transcription followed
// by the summarization calls. Stateless; nothing survives the request.
type Service interface {
	Process(ctx context.Context, req ProcessRequest) (*models.ProcessingResult, error)
}

// Transcriber converts an audio file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Summarizer produces the model-generated views of a transcript.
type Summarizer interface {
	SummarizeMain(ctx context.Context, transcript, language string) (string, error)
	SummarizeFocused(ctx context.Context, transcript, focusInstruction string) (string, error)
	ExtractInsights(ctx context.Context, transcript string) (*models.Insights, error)
	Diarize(ctx context.Context, transcript string) (string, error)
}

// ProcessRequest carries one uploaded recording and its parameters.
type ProcessRequest struct {
	Filename         string
	ContentType      string
	Media            io.Reader
	Language         string
	FocusInstruction string
}

type Config struct {
	TempDir string
}
