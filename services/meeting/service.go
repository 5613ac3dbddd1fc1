package meeting

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ramesh-HM-001/aimeetingnotes/errors"
	"github.com/Ramesh-HM-001/aimeetingnotes/media"
	"github.com/Ramesh-HM-001/aimeetingnotes/models"
	"github.com/Ramesh-HM-001/aimeetingnotes/validation"
	"github.com/sirupsen/logrus"
)

// defaultFocusInstruction is substituted when a request arrives without a
// resolved focus instruction, so the focused summary is always produced.
const defaultFocusInstruction = "Provide focused summary ONLY in English."

type service struct {
	transcriber Transcriber
	summarizer  Summarizer
	config      Config
	logger      *logrus.Logger
}

// NewService creates a new meeting processing service
func NewService(transcriber Transcriber, summarizer Summarizer, config Config) Service {
	return &service{
		transcriber: transcriber,
		summarizer:  summarizer,
		config:      config,
		logger:      logrus.StandardLogger(),
	}
}

// Process runs the full pipeline: upload to temp file, optional audio
// extraction, transcription, then the four summarization calls. Any step
// failing aborts the whole request; there is no partial-result return.
func (s *service) Process(ctx context.Context, req ProcessRequest) (*models.ProcessingResult, error) {
	const op = "MeetingService.Process"
	logger := s.logger.WithContext(ctx).WithFields(logrus.Fields{
		"filename": req.Filename,
		"language": req.Language,
	})

	workDir, err := os.MkdirTemp(s.config.TempDir, "meeting-*")
	if err != nil {
		return nil, errors.Internal(op, err, "Failed to stage upload")
	}
	defer os.RemoveAll(workDir)

	audioPath, err := s.stageAudio(ctx, workDir, req)
	if err != nil {
		return nil, err
	}

	logger.Info("Starting transcription")
	transcript, err := s.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		logger.WithError(err).Error("Transcription failed")
		return nil, errors.Upstream(op, err, "Transcription failed")
	}

	focus := strings.TrimSpace(req.FocusInstruction)
	if focus == "" {
		focus = defaultFocusInstruction
	}

	logger.Info("Starting summarization")
	summary, err := s.summarizer.SummarizeMain(ctx, transcript, req.Language)
	if err != nil {
		logger.WithError(err).Error("Main summary failed")
		return nil, errors.Upstream(op, err, "Processing failed")
	}

	focusedSummary, err := s.summarizer.SummarizeFocused(ctx, transcript, focus)
	if err != nil {
		logger.WithError(err).Error("Focused summary failed")
		return nil, errors.Upstream(op, err, "Processing failed")
	}

	insights, err := s.summarizer.ExtractInsights(ctx, transcript)
	if err != nil {
		logger.WithError(err).Error("Insight extraction failed")
		return nil, errors.Upstream(op, err, "Processing failed")
	}

	diarized, err := s.summarizer.Diarize(ctx, transcript)
	if err != nil {
		logger.WithError(err).Error("Diarization failed")
		return nil, errors.Upstream(op, err, "Processing failed")
	}

	logger.Info("Processing complete")

	return &models.ProcessingResult{
		Summary:        summary,
		FocusedSummary: focusedSummary,
		Transcript:     transcript,
		Diarized:       diarized,
		Actions:        insights.Actions,
		Decisions:      insights.Decisions,
		Owners:         insights.Owners,
		Risks:          insights.Risks,
	}, nil
}

// stageAudio writes the upload into workDir and, for video uploads, extracts
// a transcription-ready audio track.
func (s *service) stageAudio(ctx context.Context, workDir string, req ProcessRequest) (string, error) {
	const op = "MeetingService.stageAudio"

	name := filepath.Base(req.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	inputPath := filepath.Join(workDir, name)

	f, err := os.Create(inputPath)
	if err != nil {
		return "", errors.Internal(op, err, "Failed to stage upload")
	}
	if _, err := io.Copy(f, req.Media); err != nil {
		f.Close()
		return "", errors.Internal(op, err, "Failed to read uploaded file")
	}
	if err := f.Close(); err != nil {
		return "", errors.Internal(op, err, "Failed to stage upload")
	}

	if !validation.IsVideoFile(req.Filename, req.ContentType) {
		return inputPath, nil
	}

	audioPath, err := media.ExtractAudio(ctx, inputPath, workDir)
	if err != nil {
		return "", errors.Internal(op, err, "Failed to extract audio from video")
	}
	return audioPath, nil
}
