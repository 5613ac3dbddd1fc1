package api

import (
	"net/http"

	"github.com/Ramesh-HM-001/aimeetingnotes/errors"
	"github.com/Ramesh-HM-001/aimeetingnotes/services/meeting"
	"github.com/Ramesh-HM-001/aimeetingnotes/validation"
	"github.com/sirupsen/logrus"
)

type MeetingHandler struct {
	service   meeting.Service
	validator *validation.Validator
	maxSize   int64
	logger    *logrus.Logger
}

func NewMeetingHandler(service meeting.Service, validator *validation.Validator, maxSize int64) *MeetingHandler {
	return &MeetingHandler{
		service:   service,
		validator: validator,
		maxSize:   maxSize,
		logger:    logrus.StandardLogger(),
	}
}

// HandleProcess handles POST /api/process
func (h *MeetingHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	const op = "MeetingHandler.HandleProcess"
	logger := h.logger.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logger.WithError(err).Warn("Failed to parse multipart form")
		respondError(w, r, errors.InvalidInput(op, err, "Failed to read uploaded form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("audio")
	if err != nil {
		respondError(w, r, errors.InvalidInput(op, err, "An audio or video file is required"))
		return
	}
	defer file.Close()

	if err := h.validator.ValidateUpload(header); err != nil {
		respondError(w, r, err)
		return
	}

	language := r.FormValue("language")
	if language == "" {
		language = "English"
	}
	if err := h.validator.ValidateLanguage(language); err != nil {
		respondError(w, r, err)
		return
	}

	focusPrompt := r.FormValue("focus_prompt")

	logger.WithFields(logrus.Fields{
		"filename": header.Filename,
		"size":     header.Size,
		"language": language,
	}).Info("Received processing request")

	result, err := h.service.Process(r.Context(), meeting.ProcessRequest{
		Filename:         header.Filename,
		ContentType:      header.Header.Get("Content-Type"),
		Media:            file,
		Language:         language,
		FocusInstruction: focusPrompt,
	})
	if err != nil {
		logger.WithError(err).Error("Failed to process meeting")
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, result)
}
