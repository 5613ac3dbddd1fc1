package validation

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Ramesh-HM-001/aimeetingnotes/config"
	"github.com/Ramesh-HM-001/aimeetingnotes/errors"
)

// audioExtensions and videoExtensions define the accepted upload formats.
var (
	audioExtensions = map[string]bool{
		".mp3":  true,
		".wav":  true,
		".m4a":  true,
		".aac":  true,
		".flac": true,
		".ogg":  true,
		".oga":  true,
		".wma":  true,
	}
	videoExtensions = map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".webm": true,
	}
)

type Validator struct {
	config *config.Config
}

func NewValidator(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// ValidateUpload checks that an uploaded file is present, non-empty, within
// the size limit, and looks like audio or video.
func (v *Validator) ValidateUpload(header *multipart.FileHeader) error {
	const op = "Validator.ValidateUpload"

	if header == nil {
		return errors.InvalidInput(op, nil, "An audio or video file is required")
	}
	if header.Size == 0 {
		return errors.InvalidInput(op, nil, "Uploaded file is empty")
	}
	if header.Size > v.config.Upload.MaxFileSize {
		return errors.InvalidInput(op, nil, "Uploaded file exceeds the maximum allowed size")
	}
	if !IsMediaFile(header.Filename, header.Header.Get("Content-Type")) {
		return errors.InvalidInput(op, nil, "Uploaded file must be audio or video")
	}

	return nil
}

// ValidateLanguage rejects empty language values. Free text is accepted for
// the "Other" choice, so there is no closed-set check here.
func (v *Validator) ValidateLanguage(language string) error {
	const op = "Validator.ValidateLanguage"

	if strings.TrimSpace(language) == "" {
		return errors.InvalidInput(op, nil, "Language is required")
	}
	return nil
}

// IsMediaFile reports whether the upload looks like audio or video, by
// extension or by MIME type prefix.
func IsMediaFile(filename, contentType string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if audioExtensions[ext] || videoExtensions[ext] {
		return true
	}
	return strings.HasPrefix(contentType, "audio/") || strings.HasPrefix(contentType, "video/")
}

// IsVideoFile reports whether the upload is video and so needs audio
// extraction before transcription.
func IsVideoFile(filename, contentType string) bool {
	if videoExtensions[strings.ToLower(filepath.Ext(filename))] {
		return true
	}
	return strings.HasPrefix(contentType, "video/")
}
