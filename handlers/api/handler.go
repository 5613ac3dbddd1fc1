package api

import (
	"encoding/json"
	"net/http"

	"github.com/Ramesh-HM-001/aimeetingnotes/errors"
	"github.com/Ramesh-HM-001/aimeetingnotes/middleware"
	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// respondError writes the error as a plain-text body so clients can display
// it verbatim.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.StatusCode(err)
	msg := errors.UserMessage(err)

	logrus.WithFields(logrus.Fields{
		"error":      err,
		"status":     code,
		"request_id": middleware.GetRequestID(r.Context()),
		"path":       r.URL.Path,
		"method":     r.Method,
	}).Error("Request error")

	http.Error(w, msg, code)
}
