package main

import (
	"encoding/json"
	"net/http"
)

func (app *application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.Errorw("write response failed", "err", err)
	}
}

// opError reports a store or gateway failure in the structured shape every
// operation uses: success flag, the operation's fixed message, and the
// underlying error.
func (app *application) opError(w http.ResponseWriter, status int, message string, err error) {
	app.logger.Errorw(message, "err", err)
	app.writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

// fieldError reports a failed required-field or photo-size check. No
// exception is logged for these.
func (app *application) fieldError(w http.ResponseWriter, message string) {
	app.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": message})
}

func (app *application) clientError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}
