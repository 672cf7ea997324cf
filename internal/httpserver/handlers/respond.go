package handlers

import (
	"context"
	"errors"
	"net/http"

	"aethervault/internal/auth"
	"aethervault/internal/cipherr"
	"aethervault/internal/models"
	"aethervault/internal/store"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, v interface{}) {
	respondStatus(w, http.StatusOK, v)
}

func respondStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// respondError writes the {success:false} envelope with a status derived from err.
func respondError(w http.ResponseWriter, err error) {
	respondStatus(w, statusFor(err), failure{Message: err.Error()})
}

// statusFor maps cipher error kinds to HTTP statuses; anything else is a server error.
func statusFor(err error) int {
	switch cipherr.KindOf(err) {
	case cipherr.Format, cipherr.Domain, cipherr.Algebraic, cipherr.Structural:
		return http.StatusBadRequest
	case cipherr.Unsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errors.New("request body too large")
		}
		return err
	}
	return nil
}

// audit records entry with the caller's subject. Failures are logged, never returned.
func audit(ctx context.Context, st store.Store, lg *zap.SugaredLogger, entry models.AuditLog) {
	entry.Subject = auth.Subject(ctx)
	if entry.Metadata == nil {
		entry.Metadata = models.JSONB("{}")
	}
	if err := st.RecordAudit(ctx, &entry); err != nil {
		lg.Warnw("audit write failed", "action", entry.Action, "err", err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
