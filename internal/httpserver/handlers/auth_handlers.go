package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"aethervault/internal/auth"
	"aethervault/internal/models"
	"aethervault/internal/store"

	"go.uber.org/zap"
)

// Operator is the single administrator account configured through the environment.
type Operator struct {
	Email        string
	PasswordHash string
}

func (o Operator) configured() bool { return o.Email != "" && o.PasswordHash != "" }

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRes struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func Login(st store.Store, signer *auth.Signer, op Operator, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !op.configured() || !signer.Enabled() {
			http.Error(w, "login is not configured", http.StatusServiceUnavailable)
			return
		}
		var req loginReq
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		ok := email == strings.ToLower(op.Email) && auth.CheckPassword(op.PasswordHash, req.Password) == nil
		entry := models.AuditLog{Action: models.ActionLogin, Success: ok}
		if !ok {
			entry.Message = "invalid credentials"
			audit(r.Context(), st, lg, entry)
			lg.Warnw("login failed", "email", email)
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := signer.Sign(email, []string{auth.RoleAdministrator})
		if err != nil {
			lg.Errorw("sign token", "err", err)
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}
		ctx := auth.WithClaims(r.Context(), auth.Claims{Subject: email, Roles: []string{auth.RoleAdministrator}})
		audit(ctx, st, lg, entry)
		respondJSON(w, loginRes{Token: tok, ExpiresIn: int64(signer.TTL().Seconds())})
	}
}

// Logs returns the most recent audit entries, newest first. ?limit= caps the count.
func Logs(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := store.DefaultAuditLimit
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = min(n, store.DefaultAuditLimit)
		}
		logs, err := st.ListAudit(r.Context(), limit)
		if err != nil {
			lg.Errorw("list audit", "err", err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, logs)
	}
}
