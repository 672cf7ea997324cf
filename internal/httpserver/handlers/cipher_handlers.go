package handlers

import (
	"net/http"

	"aethervault/internal/models"
	"aethervault/internal/services/cipher"
	"aethervault/internal/store"

	"go.uber.org/zap"
)

// Cipher runs one cipher request. Cipher failures are reported in the envelope with a 200,
// only undecodable bodies get a 400.
func Cipher(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cipher.Request
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res := cipher.Process(req)
		if !res.Success {
			lg.Debugw("cipher rejected", "algorithm", req.Algorithm, "action", req.Action, "message", res.Message)
		}
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionCipher,
			Algorithm: string(req.Algorithm),
			Success:   res.Success,
			Message:   res.Message,
			Metadata:  models.NewJSONB(map[string]any{"action": req.Action}),
		})
		respondJSON(w, res)
	}
}

type traceReq struct {
	Text   string `json:"text"`
	Key    string `json:"key"`
	Action string `json:"action"`
}

func (t traceReq) decrypt() bool { return t.Action == string(cipher.Decrypt) }

type traceRes struct {
	Success   bool `json:"success"`
	Cached    bool `json:"cached"`
	Breakdown any  `json:"breakdown"`
}

// TraceDES returns the round-by-round DES breakdown.
func TraceDES(st store.Store, cache *TraceCache, lg *zap.SugaredLogger) http.HandlerFunc {
	return traceHandler(cipher.DES, st, cache, lg, func(req traceReq) (any, error) {
		return cipher.TraceDES(req.Text, req.Key, req.decrypt())
	})
}

// TraceAES returns the round-by-round AES-128 breakdown.
func TraceAES(st store.Store, cache *TraceCache, lg *zap.SugaredLogger) http.HandlerFunc {
	return traceHandler(cipher.AES128, st, cache, lg, func(req traceReq) (any, error) {
		return cipher.TraceAES(req.Text, req.Key, req.decrypt())
	})
}

func traceHandler(alg cipher.Algorithm, st store.Store, cache *TraceCache, lg *zap.SugaredLogger, run func(traceReq) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req traceReq
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Action == "" {
			req.Action = string(cipher.Encrypt)
		}
		var (
			bd     any
			cached bool
			err    error
		)
		if req.Action != string(cipher.Encrypt) && req.Action != string(cipher.Decrypt) {
			err = unsupportedAction(req.Action)
		} else {
			k := newTraceKey(string(alg), req.Text, req.Key, req.decrypt())
			bd, cached, err = cache.load(k, func() (any, error) { return run(req) })
		}
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionTrace,
			Algorithm: string(alg),
			Success:   err == nil,
			Message:   errMessage(err),
			Metadata:  models.NewJSONB(map[string]any{"action": req.Action, "cached": cached}),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, traceRes{Success: true, Cached: cached, Breakdown: bd})
	}
}
