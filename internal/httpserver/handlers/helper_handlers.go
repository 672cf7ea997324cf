package handlers

import (
	"net/http"

	"aethervault/internal/aes"
	"aethervault/internal/cipherr"
	"aethervault/internal/des"
	"aethervault/internal/models"
	"aethervault/internal/services/cipher"
	"aethervault/internal/store"

	"go.uber.org/zap"
)

func unsupportedAction(a string) error {
	return cipherr.Unsupportedf("Unsupported action %q.", a)
}

type gfReq struct {
	Value      string `json:"value"`
	Multiplier string `json:"multiplier"`
}

func GFMultiply(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gfReq
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := cipher.GFMultiply(req.Value, req.Multiplier)
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionHelper,
			Algorithm: "gf-multiply",
			Success:   err == nil,
			Message:   errMessage(err),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, res)
	}
}

type modInvReq struct {
	A int `json:"a"`
	M int `json:"m"`
}

type modInvRes struct {
	A       int `json:"a"`
	M       int `json:"m"`
	Inverse int `json:"inverse"`
}

func ModInverse(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req modInvReq
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.M == 0 {
			req.M = cipher.DefaultModulus
		}
		inv, err := cipher.ModInverse(req.A, req.M)
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionHelper,
			Algorithm: "mod-inverse",
			Success:   err == nil,
			Message:   errMessage(err),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, modInvRes{A: req.A, M: req.M, Inverse: inv})
	}
}

type modPowReq struct {
	Base int `json:"base"`
	Exp  int `json:"exp"`
	M    int `json:"m"`
}

type modPowRes struct {
	Base   int `json:"base"`
	Exp    int `json:"exp"`
	M      int `json:"m"`
	Result int `json:"result"`
}

func ModPow(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req modPowReq
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := cipher.ModPow(req.Base, req.Exp, req.M)
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionHelper,
			Algorithm: "mod-pow",
			Success:   err == nil,
			Message:   errMessage(err),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, modPowRes{Base: req.Base, Exp: req.Exp, M: req.M, Result: res})
	}
}

func ReferenceDES() http.HandlerFunc {
	tables := des.ReferenceTables()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, tables)
	}
}

func ReferenceAES() http.HandlerFunc {
	tables := aes.ReferenceTables()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, tables)
	}
}

// Algorithms lists the catalogue rows seeded at startup.
func Algorithms(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.ListAlgorithms(r.Context())
		if err != nil {
			lg.Errorw("list algorithms", "err", err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, rows)
	}
}
