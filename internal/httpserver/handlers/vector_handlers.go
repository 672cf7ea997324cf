package handlers

import (
	"errors"
	"net/http"
	"strings"

	"aethervault/internal/models"
	"aethervault/internal/services/vector"
	"aethervault/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type generateReq struct {
	Algorithm       string `json:"algorithm"`
	TestMode        string `json:"test_mode"`
	Count           int    `json:"count"`
	IncludeExpected bool   `json:"include_expected"`
	Format          string `json:"format"`
}

type generateRes struct {
	BatchID string `json:"batch_id"`
	vector.Set
}

// GenerateVectors builds a KAT or MCT set with the toolkit's engines and stores it as one batch.
// format=txt answers with the NIST-style file as an attachment.
func GenerateVectors(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateReq
		if err := decodeJSON(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		alg, err := vector.ParseAlgorithm(req.Algorithm)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode, err := vector.ParseTestMode(req.TestMode)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		set, err := vector.Generate(vector.GenParams{
			Algorithm:       alg,
			TestMode:        mode,
			Count:           req.Count,
			IncludeExpected: req.IncludeExpected,
		}, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		batchID := uuid.NewString()
		if err := st.SaveVectors(r.Context(), set.Rows(batchID)); err != nil {
			lg.Errorw("save vectors", "batch_id", batchID, "err", err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionVectorGenerate,
			Algorithm: string(alg),
			Success:   true,
			Metadata: models.NewJSONB(map[string]any{
				"batch_id": batchID, "test_mode": mode, "count": len(set.Encrypt),
			}),
		})

		if strings.EqualFold(req.Format, "txt") {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="`+set.Filename()+`"`)
			w.Header().Set("X-Batch-ID", batchID)
			_, _ = w.Write([]byte(set.ToTXT()))
			return
		}
		respondJSON(w, generateRes{BatchID: batchID, Set: set})
	}
}

// GetVectors returns the stored rows of one batch.
func GetVectors(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		batchID := chi.URLParam(r, "batch_id")
		if err := uuid.Validate(batchID); err != nil {
			http.Error(w, "invalid batch id", http.StatusBadRequest)
			return
		}
		rows, err := st.ListVectors(r.Context(), batchID)
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		if err != nil {
			lg.Errorw("list vectors", "batch_id", batchID, "err", err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}
		respondJSON(w, rows)
	}
}

// ValidateVectors checks an uploaded vector file (multipart field "file") against the engines.
func ValidateVectors(st store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "multipart parse error", http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer file.Close()
		recs, err := vector.ParseFile(file)
		if err != nil {
			http.Error(w, "parse error: "+err.Error(), http.StatusBadRequest)
			return
		}
		result, err := vector.Validate(recs)
		if err != nil {
			http.Error(w, "validate error: "+err.Error(), http.StatusBadRequest)
			return
		}
		audit(r.Context(), st, lg, models.AuditLog{
			Action:    models.ActionVectorValidate,
			Algorithm: string(result.Algorithm),
			Success:   result.Failed == 0,
			Metadata: models.NewJSONB(map[string]any{
				"total": result.Total, "passed": result.Passed, "failed": result.Failed,
			}),
		})
		respondJSON(w, result)
	}
}
