package httpserver

import (
	"context"
	"net/http"

	"aethervault/internal/auth"
	"aethervault/internal/config"
	"aethervault/internal/httpserver/handlers"
	"aethervault/internal/models"
	"aethervault/internal/services/cipher"
	"aethervault/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(st store.Store, lg *zap.SugaredLogger, cfg config.Config) http.Handler {
	signer := auth.NewSigner(cfg.JWTSecret, cfg.JWTExpiresIn)
	cache := handlers.NewTraceCache(cfg.TraceCacheSize)
	op := handlers.Operator{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Post("/v1/auth/login", handlers.Login(st, signer, op, lg))

	r.Group(func(public chi.Router) {
		public.Use(auth.OptionalJWT(signer))
		public.Post("/v1/cipher", handlers.Cipher(st, lg))
		public.Post("/v1/trace/des", handlers.TraceDES(st, cache, lg))
		public.Post("/v1/trace/aes", handlers.TraceAES(st, cache, lg))
		public.Post("/v1/helpers/gf-multiply", handlers.GFMultiply(st, lg))
		public.Post("/v1/helpers/mod-inverse", handlers.ModInverse(st, lg))
		public.Post("/v1/helpers/mod-pow", handlers.ModPow(st, lg))
		public.Get("/v1/reference/des", handlers.ReferenceDES())
		public.Get("/v1/reference/aes", handlers.ReferenceAES())
		public.Get("/v1/algorithms", handlers.Algorithms(st, lg))
		public.Post("/v1/vectors/generate", handlers.GenerateVectors(st, lg))
		public.Post("/v1/vectors/validate", handlers.ValidateVectors(st, lg))
		public.Get("/v1/vectors/{batch_id}", handlers.GetVectors(st, lg))
	})

	r.Group(func(admin chi.Router) {
		admin.Use(auth.JWTAuth(signer), auth.RequireRole(auth.RoleAdministrator))
		admin.Get("/v1/logs", handlers.Logs(st, lg))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// SeedAlgorithms writes the cipher catalogue into the store.
func SeedAlgorithms(ctx context.Context, st store.Store) error {
	infos := cipher.Algorithms()
	rows := make([]models.Algorithm, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, models.Algorithm{
			Slug:        string(info.ID),
			Name:        info.Name,
			Category:    info.Category,
			Description: info.Description,
			Params:      models.NewJSONB(info.Params),
			Traceable:   info.Traceable,
		})
	}
	return st.SeedAlgorithms(ctx, rows)
}
