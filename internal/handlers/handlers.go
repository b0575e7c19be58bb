package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/fuelstation/docs"
	closinghandlers "github.com/GlebRadaev/fuelstation/internal/handlers/closing"
	prefhandlers "github.com/GlebRadaev/fuelstation/internal/handlers/preferences"
	recordhandlers "github.com/GlebRadaev/fuelstation/internal/handlers/records"
	shifthandlers "github.com/GlebRadaev/fuelstation/internal/handlers/shifts"
	"github.com/GlebRadaev/fuelstation/internal/service"
	"github.com/GlebRadaev/fuelstation/pkg/auth"
)

type ShiftHandler interface {
	GetActive(w http.ResponseWriter, r *http.Request)
	StartShift(w http.ResponseWriter, r *http.Request)
}

type CloseHandler interface {
	OpenSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	CloseSession(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type RecordHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PreferenceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ShiftHandler      ShiftHandler
	CloseHandler      CloseHandler
	RecordHandler     RecordHandler
	PreferenceHandler PreferenceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		ShiftHandler:      shifthandlers.New(s.ShiftService),
		CloseHandler:      closinghandlers.New(s.CloseService),
		RecordHandler:     recordhandlers.New(s.RecordService),
		PreferenceHandler: prefhandlers.New(s.PreferenceService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, validator auth.JWTServiceInterface, metrics http.Handler) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(validator))

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", h.ShiftHandler.StartShift)
			r.Get("/active", h.ShiftHandler.GetActive)
			r.Route("/close", func(r chi.Router) {
				r.Post("/", h.CloseHandler.Submit)
				r.Post("/reconcile", h.CloseHandler.Reconcile)
				r.Route("/session", func(r chi.Router) {
					r.Post("/", h.CloseHandler.OpenSession)
					r.Get("/", h.CloseHandler.GetSession)
					r.Delete("/", h.CloseHandler.CloseSession)
				})
			})
		})
		r.Route("/user/preferences", func(r chi.Router) {
			r.Get("/", h.PreferenceHandler.Get)
			r.Put("/", h.PreferenceHandler.Update)
		})
		r.Route("/records/{entity}", func(r chi.Router) {
			r.Get("/", h.RecordHandler.List)
			r.Post("/", h.RecordHandler.Create)
			r.Get("/{id}", h.RecordHandler.Get)
			r.Put("/{id}", h.RecordHandler.Update)
			r.Delete("/{id}", h.RecordHandler.Delete)
		})
	})

	return r
}
