package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
)

// Init builds the router. Every route, including unknown ones, passes through
// trace id, access log and panic recovery; /videos routes also require a
// bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecover)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/videos", h.listVideos)
		r.Post("/videos", h.createVideo)
		r.Get("/videos/{id}/", h.getVideo)
		r.Put("/videos/{id}/", h.updateVideo)
		r.Delete("/videos/{id}/", h.deleteVideo)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeRouteError(w, r, ErrRouteNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeRouteError(w, r, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
}

func writeRouteError(w http.ResponseWriter, r *http.Request, err error, status int) {
	logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Str("method", r.Method).Msg(err.Error())
	utils.WriteError(w, err.Error(), status)
}
