package httpapi

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Router on the standard http.ServeMux; method checks happen per route.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

// HandleHandler registers a plain http.Handler (static proxy).
func (r *Router) HandleHandler(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	r.mux.ServeHTTP(rec, req)
	r.logger.Debug("HTTP request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// Flush keeps streaming responses from the static proxy working.
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RegisterDashboardRoutes browser pages, form targets and the JSON snapshot API.
func (r *Router) RegisterDashboardRoutes(h *DashboardHandler) {
	// pages
	r.Handle("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		h.Index(w, req)
	})
	r.Handle("/settings", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		h.Settings(w, req)
	})
	r.Handle("/history", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		h.History(w, req)
	})
	r.Handle("/history/export.xlsx", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		h.ExportHistory(w, req)
	})

	// form targets, each answered with a redirect
	r.Handle("/configure-alarm", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodPost) {
			return
		}
		h.ConfigureAlarm(w, req)
	})
	r.Handle("/add-phone-number", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodPost) {
			return
		}
		h.AddPhoneNumber(w, req)
	})
	r.Handle("/update_sensor", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodPost) {
			return
		}
		h.UpdateSensor(w, req)
	})
	r.Handle("/delete-number/", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		key := strings.TrimPrefix(req.URL.Path, "/delete-number/")
		if key == "" || strings.Contains(key, "/") {
			http.NotFound(w, req)
			return
		}
		h.DeleteNumber(w, req, key)
	})
	r.Handle("/clear_history", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		h.ClearHistory(w, req)
	})

	// api/v1/dashboard/{page}
	r.Handle("/api/v1/dashboard/", func(w http.ResponseWriter, req *http.Request) {
		if !methodAllowed(w, req, http.MethodGet) {
			return
		}
		name := strings.TrimPrefix(req.URL.Path, "/api/v1/dashboard/")
		h.Snapshot(w, req, name)
	})

	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Ok("ok"))
	})
}

// RegisterStaticRoutes forwards /static/ (icons, css) to the backend.
func (r *Router) RegisterStaticRoutes(static http.Handler) {
	r.HandleHandler("/static/", static)
}
