package http

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//go:embed index.html
var indexPage []byte

var requestCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total HTTP Request",
})

// ChatService is the surface the transport needs from the orchestrator.
type ChatService interface {
	Respond(ctx context.Context, sessionKey string, userInput string) (string, error)
}

type Server struct {
	options Options
	service ChatService
	srv     *http.Server
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	requestCount.Inc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	requestCount.Inc()

	ctx, cancel := context.WithTimeout(r.Context(), s.options.RequestTimeout)
	defer cancel()

	// empty input is not special-cased; it rides the same pipeline
	userInput := r.FormValue("msg")

	sessionKey := r.FormValue("session_id")
	if len(sessionKey) == 0 {
		sessionKey = s.options.DefaultSessionKey
	}

	answer, err := s.service.Respond(ctx, sessionKey, userInput)
	if err != nil {
		slog.ErrorContext(ctx, "failed to respond", "session", sessionKey, "error", err)
		http.Error(w, "upstream failure", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(answer))
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/get", s.handleGet).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	var handler http.Handler = router

	if ms, ok := MiddlewareFrom(s.options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	return otelhttp.NewHandler(handler, "recommender")
}

func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:    s.options.Address,
		Handler: s.Handler(),
	}

	slog.InfoContext(s.options.Context, "http server listening", "address", s.options.Address)

	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func NewServer(service ChatService, opts ...Option) *Server {
	options := NewOptions(opts...)

	if service == nil {
		panic("chat service is required")
	}

	return &Server{
		options: options,
		service: service,
	}
}
