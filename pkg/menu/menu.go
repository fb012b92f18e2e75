package menu

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mchmarny/sidebar/pkg/metric"
)

// Source produces the flattened sidebar for one request.
type Source interface {
	Menu(ctx context.Context) ([]Section, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Section, error)

func (f SourceFunc) Menu(ctx context.Context) ([]Section, error) {
	return f(ctx)
}

// HandlerOption configures the menu handler.
type HandlerOption func(*handler)

// WithRequestCounter counts requests by response status.
func WithRequestCounter(c metric.IncrementalCounter) HandlerOption {
	return func(h *handler) { h.counter = c }
}

// WithHandlerLogger sets the request logger. Defaults to slog.Default().
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *handler) { h.logger = l }
}

type handler struct {
	src     Source
	counter metric.IncrementalCounter
	logger  *slog.Logger
}

// Handler returns an HTTP handler that responds with the menu sections as JSON.
// The menu is rebuilt on every request; any error fails the whole response.
func Handler(src Source, opts ...HandlerOption) http.Handler {
	h := &handler{
		src:     src,
		counter: metric.NopCounter{},
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("handling menu request",
		"method", r.Method,
		"url", r.URL.Path,
	)

	sections, err := h.src.Menu(r.Context())
	if err != nil {
		h.logger.Error("failed to build menu", "error", err)
		h.write(w, http.StatusInternalServerError, map[string]string{"error": "failed to build menu"})
		return
	}

	h.write(w, http.StatusOK, sections)

	h.logger.Debug("menu response sent",
		"method", r.Method,
		"url", r.URL.Path,
		"sections", len(sections),
	)
}

func (h *handler) write(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("failed to encode menu", "error", err)
		status = http.StatusInternalServerError
		data = []byte(`{"error":"internal server error"}`)
	}

	h.counter.Increment(strconv.Itoa(status))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write menu response", "error", err)
	}
}
