package preview

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jamesmills/cardforge/internal/domain"
)

var pageTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>card preview</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.5em 1em; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
.count { color: #666; }
</style>
</head>
<body>
<h1>Card preview</h1>
<p class="count">{{len .Cards}} cards</p>
<table>
<tr><th>#</th><th>Front</th><th>Back</th></tr>
{{range $i, $c := .Cards}}<tr><td>{{$i}}</td><td>{{$c.Front}}</td><td>{{$c.Back}}</td></tr>
{{end}}</table>
</body>
</html>
`))

// Server renders a fixed set of cards for inspection.
type Server struct {
	cards  []domain.Card
	logger *slog.Logger
}

// NewServer creates a preview server for the given cards.
func NewServer(cards []domain.Card, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cards: cards, logger: logger}
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.renderDeck)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("failed to write health response", "error", err)
		}
	})

	return r
}

// ListenAndServe serves the preview page on the given port until the
// listener fails.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf("localhost:%d", port)
	s.logger.Info("preview server listening", "addr", addr, "cards", len(s.cards))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) renderDeck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Cards []domain.Card }{Cards: s.cards}
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render preview", "error", err)
	}
}
