// Package display shows the revenue chart on a local HTTP page and blocks
// until the context is cancelled.
package display

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/diewo77/salesreport/internal/chart"
	"github.com/diewo77/salesreport/internal/httpx"
	"github.com/diewo77/salesreport/internal/models"
	"github.com/diewo77/salesreport/internal/report"
	log "github.com/sirupsen/logrus"
)

var page = template.Must(template.New("page").Funcs(template.FuncMap{
	"money": report.FormatMoney,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<img src="/chart.png" alt="{{.Title}}" width="{{.Width}}" height="{{.Height}}">
<table>
<thead><tr><th>Product</th><th>Revenue</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr><td>{{.Product}}</td><td>{{money .Revenue}}</td></tr>
{{- end}}
</tbody>
<tfoot><tr><th>Total</th><th>{{money .Total}}</th></tr></tfoot>
</table>
<p>Press Ctrl+C in the terminal to close.</p>
</body>
</html>
`))

type revenueResponse struct {
	Rows  []models.RevenueRow `json:"rows"`
	Total float64             `json:"total"`
}

// Server serves a pre-rendered chart and the rows it was drawn from.
type Server struct {
	mux   *http.ServeMux
	rows  []models.RevenueRow
	total float64
	opts  chart.Options
	png   []byte
}

// NewServer renders the chart once and prepares the routes.
func NewServer(rows []models.RevenueRow, opts chart.Options) (*Server, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf, rows, opts); err != nil {
		return nil, err
	}
	s := &Server{
		mux:   http.NewServeMux(),
		rows:  rows,
		total: models.TotalRevenue(rows),
		opts:  opts,
		png:   buf.Bytes(),
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /chart.png", s.handleChart)
	s.mux.HandleFunc("GET /api/revenue", s.handleRevenue)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Title  string
		Width  int
		Height int
		Rows   []models.RevenueRow
		Total  float64
	}{s.opts.Title, s.opts.Width, s.opts.Height, s.rows, s.total}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		log.WithError(err).Error("render index")
		httpx.JSONError(w, http.StatusInternalServerError, "render_error", nil)
		return
	}
	httpx.Blob(w, http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	httpx.Blob(w, http.StatusOK, "image/png", s.png)
}

func (s *Server) handleRevenue(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, revenueResponse{Rows: s.rows, Total: s.total})
}

// Serve listens on addr and blocks until ctx is done, then shuts down gracefully.
// ready, if non-nil, receives the bound address once the listener is up.
func (s *Server) Serve(ctx context.Context, addr string, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:           withLogging(s),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.Infof("Chart available at http://%s (Ctrl+C to close)", ln.Addr())
	if ready != nil {
		ready(ln.Addr())
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown display: %w", err)
	}
	log.Info("Chart display closed")
	return nil
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
