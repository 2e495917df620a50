// Package server serves the model charts and curves over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/raddeg/app"
	"github.com/AnkushinDaniil/raddeg/entity"
	"github.com/AnkushinDaniil/raddeg/entity/format"
	"github.com/AnkushinDaniil/raddeg/entity/mode"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	mu     sync.RWMutex
	params *parameters.Parameters

	engine  *gin.Engine
	metrics *metrics
}

// Series is the JSON form of a line.
type Series struct {
	Name   string         `json:"name"`
	Points []entity.Point `json:"points"`
}

type curveResponse struct {
	Series []Series `json:"series"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(params *parameters.Parameters) *Server {
	gin.SetMode(gin.ReleaseMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	s := &Server{
		params:  params,
		engine:  gin.New(),
		metrics: newMetrics(reg),
	}

	router := s.engine
	router.Use(gin.Recovery())
	router.Use(ginLogger(log.StandardLogger()))
	router.GET("/", s.index)
	router.GET("/capacity", s.chart(mode.Capacity))
	router.GET("/voltage", s.chart(mode.Voltage))
	router.GET("/api/capacity", s.curve(mode.Capacity))
	router.GET("/api/voltage", s.curve(mode.Voltage))
	router.GET("/api/parameters", s.getParameters)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Parameters returns a copy of the current parameters.
func (s *Server) Parameters() *parameters.Parameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params.Clone()
}

// SetParameters replaces the parameters used by subsequent requests.
func (s *Server) SetParameters(p *parameters.Parameters) {
	s.mu.Lock()
	s.params = p
	s.mu.Unlock()
	s.metrics.reloads.Inc()
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// request builds the parameters for one request from the query string:
// format=html|csv and any number of chemistry=<name>.
func (s *Server) request(c *gin.Context, m mode.Mode) (*parameters.Parameters, error) {
	p := s.Parameters()
	p.Mode = m
	p.Format = format.HTML
	if f := c.Query("format"); f != "" {
		if err := p.Format.Set(f); err != nil {
			return nil, err
		}
	}
	if err := p.Select(c.QueryArray("chemistry")); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// index redirects to the chart of the mode named by ?mode=, capacity by
// default.
func (s *Server) index(c *gin.Context) {
	m, err := mode.UnmarshalText(c.DefaultQuery("mode", mode.Capacity.String()))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/"+m.String())
}

func (s *Server) lines(c *gin.Context, p *parameters.Parameters) ([]*entity.Line, bool) {
	start := time.Now()
	lines, err := app.Lines(c.Request.Context(), p)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return nil, false
	}
	s.metrics.evaluation.WithLabelValues(p.Mode.String()).Observe(time.Since(start).Seconds())
	return lines, true
}

func (s *Server) chart(m mode.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := s.request(c, m)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		lines, ok := s.lines(c, p)
		if !ok {
			return
		}

		var buf bytes.Buffer
		if err := app.Render(&buf, p, lines); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		s.metrics.renders.WithLabelValues(p.Mode.String(), p.Format.String()).Inc()

		contentType := "text/html; charset=utf-8"
		if p.Format == format.Csv {
			contentType = "text/csv; charset=utf-8"
		}
		c.Data(http.StatusOK, contentType, buf.Bytes())
	}
}

func (s *Server) curve(m mode.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := s.request(c, m)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		lines, ok := s.lines(c, p)
		if !ok {
			return
		}

		resp := curveResponse{Series: make([]Series, len(lines))}
		for i, l := range lines {
			resp.Series[i] = Series{Name: l.Name(), Points: l.Points()}
		}
		s.metrics.renders.WithLabelValues(p.Mode.String(), "json").Inc()
		c.JSON(http.StatusOK, resp)
	}
}

func (s *Server) getParameters(c *gin.Context) {
	c.JSON(http.StatusOK, s.Parameters())
}
