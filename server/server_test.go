package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/raddeg/decay"
	"github.com/AnkushinDaniil/raddeg/discharge"
	"github.com/AnkushinDaniil/raddeg/entity/parameters"
)

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeCurve(t *testing.T, w *httptest.ResponseRecorder) curveResponse {
	t.Helper()
	var resp curveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRoot(t *testing.T) {
	s := New(parameters.Default())

	tests := []struct {
		target   string
		location string
	}{
		{target: "/", location: "/capacity"},
		{target: "/?mode=capacity", location: "/capacity"},
		{target: "/?mode=v", location: "/voltage"},
		{target: "/?mode=voltage", location: "/voltage"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, s, tt.target)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}

	w := get(t, s, "/?mode=power")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthz(t *testing.T) {
	w := get(t, New(parameters.Default()), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestCharts(t *testing.T) {
	s := New(parameters.Default())

	tests := []struct {
		target      string
		contentType string
		contains    string
	}{
		{target: "/capacity", contentType: "text/html", contains: "Battery Capacity over Time"},
		{target: "/voltage", contentType: "text/html", contains: "Nickel-hydrogen"},
		{target: "/voltage?format=csv&chemistry=silver-zinc", contentType: "text/csv", contains: "Silver-zinc,0,+Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, s, tt.target)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestChartBadRequest(t *testing.T) {
	s := New(parameters.Default())
	for _, target := range []string{
		"/capacity?format=png",
		"/voltage?chemistry=lead-acid",
		"/api/voltage?chemistry=x",
		"/voltage?chemistry=silver-zinc&chemistry=silver-zinc",
		"/api/voltage?chemistry=lithium-ion&chemistry=Lithium-ion",
	} {
		w := get(t, s, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestDuplicateChemistryMatchesCLI(t *testing.T) {
	w := get(t, New(parameters.Default()), "/api/voltage?chemistry=silver-zinc&chemistry=silver-zinc")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), parameters.ErrDuplicateChemistry.Error())
}

func TestCapacityCurve(t *testing.T) {
	w := get(t, New(parameters.Default()), "/api/capacity")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCurve(t, w)
	require.Len(t, resp.Series, 1)
	points := resp.Series[0].Points
	require.Len(t, points, decay.DefaultSamples)
	require.NotNil(t, points[0].Y)
	assert.Equal(t, decay.DefaultCapacity, *points[0].Y)
	assert.Equal(t, decay.DefaultIrradiationTime, points[len(points)-1].X)
}

func TestVoltageCurveEncodesInfAsNull(t *testing.T) {
	w := get(t, New(parameters.Default()), "/api/voltage?chemistry=lithium-ion&chemistry=nickel-hydrogen")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeCurve(t, w)
	require.Len(t, resp.Series, 2)
	assert.Equal(t, "Lithium-ion", resp.Series[0].Name)
	assert.Equal(t, "Nickel-hydrogen", resp.Series[1].Name)
	for _, series := range resp.Series {
		require.Len(t, series.Points, discharge.DefaultSamples)
		assert.Nil(t, series.Points[0].Y)
		assert.NotNil(t, series.Points[1].Y)
	}
}

func TestSetParameters(t *testing.T) {
	s := New(parameters.Default())

	p := parameters.Default()
	p.Decay.Samples = 10
	s.SetParameters(p)

	resp := decodeCurve(t, get(t, s, "/api/capacity"))
	require.Len(t, resp.Series, 1)
	assert.Len(t, resp.Series[0].Points, 10)

	w := get(t, s, "/api/parameters")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, float64(10), got["decay"].(map[string]any)["samples"])
}

func TestParametersAreCopied(t *testing.T) {
	s := New(parameters.Default())
	p := s.Parameters()
	p.Discharge.Chemistries[0].Name = "changed"
	assert.Equal(t, "Lithium-ion", s.Parameters().Discharge.Chemistries[0].Name)
}

func TestMetrics(t *testing.T) {
	s := New(parameters.Default())
	get(t, s, "/capacity")
	get(t, s, "/api/voltage")

	w := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `raddeg_renders_total{format="html",mode="capacity"} 1`)
	assert.Contains(t, body, `raddeg_renders_total{format="json",mode="voltage"} 1`)
	assert.Contains(t, body, "raddeg_model_evaluation_seconds_count")
}

func TestRunShutsDown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	s := New(parameters.Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, addr) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + addr + "/api/voltage?format=csv")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestCSVRows(t *testing.T) {
	w := get(t, New(parameters.Default()), "/capacity?format=csv")
	require.Equal(t, http.StatusOK, w.Code)
	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, decay.DefaultSamples+1)
}
