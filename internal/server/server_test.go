package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/internal/explore"
	"github.com/iwvelando/income-explorer/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedRates struct {
	rate float64
	err  error
}

func (f fixedRates) Rate(ctx context.Context, currency string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, testutil.WriteSampleData(dir))

	store := dataset.NewStore(dir, zap.NewNop())
	explorer := explore.New(store, fixedRates{rate: testutil.SampleRate}, zap.NewNop())
	server := httptest.NewServer(NewHandler(zap.NewNop(), store, explorer, "test"))
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestVersionEndpoint(t *testing.T) {
	server := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, server.URL+"/api/version", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", body["version"])
}

func TestCountriesEndpoint(t *testing.T) {
	server := newTestServer(t)

	var body countriesResponse
	resp := getJSON(t, server.URL+"/api/countries", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Countries, 2)
	assert.Equal(t, "IN", body.Countries[0].Alpha2)
	assert.Equal(t, "India", body.Countries[0].TitleName)
}

func TestCountryEndpoint(t *testing.T) {
	server := newTestServer(t)

	var body countryResponse
	resp := getJSON(t, server.URL+"/api/countries/IN", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "India", body.Country.TitleName)
	assert.Len(t, body.Variables, 2)
	assert.Equal(t, testutil.SampleVariable, body.DefaultVariable)
	assert.Equal(t, []int{testutil.SampleYear, testutil.SampleYear - 1}, body.Years)
	assert.Equal(t, []string{"key_groups", "detailed_p_groups", "detailed_top_groups"}, body.Groups)
	assert.Equal(t, "detailed_p_groups", body.DefaultGroup)
}

func TestCountryEndpointMissing(t *testing.T) {
	server := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, server.URL+"/api/countries/ZZ", &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestExploreEndpoint(t *testing.T) {
	server := newTestServer(t)

	url := fmt.Sprintf("%s/api/explore?country=IN&variable=%s&year=%d&group=detailed_p_groups",
		server.URL, testutil.SampleVariable, testutil.SampleYear)

	var view explore.View
	resp := getJSON(t, url, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, testutil.SampleYear, view.Year)
	assert.Equal(t, "INR", view.Currency)
	require.Len(t, view.Summary, 10)
	assert.Equal(t, "Bottom 1%", view.Summary[0].Cutoff)
	assert.Equal(t, int64(100), view.Summary[0].ValueUSD)
	assert.Len(t, view.SummaryChart.Series, 2)
	assert.True(t, view.DetailChart.RangeSlider)
}

func TestExploreEndpointDefaults(t *testing.T) {
	server := newTestServer(t)

	// No parameters at all: default country, variable, group, and year.
	var view explore.View
	resp := getJSON(t, server.URL+"/api/explore", &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testutil.SampleVariable, view.Variable.Variable)
	assert.Equal(t, testutil.SampleYear-1, view.Year)
}

func TestExploreEndpointNoData(t *testing.T) {
	server := newTestServer(t)

	url := fmt.Sprintf("%s/api/explore?country=IN&variable=%s&year=1950&group=detailed_p_groups",
		server.URL, testutil.SampleVariable)

	var body map[string]string
	resp := getJSON(t, url, &body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No data available", body["error"])
}

func TestExploreEndpointBadInputs(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "bad year", query: "year=soon"},
		{name: "bad start", query: "start=low"},
		{name: "bad end", query: "end=high"},
		{name: "bad group", query: "group=bogus"},
		{name: "bad axis", query: "yaxis=sqrt"},
		{name: "inverted range", query: "start=90&end=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			resp := getJSON(t, server.URL+"/api/explore?country=IN&variable="+testutil.SampleVariable+"&"+tt.query, &body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestExploreEndpointRateFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, testutil.WriteSampleData(dir))

	store := dataset.NewStore(dir, zap.NewNop())
	explorer := explore.New(store, fixedRates{err: fmt.Errorf("unreachable")}, zap.NewNop())
	server := httptest.NewServer(NewHandler(zap.NewNop(), store, explorer, "test"))
	defer server.Close()

	url := fmt.Sprintf("%s/api/explore?country=IN&variable=%s&year=%d&group=detailed_p_groups",
		server.URL, testutil.SampleVariable, testutil.SampleYear)

	var body map[string]string
	resp := getJSON(t, url, &body)
	// A plain error that is not a typed provider error still surfaces.
	assert.GreaterOrEqual(t, resp.StatusCode, 400)
	assert.NotEmpty(t, body["error"])
}

func TestStaticUIServed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
