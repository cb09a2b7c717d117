package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"subway-path-service/internal/adapters/repositories"
	"subway-path-service/internal/api/dto"
	"subway-path-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog, err := repositories.NewMemoryCatalog(&repositories.CatalogSeed{
		Stations: []repositories.StationSeed{
			{ID: 1, Name: "Suseo"},
			{ID: 4, Name: "Ogeum"},
			{ID: 5, Name: "Macheon"},
		},
		Lines: []repositories.LineSeed{
			{ID: 2, Name: "Line 3", Color: "orange", SurchargeFare: 900},
			{ID: 3, Name: "Line 5", Color: "purple", SurchargeFare: 1200},
		},
		Sections: []repositories.SectionSeed{
			{LineID: 2, UpStationID: 1, DownStationID: 4, Distance: 5, Duration: 4},
			{LineID: 3, UpStationID: 4, DownStationID: 5, Distance: 4, Duration: 2},
		},
	})
	require.NoError(t, err)

	return NewRouter(catalog, domain.DefaultFarePolicy())
}

func postQuote(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/paths/quote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestQuotePathEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := postQuote(t, h, `{"station_ids": [1, 4, 5], "age": 20}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var res dto.QuotePathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 9, res.Distance)
	assert.Equal(t, 6, res.Duration)
	assert.Equal(t, 2450, res.Fare)
	assert.Equal(t, 1200, res.Breakdown.Surcharge)
	assert.Equal(t, "adult", res.Breakdown.AgeGroup)
	require.Len(t, res.Stations, 3)
	assert.Equal(t, "Macheon", res.Stations[2].Name)
}

func TestQuotePathEndpointReverseTrip(t *testing.T) {
	h := newTestRouter(t)

	rec := postQuote(t, h, `{"station_ids": [4, 1], "age": 13}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.QuotePathResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1790, res.Fare)
	assert.Equal(t, "Ogeum", res.Stations[0].Name)
}

func TestQuotePathEndpointBadRequests(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"station_ids": [1, 4`},
		{"unknown field", `{"station_ids": [1, 4], "age": 20, "via": 3}`},
		{"trailing object", `{"station_ids": [1, 4], "age": 20}{}`},
		{"missing age", `{"station_ids": [1, 4]}`},
		{"negative age", `{"station_ids": [1, 4], "age": -1}`},
		{"single station", `{"station_ids": [1], "age": 20}`},
		{"not connected", `{"station_ids": [1, 5], "age": 20}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postQuote(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestListLinesEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lines", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListLinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Lines, 2)
	assert.Equal(t, 900, res.Lines[0].SurchargeFare)
}

func TestHealthAndMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/paths/quote", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t)

	postQuote(t, h, `{"station_ids": [1, 4], "age": 8}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "subway_fare_quotes_total")
	assert.Contains(t, rec.Body.String(), `route="/paths/quote"`)
}
