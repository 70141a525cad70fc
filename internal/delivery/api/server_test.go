package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripplanner/config"
	"tripplanner/internal/delivery/api/router"
	"tripplanner/internal/delivery/api/router/handler"
	deliverycontext "tripplanner/internal/delivery/context"
	"tripplanner/internal/delivery/presenter"
	"tripplanner/internal/infra/planner"
	"tripplanner/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jaipurRequest = `{
	"tripCategory": "Historical",
	"days": 2,
	"pois": [
		{"id": "amber", "name": "Amber Fort", "location": {"lat": 26.9855, "lng": 75.8513}, "visitDuration": 3, "rating": 4.6, "description": "Hilltop fort palace"},
		{"id": "hawa", "name": "Hawa Mahal", "location": {"lat": 26.9239, "lng": 75.8267}, "visitDuration": 1.5, "rating": 4.4},
		{"id": "city", "name": "City Palace", "location": {"lat": 26.9258, "lng": 75.8237}, "visitDuration": 2, "rating": 4.5},
		{"id": "jal", "name": "Jal Mahal", "location": {"lat": 26.9535, "lng": 75.8462}, "visitDuration": 1, "rating": 4.8},
		{"id": "chokhi", "name": "Chokhi Dhani", "visitDuration": 3.5, "rating": 4.9}
	]
}`

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	optimizer := planner.NewOptimizer(planner.Options{MaxPOIs: cfg.Optimizer.MaxPOIs})
	itineraryUC := impl.NewItineraryService(optimizer, nil, cfg, logger)

	e := echo.New()
	configureEcho(e, cfg, logger)
	router.NewRouter(router.RouterParams{
		ItineraryHandler: handler.NewItineraryHandler(handler.ItineraryHandlerParams{
			ItineraryUC: itineraryUC,
			Logger:      logger,
		}),
	}).RegisterRoutes(e)

	return e
}

func do(e *echo.Echo, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCheck(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "abc-123"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `{"status":"ok"}`, string(body.Data))
	assert.Equal(t, "abc-123", body.Meta.RequestID)
}

func TestServer_ListStrategies(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/itineraries/strategies", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `[
		{"name":"greedy","method":"multi-criteria-greedy","isDefault":true},
		{"name":"shortest-path","method":"shortest-path-nearest","isDefault":false}
	]`, string(body.Data))
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestServer_PlanItinerary_JSON(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/itineraries", jaipurRequest, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	var itinerary presenter.Itinerary
	require.NoError(t, json.Unmarshal(body.Data, &itinerary))

	assert.NotEmpty(t, itinerary.ItineraryID)
	assert.False(t, itinerary.CategoryFallback)
	assert.Equal(t, presenter.Metadata{
		TripCategory:       "Historical",
		StartingPoint:      "Amber Fort",
		TotalPOIs:          5,
		OptimizationMethod: planner.MethodGreedy,
	}, itinerary.Metadata)

	require.Len(t, itinerary.DailyItineraries, 2)
	count := 0
	for _, day := range itinerary.DailyItineraries {
		require.NotEmpty(t, day)
		count += len(day)
		assert.Nil(t, day[len(day)-1].TravelTimeToNext)
		for _, stop := range day[:len(day)-1] {
			assert.NotNil(t, stop.TravelTimeToNext)
		}
	}
	assert.Equal(t, 5, count)
}

func TestServer_PlanItinerary_GeoJSON(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/itineraries?format=geojson", jaipurRequest, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

	var fc struct {
		Type     string    `json:"type"`
		BBox     []float64 `json:"bbox"`
		Features []struct {
			ID       string         `json:"id"`
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
		Unlocated []string `json:"unlocated"`
		Days      int      `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.BBox, 4)
	assert.Equal(t, 2, fc.Days)
	assert.Equal(t, []string{"chokhi"}, fc.Unlocated)

	points := 0
	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case "Point":
			points++
			assert.Equal(t, "stop", f.Properties["kind"])
			assert.Contains(t, f.Properties, "day")
			assert.Contains(t, f.Properties, "order")
		case "LineString":
			assert.Equal(t, "route", f.Properties["kind"])
		default:
			t.Fatalf("unexpected geometry %s", f.Geometry.Type)
		}
	}
	assert.Equal(t, 4, points)
}

func TestServer_PlanItinerary_UnknownCategoryFallsBack(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/itineraries", strings.Replace(jaipurRequest, `"Historical"`, `"Culinary"`, 1), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	var itinerary presenter.Itinerary
	require.NoError(t, json.Unmarshal(body.Data, &itinerary))

	assert.True(t, itinerary.CategoryFallback)
	assert.Equal(t, "Historical", itinerary.Metadata.TripCategory)
}

func TestServer_PlanItinerary_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{
			name:     "malformed JSON",
			body:     `{"days":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name:     "validation failure",
			body:     `{"tripCategory":"Nature","days":0,"pois":[{"id":"","name":"Lake","visitDuration":1,"rating":9}]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "duplicate ids",
			body:     `{"tripCategory":"Nature","days":1,"pois":[{"id":"a","name":"A","visitDuration":1,"rating":3},{"id":"a","name":"B","visitDuration":1,"rating":3}]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "DUPLICATE_POI",
		},
		{
			name:     "unknown strategy",
			body:     `{"tripCategory":"Nature","days":1,"strategy":"annealing","pois":[]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "UNKNOWN_STRATEGY",
		},
		{
			name:     "too many days",
			body:     `{"tripCategory":"Nature","days":400,"pois":[]}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_DAYS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(t)

			rec := do(e, http.MethodPost, "/api/v1/itineraries", tt.body, nil)

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			var body envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}

func TestServer_ValidationDetailsUseJSONFieldNames(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodPost, "/api/v1/itineraries",
		`{"tripCategory":"Nature","days":1,"pois":[{"id":"a","name":"A","visitDuration":0,"rating":3}]}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.JSONEq(t, `[{"field":"pois[0].visitDuration","rule":"gt","param":"0"}]`, string(body.Error.Details))
}

func TestServer_NotFound(t *testing.T) {
	e := newTestEcho(t)

	rec := do(e, http.MethodGet, "/api/v1/unknown", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
