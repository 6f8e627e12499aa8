package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terrainpainter/internal/catalog"
	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/testutil"
)

type MockRenderStore struct {
	mock.Mock
}

func (m *MockRenderStore) Get(ctx context.Context, id uuid.UUID) (catalog.Render, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Render), args.Error(1)
}

func (m *MockRenderStore) List(ctx context.Context, limit int) ([]catalog.Render, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Render), args.Error(1)
}

func newTestServer(t *testing.T, store RenderStore) http.Handler {
	t.Helper()
	handler, err := NewHandler(config.DefaultMapConfig(), store, config.ServerConfig{
		RenderTimeout: 10 * time.Second,
		MaxMapPixels:  64 * 64,
	})
	require.NoError(t, err)
	return SetupRoutes(handler)
}

func get(t *testing.T, srv http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	rec := get(t, newTestServer(t, nil), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "terrainpainter", body["service"])
}

func TestGetTerrainTable(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	rec := get(t, newTestServer(t, nil), "/api/v1/terrain")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		HeightClasses      int `json:"height_classes"`
		TemperatureClasses int `json:"temperature_classes"`
		Entries            []struct {
			HeightClass      int    `json:"height_class"`
			TemperatureClass int    `json:"temperature_class"`
			Name             string `json:"name"`
			Color            string `json:"color"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 10, body.HeightClasses)
	assert.Equal(t, 5, body.TemperatureClasses)
	require.Len(t, body.Entries, 50)
	assert.Equal(t, 1, body.Entries[0].HeightClass)
	assert.Equal(t, 1, body.Entries[0].TemperatureClass)
	_, err := raster.ParseColor(body.Entries[0].Color)
	assert.NoError(t, err)
}

func TestGetMap(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "terrain", target: "/api/v1/maps/terrain.png?seed=7&width=32&height=20", wantStatus: http.StatusOK},
		{name: "height", target: "/api/v1/maps/height.png?width=32&height=20", wantStatus: http.StatusOK},
		{name: "temperature", target: "/api/v1/maps/temperature.png?width=32&height=20", wantStatus: http.StatusOK},
		{name: "unknown kind", target: "/api/v1/maps/ore.png?width=32&height=20", wantStatus: http.StatusNotFound},
		{name: "bad seed", target: "/api/v1/maps/terrain.png?seed=abc", wantStatus: http.StatusBadRequest},
		{name: "zero width", target: "/api/v1/maps/terrain.png?width=0", wantStatus: http.StatusBadRequest},
		{name: "too large", target: "/api/v1/maps/terrain.png?width=100&height=100", wantStatus: http.StatusBadRequest},
		{name: "pixel count overflows", target: "/api/v1/maps/height.png?width=4294967296&height=4294967296", wantStatus: http.StatusBadRequest},
		{name: "wide and short", target: "/api/v1/maps/height.png?width=4097&height=1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, tt.target)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
			grid, err := raster.Decode(rec.Body)
			require.NoError(t, err)
			assert.Equal(t, 32, grid.Width)
			assert.Equal(t, 20, grid.Height)
		})
	}
}

func TestGetMapDeterministic(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	srv := newTestServer(t, nil)
	first := get(t, srv, "/api/v1/maps/terrain.png?seed=3&width=24&height=16")
	second := get(t, srv, "/api/v1/maps/terrain.png?seed=3&width=24&height=16")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestListRenders(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	renders := []catalog.Render{
		{ID: uuid.New(), Seed: 2, Width: 10, Height: 10, Algorithm: "perlin"},
		{ID: uuid.New(), Seed: 1, Width: 10, Height: 10, Algorithm: "perlin"},
	}

	tests := []struct {
		name       string
		target     string
		setupMock  func(m *MockRenderStore)
		wantStatus int
		wantCount  int
	}{
		{
			name:   "default limit",
			target: "/api/v1/renders",
			setupMock: func(m *MockRenderStore) {
				m.On("List", mock.Anything, 0).Return(renders, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:   "explicit limit",
			target: "/api/v1/renders?limit=1",
			setupMock: func(m *MockRenderStore) {
				m.On("List", mock.Anything, 1).Return(renders[:1], nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:       "invalid limit",
			target:     "/api/v1/renders?limit=many",
			setupMock:  func(m *MockRenderStore) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			target: "/api/v1/renders",
			setupMock: func(m *MockRenderStore) {
				m.On("List", mock.Anything, 0).Return(nil, errors.New("disk on fire"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockRenderStore{}
			tt.setupMock(store)

			rec := get(t, newTestServer(t, store), tt.target)
			require.Equal(t, tt.wantStatus, rec.Code)
			store.AssertExpectations(t)

			if tt.wantStatus != http.StatusOK {
				var body ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantStatus, body.Code)
				assert.NotContains(t, body.Error, "disk on fire")
				return
			}

			var body struct {
				Count   int              `json:"count"`
				Renders []catalog.Render `json:"renders"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCount, body.Count)
			assert.Len(t, body.Renders, tt.wantCount)
		})
	}
}

func TestGetRender(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	id := uuid.New()
	missing := uuid.New()
	stored := catalog.Render{ID: id, Seed: 12345, Width: 150, Height: 100, Algorithm: "perlin", Config: "seed = 12345\n"}

	tests := []struct {
		name       string
		target     string
		setupMock  func(m *MockRenderStore)
		wantStatus int
	}{
		{
			name:   "found",
			target: "/api/v1/renders/" + id.String(),
			setupMock: func(m *MockRenderStore) {
				m.On("Get", mock.Anything, id).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/api/v1/renders/" + missing.String(),
			setupMock: func(m *MockRenderStore) {
				m.On("Get", mock.Anything, missing).Return(catalog.Render{}, catalog.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id",
			target:     "/api/v1/renders/not-a-uuid",
			setupMock:  func(m *MockRenderStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockRenderStore{}
			tt.setupMock(store)

			rec := get(t, newTestServer(t, store), tt.target)
			require.Equal(t, tt.wantStatus, rec.Code)
			store.AssertExpectations(t)

			if tt.wantStatus == http.StatusOK {
				var body catalog.Render
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, id, body.ID)
				assert.Equal(t, int64(12345), body.Seed)
			}
		})
	}
}

func TestCatalogDisabled(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	srv := newTestServer(t, nil)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv, "/api/v1/renders").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv, "/api/v1/renders/"+uuid.New().String()).Code)
}

func TestRendersWithSQLiteCatalog(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	store, err := catalog.Open(config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "renders.db"), MaxOpenConns: 1})
	require.NoError(t, err)
	defer store.Close()

	recorded, err := store.Record(context.Background(), catalog.Render{
		Seed: 5, Width: 24, Height: 16, Algorithm: "opensimplex", Config: "seed = 5\n", Duration: time.Second,
	})
	require.NoError(t, err)

	srv := newTestServer(t, store)

	rec := get(t, srv, "/api/v1/renders/"+recorded.ID.String())
	require.Equal(t, http.StatusOK, rec.Code)
	var got catalog.Render
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, recorded.ID, got.ID)
	assert.Equal(t, "opensimplex", got.Algorithm)
	assert.Equal(t, time.Second, got.Duration)

	rec = get(t, srv, "/api/v1/renders?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), recorded.ID.String())

	rec = get(t, srv, "/api/v1/renders/"+uuid.New().String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
