package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/VoidMesh/terrainpainter/internal/catalog"
	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/logging"
	"github.com/VoidMesh/terrainpainter/internal/pipeline"
	"github.com/VoidMesh/terrainpainter/internal/raster"
	"github.com/VoidMesh/terrainpainter/internal/terrain"
)

// RenderStore is the read side of the render catalog.
type RenderStore interface {
	Get(ctx context.Context, id uuid.UUID) (catalog.Render, error)
	List(ctx context.Context, limit int) ([]catalog.Render, error)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	base          *config.MapConfig
	table         *terrain.Table
	store         RenderStore
	renderTimeout time.Duration
	maxPixels     int
}

// NewHandler serves maps rendered from base. store may be nil, in which case
// the catalog endpoints answer 503.
func NewHandler(base *config.MapConfig, store RenderStore, server config.ServerConfig) (*Handler, error) {
	p, err := pipeline.New(base, terrain.NewDefaultLoggerWrapper())
	if err != nil {
		return nil, err
	}
	timeout := server.RenderTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Handler{
		base:          base,
		table:         p.Classifier().Table(),
		store:         store,
		renderTimeout: timeout,
		maxPixels:     server.MaxMapPixels,
	}, nil
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "terrainpainter",
		"version":   "1.0.0",
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) GetTerrainTable(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"height_classes":      h.table.HeightClasses(),
		"temperature_classes": h.table.TemperatureClasses(),
		"entries":             h.table.Entries(),
	})
}

func (h *Handler) GetMap(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind != "height" && kind != "temperature" && kind != "terrain" {
		h.renderError(w, r, http.StatusNotFound, "unknown map kind", nil)
		return
	}

	cfg := *h.base
	query := r.URL.Query()
	if v := query.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.renderError(w, r, http.StatusBadRequest, "invalid seed", err)
			return
		}
		cfg.Seed = seed
	}
	for _, dim := range []struct {
		name string
		dst  *int
	}{{"width", &cfg.Width}, {"height", &cfg.Height}} {
		v := query.Get(dim.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.renderError(w, r, http.StatusBadRequest, dim.name+" must be a positive integer", nil)
			return
		}
		*dim.dst = n
	}
	if h.maxPixels > 0 && cfg.Width > h.maxPixels/cfg.Height {
		h.renderError(w, r, http.StatusBadRequest, "map is too large", nil)
		return
	}

	p, err := pipeline.New(&cfg, terrain.NewDefaultLoggerWrapper(), pipeline.WithoutOres())
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid map parameters", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.renderTimeout)
	defer cancel()

	res, err := p.Run(ctx)
	if err != nil {
		logging.GetLogger().Error("failed to render map", "error", err, "kind", kind, "seed", cfg.Seed)
		h.renderError(w, r, http.StatusInternalServerError, "failed to render map", err)
		return
	}

	grid := res.Painted
	switch kind {
	case "height":
		grid = res.HeightMap
	case "temperature":
		grid = res.TemperatureMap
	}

	var buf bytes.Buffer
	if err := raster.Encode(&buf, grid); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to encode map", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) ListRenders(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.renderError(w, r, http.StatusServiceUnavailable, "render catalog is disabled", nil)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.renderError(w, r, http.StatusBadRequest, "invalid limit", err)
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	renders, err := h.store.List(ctx, limit)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to list renders", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]interface{}{
		"renders": renders,
		"count":   len(renders),
	})
}

func (h *Handler) GetRender(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		h.renderError(w, r, http.StatusServiceUnavailable, "render catalog is disabled", nil)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid render id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rec, err := h.store.Get(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "render not found", nil)
		return
	}
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to get render", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, rec)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		logging.GetLogger().Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
