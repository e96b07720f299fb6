package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/uniformkit/shirtmaker/internal/api"
	"github.com/uniformkit/shirtmaker/internal/shirt"
	"github.com/uniformkit/shirtmaker/pkg/ribbon"
)

// maxTapeEdge bounds generated nametape templates.
const maxTapeEdge = 4096

// Server implements the shirtmaker HTTP API.
type Server struct {
	startTime time.Time
	version   string
	assetsDir string
	maker     *shirt.Maker
	log       *slog.Logger
}

// NewServer creates a new server instance composing from the given assets
// directory. A nil logger falls back to slog.Default().
func NewServer(version, assetsDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		startTime: time.Now(),
		version:   version,
		assetsDir: assetsDir,
		maker:     shirt.New(log),
		log:       log,
	}
}

// Routes mounts all API handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.GetHealth)
	r.Post("/compose", s.CreateComposedShirt)
	r.Post("/nametape", s.CreateNametape)
}

// GetHealth implements the health check endpoint.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	uptime := int(time.Since(s.startTime).Seconds())

	response := api.HealthResponse{
		Status:    api.Healthy,
		Timestamp: time.Now(),
		Uptime:    &uptime,
		Version:   &s.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.log.Error("encoding health response", "error", err)
	}
}

// CreateComposedShirt implements the main composition endpoint.
func (s *Server) CreateComposedShirt(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req api.ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON",
			"Invalid JSON in request body", &requestID, nil)
		return
	}

	opts, err := s.convertComposeRequest(&req)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_REQUEST",
			err.Error(), &requestID, nil)
		return
	}

	result, err := s.maker.Compose(r.Context(), opts)
	if err != nil {
		s.handleComposeError(w, err, &requestID)
		return
	}

	s.writePNG(w, requestID, result.ImageData)
}

// CreateNametape implements the nametape rendering endpoint.
func (s *Server) CreateNametape(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req api.NametapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON",
			"Invalid JSON in request body", &requestID, nil)
		return
	}

	opts, err := s.convertNametapeRequest(&req)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, "INVALID_REQUEST",
			err.Error(), &requestID, nil)
		return
	}

	result, err := s.maker.Nametape(r.Context(), opts)
	if err != nil {
		s.log.Error("nametape render failed", "error", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Internal server error", &requestID, nil)
		return
	}

	s.writePNG(w, requestID, result.ImageData)
}

// convertComposeRequest converts an API request to maker options.
func (s *Server) convertComposeRequest(req *api.ComposeRequest) (*shirt.ComposeOptions, error) {
	opts := &shirt.ComposeOptions{
		AssetsDir: s.assetsDir,
		Ribbons:   req.Ribbons,
		Grid:      ribbon.DefaultGridOptions(),
		AlignTop:  true,
	}

	if g := req.Grid; g != nil {
		if g.TileWidth != nil {
			opts.Grid.TileWidth = *g.TileWidth
		}
		if g.TileHeight != nil {
			opts.Grid.TileHeight = *g.TileHeight
		}
		if g.PerRow != nil {
			opts.Grid.PerRow = *g.PerRow
		}
		if g.BorderColor != nil {
			col, err := ribbon.ParseHexColor(*g.BorderColor)
			if err != nil {
				return nil, fmt.Errorf("grid.border_color: %v", err)
			}
			opts.Grid.BorderColor = col
		}
	}

	if opts.Grid.TileWidth <= 0 || opts.Grid.TileHeight <= 0 {
		return nil, fmt.Errorf("grid tile dimensions must be positive")
	}
	if opts.Grid.PerRow <= 0 {
		return nil, fmt.Errorf("grid.per_row must be positive")
	}

	if req.Anchor != nil {
		opts.Anchor = image.Pt(req.Anchor.X, req.Anchor.Y)
	}
	if req.AlignTop != nil {
		opts.AlignTop = *req.AlignTop
	}

	return opts, nil
}

// convertNametapeRequest converts an API request to maker options.
func (s *Server) convertNametapeRequest(req *api.NametapeRequest) (*shirt.NametapeOptions, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("text is required")
	}

	opts := &shirt.NametapeOptions{Text: req.Text}

	if req.Width != nil {
		if *req.Width <= 0 || *req.Width > maxTapeEdge {
			return nil, fmt.Errorf("width must be between 1 and %d", maxTapeEdge)
		}
		opts.Width = *req.Width
	}
	if req.Height != nil {
		if *req.Height <= 0 || *req.Height > maxTapeEdge {
			return nil, fmt.Errorf("height must be between 1 and %d", maxTapeEdge)
		}
		opts.Height = *req.Height
	}
	if req.Color != nil {
		col, err := ribbon.ParseHexColor(*req.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %v", err)
		}
		opts.Color = col
	}

	return opts, nil
}

// handleComposeError maps pipeline errors to API responses.
func (s *Server) handleComposeError(w http.ResponseWriter, err error, requestID *string) {
	var unknown *shirt.UnknownRibbonError
	if errors.As(err, &unknown) {
		s.writeErrorResponse(w, http.StatusNotFound, "RIBBON_NOT_FOUND",
			err.Error(), requestID, map[string]interface{}{
				"ribbon": unknown.Name,
			})
		return
	}

	s.log.Error("compose failed", "error", err)
	s.writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR",
		"Internal server error", requestID, nil)
}

// writePNG writes the finished image with standard headers.
func (s *Server) writePNG(w http.ResponseWriter, requestID string, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.Error("writing response", "error", err)
	}
}

// writeErrorResponse writes a standard error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string, requestID *string, details map[string]interface{}) {
	response := api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		RequestId: requestID,
	}

	if details != nil {
		response.Details = &details
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// generateRequestID generates a unique request ID.
func generateRequestID() string {
	return fmt.Sprintf("req_%d", time.Now().UnixNano())
}
