// Package api defines the JSON request and response types served by the
// shirtmaker HTTP API.
package api

import "time"

// HealthStatus values for HealthResponse.
type HealthStatus string

const Healthy HealthStatus = "healthy"

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    HealthStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
	Uptime    *int         `json:"uptime,omitempty"`
	Version   *string      `json:"version,omitempty"`
}

// GridSpec overrides parts of the default ribbon grid layout. Omitted fields
// keep their defaults (9x3 ribbons, 4 per row, grey border).
type GridSpec struct {
	TileWidth   *int    `json:"tile_width,omitempty"`
	TileHeight  *int    `json:"tile_height,omitempty"`
	PerRow      *int    `json:"per_row,omitempty"`
	BorderColor *string `json:"border_color,omitempty"` // hex, e.g. "#505050"
}

// AnchorSpec is the placement point of the ribbon grid on the shirt.
type AnchorSpec struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ComposeRequest is the body of POST /compose.
type ComposeRequest struct {
	// Ribbons selects assets by path relative to the server's assets
	// directory, in wear order. Empty selects every asset, sorted by path.
	Ribbons  []string    `json:"ribbons,omitempty"`
	Grid     *GridSpec   `json:"grid,omitempty"`
	Anchor   *AnchorSpec `json:"anchor,omitempty"`
	AlignTop *bool       `json:"align_top,omitempty"` // default true
}

// NametapeRequest is the body of POST /nametape.
type NametapeRequest struct {
	Text   string  `json:"text"`
	Width  *int    `json:"width,omitempty"`
	Height *int    `json:"height,omitempty"`
	Color  *string `json:"color,omitempty"` // hex text color
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error     string                  `json:"error"`
	Message   string                  `json:"message"`
	RequestId *string                 `json:"request_id,omitempty"`
	Details   *map[string]interface{} `json:"details,omitempty"`
}
