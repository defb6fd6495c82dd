package dto

import "time"

// ActivityLogQuery filtros para GET /api/activity-logs.
type ActivityLogQuery struct {
	PageRequest
	Action   string `query:"action"`
	UserID   string `query:"user_id"`
	DateFrom string `query:"date_from"` // YYYY-MM-DD
	DateTo   string `query:"date_to"`   // YYYY-MM-DD
}

// ActivityLogResponse salida de una entrada del log de actividad.
type ActivityLogResponse struct {
	ID          string         `json:"id"`
	UserID      *string        `json:"user_id"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ActivityLogListResponse listado paginado del log.
type ActivityLogListResponse struct {
	Data []ActivityLogResponse `json:"data"`
	Meta PageResponse          `json:"meta"`
}
