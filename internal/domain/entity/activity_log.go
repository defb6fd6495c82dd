package entity

import "time"

// ActivityLog registro inmutable de una operación que cambió estado.
// Se inserta justo después de que la mutación primaria haya sido confirmada;
// la aplicación nunca lo actualiza ni lo borra.
type ActivityLog struct {
	ID          string
	UserID      *string // nil para acciones de sistema o no autenticadas
	Action      string  // verbo en snake mayúsculas, ej. CREATE_EXPENSE
	Description string
	EntityType  string
	EntityID    string
	Metadata    map[string]any // foto estructurada del request que disparó la acción
	CreatedAt   time.Time
}
