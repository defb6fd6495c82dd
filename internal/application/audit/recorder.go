// Package audit implementa el registro inmutable de operaciones que cambian
// estado. Cada mutación exitosa escribe exactamente una entrada de ActivityLog.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// Recorder agrega entradas al log de actividad.
//
// Se invoca de forma síncrona inmediatamente después de que la mutación
// primaria fue confirmada en la DB. Son dos pasos secuenciales que fallan
// por separado: un fallo aquí no revierte la mutación ya confirmada, pero
// tampoco se trata como éxito silencioso — el error se registra y se propaga
// al caller.
type Recorder struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder de auditoría.
func NewRecorder(repo repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record inserta una entrada de auditoría. actorID es nil para acciones de
// sistema o no autenticadas.
func (r *Recorder) Record(
	ctx context.Context,
	actorID *string,
	action, description, entityType, entityID string,
	metadata map[string]any,
) error {
	entry := &entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      actorID,
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.repo.Create(ctx, entry); err != nil {
		r.log.Error().
			Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("fallo al escribir entrada de auditoría")
		return fmt.Errorf("audit.Record %s: %w", action, err)
	}
	return nil
}
