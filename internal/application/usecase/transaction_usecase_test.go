package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finanzas-api/internal/application/audit"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRepo struct {
	byID map[string]*entity.Transaction
}

func newFakeTxRepo() *fakeTxRepo {
	return &fakeTxRepo{byID: make(map[string]*entity.Transaction)}
}

func (f *fakeTxRepo) Create(_ context.Context, tx *entity.Transaction) error {
	cp := *tx
	f.byID[tx.ID] = &cp
	return nil
}
func (f *fakeTxRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	return f.byID[id], nil
}
func (f *fakeTxRepo) List(context.Context, repository.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeTxRepo) Update(_ context.Context, tx *entity.Transaction) error {
	cp := *tx
	f.byID[tx.ID] = &cp
	return nil
}
func (f *fakeTxRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakePeriodStore struct {
	periods map[string]*entity.Period
}

func (f *fakePeriodStore) Create(context.Context, *entity.Period) error { return nil }
func (f *fakePeriodStore) GetByID(_ context.Context, id string) (*entity.Period, error) {
	return f.periods[id], nil
}
func (f *fakePeriodStore) List(context.Context) ([]*entity.Period, error) { return nil, nil }
func (f *fakePeriodStore) Close(context.Context, string) error            { return nil }

// fakeLogRepo acumula entradas de auditoría; con failCreate simula una DB caída.
type fakeLogRepo struct {
	entries    []*entity.ActivityLog
	failCreate bool
}

func (f *fakeLogRepo) Create(_ context.Context, log *entity.ActivityLog) error {
	if f.failCreate {
		return errors.New("db caída")
	}
	f.entries = append(f.entries, log)
	return nil
}
func (f *fakeLogRepo) List(context.Context, repository.ActivityLogFilter) ([]*entity.ActivityLog, int, error) {
	return f.entries, len(f.entries), nil
}

func testRecorder(logRepo *fakeLogRepo) *audit.Recorder {
	return audit.NewRecorder(logRepo, logger.New(logger.Config{Env: "test", Level: "error"}))
}

const (
	openPeriodID   = "00000000-0000-0000-0000-0000000000f1"
	closedPeriodID = "00000000-0000-0000-0000-0000000000f2"
	actorID        = "00000000-0000-0000-0000-000000000001"
)

func periodStore() *fakePeriodStore {
	return &fakePeriodStore{periods: map[string]*entity.Period{
		openPeriodID: {ID: openPeriodID, Name: "Agosto", IsClosed: false,
			StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)},
		closedPeriodID: {ID: closedPeriodID, Name: "Julio", IsClosed: true,
			StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)},
	}}
}

func createReq(periodID string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		PeriodID: periodID,
		Date:     "2026-08-15",
		Type:     entity.TxTypeIncome,
		Source:   entity.SourceSalesGeneral,
		Amount:   decimal.NewFromInt(100),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Crear en período abierto: persiste y agrega exactamente una entrada de auditoría.
func TestTransaction_CrearEnPeriodoAbierto_Audita(t *testing.T) {
	txRepo := newFakeTxRepo()
	logRepo := &fakeLogRepo{}
	uc := usecase.NewTransactionUseCase(txRepo, periodStore(), testRecorder(logRepo))

	out, err := uc.Create(context.Background(), actorID, createReq(openPeriodID))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Len(t, txRepo.byID, 1)
	require.Len(t, logRepo.entries, 1, "cada mutación agrega exactamente una entrada")
	entry := logRepo.entries[0]
	assert.Equal(t, "CREATE_TRANSACTION", entry.Action)
	assert.Equal(t, "transaction", entry.EntityType)
	assert.Equal(t, out.ID, entry.EntityID)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, actorID, *entry.UserID)
}

// Crear en período cerrado: rechazado, nada persiste, nada se audita.
func TestTransaction_CrearEnPeriodoCerrado_Rechazado(t *testing.T) {
	txRepo := newFakeTxRepo()
	logRepo := &fakeLogRepo{}
	uc := usecase.NewTransactionUseCase(txRepo, periodStore(), testRecorder(logRepo))

	_, err := uc.Create(context.Background(), actorID, createReq(closedPeriodID))
	assert.ErrorIs(t, err, domain.ErrPeriodClosed)
	assert.Empty(t, txRepo.byID)
	assert.Empty(t, logRepo.entries)
}

// Crear en período inexistente → ErrNotFound.
func TestTransaction_CrearEnPeriodoInexistente(t *testing.T) {
	uc := usecase.NewTransactionUseCase(newFakeTxRepo(), periodStore(), testRecorder(&fakeLogRepo{}))

	_, err := uc.Create(context.Background(), actorID, createReq("no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Mover una transacción a un período cerrado está prohibido.
func TestTransaction_MoverAPeriodoCerrado_Rechazado(t *testing.T) {
	txRepo := newFakeTxRepo()
	logRepo := &fakeLogRepo{}
	uc := usecase.NewTransactionUseCase(txRepo, periodStore(), testRecorder(logRepo))

	out, err := uc.Create(context.Background(), actorID, createReq(openPeriodID))
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), actorID, out.ID, dto.UpdateTransactionRequest{
		PeriodID: dto.Optional[string]{Set: true, Valid: true, Value: closedPeriodID},
	})
	assert.ErrorIs(t, err, domain.ErrPeriodClosed)

	// La transacción sigue en su período original
	stored, _ := txRepo.GetByID(context.Background(), out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, openPeriodID, stored.PeriodID)
}

// Eliminar audita con DELETE_TRANSACTION.
func TestTransaction_Eliminar_Audita(t *testing.T) {
	txRepo := newFakeTxRepo()
	logRepo := &fakeLogRepo{}
	uc := usecase.NewTransactionUseCase(txRepo, periodStore(), testRecorder(logRepo))

	out, err := uc.Create(context.Background(), actorID, createReq(openPeriodID))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), actorID, out.ID))
	assert.Empty(t, txRepo.byID)

	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, "DELETE_TRANSACTION", logRepo.entries[1].Action)
}

// Si la escritura de auditoría falla, el error se propaga pero la mutación
// primaria (ya confirmada) no se revierte.
func TestTransaction_FalloDeAuditoria_PropagaErrorSinRevertir(t *testing.T) {
	txRepo := newFakeTxRepo()
	logRepo := &fakeLogRepo{failCreate: true}
	uc := usecase.NewTransactionUseCase(txRepo, periodStore(), testRecorder(logRepo))

	_, err := uc.Create(context.Background(), actorID, createReq(openPeriodID))
	assert.Error(t, err, "el fallo de auditoría nunca es éxito silencioso")
	assert.Len(t, txRepo.byID, 1, "la transacción confirmada no se revierte")
}
