package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}
func (f *fakeUserRepo) List(context.Context) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func viewerReq() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:          "Vista",
		Email:         "vista@example.com",
		Password:      "secreto123",
		Role:          entity.RoleViewer,
		AllowedRoutes: []string{"dashboard", "expenses"},
	}
}

// Viewer con allowed_routes: se crea, el password queda hasheado y se audita.
func TestUser_CrearViewer_HasheaYAudita(t *testing.T) {
	repo := newFakeUserRepo()
	logRepo := &fakeLogRepo{}
	uc := usecase.NewUserUseCase(repo, testRecorder(logRepo))

	out, err := uc.Create(context.Background(), actorID, viewerReq())
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "expenses"}, out.AllowedRoutes)

	stored := repo.byID[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, "CREATE_USER", logRepo.entries[0].Action)
}

// Viewer sin allowed_routes viola el invariante.
func TestUser_CrearViewerSinRutas_Invalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), testRecorder(&fakeLogRepo{}))

	in := viewerReq()
	in.AllowedRoutes = nil
	_, err := uc.Create(context.Background(), actorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Admin con allowed_routes viola el invariante.
func TestUser_CrearAdminConRutas_Invalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), testRecorder(&fakeLogRepo{}))

	in := viewerReq()
	in.Role = entity.RoleAdmin
	_, err := uc.Create(context.Background(), actorID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Email duplicado → 409.
func TestUser_CrearEmailDuplicado_Conflicto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testRecorder(&fakeLogRepo{}))

	_, err := uc.Create(context.Background(), actorID, viewerReq())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), actorID, viewerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// PATCH sobre un id inexistente → ErrNotFound (404), nunca un error de
// credenciales: el admin está autenticado, el recurso es el que falta.
func TestUser_ActualizarIDInexistente_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), testRecorder(&fakeLogRepo{}))

	_, err := uc.Update(context.Background(), actorID, "no-existe", dto.UpdateUserRequest{
		Name: dto.Optional[string]{Set: true, Valid: true, Value: "Otro"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

// DELETE sobre un id inexistente → ErrNotFound, y no se audita nada.
func TestUser_EliminarIDInexistente_NotFound(t *testing.T) {
	logRepo := &fakeLogRepo{}
	uc := usecase.NewUserUseCase(newFakeUserRepo(), testRecorder(logRepo))

	err := uc.Delete(context.Background(), actorID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, logRepo.entries)
}

// Promover un viewer a admin enviando allowed_routes en null limpia las rutas.
func TestUser_PromoverAAdmin_LimpiaRutas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testRecorder(&fakeLogRepo{}))

	out, err := uc.Create(context.Background(), actorID, viewerReq())
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), actorID, out.ID, dto.UpdateUserRequest{
		Role:          dto.Optional[string]{Set: true, Valid: true, Value: entity.RoleAdmin},
		AllowedRoutes: dto.Optional[[]string]{Set: true, Valid: false},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
	assert.Empty(t, updated.AllowedRoutes)
	assert.Nil(t, repo.byID[out.ID].AllowedRoutes)
}

// Promover a admin conservando rutas viola el invariante.
func TestUser_PromoverAAdminConRutas_Invalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo, testRecorder(&fakeLogRepo{}))

	out, err := uc.Create(context.Background(), actorID, viewerReq())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), actorID, out.ID, dto.UpdateUserRequest{
		Role: dto.Optional[string]{Set: true, Valid: true, Value: entity.RoleAdmin},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
