package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/finanzas-api/internal/application/audit"
	"github.com/jhoicas/finanzas-api/internal/application/auth"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios (solo admin).
type UserUseCase struct {
	repo     repository.UserRepository
	recorder *audit.Recorder
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(repo repository.UserRepository, recorder *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, recorder: recorder}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario: hashea password con bcrypt y persiste.
// Invariante: allowed_routes es obligatorio (no vacío) para viewer y debe
// omitirse para admin.
func (uc *UserUseCase) Create(ctx context.Context, actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := checkRoleRoutes(in.Role, in.AllowedRoutes); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          in.Role,
		AllowedRoutes: in.AllowedRoutes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if user.Role == entity.RoleAdmin {
		user.AllowedRoutes = nil
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "CREATE_USER", "usuario creado", "user", user.ID, map[string]any{
		"email": user.Email,
		"role":  user.Role,
	}); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica un PATCH parcial. Campo omitido no toca nada; campo en null
// solo es válido donde null tiene sentido (allowed_routes al pasar a admin).
func (uc *UserUseCase) Update(ctx context.Context, actorID, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name.Set {
		if !in.Name.Valid || in.Name.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = in.Name.Value
	}
	if in.Email.Set {
		if !in.Email.Valid || in.Email.Value == "" {
			return nil, domain.ErrInvalidInput
		}
		if in.Email.Value != user.Email {
			dup, err := uc.repo.GetByEmail(ctx, in.Email.Value)
			if err != nil {
				return nil, err
			}
			if dup != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
		}
		user.Email = in.Email.Value
	}
	if in.Password.Set {
		if !in.Password.Valid || len(in.Password.Value) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role.Set {
		if !in.Role.Valid {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role.Value
	}
	if in.AllowedRoutes.Set {
		if in.AllowedRoutes.Valid {
			user.AllowedRoutes = in.AllowedRoutes.Value
		} else {
			user.AllowedRoutes = nil
		}
	}
	if err := checkRoleRoutes(user.Role, user.AllowedRoutes); err != nil {
		return nil, err
	}
	if user.Role == entity.RoleAdmin {
		user.AllowedRoutes = nil
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := uc.recorder.Record(ctx, &actorID, "UPDATE_USER", "usuario actualizado", "user", user.ID, map[string]any{
		"email": user.Email,
		"role":  user.Role,
	}); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.recorder.Record(ctx, &actorID, "DELETE_USER", "usuario eliminado", "user", id, map[string]any{
		"email": user.Email,
	})
}

// checkRoleRoutes valida el invariante rol ↔ allowed_routes.
func checkRoleRoutes(role string, routes []string) error {
	switch role {
	case entity.RoleAdmin:
		if len(routes) > 0 {
			return domain.ErrInvalidInput
		}
	case entity.RoleViewer:
		if len(routes) == 0 {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
