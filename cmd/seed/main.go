// seed crea el usuario administrador inicial y, opcionalmente, importa
// categorías de gasto desde un CSV exportado del sistema contable anterior
// (codificado en ISO-8859-1).
//
// Uso:
//
//	go run ./cmd/seed                               # solo usuario admin
//	go run ./cmd/seed -categories categorias.csv    # además importa el catálogo
//
// El admin se toma de SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD y SEED_ADMIN_NAME.
// Si el email ya existe, no se toca.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

func main() {
	categoriesPath := flag.String("categories", "", "CSV de categorías de gasto (ISO-8859-1, una columna: nombre)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := seedAdmin(ctx, postgres.NewUserRepository(pool), log); err != nil {
		log.Fatal().Err(err).Msg("seed del usuario admin")
	}

	if *categoriesPath != "" {
		n, err := importCategories(ctx, postgres.NewExpenseCategoryRepository(pool), *categoriesPath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *categoriesPath).Msg("importar categorías")
		}
		log.Info().Int("count", n).Msg("categorías importadas")
	}
}

// seedAdmin crea el admin inicial si su email no existe todavía.
func seedAdmin(ctx context.Context, users repository.UserRepository, log *logger.Logger) error {
	email := strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL"))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := strings.TrimSpace(os.Getenv("SEED_ADMIN_NAME"))
	if email == "" || password == "" {
		return fmt.Errorf("SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
	}
	if name == "" {
		name = "Administrador"
	}

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("el admin ya existe, no se modifica")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("usuario admin creado")
	return nil
}

// importCategories lee un CSV ISO-8859-1 (una categoría por fila, primera
// columna) y crea las que no estén vacías. Filas duplicadas en el archivo se
// insertan una sola vez.
func importCategories(ctx context.Context, categories repository.ExpenseCategoryRepository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	// Los exports del sistema anterior vienen en ISO-8859-1, no UTF-8
	reader := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("leer CSV: %w", err)
	}

	existing, err := categories.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.Name)] = true
	}

	count := 0
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		now := time.Now().UTC()
		if err := categories.Create(ctx, &entity.ExpenseCategory{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return count, err
		}
		seen[strings.ToLower(name)] = true
		count++
	}
	return count, nil
}
