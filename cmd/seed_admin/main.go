// seed_admin crea (o restablece) la cuenta de administrador inicial.
//
// Uso: go run ./cmd/seed_admin
// Lee ADMIN_EMAIL y ADMIN_PASSWORD del entorno; por defecto
// admin@example.com / admin123. Idempotente: si la cuenta existe,
// restablece su password y se asegura de que no esté bloqueada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/infrastructure/postgres"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/config"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	email := entity.NormalizeEmail(envOr("ADMIN_EMAIL", "admin@example.com"))
	plain := envOr("ADMIN_PASSWORD", "admin123")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	hash, err := password.Hash(plain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de password: %v\n", err)
		os.Exit(1)
	}

	existing, err := repo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar admin: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		existing.PasswordHash = hash
		existing.Role = entity.RoleAdmin
		existing.Blocked = false
		existing.UpdatedAt = time.Now()
		if err := repo.Update(existing); err != nil {
			fmt.Fprintf(os.Stderr, "Restablecer admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Admin existente %s restablecido\n", email)
		return
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin %s creado\n", email)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
