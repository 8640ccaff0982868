// maintenance agrupa las migraciones de datos que se corren fuera de línea.
//
// Uso: go run ./cmd/maintenance <subcomando>
//
// Subcomandos:
//
//	fix-passwords     re-hashea cuentas cuyo password quedó en texto plano
//	                  (importaciones antiguas) y garantiza que exista un admin
//	migrate-profiles  aplana el objeto "profile" legado a las columnas planas
//	                  y limpia el JSONB
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/infrastructure/postgres"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/config"
	"github.com/sagarkwankhade/CRM-Version-One/pkg/password"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: maintenance <fix-passwords|migrate-profiles>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	switch os.Args[1] {
	case "fix-passwords":
		err = fixPasswords(pool)
	case "migrate-profiles":
		err = migrateProfiles(pool)
	default:
		fmt.Fprintf(os.Stderr, "Subcomando desconocido: %s\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fixPasswords re-hashea todo password almacenado que no sea un hash bcrypt.
// Una cuenta cuyo hash ya es válido no se toca.
func fixPasswords(pool *pgxpool.Pool) error {
	ctx := context.Background()
	rows, err := pool.Query(ctx, `SELECT id, email, password_hash FROM users`)
	if err != nil {
		return err
	}
	defer rows.Close()

	type pending struct{ id, email, plain string }
	var toFix []pending
	total := 0
	for rows.Next() {
		var id, email, stored string
		if err := rows.Scan(&id, &email, &stored); err != nil {
			return err
		}
		total++
		if !password.IsHash(stored) {
			toFix = append(toFix, pending{id: id, email: email, plain: stored})
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	fixed := 0
	for _, p := range toFix {
		hash, err := password.Hash(p.plain)
		if err != nil {
			return fmt.Errorf("hash para %s: %w", p.email, err)
		}
		if _, err := pool.Exec(ctx,
			`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
			p.id, hash); err != nil {
			return fmt.Errorf("actualizar %s: %w", p.email, err)
		}
		fixed++
	}

	var admins int
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM users WHERE role = $1`, entity.RoleAdmin).Scan(&admins); err != nil {
		return err
	}
	if admins == 0 {
		fmt.Println("Advertencia: no existe ninguna cuenta admin; corra cmd/seed_admin")
	}

	fmt.Printf("Cuentas revisadas: %d, re-hasheadas: %d, ya correctas: %d\n",
		total, fixed, total-fixed)
	return nil
}

// legacyProfile forma del objeto JSONB que escribía la versión anterior.
// Las variantes de nombre reflejan los distintos frontends que escribieron
// el campo a lo largo del tiempo.
type legacyProfile struct {
	Username        string `json:"username"`
	Phone           string `json:"phone"`
	Mobile          string `json:"mobile"`
	MobileNumber    string `json:"mobileNumber"`
	WhatsappNumber  string `json:"whatsappNumber"`
	BusinessName    string `json:"businessName"`
	Address         string `json:"address"`
	BusinessAddress string `json:"businessAddress"`
	City            string `json:"city"`
	BusinessCity    string `json:"businessCity"`
	LinkedinURL     string `json:"linkedinUrl"`
	InstagramURL    string `json:"instagramUrl"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// migrateProfiles aplana el profile legado a las columnas planas. Un campo
// plano ya poblado nunca se sobreescribe. El JSONB se limpia al final aunque
// esté corrupto, para que la migración sea terminal.
func migrateProfiles(pool *pgxpool.Pool) error {
	ctx := context.Background()
	rows, err := pool.Query(ctx, `
		SELECT id, profile, username, mobile_number, whatsapp_number, business_name,
			business_address, business_city, linkedin_url, instagram_url
		FROM users WHERE profile IS NOT NULL`)
	if err != nil {
		return err
	}

	type row struct {
		id                                    string
		raw                                   []byte
		username, mobile, whatsapp, bizName   string
		bizAddr, bizCity, linkedin, instagram string
	}
	var pending []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.raw, &r.username, &r.mobile, &r.whatsapp, &r.bizName,
			&r.bizAddr, &r.bizCity, &r.linkedin, &r.instagram); err != nil {
			rows.Close()
			return err
		}
		pending = append(pending, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	migrated, skipped := 0, 0
	for _, r := range pending {
		var p legacyProfile
		if err := json.Unmarshal(r.raw, &p); err != nil {
			// Corrupto: solo se limpia el JSONB.
			if _, err := pool.Exec(ctx,
				`UPDATE users SET profile = NULL, updated_at = now() WHERE id = $1`, r.id); err != nil {
				return err
			}
			skipped++
			continue
		}
		if _, err := pool.Exec(ctx, `
			UPDATE users SET
				username = $2, mobile_number = $3, whatsapp_number = $4, business_name = $5,
				business_address = $6, business_city = $7, linkedin_url = $8, instagram_url = $9,
				profile = NULL, updated_at = now()
			WHERE id = $1`,
			r.id,
			firstNonEmpty(r.username, p.Username),
			firstNonEmpty(r.mobile, p.MobileNumber, p.Phone, p.Mobile),
			firstNonEmpty(r.whatsapp, p.WhatsappNumber),
			firstNonEmpty(r.bizName, p.BusinessName),
			firstNonEmpty(r.bizAddr, p.BusinessAddress, p.Address),
			firstNonEmpty(r.bizCity, p.BusinessCity, p.City),
			firstNonEmpty(r.linkedin, p.LinkedinURL),
			firstNonEmpty(r.instagram, p.InstagramURL),
		); err != nil {
			return err
		}
		migrated++
	}

	fmt.Printf("Perfiles migrados: %d, corruptos limpiados: %d\n", migrated, skipped)
	return nil
}
