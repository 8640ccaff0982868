package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Incluye el adaptador de lectura versionada: filas con el objeto "profile"
// legado (JSONB) se normalizan a los campos planos al salir del store.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, name, email, password_hash, role, blocked, created_by, vendor_id,
	username, mobile_number, whatsapp_number, business_name, business_address, business_city,
	city, document_number, linkedin_url, instagram_url, profile, created_at, updated_at`

// rowScanner cubre pgx.Row y pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var u entity.User
	var legacyProfile []byte
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Blocked, &u.CreatedBy, &u.VendorID,
		&u.Username, &u.MobileNumber, &u.WhatsappNumber, &u.BusinessName, &u.BusinessAddress, &u.BusinessCity,
		&u.City, &u.DocumentNumber, &u.LinkedinURL, &u.InstagramURL, &legacyProfile, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	fillFromLegacyProfile(&u, legacyProfile)
	return &u, nil
}

// fillFromLegacyProfile completa campos planos vacíos desde el objeto
// "profile" legado. Solo lectura: la escritura definitiva de la migración
// es el paso offline de cmd/maintenance (migrate-profiles).
func fillFromLegacyProfile(u *entity.User, raw []byte) {
	if len(raw) == 0 {
		return
	}
	var p map[string]any
	if err := json.Unmarshal(raw, &p); err != nil {
		return // profile corrupto: se ignora, los campos planos mandan
	}
	str := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := p[k].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}
	if u.Username == "" {
		u.Username = str("username")
	}
	if u.MobileNumber == "" {
		u.MobileNumber = str("mobileNumber", "phone", "mobile")
	}
	if u.WhatsappNumber == "" {
		u.WhatsappNumber = str("whatsappNumber")
	}
	if u.BusinessName == "" {
		u.BusinessName = str("businessName")
	}
	if u.BusinessAddress == "" {
		u.BusinessAddress = str("businessAddress", "address")
	}
	if u.BusinessCity == "" {
		u.BusinessCity = str("businessCity", "city")
	}
	if u.LinkedinURL == "" {
		u.LinkedinURL = str("linkedinUrl")
	}
	if u.InstagramURL == "" {
		u.InstagramURL = str("instagramUrl")
	}
}

// Create persiste una cuenta nueva. Email duplicado (índice único sobre la
// forma normalizada) se reporta como conflicto de dominio.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NULL, $19, $20)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Blocked, user.CreatedBy, user.VendorID,
		user.Username, user.MobileNumber, user.WhatsappNumber, user.BusinessName, user.BusinessAddress, user.BusinessCity,
		user.City, user.DocumentNumber, user.LinkedinURL, user.InstagramURL, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return storeErr("insert user", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID. nil sin error cuando no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get user by id", err)
	}
	return u, nil
}

// GetByEmail busca por email ya normalizado (case-folded).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	u, err := scanUser(r.pool.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get user by email", err)
	}
	return u, nil
}

// Update reemplazo de documento completo en una sola operación atómica.
// La escritura persiste los campos planos; el profile legado se limpia
// (la cuenta queda migrada de facto al tocarla).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, blocked = $6,
			created_by = $7, vendor_id = $8, username = $9, mobile_number = $10, whatsapp_number = $11,
			business_name = $12, business_address = $13, business_city = $14, city = $15,
			document_number = $16, linkedin_url = $17, instagram_url = $18, profile = NULL, updated_at = $19
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Blocked,
		user.CreatedBy, user.VendorID, user.Username, user.MobileNumber, user.WhatsappNumber,
		user.BusinessName, user.BusinessAddress, user.BusinessCity, user.City,
		user.DocumentNumber, user.LinkedinURL, user.InstagramURL, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return storeErr("update user", err)
	}
	return nil
}

// Delete elimina una cuenta por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return storeErr("delete user", err)
	}
	return nil
}

// SetBlocked actualiza solo el flag de bloqueo.
func (r *UserRepo) SetBlocked(id string, blocked bool) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE users SET blocked = $2, updated_at = now() WHERE id = $1`, id, blocked)
	if err != nil {
		return storeErr("set user blocked", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByRole lista cuentas por rol con paginación.
func (r *UserRepo) ListByRole(role string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, role, limit, offset)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storeErr("scan user", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// FindByIDs carga un lote de cuentas por ID (resolución de asignados).
func (r *UserRepo) FindByIDs(ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1)`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return nil, storeErr("find users by ids", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storeErr("scan user", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// CountByRole total de cuentas de un rol (incluye bloqueadas).
func (r *UserRepo) CountByRole(role string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE role = $1`, role).Scan(&n)
	if err != nil {
		return 0, storeErr("count users by role", err)
	}
	return n, nil
}

// CountActiveByRole cuentas no bloqueadas de un rol (audiencia de difusión).
func (r *UserRepo) CountActiveByRole(role string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE role = $1 AND NOT blocked`, role).Scan(&n)
	if err != nil {
		return 0, storeErr("count active users by role", err)
	}
	return n, nil
}

// CountActive toda cuenta no bloqueada (audiencia "all").
func (r *UserRepo) CountActive() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE NOT blocked`).Scan(&n)
	if err != nil {
		return 0, storeErr("count active users", err)
	}
	return n, nil
}

// CountByIDs cuántos de los IDs dados existen (audiencia custom).
func (r *UserRepo) CountByIDs(ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM users WHERE id = ANY($1)`, ids).Scan(&n)
	if err != nil {
		return 0, storeErr("count users by ids", err)
	}
	return n, nil
}
