package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/entity"
	"github.com/sagarkwankhade/CRM-Version-One/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
type LeadRepo struct {
	pool *pgxpool.Pool
}

// NewLeadRepository construye el adaptador de persistencia para leads.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

const leadColumns = `id, name, email, phone, status, blocked, notes, created_at, updated_at`

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.Blocked, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste un lead nuevo.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Status, lead.Blocked, lead.Notes,
		lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert lead", err)
	}
	return nil
}

// GetByID obtiene un lead por ID. nil sin error cuando no existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get lead by id", err)
	}
	return l, nil
}

// Update reemplazo completo del documento en una sola operación.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads SET name = $2, email = $3, phone = $4, status = $5, blocked = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Status, lead.Blocked, lead.Notes, lead.UpdatedAt,
	)
	if err != nil {
		return storeErr("update lead", err)
	}
	return nil
}

// SetBlocked actualiza solo el flag de bloqueo.
func (r *LeadRepo) SetBlocked(id string, blocked bool) error {
	tag, err := r.pool.Exec(context.Background(),
		`UPDATE leads SET blocked = $2, updated_at = now() WHERE id = $1`, id, blocked)
	if err != nil {
		return storeErr("set lead blocked", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List leads con paginación, más recientes primero.
func (r *LeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, storeErr("list leads", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, storeErr("scan lead", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Count total de leads (dashboard).
func (r *LeadRepo) Count() (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM leads`).Scan(&n)
	if err != nil {
		return 0, storeErr("count leads", err)
	}
	return n, nil
}
