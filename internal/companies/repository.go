package companies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ledgerline/ledgerline/internal/platform/db"
)

// ErrNotFound indicates no company matched the requested code.
var ErrNotFound = errors.New("company not found")

// Repository provides PostgreSQL backed persistence for companies.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	ListWithIndustries(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (Company, error)
	InvoicesFor(ctx context.Context, code string) ([]Invoice, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code string, company Company) (Company, error)
	Delete(ctx context.Context, code string) (int64, error)
}

type repository struct {
	db db.DBTX
}

// NewRepository constructs a repository over the given statement executor.
func NewRepository(dbtx db.DBTX) Repository {
	return &repository{db: dbtx}
}

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name, description FROM companies ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// ListWithIndustries joins through the companies_industries association
// and groups industry codes per company in memory.
func (r *repository) ListWithIndustries(ctx context.Context) ([]Company, error) {
	rows, err := r.db.Query(ctx, `SELECT c.code, c.name, c.description, i.code
FROM companies c
LEFT JOIN companies_industries ci ON ci.comp_code = c.code
LEFT JOIN industries i ON i.code = ci.ind_code
ORDER BY c.code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []Company
	index := map[string]int{}
	for rows.Next() {
		var c Company
		var industry *string
		if err := rows.Scan(&c.Code, &c.Name, &c.Description, &industry); err != nil {
			return nil, err
		}
		pos, ok := index[c.Code]
		if !ok {
			pos = len(companies)
			index[c.Code] = pos
			companies = append(companies, c)
		}
		if industry != nil {
			companies[pos].Industries = append(companies[pos].Industries, *industry)
		}
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `SELECT code, name, description FROM companies WHERE code = $1`, code).
		Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, err
	}
	return c, nil
}

func (r *repository) InvoicesFor(ctx context.Context, code string) ([]Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT id, comp_code, amt, paid, add_date, paid_date FROM invoices WHERE comp_code = $1 ORDER BY id`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		var inv Invoice
		var addDate, paidDate pgtype.Date
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &addDate, &paidDate); err != nil {
			return nil, err
		}
		if addDate.Valid {
			inv.AddDate = addDate.Time
		}
		if paidDate.Valid {
			t := paidDate.Time
			inv.PaidDate = &t
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	var created Company
	err := r.db.QueryRow(ctx, `INSERT INTO companies (code, name, description)
VALUES ($1, $2, $3)
RETURNING code, name, description`, company.Code, company.Name, company.Description).
		Scan(&created.Code, &created.Name, &created.Description)
	if err != nil {
		return Company{}, err
	}
	return created, nil
}

func (r *repository) Update(ctx context.Context, code string, company Company) (Company, error) {
	var updated Company
	err := r.db.QueryRow(ctx, `UPDATE companies
SET code = $1, name = $2, description = $3
WHERE code = $4
RETURNING code, name, description`, company.Code, company.Name, company.Description, code).
		Scan(&updated.Code, &updated.Name, &updated.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, ErrNotFound
	}
	if err != nil {
		return Company{}, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, code string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
