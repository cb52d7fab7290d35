package invoices

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ledgerline/ledgerline/internal/platform/db"
)

// Sentinel errors for lookup misses.
var (
	ErrNotFound        = errors.New("invoice not found")
	ErrCompanyNotFound = errors.New("company not found")
)

// Repository provides PostgreSQL backed persistence for invoices.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	CompanyFor(ctx context.Context, code string) (Company, error)
	Create(ctx context.Context, compCode string, amt float64) (Invoice, error)
	SetPaid(ctx context.Context, id int64, amt float64) (Invoice, error)
	SetUnpaid(ctx context.Context, id int64, amt float64) (Invoice, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type repository struct {
	db db.DBTX
}

// NewRepository constructs a repository over the given statement executor.
func NewRepository(dbtx db.DBTX) Repository {
	return &repository{db: dbtx}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	if err != nil {
		return Invoice{}, err
	}
	return inv, nil
}

func (r *repository) CompanyFor(ctx context.Context, code string) (Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `SELECT code, name, description FROM companies WHERE code = $1`, code).
		Scan(&c.Code, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, ErrCompanyNotFound
	}
	if err != nil {
		return Company{}, err
	}
	return c, nil
}

// Create inserts with the store defaults: paid false, add_date
// CURRENT_DATE, paid_date absent.
func (r *repository) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO invoices (comp_code, amt)
VALUES ($1, $2)
RETURNING `+invoiceColumns, compCode, amt)
	return scanInvoice(row)
}

// SetPaid replaces the amount and stamps paid_date with the store's
// current date.
func (r *repository) SetPaid(ctx context.Context, id int64, amt float64) (Invoice, error) {
	row := r.db.QueryRow(ctx, `UPDATE invoices
SET amt = $1, paid = true, paid_date = CURRENT_DATE
WHERE id = $2
RETURNING `+invoiceColumns, amt, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	return inv, err
}

// SetUnpaid replaces the amount and clears paid_date regardless of the
// row's prior state.
func (r *repository) SetUnpaid(ctx context.Context, id int64, amt float64) (Invoice, error) {
	row := r.db.QueryRow(ctx, `UPDATE invoices
SET amt = $1, paid = false, paid_date = NULL
WHERE id = $2
RETURNING `+invoiceColumns, amt, id)
	inv, err := scanInvoice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, ErrNotFound
	}
	return inv, err
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var addDate, paidDate pgtype.Date
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &addDate, &paidDate); err != nil {
		return Invoice{}, err
	}
	if addDate.Valid {
		inv.AddDate = addDate.Time
	}
	if paidDate.Valid {
		t := paidDate.Time
		inv.PaidDate = &t
	}
	return inv, nil
}
