package invoices

import (
	"context"
	"errors"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

// ServiceConfig carries the startup-selected behavior flags.
type ServiceConfig struct {
	// EmptyListNotFound treats an empty listing as a 404.
	EmptyListNotFound bool
}

// Service implements invoice operations on top of the repository.
type Service struct {
	repo Repository
	cfg  ServiceConfig
}

// NewService builds a Service instance.
func NewService(repo Repository, cfg ServiceConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// List returns all invoices.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 && s.cfg.EmptyListNotFound {
		return nil, httpx.NotFound("Database is empty or there was an error")
	}
	return invoices, nil
}

// Get returns an invoice and its owning company. The two reads are
// independent statements with no snapshot guarantee; a company deleted in
// between yields an empty company object rather than a failure.
func (s *Service) Get(ctx context.Context, id int64) (Invoice, Company, error) {
	invoice, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Invoice{}, Company{}, httpx.NotFound("No invoice was found with id %d", id)
	}
	if err != nil {
		return Invoice{}, Company{}, err
	}

	company, err := s.repo.CompanyFor(ctx, invoice.CompCode)
	if err != nil && !errors.Is(err, ErrCompanyNotFound) {
		return Invoice{}, Company{}, err
	}
	return invoice, company, nil
}

// Create inserts an invoice with paid defaulted false and no paid date.
// An unknown company code surfaces as the store's foreign-key violation.
func (s *Service) Create(ctx context.Context, compCode string, amt float64) (Invoice, error) {
	invoice, err := s.repo.Create(ctx, compCode, amt)
	if err != nil {
		return Invoice{}, httpx.ClassifyPgError(err, "invoice")
	}
	return invoice, nil
}

// Update replaces the amount and recomputes paid_date from the new paid
// value: true stamps the current date, false clears it unconditionally.
func (s *Service) Update(ctx context.Context, id int64, amt float64, paid bool) (Invoice, error) {
	var (
		invoice Invoice
		err     error
	)
	if paid {
		invoice, err = s.repo.SetPaid(ctx, id, amt)
	} else {
		invoice, err = s.repo.SetUnpaid(ctx, id, amt)
	}
	if errors.Is(err, ErrNotFound) {
		return Invoice{}, httpx.NotFound("No invoice was found with id %d", id)
	}
	if err != nil {
		return Invoice{}, err
	}
	return invoice, nil
}

// Delete removes the invoice and reports how many rows went away. Zero is
// not an error: the delete contract is success regardless.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
