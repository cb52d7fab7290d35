package companies

import (
	"context"
	"errors"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/slug"
)

// ServiceConfig carries the startup-selected behavior flags.
type ServiceConfig struct {
	// DeriveCodes switches the company code source from the client to the
	// slug generator, and activates the industries aggregation listing.
	DeriveCodes bool

	// EmptyListNotFound treats an empty listing as a 404.
	EmptyListNotFound bool
}

// Service implements company operations on top of the repository.
type Service struct {
	repo Repository
	cfg  ServiceConfig
}

// NewService builds a Service instance.
func NewService(repo Repository, cfg ServiceConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// List returns all companies, with aggregated industry codes in derived
// mode.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	var (
		companies []Company
		err       error
	)
	if s.cfg.DeriveCodes {
		companies, err = s.repo.ListWithIndustries(ctx)
	} else {
		companies, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 && s.cfg.EmptyListNotFound {
		return nil, httpx.NotFound("Database is empty or there was an error")
	}
	return companies, nil
}

// Get returns a company and its invoices. The two reads are independent
// statements with no snapshot guarantee.
func (s *Service) Get(ctx context.Context, code string) (Company, []Invoice, error) {
	company, err := s.repo.Get(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return Company{}, nil, httpx.NotFound("No company was found with code %s", code)
	}
	if err != nil {
		return Company{}, nil, err
	}

	invoices, err := s.repo.InvoicesFor(ctx, code)
	if err != nil {
		return Company{}, nil, err
	}
	return company, invoices, nil
}

// Create inserts a company. Derived mode ignores any client-supplied code
// and slugs the name instead; code collisions surface as the store's
// uniqueness violation.
func (s *Service) Create(ctx context.Context, company Company) (Company, error) {
	if s.cfg.DeriveCodes {
		company.Code = slug.Make(company.Name)
	}
	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return Company{}, httpx.ClassifyPgError(err, "company code")
	}
	return created, nil
}

// Update fully replaces the company matching the path code.
func (s *Service) Update(ctx context.Context, code string, company Company) (Company, error) {
	if s.cfg.DeriveCodes {
		company.Code = slug.Make(company.Name)
	}
	updated, err := s.repo.Update(ctx, code, company)
	if errors.Is(err, ErrNotFound) {
		return Company{}, httpx.NotFound("No company was found with code %s", code)
	}
	if err != nil {
		return Company{}, httpx.ClassifyPgError(err, "company code")
	}
	return updated, nil
}

// Delete removes the company and reports how many rows went away. Zero is
// not an error: the delete contract is success regardless.
func (s *Service) Delete(ctx context.Context, code string) (int64, error) {
	return s.repo.Delete(ctx, code)
}
