package companies

import "time"

// Company represents a company row.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Industries carries the aggregated industry codes in derived mode
	// listings. Order is not guaranteed.
	Industries []string `json:"industries,omitempty"`
}

// Invoice is the invoice row shape returned alongside a company detail.
// The detail view reads the invoices table directly, in a second
// independent statement.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}
