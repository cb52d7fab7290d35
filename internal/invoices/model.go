package invoices

import "time"

// Invoice represents an invoice row. PaidDate is present exactly when
// Paid is true.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// Company is the owning-company row shape included in the invoice detail
// response, read from the companies table in a second independent
// statement.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
