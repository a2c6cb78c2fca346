package models

import "math"

// Default pagination window of GET /blood-pressure-logs.
const (
	DefaultPage    = 1
	DefaultPerPage = 25
	MaxPerPage     = 1000

	// MaxPage keeps the row offset of any valid window inside int.
	MaxPage = math.MaxInt / MaxPerPage
)

// Page selects a window of an ordered list. Page is 1-based.
type Page struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// NewPage returns the default window.
func NewPage() Page {
	return Page{Page: DefaultPage, PerPage: DefaultPerPage}
}

// Offset returns the number of rows skipped before the window.
func (p Page) Offset() uint64 {
	return uint64((p.Page - 1) * p.PerPage)
}

// Limit returns the window size.
func (p Page) Limit() uint64 {
	return uint64(p.PerPage)
}

// Valid reports whether the window can be queried.
func (p Page) Valid() bool {
	return p.Page >= 1 && p.Page <= MaxPage && p.PerPage >= 1 && p.PerPage <= MaxPerPage
}

// Export is a generated file ready to be sent as an attachment.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
