package pagination

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params represents input parameters for pagination
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Default returns the first page with the default limit
func Default() *Params {
	return &Params{Page: 1, Limit: DefaultLimit}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Offset calculates the offset for SQL queries
func (p *Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result is one page of records plus navigation flags
type Result[T any] struct {
	Data           []T   `json:"data"`
	Total          int64 `json:"total"`
	Page           int   `json:"page"`
	Limit          int   `json:"limit"`
	IsLastPage     bool  `json:"isLastPage"`
	IsPreviousPage bool  `json:"isPreviousPage"`
}

// NewResult builds a page from the fetched records and the total match count
func NewResult[T any](data []T, total int64, params *Params) *Result[T] {
	if data == nil {
		data = []T{}
	}
	return &Result[T]{
		Data:           data,
		Total:          total,
		Page:           params.Page,
		Limit:          params.Limit,
		IsLastPage:     int64(params.Offset()+len(data)) >= total,
		IsPreviousPage: params.Page > 1,
	}
}

// Empty is a page with no records
func Empty[T any](params *Params) *Result[T] {
	return NewResult[T](nil, 0, params)
}

// Map converts the records of a page while keeping its navigation fields
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	out := make([]U, len(r.Data))
	for i, v := range r.Data {
		out[i] = fn(v)
	}
	return &Result[U]{
		Data:           out,
		Total:          r.Total,
		Page:           r.Page,
		Limit:          r.Limit,
		IsLastPage:     r.IsLastPage,
		IsPreviousPage: r.IsPreviousPage,
	}
}
