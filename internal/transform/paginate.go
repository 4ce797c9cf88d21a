package transform

// DefaultPageLimit is used when the request does not name a limit.
const DefaultPageLimit = 20

// DefaultMaxPageLimit bounds the limit when no ceiling is configured.
const DefaultMaxPageLimit = 100

// Page carries normalized pagination request parameters.
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// Meta is the pagination block attached to list responses.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NormalizePage derives page, limit and offset from raw query values. Page is
// at least 1 and limit is clamped into [1, maxLimit].
func NormalizePage(page, limit any, maxLimit int) Page {
	if maxLimit < 1 {
		maxLimit = DefaultMaxPageLimit
	}
	p := ToInt(page, 1)
	if p < 1 {
		p = 1
	}
	l := int(Clamp(ToInt(limit, DefaultPageLimit), 1, float64(maxLimit)))
	return Page{
		Page:   p,
		Limit:  l,
		Offset: (p - 1) * l,
	}
}

// PageMeta builds the response metadata for a listing. A total of zero yields
// zero pages and no next page.
func PageMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page*limit < total,
		HasPreviousPage: page > 1,
	}
}
