package todo

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPage is the page number used when the caller supplies none.
	DefaultPage = 1
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 10
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// ParsePage coerces caller-supplied page and limit strings to a Page.
// Missing, non-numeric, or non-positive values fall back to the defaults.
// A positive maxLimit caps the page size.
func ParsePage(rawPage, rawLimit string, defaultLimit, maxLimit int) Page {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	p := Page{
		Number: parsePositive(rawPage, DefaultPage),
		Limit:  parsePositive(rawLimit, defaultLimit),
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Skip returns the number of records that precede this page. Page numbers
// too large to address saturate so that Skip()+Limit still fits in an int64.
func (p Page) Skip() int64 {
	if p.Number < 2 || p.Limit < 1 {
		return 0
	}
	n, limit := int64(p.Number-1), int64(p.Limit)
	if n > (math.MaxInt64-limit)/limit {
		return math.MaxInt64 - limit
	}
	return n * limit
}

// Pages returns how many pages of this size are needed for total records.
func (p Page) Pages(total int64) int {
	if p.Limit < 1 || total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
