package sheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

// Parser turns raw response rows into the normalized request set. Handles
// are deduplicated case-insensitively (Unicode case folding) and only the
// latest submission per participant counts; the display handle keeps the
// casing of that submission.
type Parser struct {
	categories []domain.Category
	fold       cases.Caser
}

// NewParser creates a parser for the configured categories.
func NewParser(categories []domain.Category) *Parser {
	return &Parser{
		categories: categories,
		fold:       cases.Fold(),
	}
}

// Parse builds the request set from the full response table (header row
// first). Any malformed row aborts the whole parse.
func (p *Parser) Parse(rows [][]string) (domain.RequestSet, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyResponseSheet
	}

	col, err := p.columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	type submission struct {
		at     time.Time
		handle string
		row    []string
	}

	// Latest submission per folded handle supersedes earlier ones.
	latest := make(map[string]submission)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if len(row) < len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d fields, expected %d", domain.ErrMalformedResponse, rowNum, len(row), len(rows[0]))
		}

		handle := strings.TrimSpace(row[col[ColumnUsername]])
		if handle == "" {
			return nil, fmt.Errorf("%w: row %d has no username", domain.ErrMalformedResponse, rowNum)
		}

		at, err := time.Parse(TimestampLayout, strings.TrimSpace(row[col[ColumnTimestamp]]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedResponse, rowNum, err)
		}

		key := p.fold.String(handle)
		if prev, ok := latest[key]; !ok || at.After(prev.at) {
			latest[key] = submission{at: at, handle: handle, row: row}
		}
	}

	requests := make(domain.RequestSet, len(latest))
	for _, sub := range latest {
		byCategory := make(map[string]domain.Request)
		for _, category := range p.categories {
			cell := strings.TrimSpace(sub.row[col[category.Name]])
			if cell == "" {
				continue
			}
			req, err := parseCell(category, cell)
			if err != nil {
				return nil, fmt.Errorf("%w: %s for %q: %v", domain.ErrMalformedResponse, category.Name, sub.handle, err)
			}
			byCategory[category.Name] = req
		}
		if len(byCategory) > 0 {
			requests[sub.handle] = byCategory
		}
	}

	return requests, nil
}

// columnIndex maps every required column name to its position.
func (p *Parser) columnIndex(header []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	required := []string{ColumnTimestamp, ColumnUsername}
	for _, category := range p.categories {
		required = append(required, category.Name)
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, name)
		}
	}
	return col, nil
}

// parseCell decodes one non-empty category cell. Flat categories hold a
// count, sometimes as a decimal string ("2.0"); subcategorized ones hold a
// comma-separated pick list.
func parseCell(category domain.Category, cell string) (domain.Request, error) {
	if category.IsFlat() {
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return domain.Request{}, err
		}
		return domain.Request{Count: int(f)}, nil
	}

	var picks []string
	for _, part := range strings.Split(cell, ",") {
		if part = strings.TrimSpace(part); part != "" {
			picks = append(picks, part)
		}
	}
	return domain.Request{Picks: picks}, nil
}
