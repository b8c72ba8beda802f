package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// MaxSearchResults bounds every catalog search. Results are ordered by name
// so the truncation is stable; this is a response-size cap, not relevance
// ranking.
const MaxSearchResults = 30

// SearchFilter describes a compiled destination search. Terms must already
// be canonicalized (see the nlp package); an empty Terms slice widens the
// search rather than matching nothing.
type SearchFilter struct {
	TripScope    string
	TravelerType string
	Budget       string
	Terms        []string
}

// DestinationRepository handles destination catalog access
type DestinationRepository struct {
	db database.Querier
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db database.Querier) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// Search runs the compiled filter against the catalog and returns at most
// MaxSearchResults destinations ordered lexicographically by name.
func (r *DestinationRepository) Search(ctx context.Context, filter SearchFilter) ([]*model.Destination, error) {
	query, args := buildSearchQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("destination search: %w", err)
	}
	defer rows.Close()

	return scanDestinations(rows)
}

// GetByID retrieves a single destination, or nil when absent.
func (r *DestinationRepository) GetByID(ctx context.Context, id string) (*model.Destination, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, city, country, description, tags, lat, lon, cost_tier
		FROM destinations
		WHERE id = $1`, id)

	var d model.Destination
	err := row.Scan(&d.ID, &d.Name, &d.City, &d.Country, &d.Description, &d.Tags, &d.Lat, &d.Lon, &d.CostTier)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("destination get: %w", err)
	}
	return &d, nil
}

// buildSearchQuery compiles a filter into a single parameterized statement.
// Every condition contributes exactly one placeholder; user input is never
// interpolated. Tag conditions match by substring against the comma-joined
// tags column, which deliberately over-matches (term "art" hits tag "part")
// to stay consistent with how the catalog data is authored.
func buildSearchQuery(filter SearchFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, city, country, description, tags, lat, lon, cost_tier
		FROM destinations
		WHERE tags LIKE $1 AND tags LIKE $2`)
	args := []any{like(filter.TripScope), like(filter.TravelerType)}

	if filter.Budget != model.CostTierAny {
		args = append(args, filter.Budget)
		fmt.Fprintf(&sb, " AND cost_tier = $%d", len(args))
	}

	if len(filter.Terms) > 0 {
		clauses := make([]string, 0, len(filter.Terms))
		for _, term := range filter.Terms {
			args = append(args, like(term))
			clauses = append(clauses, fmt.Sprintf("tags LIKE $%d", len(args)))
		}
		sb.WriteString(" AND (" + strings.Join(clauses, " OR ") + ")")
	}

	fmt.Fprintf(&sb, " ORDER BY name LIMIT %d", MaxSearchResults)
	return sb.String(), args
}

func like(term string) string {
	return "%" + term + "%"
}

// rowScanner matches pgx.Rows for the subset scanDestinations needs.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanDestinations(rows rowScanner) ([]*model.Destination, error) {
	destinations := make([]*model.Destination, 0)
	for rows.Next() {
		var d model.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.City, &d.Country, &d.Description, &d.Tags, &d.Lat, &d.Lon, &d.CostTier); err != nil {
			return nil, fmt.Errorf("destination scan: %w", err)
		}
		destinations = append(destinations, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("destination rows: %w", err)
	}
	return destinations, nil
}
