package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/feud/internal/game/faction"
)

// FactionRepository loads faction definitions and their relation rows.
// Content is read-only at runtime; edits go through migrations or tooling.
type FactionRepository struct {
	db *pgxpool.Pool
}

// NewFactionRepository creates a FactionRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewFactionRepository(db *pgxpool.Pool) *FactionRepository {
	return &FactionRepository{db: db}
}

// ListDefinitions returns every faction with its outgoing relation rows,
// in the same shape the YAML content loader produces.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *FactionRepository) ListDefinitions(ctx context.Context) ([]*faction.Definition, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, enforces_law
		FROM factions ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing factions: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*faction.Definition)
	defs := make([]*faction.Definition, 0)
	for rows.Next() {
		var def faction.Definition
		if err := rows.Scan(&def.ID, &def.Name, &def.Description, &def.EnforcesLaw); err != nil {
			return nil, fmt.Errorf("scanning faction row: %w", err)
		}
		def.Relations = make(map[string]string)
		byID[def.ID] = &def
		defs = append(defs, &def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing factions: %w", err)
	}

	relRows, err := r.db.Query(ctx, `
		SELECT viewer_id, target_id, relation
		FROM faction_relations ORDER BY viewer_id, target_id`)
	if err != nil {
		return nil, fmt.Errorf("listing faction relations: %w", err)
	}
	defer relRows.Close()

	for relRows.Next() {
		var viewerID, targetID, relation string
		if err := relRows.Scan(&viewerID, &targetID, &relation); err != nil {
			return nil, fmt.Errorf("scanning faction relation row: %w", err)
		}
		def, ok := byID[viewerID]
		if !ok {
			return nil, fmt.Errorf("faction relation references unknown faction %q", viewerID)
		}
		def.Relations[targetID] = relation
	}
	return defs, relRows.Err()
}
