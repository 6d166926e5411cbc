package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/feud/internal/game/scene"
)

// ErrRegionNotFound is returned when a region lookup yields no results.
var ErrRegionNotFound = errors.New("region not found")

// RegionRepository loads region rule rows as scene snapshots. The boolean
// permission columns are authoritative; migrations seed them from the
// context defaults.
type RegionRepository struct {
	db *pgxpool.Pool
}

// NewRegionRepository creates a RegionRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewRegionRepository(db *pgxpool.Pool) *RegionRepository {
	return &RegionRepository{db: db}
}

func scanSnapshot(row pgx.Row) (scene.Snapshot, error) {
	var (
		id, ctxName                   string
		combat, damage, pvp, hostiles bool
	)
	if err := row.Scan(&id, &ctxName, &combat, &damage, &pvp, &hostiles); err != nil {
		return scene.Snapshot{}, err
	}
	ctx, err := scene.ParseContext(ctxName)
	if err != nil {
		return scene.Snapshot{}, fmt.Errorf("region %q: %w", id, err)
	}
	var flags scene.Flags
	if combat {
		flags |= scene.AllowCombat
	}
	if damage {
		flags |= scene.AllowDamage
	}
	if pvp {
		flags |= scene.AllowPvP
	}
	if hostiles {
		flags |= scene.AllowHostiles
	}
	return scene.Snapshot{RegionID: id, Context: ctx, Flags: flags}, nil
}

// ListSnapshots returns the rule snapshot of every region.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *RegionRepository) ListSnapshots(ctx context.Context) ([]scene.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, context, allow_combat, allow_damage, allow_pvp, allow_hostiles
		FROM regions ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}
	defer rows.Close()

	snaps := make([]scene.Snapshot, 0)
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning region row: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// GetSnapshot returns the rule snapshot for one region.
//
// Postcondition: Returns the snapshot, or ErrRegionNotFound.
func (r *RegionRepository) GetSnapshot(ctx context.Context, regionID string) (scene.Snapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, context, allow_combat, allow_damage, allow_pvp, allow_hostiles
		FROM regions WHERE id = $1`, regionID)
	snap, err := scanSnapshot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return scene.Snapshot{}, ErrRegionNotFound
	}
	if err != nil {
		return scene.Snapshot{}, fmt.Errorf("loading region %q: %w", regionID, err)
	}
	return snap, nil
}
