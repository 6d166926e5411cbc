package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/feud/internal/game/scene"
	"github.com/cory-johannsen/feud/internal/storage/postgres"
	"github.com/cory-johannsen/feud/internal/testutil"
)

func TestContentRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	ctx := context.Background()

	_, err := pc.RawPool.Exec(ctx, `
		INSERT INTO factions (id, name, description, enforces_law) VALUES
			('crimson', 'Crimson Pact', 'Raider compact', FALSE),
			('wardens', 'The Wardens', 'Town watch', TRUE);
		INSERT INTO faction_relations (viewer_id, target_id, relation) VALUES
			('crimson', 'wardens', 'hostile'),
			('wardens', 'crimson', 'hostile');
		INSERT INTO regions (id, name, context, allow_combat, allow_damage, allow_pvp, allow_hostiles) VALUES
			('temple-1', 'Temple of Dawn', 'sanctuary', FALSE, FALSE, FALSE, FALSE),
			('wilds-1', 'The Mire', 'wilds', TRUE, TRUE, FALSE, TRUE);
	`)
	require.NoError(t, err)

	factions := postgres.NewFactionRepository(pc.RawPool)
	defs, err := factions.ListDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "crimson", defs[0].ID)
	assert.Equal(t, "hostile", defs[0].Relations["wardens"])
	assert.True(t, defs[1].EnforcesLaw)

	regions := postgres.NewRegionRepository(pc.RawPool)
	snaps, err := regions.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, scene.ContextSanctuary, snaps[0].Context)
	assert.False(t, snaps[0].AllowsCombat())

	wilds, err := regions.GetSnapshot(ctx, "wilds-1")
	require.NoError(t, err)
	assert.True(t, wilds.AllowsCombat())
	assert.True(t, wilds.AllowsHostiles())
	assert.False(t, wilds.AllowsPvP())

	_, err = regions.GetSnapshot(ctx, "nowhere")
	assert.ErrorIs(t, err, postgres.ErrRegionNotFound)
}
