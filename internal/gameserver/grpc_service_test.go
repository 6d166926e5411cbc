package gameserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/feud/internal/game/actor"
	"github.com/cory-johannsen/feud/internal/game/combat"
	"github.com/cory-johannsen/feud/internal/game/faction"
	"github.com/cory-johannsen/feud/internal/game/scene"
	"github.com/cory-johannsen/feud/internal/game/session"
	"github.com/cory-johannsen/feud/internal/game/targeting"
	combatv1 "github.com/cory-johannsen/feud/internal/gameserver/combatv1"
)

type serviceFixture struct {
	server  *CombatServiceServer
	actors  *actor.Registry
	tracker *combat.Tracker
	swings  *combat.AutoAttacker
	player  *actor.Actor
	monster *actor.Actor
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	actors := actor.NewRegistry()
	matrix := faction.NewMatrix([]faction.Entry{
		{Viewer: "crimson", Target: "ashen", Relation: faction.Hostile},
		{Viewer: "ashen", Target: "crimson", Relation: faction.Hostile},
	}, nil)
	relations := faction.NewService(matrix, actors)
	resolver := targeting.NewResolver(relations)
	selector := targeting.NewSelector()
	validator := combat.NewValidator(resolver, nil, nil)
	tracker := combat.NewTracker(combat.TrackerConfig{}, time.Now)
	swings := combat.NewAutoAttacker(time.Hour)

	gate := scene.NewGate()
	require.NoError(t, gate.Register(scene.Snapshot{
		RegionID: "wilds-1", Context: scene.ContextWilds, Flags: scene.ContextWilds.DefaultFlags(),
	}))
	require.NoError(t, gate.Register(scene.Snapshot{
		RegionID: "temple-1", Context: scene.ContextSanctuary,
	}))

	sessions := session.NewManager()
	server := NewCombatServiceServer(
		actors, gate, resolver, selector, validator, tracker, swings,
		nil, sessions, nil, zap.NewNop(),
	)

	player, err := actors.Spawn(actor.KindPlayer, "Vex", "crimson", "wilds-1", actor.Vitals{CurrentHP: 10, MaxHP: 10})
	require.NoError(t, err)
	monster, err := actors.Spawn(actor.KindMonster, "Mire Ghoul", "ashen", "wilds-1", actor.Vitals{CurrentHP: 8, MaxHP: 8})
	require.NoError(t, err)

	_, err = sessions.AddPlayer("u1", "alice", player.ID, player.RegionID, "player")
	require.NoError(t, err)

	t.Cleanup(swings.StopAll)
	return &serviceFixture{
		server:  server,
		actors:  actors,
		tracker: tracker,
		swings:  swings,
		player:  player,
		monster: monster,
	}
}

func TestHandleSelectPassive(t *testing.T) {
	f := newServiceFixture(t)

	evt, err := f.server.handleSelect("u1", &combatv1.SelectRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	sel := evt.GetSelectionChanged()
	require.NotNil(t, sel)
	assert.Equal(t, f.monster.ID, sel.TargetId)
	assert.False(t, sel.Attack)
	assert.Equal(t, combatv1.Disposition_DISPOSITION_HOSTILE, sel.Disposition)

	// Selecting is not a hostile act.
	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.player.ID))
	assert.False(t, f.swings.Engaged(f.player.ID))
}

func TestHandleSelectDeadTargetFails(t *testing.T) {
	f := newServiceFixture(t)
	require.NoError(t, f.actors.MarkDead(f.monster.ID))

	_, err := f.server.handleSelect("u1", &combatv1.SelectRequest{TargetId: f.monster.ID})
	assert.Error(t, err)
}

func TestHandleAttackIntentAllowed(t *testing.T) {
	f := newServiceFixture(t)

	evt, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	sel := evt.GetSelectionChanged()
	require.NotNil(t, sel)
	assert.True(t, sel.Attack)

	assert.Equal(t, combat.StateInCombat, f.tracker.StateOf(f.player.ID))
	assert.True(t, f.tracker.ActivePursuit(f.player.ID))
	assert.True(t, f.swings.Engaged(f.player.ID))

	// The defender-extension toggle ships off: being targeted alone does
	// not pull the monster into combat.
	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.monster.ID))
}

func TestHandleAttackIntentDeniedInSanctuary(t *testing.T) {
	f := newServiceFixture(t)
	require.NoError(t, f.actors.Move(f.player.ID, "temple-1"))
	require.NoError(t, f.actors.Move(f.monster.ID, "temple-1"))

	evt, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	denied := evt.GetIntentDenied()
	require.NotNil(t, denied)
	assert.Equal(t, "combat_disallowed", denied.Reason)

	// A denied intent changes nothing.
	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.player.ID))
	assert.False(t, f.swings.Engaged(f.player.ID))
}

func TestHandleAttackIntentDeniedOutOfRange(t *testing.T) {
	f := newServiceFixture(t)
	require.NoError(t, f.actors.Move(f.monster.ID, "temple-1"))

	evt, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	denied := evt.GetIntentDenied()
	require.NotNil(t, denied)
	assert.Equal(t, "out_of_range", denied.Reason)
}

func TestHandleClearSelectionKeepsCombatWindow(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	_, err = f.server.handleClearSelection("u1")
	require.NoError(t, err)

	assert.False(t, f.swings.Engaged(f.player.ID))
	assert.False(t, f.tracker.ActivePursuit(f.player.ID))
	// Abandoning the pursuit does not end the window early.
	assert.Equal(t, combat.StateInCombat, f.tracker.StateOf(f.player.ID))
}

func TestHandleRegionEnteredForcesPeaceful(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)
	require.Equal(t, combat.StateInCombat, f.tracker.StateOf(f.player.ID))

	require.NoError(t, f.actors.Move(f.player.ID, "temple-1"))
	f.server.HandleRegionEntered(f.player.ID)

	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.player.ID))
	assert.False(t, f.swings.Engaged(f.player.ID))
}

// Swapping a region's rules to a combat-forbidding snapshot while a fight
// runs inside must force everyone there out of combat on the next sweep,
// even though nobody crossed a region boundary.
func TestSweepRegionOverridesAfterRuleChange(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)
	require.Equal(t, combat.StateInCombat, f.tracker.StateOf(f.player.ID))
	require.True(t, f.swings.Engaged(f.player.ID))

	require.NoError(t, f.server.gate.Replace(scene.Snapshot{
		RegionID: "wilds-1", Context: scene.ContextSanctuary,
	}))
	f.server.SweepRegionOverrides()

	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.player.ID))
	assert.False(t, f.tracker.ActivePursuit(f.player.ID))
	assert.False(t, f.swings.Engaged(f.player.ID))

	// Idempotent once everyone is peaceful.
	f.server.SweepRegionOverrides()
	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.player.ID))
}

func TestHandleActorDeathDropsTargeting(t *testing.T) {
	f := newServiceFixture(t)
	_, err := f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	require.NoError(t, f.actors.MarkDead(f.monster.ID))
	f.server.HandleActorDeath(f.monster.ID)

	assert.Equal(t, combat.StateDead, f.tracker.StateOf(f.monster.ID))
	_, selected := f.server.selector.Selected(f.player.ID)
	assert.False(t, selected)

	require.NoError(t, f.actors.Revive(f.monster.ID))
	f.server.HandleActorRevived(f.monster.ID)
	assert.Equal(t, combat.StatePeaceful, f.tracker.StateOf(f.monster.ID))
}

func TestUnaryCanAttack(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.server.CanAttack(context.Background(), &combatv1.AttackCheckRequest{
		AttackerId: f.player.ID,
		TargetId:   f.monster.ID,
		InRange:    true,
	})
	require.NoError(t, err)
	assert.True(t, resp.Allowed)

	resp, err = f.server.CanAttack(context.Background(), &combatv1.AttackCheckRequest{
		AttackerId: f.player.ID,
		TargetId:   "ghost",
		InRange:    true,
	})
	require.NoError(t, err)
	assert.False(t, resp.Allowed)
	assert.Equal(t, "unknown_actor", resp.Reason)
}

func TestUnaryResolveDisposition(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.server.ResolveDisposition(context.Background(), &combatv1.DispositionRequest{
		ViewerId: f.player.ID,
		TargetId: f.monster.ID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Eligible)
	assert.Equal(t, combatv1.Disposition_DISPOSITION_HOSTILE, resp.Disposition)

	// Sanctuary downgrades the label without making it friendly.
	require.NoError(t, f.actors.Move(f.player.ID, "temple-1"))
	require.NoError(t, f.actors.Move(f.monster.ID, "temple-1"))
	resp, err = f.server.ResolveDisposition(context.Background(), &combatv1.DispositionRequest{
		ViewerId: f.player.ID,
		TargetId: f.monster.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, combatv1.Disposition_DISPOSITION_NEUTRAL, resp.Disposition)
}

func TestUnaryCombatState(t *testing.T) {
	f := newServiceFixture(t)

	resp, err := f.server.CombatState(context.Background(), &combatv1.CombatStateRequest{ActorId: f.player.ID})
	require.NoError(t, err)
	assert.Equal(t, combatv1.CombatState_COMBAT_STATE_PEACEFUL, resp.State)

	_, err = f.server.handleAttackIntent("u1", &combatv1.AttackIntentRequest{TargetId: f.monster.ID})
	require.NoError(t, err)

	resp, err = f.server.CombatState(context.Background(), &combatv1.CombatStateRequest{ActorId: f.player.ID})
	require.NoError(t, err)
	assert.Equal(t, combatv1.CombatState_COMBAT_STATE_IN_COMBAT, resp.State)
	assert.True(t, resp.ActivePursuit)
	assert.Greater(t, resp.RemainingMs, int64(0))
}
