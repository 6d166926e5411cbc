package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/feud/internal/game/actor"
	"github.com/cory-johannsen/feud/internal/game/combat"
	"github.com/cory-johannsen/feud/internal/game/faction"
	"github.com/cory-johannsen/feud/internal/game/scene"
	"github.com/cory-johannsen/feud/internal/game/targeting"
)

type blockAll struct{}

func (blockAll) ActionBlocked(actorID, action string) bool { return true }

type blockNone struct{}

func (blockNone) ActionBlocked(actorID, action string) bool { return false }

type seeNone struct{}

func (seeNone) CanPerceive(viewerID, targetID string) bool { return false }

func testResolver() *targeting.Resolver {
	matrix := faction.NewMatrix([]faction.Entry{
		{Viewer: "crimson", Target: "ashen", Relation: faction.Hostile},
		{Viewer: "ashen", Target: "crimson", Relation: faction.Hostile},
	}, nil)
	return targeting.NewResolver(faction.NewService(matrix, nil))
}

func testActor(id string, kind actor.Kind, factionID string) *actor.Actor {
	return &actor.Actor{
		ID:        id,
		Kind:      kind,
		Name:      id,
		FactionID: factionID,
		RegionID:  "wilds-1",
		Vitals:    actor.Vitals{CurrentHP: 10, MaxHP: 10},
	}
}

func wildsSnap() scene.Snapshot {
	return scene.Snapshot{RegionID: "wilds-1", Context: scene.ContextWilds, Flags: scene.ContextWilds.DefaultFlags()}
}

func legalQuery() combat.AttackQuery {
	return combat.AttackQuery{
		Attacker: testActor("p1", actor.KindPlayer, "crimson"),
		Target:   testActor("m1", actor.KindMonster, "ashen"),
		Snapshot: wildsSnap(),
		InRange:  true,
	}
}

func TestCanAttackHostileMonsterInWilds(t *testing.T) {
	v := combat.NewValidator(testResolver(), blockNone{}, nil)
	verdict := v.CanAttack(legalQuery())
	assert.True(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonNone, verdict.Reason)
}

func TestCanAttackNilActors(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Target = nil
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonUnknownActor, verdict.Reason)
}

func TestCanAttackDeadAttacker(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Attacker.Dead = true
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonAttackerDead, verdict.Reason)
}

func TestCanAttackDeadTarget(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Target.Dead = true
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonTargetDead, verdict.Reason)
}

func TestCanAttackSanctuaryDeniesCombat(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Snapshot = scene.Restrictive("temple")
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonCombatDisallowed, verdict.Reason)
}

func TestCanAttackCombatWithoutDamage(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Snapshot = scene.Snapshot{RegionID: "duel-yard", Flags: scene.AllowCombat}
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonDamageDisallowed, verdict.Reason)
}

func TestCanAttackPvPDisallowed(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Target = testActor("p2", actor.KindPlayer, "ashen")
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonPvPDisallowed, verdict.Reason)
}

func TestCanAttackPvPInArena(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Target = testActor("p2", actor.KindPlayer, "ashen")
	q.Snapshot = scene.Snapshot{RegionID: "arena-1", Context: scene.ContextArena, Flags: scene.ContextArena.DefaultFlags()}
	verdict := v.CanAttack(q)
	assert.True(t, verdict.Allowed)
}

func TestCanAttackOutOfRange(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.InRange = false
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonOutOfRange, verdict.Reason)
}

func TestCanAttackStatusGate(t *testing.T) {
	v := combat.NewValidator(testResolver(), blockAll{}, nil)
	verdict := v.CanAttack(legalQuery())
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonStatusBlocked, verdict.Reason)
}

func TestCanAttackImperceivableTarget(t *testing.T) {
	v := combat.NewValidator(testResolver(), blockNone{}, seeNone{})
	verdict := v.CanAttack(legalQuery())
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonNotPerceived, verdict.Reason)
}

func TestCanAttackNonHostileTarget(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Target = testActor("m2", actor.KindMonster, "crimson")
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonNotHostile, verdict.Reason)
}

// A region that allows combat but not hostile dispositions downgrades the
// relation, so the final gate denies even though every earlier gate passed.
func TestCanAttackHostilesDisallowedDowngrades(t *testing.T) {
	v := combat.NewValidator(testResolver(), nil, nil)
	q := legalQuery()
	q.Snapshot = scene.Snapshot{RegionID: "town-square", Context: scene.ContextSettlement, Flags: scene.ContextSettlement.DefaultFlags()}
	verdict := v.CanAttack(q)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, targeting.ReasonNotHostile, verdict.Reason)
}

func TestCanAttackIsIdempotent(t *testing.T) {
	v := combat.NewValidator(testResolver(), blockNone{}, nil)
	q := legalQuery()
	first := v.CanAttack(q)
	second := v.CanAttack(q)
	assert.Equal(t, first, second)
}
