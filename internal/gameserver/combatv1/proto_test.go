package combatv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	combatv1 "github.com/cory-johannsen/feud/internal/gameserver/combatv1"
)

func TestProto_AttackIntent_Roundtrip(t *testing.T) {
	orig := &combatv1.ClientMessage{
		RequestId: "r1",
		Payload: &combatv1.ClientMessage_AttackIntent{
			AttackIntent: &combatv1.AttackIntentRequest{TargetId: "m1"},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &combatv1.ClientMessage{}
	require.NoError(t, proto.Unmarshal(data, got))
	intent, ok := got.Payload.(*combatv1.ClientMessage_AttackIntent)
	require.True(t, ok)
	assert.Equal(t, "m1", intent.AttackIntent.TargetId)
	assert.Equal(t, "r1", got.RequestId)
}

func TestProto_SelectionChanged_Roundtrip(t *testing.T) {
	orig := &combatv1.ServerEvent{
		Payload: &combatv1.ServerEvent_SelectionChanged{
			SelectionChanged: &combatv1.SelectionChangedEvent{
				ActorId:     "p1",
				TargetId:    "m1",
				Attack:      true,
				Disposition: combatv1.Disposition_DISPOSITION_HOSTILE,
			},
		},
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	got := &combatv1.ServerEvent{}
	require.NoError(t, proto.Unmarshal(data, got))
	sel, ok := got.Payload.(*combatv1.ServerEvent_SelectionChanged)
	require.True(t, ok)
	assert.Equal(t, combatv1.Disposition_DISPOSITION_HOSTILE, sel.SelectionChanged.Disposition)
	assert.True(t, sel.SelectionChanged.Attack)
}

func TestProto_IntentDenied_Roundtrip(t *testing.T) {
	orig := &combatv1.TargetIntentDeniedEvent{
		ActorId:  "p1",
		TargetId: "p2",
		Reason:   "pvp_disallowed",
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got combatv1.TargetIntentDeniedEvent
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, orig.Reason, got.Reason)
	assert.Equal(t, orig.TargetId, got.TargetId)
}

func TestProto_CombatStateChanged_Roundtrip(t *testing.T) {
	orig := &combatv1.CombatStateChangedEvent{
		ActorId: "p1",
		From:    combatv1.CombatState_COMBAT_STATE_IN_COMBAT,
		To:      combatv1.CombatState_COMBAT_STATE_PEACEFUL,
	}
	data, err := proto.Marshal(orig)
	require.NoError(t, err)
	var got combatv1.CombatStateChangedEvent
	require.NoError(t, proto.Unmarshal(data, &got))
	assert.Equal(t, orig.From, got.From)
	assert.Equal(t, orig.To, got.To)
}
