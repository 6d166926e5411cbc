package session_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/feud/internal/game/session"
)

func TestAddPlayerRejectsDuplicates(t *testing.T) {
	m := session.NewManager()

	sess, err := m.AddPlayer("u1", "alice", "actor-1", "wilds-1", "player")
	require.NoError(t, err)
	assert.Equal(t, "actor-1", sess.ActorID)
	assert.NotNil(t, sess.Entity)

	_, err = m.AddPlayer("u1", "alice", "actor-2", "wilds-1", "player")
	assert.Error(t, err)

	// The same actor cannot be driven by two sessions.
	_, err = m.AddPlayer("u2", "bob", "actor-1", "wilds-1", "player")
	assert.Error(t, err)
}

func TestRemovePlayerClosesEntity(t *testing.T) {
	m := session.NewManager()
	sess, err := m.AddPlayer("u1", "alice", "actor-1", "wilds-1", "player")
	require.NoError(t, err)

	require.NoError(t, m.RemovePlayer("u1"))
	assert.True(t, sess.Entity.IsClosed())
	assert.Empty(t, m.PlayerUIDsInRegion("wilds-1"))

	_, ok := m.GetPlayerByActor("actor-1")
	assert.False(t, ok)
	assert.Error(t, m.RemovePlayer("u1"))
}

func TestMovePlayerUpdatesRegionPresence(t *testing.T) {
	m := session.NewManager()
	_, err := m.AddPlayer("u1", "alice", "actor-1", "wilds-1", "player")
	require.NoError(t, err)
	_, err = m.AddPlayer("u2", "bob", "actor-2", "wilds-1", "player")
	require.NoError(t, err)

	old, err := m.MovePlayer("u1", "town-1")
	require.NoError(t, err)
	assert.Equal(t, "wilds-1", old)

	assert.Equal(t, []string{"u2"}, m.PlayerUIDsInRegion("wilds-1"))
	assert.Equal(t, []string{"u1"}, m.PlayerUIDsInRegion("town-1"))

	sess, ok := m.GetPlayer("u1")
	require.True(t, ok)
	assert.Equal(t, "town-1", sess.RegionID)

	_, err = m.MovePlayer("ghost", "town-1")
	assert.Error(t, err)
}

func TestGetPlayerByActor(t *testing.T) {
	m := session.NewManager()
	_, err := m.AddPlayer("u1", "alice", "actor-1", "wilds-1", "admin")
	require.NoError(t, err)

	sess, ok := m.GetPlayerByActor("actor-1")
	require.True(t, ok)
	assert.Equal(t, "u1", sess.UID)
	assert.Equal(t, "admin", sess.Role)
}

func TestPlayerUIDsInRegion(t *testing.T) {
	m := session.NewManager()
	for _, uid := range []string{"u1", "u2", "u3"} {
		_, err := m.AddPlayer(uid, uid, "actor-"+uid, "arena-1", "player")
		require.NoError(t, err)
	}

	uids := m.PlayerUIDsInRegion("arena-1")
	sort.Strings(uids)
	assert.Equal(t, []string{"u1", "u2", "u3"}, uids)
	assert.Equal(t, 3, m.PlayerCount())
	assert.Nil(t, m.PlayerUIDsInRegion("nowhere"))
}

func TestBridgeEntityPushAndClose(t *testing.T) {
	e := session.NewBridgeEntity("u1", 2)

	require.NoError(t, e.Push([]byte("one")))
	require.NoError(t, e.Push([]byte("two")))
	// Buffer full: push drops instead of blocking.
	assert.Error(t, e.Push([]byte("three")))

	assert.Equal(t, []byte("one"), <-e.Events())

	require.NoError(t, e.Close())
	assert.True(t, e.IsClosed())
	assert.Error(t, e.Push([]byte("late")))
	require.NoError(t, e.Close())
}
