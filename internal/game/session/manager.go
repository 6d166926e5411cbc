package session

import (
	"fmt"
	"sync"
)

// PlayerSession tracks one connected player and the actor they drive.
type PlayerSession struct {
	// UID is the unique player identifier.
	UID string
	// Username is the account username (for logging).
	Username string
	// ActorID is the registry ID of the actor this session controls.
	ActorID string
	// RegionID is the region the player's actor currently occupies.
	RegionID string
	// Role is the account privilege level (player, editor, admin).
	Role string
	// Entity is the bridge entity for pushing events to the player.
	Entity *BridgeEntity
}

// Manager tracks all active player sessions and region presence.
// All methods are safe for concurrent use.
type Manager struct {
	mu         sync.RWMutex
	players    map[string]*PlayerSession  // uid → session
	byActor    map[string]string          // actorID → uid
	regionSets map[string]map[string]bool // regionID → set of UIDs
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{
		players:    make(map[string]*PlayerSession),
		byActor:    make(map[string]string),
		regionSets: make(map[string]map[string]bool),
	}
}

// AddPlayer registers a new player session bound to an actor in a region.
//
// Precondition: uid, actorID, and regionID must be non-empty.
// Postcondition: Returns the created PlayerSession, or an error if the UID
// or the actor is already bound.
func (m *Manager) AddPlayer(uid, username, actorID, regionID, role string) (*PlayerSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.players[uid]; exists {
		return nil, fmt.Errorf("player %q already connected", uid)
	}
	if owner, exists := m.byActor[actorID]; exists {
		return nil, fmt.Errorf("actor %q already bound to player %q", actorID, owner)
	}

	sess := &PlayerSession{
		UID:      uid,
		Username: username,
		ActorID:  actorID,
		RegionID: regionID,
		Role:     role,
		Entity:   NewBridgeEntity(uid, 64),
	}

	m.players[uid] = sess
	m.byActor[actorID] = uid
	if m.regionSets[regionID] == nil {
		m.regionSets[regionID] = make(map[string]bool)
	}
	m.regionSets[regionID][uid] = true

	return sess, nil
}

// RemovePlayer removes a player session and cleans up region presence.
//
// Postcondition: The player is removed from all tracking and their bridge
// entity is closed. Returns an error if not found.
func (m *Manager) RemovePlayer(uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.players[uid]
	if !exists {
		return fmt.Errorf("player %q not found", uid)
	}

	if rs, ok := m.regionSets[sess.RegionID]; ok {
		delete(rs, uid)
		if len(rs) == 0 {
			delete(m.regionSets, sess.RegionID)
		}
	}

	_ = sess.Entity.Close()

	delete(m.byActor, sess.ActorID)
	delete(m.players, uid)
	return nil
}

// MovePlayer moves a player's presence to a new region.
//
// Precondition: uid and newRegionID must be non-empty.
// Postcondition: Returns the old region ID, or an error if the player is not found.
func (m *Manager) MovePlayer(uid, newRegionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, exists := m.players[uid]
	if !exists {
		return "", fmt.Errorf("player %q not found", uid)
	}

	oldRegionID := sess.RegionID

	if rs, ok := m.regionSets[oldRegionID]; ok {
		delete(rs, uid)
		if len(rs) == 0 {
			delete(m.regionSets, oldRegionID)
		}
	}

	sess.RegionID = newRegionID
	if m.regionSets[newRegionID] == nil {
		m.regionSets[newRegionID] = make(map[string]bool)
	}
	m.regionSets[newRegionID][uid] = true

	return oldRegionID, nil
}

// PlayerUIDsInRegion returns the UIDs of all players present in the region.
//
// Postcondition: Returns a slice of UIDs (may be empty).
func (m *Manager) PlayerUIDsInRegion(regionID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uids, ok := m.regionSets[regionID]
	if !ok {
		return nil
	}

	result := make([]string, 0, len(uids))
	for uid := range uids {
		result = append(result, uid)
	}
	return result
}

// GetPlayer returns the session for the given UID.
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) GetPlayer(uid string) (*PlayerSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.players[uid]
	return sess, ok
}

// GetPlayerByActor returns the session driving the given actor.
//
// Postcondition: Returns (session, true) if found, or (nil, false) otherwise.
func (m *Manager) GetPlayerByActor(actorID string) (*PlayerSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	uid, ok := m.byActor[actorID]
	if !ok {
		return nil, false
	}
	sess, ok := m.players[uid]
	return sess, ok
}

// PlayerCount returns the total number of connected players.
func (m *Manager) PlayerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}
