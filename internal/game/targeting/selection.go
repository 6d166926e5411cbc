package targeting

import "sync"

// SelectKind distinguishes how a selection was made. Attack-driven selections
// are cleared when the selector leaves combat; passive ones are preserved.
type SelectKind int

const (
	SelectPassive SelectKind = iota
	SelectAttack
)

// String returns a human-readable selection kind label.
func (k SelectKind) String() string {
	if k == SelectAttack {
		return "attack"
	}
	return "passive"
}

// Selection is one viewer's current target.
type Selection struct {
	TargetID string
	Kind     SelectKind
}

// Selector tracks the current selection of every viewer.
// All methods are safe for concurrent use.
//
// Selecting never touches engagement state; that is a deliberate
// anti-griefing rule enforced by keeping this type ignorant of the combat
// tracker.
type Selector struct {
	mu         sync.RWMutex
	selections map[string]Selection

	// OnChange is called after every selection change, including clears
	// (empty targetID). nil = no notifications.
	OnChange func(viewerID, targetID string, kind SelectKind)
}

// NewSelector creates an empty Selector.
func NewSelector() *Selector {
	return &Selector{selections: make(map[string]Selection)}
}

// Select records viewerID's selection of targetID.
//
// Precondition: viewerID and targetID must be non-empty; eligibility has
// already been checked by the caller.
func (s *Selector) Select(viewerID, targetID string, kind SelectKind) {
	s.mu.Lock()
	prev := s.selections[viewerID]
	s.selections[viewerID] = Selection{TargetID: targetID, Kind: kind}
	s.mu.Unlock()

	if s.OnChange != nil && (prev.TargetID != targetID || prev.Kind != kind) {
		s.OnChange(viewerID, targetID, kind)
	}
}

// Selected returns viewerID's current selection.
//
// Postcondition: Returns (selection, true) if one exists, or (Selection{}, false).
func (s *Selector) Selected(viewerID string) (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[viewerID]
	return sel, ok
}

// Clear drops viewerID's selection regardless of kind.
func (s *Selector) Clear(viewerID string) {
	s.mu.Lock()
	_, had := s.selections[viewerID]
	delete(s.selections, viewerID)
	s.mu.Unlock()

	if had && s.OnChange != nil {
		s.OnChange(viewerID, "", SelectPassive)
	}
}

// ClearAttackDriven drops viewerID's selection only if it was attack-driven.
// Called by the engagement sweep on the InCombat → Peaceful transition so a
// passive Select/Interact selection survives disengage.
//
// Postcondition: Returns true iff a selection was cleared.
func (s *Selector) ClearAttackDriven(viewerID string) bool {
	s.mu.Lock()
	sel, ok := s.selections[viewerID]
	if !ok || sel.Kind != SelectAttack {
		s.mu.Unlock()
		return false
	}
	delete(s.selections, viewerID)
	s.mu.Unlock()

	if s.OnChange != nil {
		s.OnChange(viewerID, "", SelectPassive)
	}
	return true
}

// DropTarget clears every viewer's selection of targetID (target despawned
// or died).
func (s *Selector) DropTarget(targetID string) {
	s.mu.Lock()
	var cleared []string
	for viewerID, sel := range s.selections {
		if sel.TargetID == targetID {
			delete(s.selections, viewerID)
			cleared = append(cleared, viewerID)
		}
	}
	s.mu.Unlock()

	if s.OnChange != nil {
		for _, viewerID := range cleared {
			s.OnChange(viewerID, "", SelectPassive)
		}
	}
}
