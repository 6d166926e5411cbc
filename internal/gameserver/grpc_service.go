// Package gameserver exposes the relation and combat-legality engine over
// gRPC: a bidirectional session stream for players plus unary queries for
// tooling, a shared game clock, and the periodic engagement sweep.
package gameserver

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/cory-johannsen/feud/internal/game/actor"
	"github.com/cory-johannsen/feud/internal/game/combat"
	"github.com/cory-johannsen/feud/internal/game/scene"
	"github.com/cory-johannsen/feud/internal/game/session"
	"github.com/cory-johannsen/feud/internal/game/targeting"
	combatv1 "github.com/cory-johannsen/feud/internal/gameserver/combatv1"
	"github.com/cory-johannsen/feud/internal/scripting"
)

// CombatServiceServer implements the gRPC CombatService.
type CombatServiceServer struct {
	combatv1.UnimplementedCombatServiceServer
	actors    *actor.Registry
	gate      *scene.Gate
	resolver  *targeting.Resolver
	selector  *targeting.Selector
	validator *combat.Validator
	tracker   *combat.Tracker
	swings    *combat.AutoAttacker
	vision    PerceptionSource
	sessions  *session.Manager
	scriptMgr *scripting.Manager
	logger    *zap.Logger

	// RangeCheck decides whether a target is attackable from the attacker's
	// position. The default accepts any pair sharing a region; a movement
	// system replaces it with real geometry.
	RangeCheck func(attacker, target *actor.Actor) bool
}

// PerceptionSource mirrors the validator's visibility collaborator.
type PerceptionSource = combat.PerceptionSource

// NewCombatServiceServer creates a CombatServiceServer with the given
// dependencies and wires the tracker's lapse hooks to the selector, the
// auto-attack scheduler, and the session event push.
//
// Precondition: all arguments except scriptMgr and vision must be non-nil.
// Postcondition: Returns a fully initialised CombatServiceServer.
func NewCombatServiceServer(
	actors *actor.Registry,
	gate *scene.Gate,
	resolver *targeting.Resolver,
	selector *targeting.Selector,
	validator *combat.Validator,
	tracker *combat.Tracker,
	swings *combat.AutoAttacker,
	vision PerceptionSource,
	sessMgr *session.Manager,
	scriptMgr *scripting.Manager,
	logger *zap.Logger,
) *CombatServiceServer {
	s := &CombatServiceServer{
		actors:    actors,
		gate:      gate,
		resolver:  resolver,
		selector:  selector,
		validator: validator,
		tracker:   tracker,
		swings:    swings,
		vision:    vision,
		sessions:  sessMgr,
		scriptMgr: scriptMgr,
		logger:    logger,
	}
	s.RangeCheck = func(attacker, target *actor.Actor) bool {
		return attacker.RegionID == target.RegionID
	}

	tracker.OnCombatLapsed = swings.Cancel
	tracker.ClearAttackSelection = func(actorID string) bool {
		cleared := selector.ClearAttackDriven(actorID)
		if cleared {
			s.pushEvent(actorID, &combatv1.ServerEvent{
				Payload: &combatv1.ServerEvent_SelectionChanged{
					SelectionChanged: &combatv1.SelectionChangedEvent{ActorId: actorID},
				},
			})
		}
		return cleared
	}
	tracker.OnStateChange = func(actorID string, from, to combat.State) {
		s.pushEvent(actorID, &combatv1.ServerEvent{
			Payload: &combatv1.ServerEvent_CombatStateChanged{
				CombatStateChanged: &combatv1.CombatStateChangedEvent{
					ActorId: actorID,
					From:    protoState(from),
					To:      protoState(to),
				},
			},
		})
	}
	return s
}

// Session implements the bidirectional streaming RPC.
// Flow:
//  1. Wait for JoinRequest binding the stream to a spawned actor
//  2. Create player session
//  3. Spawn goroutine to forward entity events to the gRPC stream
//  4. Main loop: read ClientMessage, dispatch, send response
//  5. On disconnect: clean up session
func (s *CombatServiceServer) Session(stream combatv1.CombatService_SessionServer) error {
	firstMsg, err := stream.Recv()
	if err != nil {
		return fmt.Errorf("receiving join request: %w", err)
	}

	joinReq := firstMsg.GetJoin()
	if joinReq == nil {
		return fmt.Errorf("first message must be JoinRequest")
	}

	uid := joinReq.Uid
	act, ok := s.actors.Get(joinReq.ActorId)
	if !ok {
		return fmt.Errorf("unknown actor %q", joinReq.ActorId)
	}

	s.logger.Info("player joining",
		zap.String("uid", uid),
		zap.String("username", joinReq.Username),
		zap.String("actor_id", act.ID),
		zap.String("region", act.RegionID),
	)

	sess, err := s.sessions.AddPlayer(uid, joinReq.Username, act.ID, act.RegionID, "player")
	if err != nil {
		return fmt.Errorf("adding player: %w", err)
	}
	defer s.cleanupPlayer(uid)

	if err := stream.Send(&combatv1.ServerEvent{
		RequestId: firstMsg.RequestId,
		Payload: &combatv1.ServerEvent_Joined{
			Joined: &combatv1.JoinedEvent{
				ActorId:  act.ID,
				RegionId: act.RegionID,
				State:    protoState(s.tracker.StateOf(act.ID)),
			},
		},
	}); err != nil {
		return fmt.Errorf("sending join confirmation: %w", err)
	}

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.forwardEvents(ctx, sess.Entity, stream)
	}()

	err = s.commandLoop(ctx, uid, stream)

	cancel()
	wg.Wait()

	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

// commandLoop processes incoming ClientMessages until the stream ends.
func (s *CombatServiceServer) commandLoop(ctx context.Context, uid string, stream combatv1.CombatService_SessionServer) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := stream.Recv()
		if err == io.EOF {
			return io.EOF
		}
		if err != nil {
			return fmt.Errorf("receiving message: %w", err)
		}

		resp, err := s.dispatch(uid, msg)
		if err != nil {
			errEvt := &combatv1.ServerEvent{
				RequestId: msg.RequestId,
				Payload: &combatv1.ServerEvent_Error{
					Error: &combatv1.ErrorEvent{Message: err.Error()},
				},
			}
			if sendErr := stream.Send(errEvt); sendErr != nil {
				return fmt.Errorf("sending error: %w", sendErr)
			}
			continue
		}

		if resp != nil {
			resp.RequestId = msg.RequestId
			if err := stream.Send(resp); err != nil {
				return fmt.Errorf("sending response: %w", err)
			}
		}
	}
}

// dispatch routes a ClientMessage to the appropriate handler.
func (s *CombatServiceServer) dispatch(uid string, msg *combatv1.ClientMessage) (*combatv1.ServerEvent, error) {
	switch p := msg.Payload.(type) {
	case *combatv1.ClientMessage_Select:
		return s.handleSelect(uid, p.Select)
	case *combatv1.ClientMessage_AttackIntent:
		return s.handleAttackIntent(uid, p.AttackIntent)
	case *combatv1.ClientMessage_ClearSelection:
		return s.handleClearSelection(uid)
	case *combatv1.ClientMessage_Status:
		return s.handleStatus(uid)
	case *combatv1.ClientMessage_Join:
		return nil, fmt.Errorf("already joined")
	default:
		return nil, fmt.Errorf("unknown message type")
	}
}

// handleSelect sets the caller's passive selection. Selection is a social
// act, not a hostile one: it never touches the engagement tracker.
func (s *CombatServiceServer) handleSelect(uid string, req *combatv1.SelectRequest) (*combatv1.ServerEvent, error) {
	viewer, target, err := s.sessionPair(uid, req.TargetId)
	if err != nil {
		return nil, err
	}

	snap := s.gate.SnapshotFor(viewer.RegionID)
	res := s.resolver.Resolve(viewer, target, snap, s.perceive(), nil)
	if !res.Eligible {
		return nil, fmt.Errorf("cannot select %q: %s", req.TargetId, res.Reason)
	}

	s.selector.Select(viewer.ID, target.ID, targeting.SelectPassive)
	return &combatv1.ServerEvent{
		Payload: &combatv1.ServerEvent_SelectionChanged{
			SelectionChanged: &combatv1.SelectionChangedEvent{
				ActorId:     viewer.ID,
				TargetId:    target.ID,
				Disposition: protoDisposition(res.Disposition),
			},
		},
	}, nil
}

// handleAttackIntent validates a hostile act. Legal intents record the
// attacker's engagement, replace the selection with an attack-driven one,
// and start the auto-attack loop. Illegal intents yield a denial event with
// a stable reason code and change nothing.
func (s *CombatServiceServer) handleAttackIntent(uid string, req *combatv1.AttackIntentRequest) (*combatv1.ServerEvent, error) {
	attacker, target, err := s.sessionPair(uid, req.TargetId)
	if err != nil {
		return nil, err
	}

	verdict := s.validator.CanAttack(combat.AttackQuery{
		Attacker: attacker,
		Target:   target,
		Snapshot: s.gate.SnapshotFor(attacker.RegionID),
		Action:   combat.ActionAttack,
		InRange:  s.RangeCheck(attacker, target),
	})
	if !verdict.Allowed {
		s.logger.Debug("attack intent denied",
			zap.String("attacker", attacker.ID),
			zap.String("target", target.ID),
			zap.String("reason", verdict.Reason.String()),
		)
		return &combatv1.ServerEvent{
			Payload: &combatv1.ServerEvent_IntentDenied{
				IntentDenied: &combatv1.TargetIntentDeniedEvent{
					ActorId:  attacker.ID,
					TargetId: target.ID,
					Reason:   verdict.Reason.String(),
				},
			},
		}, nil
	}

	s.selector.Select(attacker.ID, target.ID, targeting.SelectAttack)
	s.tracker.OnHostileIntentValidated(attacker.ID)
	s.tracker.OnTargeted(target.ID)
	s.swings.Engage(attacker.ID, target.ID, s.swing)

	return &combatv1.ServerEvent{
		Payload: &combatv1.ServerEvent_SelectionChanged{
			SelectionChanged: &combatv1.SelectionChangedEvent{
				ActorId:     attacker.ID,
				TargetId:    target.ID,
				Attack:      true,
				Disposition: combatv1.Disposition_DISPOSITION_HOSTILE,
			},
		},
	}, nil
}

// swing revalidates one automatic attack. A still-legal swing counts as a
// hostile resolution refreshing both windows; an illegal one ends the
// pursuit and stops the loop. Clearing the selection is left to the sweep.
func (s *CombatServiceServer) swing(attackerID, targetID string) bool {
	attacker, aok := s.actors.Get(attackerID)
	target, tok := s.actors.Get(targetID)
	if !aok || !tok {
		s.tracker.OnEngagementEnded(attackerID)
		return false
	}

	verdict := s.validator.CanAttack(combat.AttackQuery{
		Attacker: attacker,
		Target:   target,
		Snapshot: s.gate.SnapshotFor(attacker.RegionID),
		Action:   combat.ActionAttack,
		InRange:  s.RangeCheck(attacker, target),
	})
	if !verdict.Allowed {
		s.tracker.OnEngagementEnded(attackerID)
		return false
	}

	s.tracker.OnHostileResolution(attackerID, targetID)
	return true
}

func (s *CombatServiceServer) handleClearSelection(uid string) (*combatv1.ServerEvent, error) {
	sess, ok := s.sessions.GetPlayer(uid)
	if !ok {
		return nil, fmt.Errorf("player %q not found", uid)
	}
	s.selector.Clear(sess.ActorID)
	s.swings.Cancel(sess.ActorID)
	// Clearing the selection abandons the pursuit; the combat window still
	// runs out on its own.
	s.tracker.OnEngagementEnded(sess.ActorID)
	return &combatv1.ServerEvent{
		Payload: &combatv1.ServerEvent_SelectionChanged{
			SelectionChanged: &combatv1.SelectionChangedEvent{ActorId: sess.ActorID},
		},
	}, nil
}

func (s *CombatServiceServer) handleStatus(uid string) (*combatv1.ServerEvent, error) {
	sess, ok := s.sessions.GetPlayer(uid)
	if !ok {
		return nil, fmt.Errorf("player %q not found", uid)
	}
	act, ok := s.actors.Get(sess.ActorID)
	if !ok {
		return nil, fmt.Errorf("actor %q not found", sess.ActorID)
	}
	return &combatv1.ServerEvent{
		Payload: &combatv1.ServerEvent_Status{
			Status: &combatv1.StatusEvent{
				ActorId:       act.ID,
				State:         protoState(s.tracker.StateOf(act.ID)),
				RemainingMs:   s.tracker.Remaining(act.ID).Milliseconds(),
				ActivePursuit: s.tracker.ActivePursuit(act.ID),
				RegionId:      act.RegionID,
			},
		},
	}, nil
}

// ResolveDisposition implements the unary disposition query.
func (s *CombatServiceServer) ResolveDisposition(ctx context.Context, req *combatv1.DispositionRequest) (*combatv1.DispositionResponse, error) {
	viewer, vok := s.actors.Get(req.ViewerId)
	target, tok := s.actors.Get(req.TargetId)
	if !vok || !tok {
		return &combatv1.DispositionResponse{
			Disposition: combatv1.Disposition_DISPOSITION_INVALID,
			Reason:      targeting.ReasonUnknownActor.String(),
		}, nil
	}

	snap := s.gate.SnapshotFor(viewer.RegionID)
	res := s.resolver.Resolve(viewer, target, snap, s.perceive(), nil)
	return &combatv1.DispositionResponse{
		Disposition: protoDisposition(res.Disposition),
		Eligible:    res.Eligible,
		Reason:      res.Reason.String(),
	}, nil
}

// CanAttack implements the unary legality query. It is a pure check: no
// engagement state changes.
func (s *CombatServiceServer) CanAttack(ctx context.Context, req *combatv1.AttackCheckRequest) (*combatv1.AttackCheckResponse, error) {
	attacker, aok := s.actors.Get(req.AttackerId)
	target, tok := s.actors.Get(req.TargetId)
	if !aok || !tok {
		return &combatv1.AttackCheckResponse{
			Reason: targeting.ReasonUnknownActor.String(),
		}, nil
	}

	verdict := s.validator.CanAttack(combat.AttackQuery{
		Attacker: attacker,
		Target:   target,
		Snapshot: s.gate.SnapshotFor(attacker.RegionID),
		Action:   combat.ActionAttack,
		InRange:  req.InRange && s.RangeCheck(attacker, target),
	})
	return &combatv1.AttackCheckResponse{
		Allowed: verdict.Allowed,
		Reason:  verdict.Reason.String(),
	}, nil
}

// CombatState implements the unary state query.
func (s *CombatServiceServer) CombatState(ctx context.Context, req *combatv1.CombatStateRequest) (*combatv1.CombatStateResponse, error) {
	return &combatv1.CombatStateResponse{
		State:         protoState(s.tracker.StateOf(req.ActorId)),
		RemainingMs:   s.tracker.Remaining(req.ActorId).Milliseconds(),
		ActivePursuit: s.tracker.ActivePursuit(req.ActorId),
	}, nil
}

// HandleRegionEntered applies region-entry consequences for an actor that
// the movement system has already moved: the destination's rule snapshot
// overrides any remaining combat window, and the region's entry hook runs.
func (s *CombatServiceServer) HandleRegionEntered(actorID string) {
	act, ok := s.actors.Get(actorID)
	if !ok {
		return
	}
	snap := s.gate.SnapshotFor(act.RegionID)
	if !snap.AllowsCombat() {
		s.swings.Cancel(actorID)
		s.tracker.ForcePeaceful(actorID)
	}
	if s.scriptMgr != nil {
		s.scriptMgr.OnRegionEnter(actorID, act.RegionID)
	}
	if sess, ok := s.sessions.GetPlayerByActor(actorID); ok {
		if _, err := s.sessions.MovePlayer(sess.UID, act.RegionID); err != nil {
			s.logger.Warn("moving session presence", zap.String("uid", sess.UID), zap.Error(err))
		}
	}
}

// SweepRegionOverrides forces out of combat every actor standing in a
// region that disallows combat. Region entry already applies the override
// at the door; this sweep catches rule changes under actors' feet, such as
// a snapshot being replaced or unregistered mid-fight. The gate wins over
// any remaining window or pursuit.
//
// Runs on the same periodic tick as the engagement expiry sweep.
func (s *CombatServiceServer) SweepRegionOverrides() {
	for _, act := range s.actors.All() {
		if s.gate.SnapshotFor(act.RegionID).AllowsCombat() {
			continue
		}
		if s.tracker.StateOf(act.ID) != combat.StateInCombat {
			continue
		}
		s.swings.Cancel(act.ID)
		s.tracker.ForcePeaceful(act.ID)
	}
}

// HandleActorDeath applies death consequences: terminal combat state, loop
// cancelled, and everyone targeting the corpse has their selection dropped.
func (s *CombatServiceServer) HandleActorDeath(actorID string) {
	s.swings.Cancel(actorID)
	s.tracker.OnDeath(actorID)
	s.selector.DropTarget(actorID)
	s.selector.Clear(actorID)
}

// HandleActorRevived returns a respawned actor to peaceful standing.
func (s *CombatServiceServer) HandleActorRevived(actorID string) {
	s.tracker.OnRevive(actorID)
}

// sessionPair resolves the caller's actor and the named target.
func (s *CombatServiceServer) sessionPair(uid, targetID string) (*actor.Actor, *actor.Actor, error) {
	sess, ok := s.sessions.GetPlayer(uid)
	if !ok {
		return nil, nil, fmt.Errorf("player %q not found", uid)
	}
	viewer, ok := s.actors.Get(sess.ActorID)
	if !ok {
		return nil, nil, fmt.Errorf("actor %q not found", sess.ActorID)
	}
	target, ok := s.actors.Get(targetID)
	if !ok {
		return nil, nil, fmt.Errorf("target %q not found", targetID)
	}
	return viewer, target, nil
}

func (s *CombatServiceServer) perceive() targeting.PerceiveFunc {
	if s.vision == nil {
		return nil
	}
	return s.vision.CanPerceive
}

// pushEvent serializes evt to the actor's session entity, if one exists.
func (s *CombatServiceServer) pushEvent(actorID string, evt *combatv1.ServerEvent) {
	sess, ok := s.sessions.GetPlayerByActor(actorID)
	if !ok {
		return
	}
	data, err := proto.Marshal(evt)
	if err != nil {
		s.logger.Error("marshaling push event", zap.Error(err))
		return
	}
	if err := sess.Entity.Push(data); err != nil {
		s.logger.Debug("pushing event", zap.String("uid", sess.UID), zap.Error(err))
	}
}

// forwardEvents reads from the BridgeEntity events channel and sends
// deserialized ServerEvents to the gRPC stream.
func (s *CombatServiceServer) forwardEvents(ctx context.Context, entity *session.BridgeEntity, stream combatv1.CombatService_SessionServer) {
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-entity.Events():
			if !ok {
				return
			}
			var evt combatv1.ServerEvent
			if err := proto.Unmarshal(data, &evt); err != nil {
				s.logger.Error("unmarshaling event from entity", zap.Error(err))
				continue
			}
			if err := stream.Send(&evt); err != nil {
				s.logger.Debug("forward event send failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *CombatServiceServer) cleanupPlayer(uid string) {
	sess, ok := s.sessions.GetPlayer(uid)
	if !ok {
		return
	}
	s.swings.Cancel(sess.ActorID)
	s.tracker.OnEngagementEnded(sess.ActorID)
	s.selector.Clear(sess.ActorID)
	if err := s.sessions.RemovePlayer(uid); err != nil {
		s.logger.Warn("removing player on cleanup", zap.String("uid", uid), zap.Error(err))
	}
	s.logger.Info("player disconnected", zap.String("uid", uid), zap.String("actor_id", sess.ActorID))
}

func protoState(st combat.State) combatv1.CombatState {
	switch st {
	case combat.StateInCombat:
		return combatv1.CombatState_COMBAT_STATE_IN_COMBAT
	case combat.StateDead:
		return combatv1.CombatState_COMBAT_STATE_DEAD
	default:
		return combatv1.CombatState_COMBAT_STATE_PEACEFUL
	}
}

func protoDisposition(d targeting.Disposition) combatv1.Disposition {
	switch d {
	case targeting.DispositionSelf:
		return combatv1.Disposition_DISPOSITION_SELF
	case targeting.DispositionFriendly:
		return combatv1.Disposition_DISPOSITION_FRIENDLY
	case targeting.DispositionNeutral:
		return combatv1.Disposition_DISPOSITION_NEUTRAL
	case targeting.DispositionHostile:
		return combatv1.Disposition_DISPOSITION_HOSTILE
	default:
		return combatv1.Disposition_DISPOSITION_INVALID
	}
}
