// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: combat.proto

package combatv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Disposition is the label a viewer perceives toward a target.
type Disposition int32

const (
	Disposition_DISPOSITION_UNSPECIFIED Disposition = 0
	Disposition_DISPOSITION_SELF        Disposition = 1
	Disposition_DISPOSITION_FRIENDLY    Disposition = 2
	Disposition_DISPOSITION_NEUTRAL     Disposition = 3
	Disposition_DISPOSITION_HOSTILE     Disposition = 4
	Disposition_DISPOSITION_INVALID     Disposition = 5
)

// Enum value maps for Disposition.
var (
	Disposition_name = map[int32]string{
		0: "DISPOSITION_UNSPECIFIED",
		1: "DISPOSITION_SELF",
		2: "DISPOSITION_FRIENDLY",
		3: "DISPOSITION_NEUTRAL",
		4: "DISPOSITION_HOSTILE",
		5: "DISPOSITION_INVALID",
	}
	Disposition_value = map[string]int32{
		"DISPOSITION_UNSPECIFIED": 0,
		"DISPOSITION_SELF":        1,
		"DISPOSITION_FRIENDLY":    2,
		"DISPOSITION_NEUTRAL":     3,
		"DISPOSITION_HOSTILE":     4,
		"DISPOSITION_INVALID":     5,
	}
)

func (x Disposition) Enum() *Disposition {
	p := new(Disposition)
	*p = x
	return p
}

func (x Disposition) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Disposition) Descriptor() protoreflect.EnumDescriptor {
	return file_combat_proto_enumTypes[0].Descriptor()
}

func (Disposition) Type() protoreflect.EnumType {
	return &file_combat_proto_enumTypes[0]
}

func (x Disposition) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Disposition.Descriptor instead.
func (Disposition) EnumDescriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{0}
}

// CombatState is the derived engagement state of one actor.
type CombatState int32

const (
	CombatState_COMBAT_STATE_UNSPECIFIED CombatState = 0
	CombatState_COMBAT_STATE_PEACEFUL    CombatState = 1
	CombatState_COMBAT_STATE_IN_COMBAT   CombatState = 2
	CombatState_COMBAT_STATE_DEAD        CombatState = 3
)

// Enum value maps for CombatState.
var (
	CombatState_name = map[int32]string{
		0: "COMBAT_STATE_UNSPECIFIED",
		1: "COMBAT_STATE_PEACEFUL",
		2: "COMBAT_STATE_IN_COMBAT",
		3: "COMBAT_STATE_DEAD",
	}
	CombatState_value = map[string]int32{
		"COMBAT_STATE_UNSPECIFIED": 0,
		"COMBAT_STATE_PEACEFUL":    1,
		"COMBAT_STATE_IN_COMBAT":   2,
		"COMBAT_STATE_DEAD":        3,
	}
)

func (x CombatState) Enum() *CombatState {
	p := new(CombatState)
	*p = x
	return p
}

func (x CombatState) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CombatState) Descriptor() protoreflect.EnumDescriptor {
	return file_combat_proto_enumTypes[1].Descriptor()
}

func (CombatState) Type() protoreflect.EnumType {
	return &file_combat_proto_enumTypes[1]
}

func (x CombatState) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CombatState.Descriptor instead.
func (CombatState) EnumDescriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{1}
}

// JoinRequest binds the stream to an already-spawned actor. Must be the
// first message on a session stream.
type JoinRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Uid           string                 `protobuf:"bytes,1,opt,name=uid,proto3" json:"uid,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	ActorId       string                 `protobuf:"bytes,3,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinRequest) Reset() {
	*x = JoinRequest{}
	mi := &file_combat_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinRequest) ProtoMessage() {}

func (x *JoinRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinRequest.ProtoReflect.Descriptor instead.
func (*JoinRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{0}
}

func (x *JoinRequest) GetUid() string {
	if x != nil {
		return x.Uid
	}
	return ""
}

func (x *JoinRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *JoinRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

// SelectRequest sets the caller's passive selection. Selecting never starts
// combat on its own.
type SelectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectRequest) Reset() {
	*x = SelectRequest{}
	mi := &file_combat_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectRequest) ProtoMessage() {}

func (x *SelectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectRequest.ProtoReflect.Descriptor instead.
func (*SelectRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{1}
}

func (x *SelectRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

// AttackIntentRequest asks the server to validate and commit a hostile act
// against the target.
type AttackIntentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttackIntentRequest) Reset() {
	*x = AttackIntentRequest{}
	mi := &file_combat_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttackIntentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttackIntentRequest) ProtoMessage() {}

func (x *AttackIntentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttackIntentRequest.ProtoReflect.Descriptor instead.
func (*AttackIntentRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{2}
}

func (x *AttackIntentRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

// ClearSelectionRequest drops the caller's current selection.
type ClearSelectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearSelectionRequest) Reset() {
	*x = ClearSelectionRequest{}
	mi := &file_combat_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearSelectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearSelectionRequest) ProtoMessage() {}

func (x *ClearSelectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearSelectionRequest.ProtoReflect.Descriptor instead.
func (*ClearSelectionRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{3}
}

// StatusRequest asks for the caller's current combat status.
type StatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusRequest) Reset() {
	*x = StatusRequest{}
	mi := &file_combat_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusRequest) ProtoMessage() {}

func (x *StatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusRequest.ProtoReflect.Descriptor instead.
func (*StatusRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{4}
}

type ClientMessage struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	RequestId string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	// Types that are valid to be assigned to Payload:
	//
	//	*ClientMessage_Select
	//	*ClientMessage_AttackIntent
	//	*ClientMessage_ClearSelection
	//	*ClientMessage_Status
	//	*ClientMessage_Join
	Payload       isClientMessage_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClientMessage) Reset() {
	*x = ClientMessage{}
	mi := &file_combat_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClientMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClientMessage) ProtoMessage() {}

func (x *ClientMessage) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClientMessage.ProtoReflect.Descriptor instead.
func (*ClientMessage) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{5}
}

func (x *ClientMessage) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ClientMessage) GetPayload() isClientMessage_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ClientMessage) GetSelect() *SelectRequest {
	if x != nil {
		if x, ok := x.Payload.(*ClientMessage_Select); ok {
			return x.Select
		}
	}
	return nil
}

func (x *ClientMessage) GetAttackIntent() *AttackIntentRequest {
	if x != nil {
		if x, ok := x.Payload.(*ClientMessage_AttackIntent); ok {
			return x.AttackIntent
		}
	}
	return nil
}

func (x *ClientMessage) GetClearSelection() *ClearSelectionRequest {
	if x != nil {
		if x, ok := x.Payload.(*ClientMessage_ClearSelection); ok {
			return x.ClearSelection
		}
	}
	return nil
}

func (x *ClientMessage) GetStatus() *StatusRequest {
	if x != nil {
		if x, ok := x.Payload.(*ClientMessage_Status); ok {
			return x.Status
		}
	}
	return nil
}

func (x *ClientMessage) GetJoin() *JoinRequest {
	if x != nil {
		if x, ok := x.Payload.(*ClientMessage_Join); ok {
			return x.Join
		}
	}
	return nil
}

type isClientMessage_Payload interface {
	isClientMessage_Payload()
}

type ClientMessage_Select struct {
	Select *SelectRequest `protobuf:"bytes,2,opt,name=select,proto3,oneof"`
}

type ClientMessage_AttackIntent struct {
	AttackIntent *AttackIntentRequest `protobuf:"bytes,3,opt,name=attack_intent,json=attackIntent,proto3,oneof"`
}

type ClientMessage_ClearSelection struct {
	ClearSelection *ClearSelectionRequest `protobuf:"bytes,4,opt,name=clear_selection,json=clearSelection,proto3,oneof"`
}

type ClientMessage_Status struct {
	Status *StatusRequest `protobuf:"bytes,5,opt,name=status,proto3,oneof"`
}

type ClientMessage_Join struct {
	Join *JoinRequest `protobuf:"bytes,6,opt,name=join,proto3,oneof"`
}

func (*ClientMessage_Select) isClientMessage_Payload() {}

func (*ClientMessage_AttackIntent) isClientMessage_Payload() {}

func (*ClientMessage_ClearSelection) isClientMessage_Payload() {}

func (*ClientMessage_Status) isClientMessage_Payload() {}

func (*ClientMessage_Join) isClientMessage_Payload() {}

// SelectionChangedEvent reports the caller's selection after a select or a
// server-side clear.
type SelectionChangedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Attack        bool                   `protobuf:"varint,3,opt,name=attack,proto3" json:"attack,omitempty"`
	Disposition   Disposition            `protobuf:"varint,4,opt,name=disposition,proto3,enum=feud.combat.v1.Disposition" json:"disposition,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SelectionChangedEvent) Reset() {
	*x = SelectionChangedEvent{}
	mi := &file_combat_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SelectionChangedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SelectionChangedEvent) ProtoMessage() {}

func (x *SelectionChangedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SelectionChangedEvent.ProtoReflect.Descriptor instead.
func (*SelectionChangedEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{6}
}

func (x *SelectionChangedEvent) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *SelectionChangedEvent) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *SelectionChangedEvent) GetAttack() bool {
	if x != nil {
		return x.Attack
	}
	return false
}

func (x *SelectionChangedEvent) GetDisposition() Disposition {
	if x != nil {
		return x.Disposition
	}
	return Disposition_DISPOSITION_UNSPECIFIED
}

// TargetIntentDeniedEvent reports a refused attack intent with a stable
// reason code.
type TargetIntentDeniedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TargetIntentDeniedEvent) Reset() {
	*x = TargetIntentDeniedEvent{}
	mi := &file_combat_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TargetIntentDeniedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TargetIntentDeniedEvent) ProtoMessage() {}

func (x *TargetIntentDeniedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TargetIntentDeniedEvent.ProtoReflect.Descriptor instead.
func (*TargetIntentDeniedEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{7}
}

func (x *TargetIntentDeniedEvent) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *TargetIntentDeniedEvent) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *TargetIntentDeniedEvent) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

// CombatStateChangedEvent reports an actor's engagement state transition.
type CombatStateChangedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	From          CombatState            `protobuf:"varint,2,opt,name=from,proto3,enum=feud.combat.v1.CombatState" json:"from,omitempty"`
	To            CombatState            `protobuf:"varint,3,opt,name=to,proto3,enum=feud.combat.v1.CombatState" json:"to,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CombatStateChangedEvent) Reset() {
	*x = CombatStateChangedEvent{}
	mi := &file_combat_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CombatStateChangedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CombatStateChangedEvent) ProtoMessage() {}

func (x *CombatStateChangedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CombatStateChangedEvent.ProtoReflect.Descriptor instead.
func (*CombatStateChangedEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{8}
}

func (x *CombatStateChangedEvent) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *CombatStateChangedEvent) GetFrom() CombatState {
	if x != nil {
		return x.From
	}
	return CombatState_COMBAT_STATE_UNSPECIFIED
}

func (x *CombatStateChangedEvent) GetTo() CombatState {
	if x != nil {
		return x.To
	}
	return CombatState_COMBAT_STATE_UNSPECIFIED
}

// DispositionEvent reports the outcome of a disposition resolution.
type DispositionEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ViewerId      string                 `protobuf:"bytes,1,opt,name=viewer_id,json=viewerId,proto3" json:"viewer_id,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Disposition   Disposition            `protobuf:"varint,3,opt,name=disposition,proto3,enum=feud.combat.v1.Disposition" json:"disposition,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispositionEvent) Reset() {
	*x = DispositionEvent{}
	mi := &file_combat_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispositionEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispositionEvent) ProtoMessage() {}

func (x *DispositionEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispositionEvent.ProtoReflect.Descriptor instead.
func (*DispositionEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{9}
}

func (x *DispositionEvent) GetViewerId() string {
	if x != nil {
		return x.ViewerId
	}
	return ""
}

func (x *DispositionEvent) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *DispositionEvent) GetDisposition() Disposition {
	if x != nil {
		return x.Disposition
	}
	return Disposition_DISPOSITION_UNSPECIFIED
}

func (x *DispositionEvent) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

// StatusEvent reports the caller's engagement status.
type StatusEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	State         CombatState            `protobuf:"varint,2,opt,name=state,proto3,enum=feud.combat.v1.CombatState" json:"state,omitempty"`
	RemainingMs   int64                  `protobuf:"varint,3,opt,name=remaining_ms,json=remainingMs,proto3" json:"remaining_ms,omitempty"`
	ActivePursuit bool                   `protobuf:"varint,4,opt,name=active_pursuit,json=activePursuit,proto3" json:"active_pursuit,omitempty"`
	RegionId      string                 `protobuf:"bytes,5,opt,name=region_id,json=regionId,proto3" json:"region_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusEvent) Reset() {
	*x = StatusEvent{}
	mi := &file_combat_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusEvent) ProtoMessage() {}

func (x *StatusEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusEvent.ProtoReflect.Descriptor instead.
func (*StatusEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{10}
}

func (x *StatusEvent) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *StatusEvent) GetState() CombatState {
	if x != nil {
		return x.State
	}
	return CombatState_COMBAT_STATE_UNSPECIFIED
}

func (x *StatusEvent) GetRemainingMs() int64 {
	if x != nil {
		return x.RemainingMs
	}
	return 0
}

func (x *StatusEvent) GetActivePursuit() bool {
	if x != nil {
		return x.ActivePursuit
	}
	return false
}

func (x *StatusEvent) GetRegionId() string {
	if x != nil {
		return x.RegionId
	}
	return ""
}

type ErrorEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Message       string                 `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorEvent) Reset() {
	*x = ErrorEvent{}
	mi := &file_combat_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorEvent) ProtoMessage() {}

func (x *ErrorEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorEvent.ProtoReflect.Descriptor instead.
func (*ErrorEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{11}
}

func (x *ErrorEvent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

// JoinedEvent confirms a successful session bind.
type JoinedEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	RegionId      string                 `protobuf:"bytes,2,opt,name=region_id,json=regionId,proto3" json:"region_id,omitempty"`
	State         CombatState            `protobuf:"varint,3,opt,name=state,proto3,enum=feud.combat.v1.CombatState" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JoinedEvent) Reset() {
	*x = JoinedEvent{}
	mi := &file_combat_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JoinedEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JoinedEvent) ProtoMessage() {}

func (x *JoinedEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JoinedEvent.ProtoReflect.Descriptor instead.
func (*JoinedEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{12}
}

func (x *JoinedEvent) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

func (x *JoinedEvent) GetRegionId() string {
	if x != nil {
		return x.RegionId
	}
	return ""
}

func (x *JoinedEvent) GetState() CombatState {
	if x != nil {
		return x.State
	}
	return CombatState_COMBAT_STATE_UNSPECIFIED
}

type ServerEvent struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	RequestId string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	// Types that are valid to be assigned to Payload:
	//
	//	*ServerEvent_SelectionChanged
	//	*ServerEvent_IntentDenied
	//	*ServerEvent_CombatStateChanged
	//	*ServerEvent_Disposition
	//	*ServerEvent_Status
	//	*ServerEvent_Error
	//	*ServerEvent_Joined
	Payload       isServerEvent_Payload `protobuf_oneof:"payload"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ServerEvent) Reset() {
	*x = ServerEvent{}
	mi := &file_combat_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ServerEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ServerEvent) ProtoMessage() {}

func (x *ServerEvent) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ServerEvent.ProtoReflect.Descriptor instead.
func (*ServerEvent) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{13}
}

func (x *ServerEvent) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ServerEvent) GetPayload() isServerEvent_Payload {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ServerEvent) GetSelectionChanged() *SelectionChangedEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_SelectionChanged); ok {
			return x.SelectionChanged
		}
	}
	return nil
}

func (x *ServerEvent) GetIntentDenied() *TargetIntentDeniedEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_IntentDenied); ok {
			return x.IntentDenied
		}
	}
	return nil
}

func (x *ServerEvent) GetCombatStateChanged() *CombatStateChangedEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_CombatStateChanged); ok {
			return x.CombatStateChanged
		}
	}
	return nil
}

func (x *ServerEvent) GetDisposition() *DispositionEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_Disposition); ok {
			return x.Disposition
		}
	}
	return nil
}

func (x *ServerEvent) GetStatus() *StatusEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_Status); ok {
			return x.Status
		}
	}
	return nil
}

func (x *ServerEvent) GetError() *ErrorEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_Error); ok {
			return x.Error
		}
	}
	return nil
}

func (x *ServerEvent) GetJoined() *JoinedEvent {
	if x != nil {
		if x, ok := x.Payload.(*ServerEvent_Joined); ok {
			return x.Joined
		}
	}
	return nil
}

type isServerEvent_Payload interface {
	isServerEvent_Payload()
}

type ServerEvent_SelectionChanged struct {
	SelectionChanged *SelectionChangedEvent `protobuf:"bytes,2,opt,name=selection_changed,json=selectionChanged,proto3,oneof"`
}

type ServerEvent_IntentDenied struct {
	IntentDenied *TargetIntentDeniedEvent `protobuf:"bytes,3,opt,name=intent_denied,json=intentDenied,proto3,oneof"`
}

type ServerEvent_CombatStateChanged struct {
	CombatStateChanged *CombatStateChangedEvent `protobuf:"bytes,4,opt,name=combat_state_changed,json=combatStateChanged,proto3,oneof"`
}

type ServerEvent_Disposition struct {
	Disposition *DispositionEvent `protobuf:"bytes,5,opt,name=disposition,proto3,oneof"`
}

type ServerEvent_Status struct {
	Status *StatusEvent `protobuf:"bytes,6,opt,name=status,proto3,oneof"`
}

type ServerEvent_Error struct {
	Error *ErrorEvent `protobuf:"bytes,7,opt,name=error,proto3,oneof"`
}

type ServerEvent_Joined struct {
	Joined *JoinedEvent `protobuf:"bytes,8,opt,name=joined,proto3,oneof"`
}

func (*ServerEvent_SelectionChanged) isServerEvent_Payload() {}

func (*ServerEvent_IntentDenied) isServerEvent_Payload() {}

func (*ServerEvent_CombatStateChanged) isServerEvent_Payload() {}

func (*ServerEvent_Disposition) isServerEvent_Payload() {}

func (*ServerEvent_Status) isServerEvent_Payload() {}

func (*ServerEvent_Error) isServerEvent_Payload() {}

func (*ServerEvent_Joined) isServerEvent_Payload() {}

type DispositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ViewerId      string                 `protobuf:"bytes,1,opt,name=viewer_id,json=viewerId,proto3" json:"viewer_id,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispositionRequest) Reset() {
	*x = DispositionRequest{}
	mi := &file_combat_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispositionRequest) ProtoMessage() {}

func (x *DispositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispositionRequest.ProtoReflect.Descriptor instead.
func (*DispositionRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{14}
}

func (x *DispositionRequest) GetViewerId() string {
	if x != nil {
		return x.ViewerId
	}
	return ""
}

func (x *DispositionRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type DispositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Disposition   Disposition            `protobuf:"varint,1,opt,name=disposition,proto3,enum=feud.combat.v1.Disposition" json:"disposition,omitempty"`
	Eligible      bool                   `protobuf:"varint,2,opt,name=eligible,proto3" json:"eligible,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispositionResponse) Reset() {
	*x = DispositionResponse{}
	mi := &file_combat_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispositionResponse) ProtoMessage() {}

func (x *DispositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DispositionResponse.ProtoReflect.Descriptor instead.
func (*DispositionResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{15}
}

func (x *DispositionResponse) GetDisposition() Disposition {
	if x != nil {
		return x.Disposition
	}
	return Disposition_DISPOSITION_UNSPECIFIED
}

func (x *DispositionResponse) GetEligible() bool {
	if x != nil {
		return x.Eligible
	}
	return false
}

func (x *DispositionResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type AttackCheckRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AttackerId    string                 `protobuf:"bytes,1,opt,name=attacker_id,json=attackerId,proto3" json:"attacker_id,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	InRange       bool                   `protobuf:"varint,3,opt,name=in_range,json=inRange,proto3" json:"in_range,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttackCheckRequest) Reset() {
	*x = AttackCheckRequest{}
	mi := &file_combat_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttackCheckRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttackCheckRequest) ProtoMessage() {}

func (x *AttackCheckRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttackCheckRequest.ProtoReflect.Descriptor instead.
func (*AttackCheckRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{16}
}

func (x *AttackCheckRequest) GetAttackerId() string {
	if x != nil {
		return x.AttackerId
	}
	return ""
}

func (x *AttackCheckRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *AttackCheckRequest) GetInRange() bool {
	if x != nil {
		return x.InRange
	}
	return false
}

type AttackCheckResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Allowed       bool                   `protobuf:"varint,1,opt,name=allowed,proto3" json:"allowed,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttackCheckResponse) Reset() {
	*x = AttackCheckResponse{}
	mi := &file_combat_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttackCheckResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttackCheckResponse) ProtoMessage() {}

func (x *AttackCheckResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttackCheckResponse.ProtoReflect.Descriptor instead.
func (*AttackCheckResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{17}
}

func (x *AttackCheckResponse) GetAllowed() bool {
	if x != nil {
		return x.Allowed
	}
	return false
}

func (x *AttackCheckResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CombatStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActorId       string                 `protobuf:"bytes,1,opt,name=actor_id,json=actorId,proto3" json:"actor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CombatStateRequest) Reset() {
	*x = CombatStateRequest{}
	mi := &file_combat_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CombatStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CombatStateRequest) ProtoMessage() {}

func (x *CombatStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CombatStateRequest.ProtoReflect.Descriptor instead.
func (*CombatStateRequest) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{18}
}

func (x *CombatStateRequest) GetActorId() string {
	if x != nil {
		return x.ActorId
	}
	return ""
}

type CombatStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	State         CombatState            `protobuf:"varint,1,opt,name=state,proto3,enum=feud.combat.v1.CombatState" json:"state,omitempty"`
	RemainingMs   int64                  `protobuf:"varint,2,opt,name=remaining_ms,json=remainingMs,proto3" json:"remaining_ms,omitempty"`
	ActivePursuit bool                   `protobuf:"varint,3,opt,name=active_pursuit,json=activePursuit,proto3" json:"active_pursuit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CombatStateResponse) Reset() {
	*x = CombatStateResponse{}
	mi := &file_combat_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CombatStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CombatStateResponse) ProtoMessage() {}

func (x *CombatStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_combat_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CombatStateResponse.ProtoReflect.Descriptor instead.
func (*CombatStateResponse) Descriptor() ([]byte, []int) {
	return file_combat_proto_rawDescGZIP(), []int{19}
}

func (x *CombatStateResponse) GetState() CombatState {
	if x != nil {
		return x.State
	}
	return CombatState_COMBAT_STATE_UNSPECIFIED
}

func (x *CombatStateResponse) GetRemainingMs() int64 {
	if x != nil {
		return x.RemainingMs
	}
	return 0
}

func (x *CombatStateResponse) GetActivePursuit() bool {
	if x != nil {
		return x.ActivePursuit
	}
	return false
}

var File_combat_proto protoreflect.FileDescriptor

const file_combat_proto_rawDesc = "" +
	"\n" +
	"\fcombat.proto\x12\x0efeud.combat.v1\"V\n" +
	"\vJoinRequest\x12\x10\n" +
	"\x03uid\x18\x01 \x01(\tR\x03uid\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x19\n" +
	"\bactor_id\x18\x03 \x01(\tR\aactorId\",\n" +
	"\rSelectRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\"2\n" +
	"\x13AttackIntentRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\"\x17\n" +
	"\x15ClearSelectionRequest\"\x0f\n" +
	"\rStatusRequest\"\xfc\x02\n" +
	"\rClientMessage\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x127\n" +
	"\x06select\x18\x02 \x01(\v2\x1d.feud.combat.v1.SelectRequestH\x00R\x06select\x12J\n" +
	"\rattack_intent\x18\x03 \x01(\v2#.feud.combat.v1.AttackIntentRequestH\x00R\fattackIntent\x12P\n" +
	"\x0fclear_selection\x18\x04 \x01(\v2%.feud.combat.v1.ClearSelectionRequestH\x00R\x0eclearSelection\x127\n" +
	"\x06status\x18\x05 \x01(\v2\x1d.feud.combat.v1.StatusRequestH\x00R\x06status\x121\n" +
	"\x04join\x18\x06 \x01(\v2\x1b.feud.combat.v1.JoinRequestH\x00R\x04joinB\t\n" +
	"\apayload\"\xa6\x01\n" +
	"\x15SelectionChangedEvent\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\x12\x16\n" +
	"\x06attack\x18\x03 \x01(\bR\x06attack\x12=\n" +
	"\vdisposition\x18\x04 \x01(\x0e2\x1b.feud.combat.v1.DispositionR\vdisposition\"i\n" +
	"\x17TargetIntentDeniedEvent\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"\x92\x01\n" +
	"\x17CombatStateChangedEvent\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12/\n" +
	"\x04from\x18\x02 \x01(\x0e2\x1b.feud.combat.v1.CombatStateR\x04from\x12+\n" +
	"\x02to\x18\x03 \x01(\x0e2\x1b.feud.combat.v1.CombatStateR\x02to\"\xa3\x01\n" +
	"\x10DispositionEvent\x12\x1b\n" +
	"\tviewer_id\x18\x01 \x01(\tR\bviewerId\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\x12=\n" +
	"\vdisposition\x18\x03 \x01(\x0e2\x1b.feud.combat.v1.DispositionR\vdisposition\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"\xc2\x01\n" +
	"\vStatusEvent\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x121\n" +
	"\x05state\x18\x02 \x01(\x0e2\x1b.feud.combat.v1.CombatStateR\x05state\x12!\n" +
	"\fremaining_ms\x18\x03 \x01(\x03R\vremainingMs\x12%\n" +
	"\x0eactive_pursuit\x18\x04 \x01(\bR\ractivePursuit\x12\x1b\n" +
	"\tregion_id\x18\x05 \x01(\tR\bregionId\"&\n" +
	"\n" +
	"ErrorEvent\x12\x18\n" +
	"\amessage\x18\x01 \x01(\tR\amessage\"x\n" +
	"\vJoinedEvent\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\x12\x1b\n" +
	"\tregion_id\x18\x02 \x01(\tR\bregionId\x121\n" +
	"\x05state\x18\x03 \x01(\x0e2\x1b.feud.combat.v1.CombatStateR\x05state\"\xa2\x04\n" +
	"\vServerEvent\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12T\n" +
	"\x11selection_changed\x18\x02 \x01(\v2%.feud.combat.v1.SelectionChangedEventH\x00R\x10selectionChanged\x12N\n" +
	"\rintent_denied\x18\x03 \x01(\v2'.feud.combat.v1.TargetIntentDeniedEventH\x00R\fintentDenied\x12[\n" +
	"\x14combat_state_changed\x18\x04 \x01(\v2'.feud.combat.v1.CombatStateChangedEventH\x00R\x12combatStateChanged\x12D\n" +
	"\vdisposition\x18\x05 \x01(\v2 .feud.combat.v1.DispositionEventH\x00R\vdisposition\x125\n" +
	"\x06status\x18\x06 \x01(\v2\x1b.feud.combat.v1.StatusEventH\x00R\x06status\x122\n" +
	"\x05error\x18\a \x01(\v2\x1a.feud.combat.v1.ErrorEventH\x00R\x05error\x125\n" +
	"\x06joined\x18\b \x01(\v2\x1b.feud.combat.v1.JoinedEventH\x00R\x06joinedB\t\n" +
	"\apayload\"N\n" +
	"\x12DispositionRequest\x12\x1b\n" +
	"\tviewer_id\x18\x01 \x01(\tR\bviewerId\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\"\x88\x01\n" +
	"\x13DispositionResponse\x12=\n" +
	"\vdisposition\x18\x01 \x01(\x0e2\x1b.feud.combat.v1.DispositionR\vdisposition\x12\x1a\n" +
	"\beligible\x18\x02 \x01(\bR\beligible\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"m\n" +
	"\x12AttackCheckRequest\x12\x1f\n" +
	"\vattacker_id\x18\x01 \x01(\tR\n" +
	"attackerId\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\x12\x19\n" +
	"\bin_range\x18\x03 \x01(\bR\ainRange\"G\n" +
	"\x13AttackCheckResponse\x12\x18\n" +
	"\aallowed\x18\x01 \x01(\bR\aallowed\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"/\n" +
	"\x12CombatStateRequest\x12\x19\n" +
	"\bactor_id\x18\x01 \x01(\tR\aactorId\"\x92\x01\n" +
	"\x13CombatStateResponse\x121\n" +
	"\x05state\x18\x01 \x01(\x0e2\x1b.feud.combat.v1.CombatStateR\x05state\x12!\n" +
	"\fremaining_ms\x18\x02 \x01(\x03R\vremainingMs\x12%\n" +
	"\x0eactive_pursuit\x18\x03 \x01(\bR\ractivePursuit*\xa5\x01\n" +
	"\vDisposition\x12\x1b\n" +
	"\x17DISPOSITION_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10DISPOSITION_SELF\x10\x01\x12\x18\n" +
	"\x14DISPOSITION_FRIENDLY\x10\x02\x12\x17\n" +
	"\x13DISPOSITION_NEUTRAL\x10\x03\x12\x17\n" +
	"\x13DISPOSITION_HOSTILE\x10\x04\x12\x17\n" +
	"\x13DISPOSITION_INVALID\x10\x05*y\n" +
	"\vCombatState\x12\x1c\n" +
	"\x18COMBAT_STATE_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15COMBAT_STATE_PEACEFUL\x10\x01\x12\x1a\n" +
	"\x16COMBAT_STATE_IN_COMBAT\x10\x02\x12\x15\n" +
	"\x11COMBAT_STATE_DEAD\x10\x032\xe7\x02\n" +
	"\rCombatService\x12I\n" +
	"\aSession\x12\x1d.feud.combat.v1.ClientMessage\x1a\x1b.feud.combat.v1.ServerEvent(\x010\x01\x12]\n" +
	"\x12ResolveDisposition\x12\".feud.combat.v1.DispositionRequest\x1a#.feud.combat.v1.DispositionResponse\x12T\n" +
	"\tCanAttack\x12\".feud.combat.v1.AttackCheckRequest\x1a#.feud.combat.v1.AttackCheckResponse\x12V\n" +
	"\vCombatState\x12\".feud.combat.v1.CombatStateRequest\x1a#.feud.combat.v1.CombatStateResponseBFZDgithub.com/cory-johannsen/feud/internal/gameserver/combatv1;combatv1b\x06proto3"

var (
	file_combat_proto_rawDescOnce sync.Once
	file_combat_proto_rawDescData []byte
)

func file_combat_proto_rawDescGZIP() []byte {
	file_combat_proto_rawDescOnce.Do(func() {
		file_combat_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_combat_proto_rawDesc), len(file_combat_proto_rawDesc)))
	})
	return file_combat_proto_rawDescData
}

var file_combat_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_combat_proto_msgTypes = make([]protoimpl.MessageInfo, 20)
var file_combat_proto_goTypes = []any{
	(Disposition)(0),                // 0: feud.combat.v1.Disposition
	(CombatState)(0),                // 1: feud.combat.v1.CombatState
	(*JoinRequest)(nil),             // 2: feud.combat.v1.JoinRequest
	(*SelectRequest)(nil),           // 3: feud.combat.v1.SelectRequest
	(*AttackIntentRequest)(nil),     // 4: feud.combat.v1.AttackIntentRequest
	(*ClearSelectionRequest)(nil),   // 5: feud.combat.v1.ClearSelectionRequest
	(*StatusRequest)(nil),           // 6: feud.combat.v1.StatusRequest
	(*ClientMessage)(nil),           // 7: feud.combat.v1.ClientMessage
	(*SelectionChangedEvent)(nil),   // 8: feud.combat.v1.SelectionChangedEvent
	(*TargetIntentDeniedEvent)(nil), // 9: feud.combat.v1.TargetIntentDeniedEvent
	(*CombatStateChangedEvent)(nil), // 10: feud.combat.v1.CombatStateChangedEvent
	(*DispositionEvent)(nil),        // 11: feud.combat.v1.DispositionEvent
	(*StatusEvent)(nil),             // 12: feud.combat.v1.StatusEvent
	(*ErrorEvent)(nil),              // 13: feud.combat.v1.ErrorEvent
	(*JoinedEvent)(nil),             // 14: feud.combat.v1.JoinedEvent
	(*ServerEvent)(nil),             // 15: feud.combat.v1.ServerEvent
	(*DispositionRequest)(nil),      // 16: feud.combat.v1.DispositionRequest
	(*DispositionResponse)(nil),     // 17: feud.combat.v1.DispositionResponse
	(*AttackCheckRequest)(nil),      // 18: feud.combat.v1.AttackCheckRequest
	(*AttackCheckResponse)(nil),     // 19: feud.combat.v1.AttackCheckResponse
	(*CombatStateRequest)(nil),      // 20: feud.combat.v1.CombatStateRequest
	(*CombatStateResponse)(nil),     // 21: feud.combat.v1.CombatStateResponse
}
var file_combat_proto_depIdxs = []int32{
	3,  // 0: feud.combat.v1.ClientMessage.select:type_name -> feud.combat.v1.SelectRequest
	4,  // 1: feud.combat.v1.ClientMessage.attack_intent:type_name -> feud.combat.v1.AttackIntentRequest
	5,  // 2: feud.combat.v1.ClientMessage.clear_selection:type_name -> feud.combat.v1.ClearSelectionRequest
	6,  // 3: feud.combat.v1.ClientMessage.status:type_name -> feud.combat.v1.StatusRequest
	2,  // 4: feud.combat.v1.ClientMessage.join:type_name -> feud.combat.v1.JoinRequest
	0,  // 5: feud.combat.v1.SelectionChangedEvent.disposition:type_name -> feud.combat.v1.Disposition
	1,  // 6: feud.combat.v1.CombatStateChangedEvent.from:type_name -> feud.combat.v1.CombatState
	1,  // 7: feud.combat.v1.CombatStateChangedEvent.to:type_name -> feud.combat.v1.CombatState
	0,  // 8: feud.combat.v1.DispositionEvent.disposition:type_name -> feud.combat.v1.Disposition
	1,  // 9: feud.combat.v1.StatusEvent.state:type_name -> feud.combat.v1.CombatState
	1,  // 10: feud.combat.v1.JoinedEvent.state:type_name -> feud.combat.v1.CombatState
	8,  // 11: feud.combat.v1.ServerEvent.selection_changed:type_name -> feud.combat.v1.SelectionChangedEvent
	9,  // 12: feud.combat.v1.ServerEvent.intent_denied:type_name -> feud.combat.v1.TargetIntentDeniedEvent
	10, // 13: feud.combat.v1.ServerEvent.combat_state_changed:type_name -> feud.combat.v1.CombatStateChangedEvent
	11, // 14: feud.combat.v1.ServerEvent.disposition:type_name -> feud.combat.v1.DispositionEvent
	12, // 15: feud.combat.v1.ServerEvent.status:type_name -> feud.combat.v1.StatusEvent
	13, // 16: feud.combat.v1.ServerEvent.error:type_name -> feud.combat.v1.ErrorEvent
	14, // 17: feud.combat.v1.ServerEvent.joined:type_name -> feud.combat.v1.JoinedEvent
	0,  // 18: feud.combat.v1.DispositionResponse.disposition:type_name -> feud.combat.v1.Disposition
	1,  // 19: feud.combat.v1.CombatStateResponse.state:type_name -> feud.combat.v1.CombatState
	7,  // 20: feud.combat.v1.CombatService.Session:input_type -> feud.combat.v1.ClientMessage
	16, // 21: feud.combat.v1.CombatService.ResolveDisposition:input_type -> feud.combat.v1.DispositionRequest
	18, // 22: feud.combat.v1.CombatService.CanAttack:input_type -> feud.combat.v1.AttackCheckRequest
	20, // 23: feud.combat.v1.CombatService.CombatState:input_type -> feud.combat.v1.CombatStateRequest
	15, // 24: feud.combat.v1.CombatService.Session:output_type -> feud.combat.v1.ServerEvent
	17, // 25: feud.combat.v1.CombatService.ResolveDisposition:output_type -> feud.combat.v1.DispositionResponse
	19, // 26: feud.combat.v1.CombatService.CanAttack:output_type -> feud.combat.v1.AttackCheckResponse
	21, // 27: feud.combat.v1.CombatService.CombatState:output_type -> feud.combat.v1.CombatStateResponse
	24, // [24:28] is the sub-list for method output_type
	20, // [20:24] is the sub-list for method input_type
	20, // [20:20] is the sub-list for extension type_name
	20, // [20:20] is the sub-list for extension extendee
	0,  // [0:20] is the sub-list for field type_name
}

func init() { file_combat_proto_init() }
func file_combat_proto_init() {
	if File_combat_proto != nil {
		return
	}
	file_combat_proto_msgTypes[5].OneofWrappers = []any{
		(*ClientMessage_Select)(nil),
		(*ClientMessage_AttackIntent)(nil),
		(*ClientMessage_ClearSelection)(nil),
		(*ClientMessage_Status)(nil),
		(*ClientMessage_Join)(nil),
	}
	file_combat_proto_msgTypes[13].OneofWrappers = []any{
		(*ServerEvent_SelectionChanged)(nil),
		(*ServerEvent_IntentDenied)(nil),
		(*ServerEvent_CombatStateChanged)(nil),
		(*ServerEvent_Disposition)(nil),
		(*ServerEvent_Status)(nil),
		(*ServerEvent_Error)(nil),
		(*ServerEvent_Joined)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_combat_proto_rawDesc), len(file_combat_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   20,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_combat_proto_goTypes,
		DependencyIndexes: file_combat_proto_depIdxs,
		EnumInfos:         file_combat_proto_enumTypes,
		MessageInfos:      file_combat_proto_msgTypes,
	}.Build()
	File_combat_proto = out.File
	file_combat_proto_goTypes = nil
	file_combat_proto_depIdxs = nil
}
