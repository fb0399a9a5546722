// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cards/v1/cards.proto

package cardsv1

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

type Upload struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	SequenceIndex int32                  `protobuf:"varint,4,opt,name=sequence_index,json=sequenceIndex,proto3" json:"sequence_index,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	OrphanReason  string                 `protobuf:"bytes,6,opt,name=orphan_reason,json=orphanReason,proto3" json:"orphan_reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Upload) Reset() {
	*x = Upload{}
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Upload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Upload) ProtoMessage() {}

func (x *Upload) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Upload.ProtoReflect.Descriptor instead.
func (*Upload) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{0}
}

func (x *Upload) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Upload) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *Upload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Upload) GetSequenceIndex() int32 {
	if x != nil {
		return x.SequenceIndex
	}
	return 0
}

func (x *Upload) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Upload) GetOrphanReason() string {
	if x != nil {
		return x.OrphanReason
	}
	return ""
}

type CardPair struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BatchId       string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	FrontUploadId string                 `protobuf:"bytes,3,opt,name=front_upload_id,json=frontUploadId,proto3" json:"front_upload_id,omitempty"`
	BackUploadId  string                 `protobuf:"bytes,4,opt,name=back_upload_id,json=backUploadId,proto3" json:"back_upload_id,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Method        string                 `protobuf:"bytes,6,opt,name=method,proto3" json:"method,omitempty"`
	Confidence    float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Extraction    *Extraction            `protobuf:"bytes,8,opt,name=extraction,proto3" json:"extraction,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CardPair) Reset() {
	*x = CardPair{}
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CardPair) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CardPair) ProtoMessage() {}

func (x *CardPair) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CardPair.ProtoReflect.Descriptor instead.
func (*CardPair) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{1}
}

func (x *CardPair) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CardPair) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *CardPair) GetFrontUploadId() string {
	if x != nil {
		return x.FrontUploadId
	}
	return ""
}

func (x *CardPair) GetBackUploadId() string {
	if x != nil {
		return x.BackUploadId
	}
	return ""
}

func (x *CardPair) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *CardPair) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *CardPair) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *CardPair) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

func (x *CardPair) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Extraction struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Fields          map[string]string      `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	FieldConfidence map[string]float32     `protobuf:"bytes,2,rep,name=field_confidence,json=fieldConfidence,proto3" json:"field_confidence,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed32,2,opt,name=value"`
	Provider        string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	TotalTokens     int32                  `protobuf:"varint,4,opt,name=total_tokens,json=totalTokens,proto3" json:"total_tokens,omitempty"`
	ExtractedAt     string                 `protobuf:"bytes,5,opt,name=extracted_at,json=extractedAt,proto3" json:"extracted_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Extraction) Reset() {
	*x = Extraction{}
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Extraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Extraction) ProtoMessage() {}

func (x *Extraction) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Extraction.ProtoReflect.Descriptor instead.
func (*Extraction) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{2}
}

func (x *Extraction) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Extraction) GetFieldConfidence() map[string]float32 {
	if x != nil {
		return x.FieldConfidence
	}
	return nil
}

func (x *Extraction) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Extraction) GetTotalTokens() int32 {
	if x != nil {
		return x.TotalTokens
	}
	return 0
}

func (x *Extraction) GetExtractedAt() string {
	if x != nil {
		return x.ExtractedAt
	}
	return ""
}

type Job struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	BatchId        string                 `protobuf:"bytes,2,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	Type           string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	PairsTotal     int32                  `protobuf:"varint,6,opt,name=pairs_total,json=pairsTotal,proto3" json:"pairs_total,omitempty"`
	PairsSucceeded int32                  `protobuf:"varint,7,opt,name=pairs_succeeded,json=pairsSucceeded,proto3" json:"pairs_succeeded,omitempty"`
	FailedPairIds  []string               `protobuf:"bytes,8,rep,name=failed_pair_ids,json=failedPairIds,proto3" json:"failed_pair_ids,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt      string                 `protobuf:"bytes,10,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt     string                 `protobuf:"bytes,11,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{3}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *Job) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetPairsTotal() int32 {
	if x != nil {
		return x.PairsTotal
	}
	return 0
}

func (x *Job) GetPairsSucceeded() int32 {
	if x != nil {
		return x.PairsSucceeded
	}
	return 0
}

func (x *Job) GetFailedPairIds() []string {
	if x != nil {
		return x.FailedPairIds
	}
	return nil
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type JobEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Seq           int32                  `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Kind          string                 `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Detail        string                 `protobuf:"bytes,4,opt,name=detail,proto3" json:"detail,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobEvent) Reset() {
	*x = JobEvent{}
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobEvent) ProtoMessage() {}

func (x *JobEvent) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobEvent.ProtoReflect.Descriptor instead.
func (*JobEvent) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{4}
}

func (x *JobEvent) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobEvent) GetSeq() int32 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *JobEvent) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *JobEvent) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

func (x *JobEvent) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type RunAutoPairingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAutoPairingRequest) Reset() {
	*x = RunAutoPairingRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAutoPairingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAutoPairingRequest) ProtoMessage() {}

func (x *RunAutoPairingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAutoPairingRequest.ProtoReflect.Descriptor instead.
func (*RunAutoPairingRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{5}
}

func (x *RunAutoPairingRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *RunAutoPairingRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type RunAutoPairingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pairs         []*CardPair            `protobuf:"bytes,1,rep,name=pairs,proto3" json:"pairs,omitempty"`
	Orphans       []*Upload              `protobuf:"bytes,2,rep,name=orphans,proto3" json:"orphans,omitempty"`
	BatchStatus   string                 `protobuf:"bytes,3,opt,name=batch_status,json=batchStatus,proto3" json:"batch_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunAutoPairingResponse) Reset() {
	*x = RunAutoPairingResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunAutoPairingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunAutoPairingResponse) ProtoMessage() {}

func (x *RunAutoPairingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunAutoPairingResponse.ProtoReflect.Descriptor instead.
func (*RunAutoPairingResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{6}
}

func (x *RunAutoPairingResponse) GetPairs() []*CardPair {
	if x != nil {
		return x.Pairs
	}
	return nil
}

func (x *RunAutoPairingResponse) GetOrphans() []*Upload {
	if x != nil {
		return x.Orphans
	}
	return nil
}

func (x *RunAutoPairingResponse) GetBatchStatus() string {
	if x != nil {
		return x.BatchStatus
	}
	return ""
}

type CreateManualPairRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	FrontUploadId string                 `protobuf:"bytes,3,opt,name=front_upload_id,json=frontUploadId,proto3" json:"front_upload_id,omitempty"`
	// Empty for a single-sided card.
	BackUploadId  string `protobuf:"bytes,4,opt,name=back_upload_id,json=backUploadId,proto3" json:"back_upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateManualPairRequest) Reset() {
	*x = CreateManualPairRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualPairRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualPairRequest) ProtoMessage() {}

func (x *CreateManualPairRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualPairRequest.ProtoReflect.Descriptor instead.
func (*CreateManualPairRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{7}
}

func (x *CreateManualPairRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *CreateManualPairRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateManualPairRequest) GetFrontUploadId() string {
	if x != nil {
		return x.FrontUploadId
	}
	return ""
}

func (x *CreateManualPairRequest) GetBackUploadId() string {
	if x != nil {
		return x.BackUploadId
	}
	return ""
}

type CreateManualPairResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pair          *CardPair              `protobuf:"bytes,1,opt,name=pair,proto3" json:"pair,omitempty"`
	BatchStatus   string                 `protobuf:"bytes,2,opt,name=batch_status,json=batchStatus,proto3" json:"batch_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateManualPairResponse) Reset() {
	*x = CreateManualPairResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateManualPairResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateManualPairResponse) ProtoMessage() {}

func (x *CreateManualPairResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateManualPairResponse.ProtoReflect.Descriptor instead.
func (*CreateManualPairResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{8}
}

func (x *CreateManualPairResponse) GetPair() *CardPair {
	if x != nil {
		return x.Pair
	}
	return nil
}

func (x *CreateManualPairResponse) GetBatchStatus() string {
	if x != nil {
		return x.BatchStatus
	}
	return ""
}

type GetPairingStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPairingStatusRequest) Reset() {
	*x = GetPairingStatusRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPairingStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPairingStatusRequest) ProtoMessage() {}

func (x *GetPairingStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPairingStatusRequest.ProtoReflect.Descriptor instead.
func (*GetPairingStatusRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{9}
}

func (x *GetPairingStatusRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *GetPairingStatusRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetPairingStatusResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	BatchStatus     string                 `protobuf:"bytes,1,opt,name=batch_status,json=batchStatus,proto3" json:"batch_status,omitempty"`
	TotalUploads    int32                  `protobuf:"varint,2,opt,name=total_uploads,json=totalUploads,proto3" json:"total_uploads,omitempty"`
	PairedUploads   int32                  `protobuf:"varint,3,opt,name=paired_uploads,json=pairedUploads,proto3" json:"paired_uploads,omitempty"`
	OrphanedUploads int32                  `protobuf:"varint,4,opt,name=orphaned_uploads,json=orphanedUploads,proto3" json:"orphaned_uploads,omitempty"`
	Pairs           []*CardPair            `protobuf:"bytes,5,rep,name=pairs,proto3" json:"pairs,omitempty"`
	Orphans         []*Upload              `protobuf:"bytes,6,rep,name=orphans,proto3" json:"orphans,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetPairingStatusResponse) Reset() {
	*x = GetPairingStatusResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPairingStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPairingStatusResponse) ProtoMessage() {}

func (x *GetPairingStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPairingStatusResponse.ProtoReflect.Descriptor instead.
func (*GetPairingStatusResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{10}
}

func (x *GetPairingStatusResponse) GetBatchStatus() string {
	if x != nil {
		return x.BatchStatus
	}
	return ""
}

func (x *GetPairingStatusResponse) GetTotalUploads() int32 {
	if x != nil {
		return x.TotalUploads
	}
	return 0
}

func (x *GetPairingStatusResponse) GetPairedUploads() int32 {
	if x != nil {
		return x.PairedUploads
	}
	return 0
}

func (x *GetPairingStatusResponse) GetOrphanedUploads() int32 {
	if x != nil {
		return x.OrphanedUploads
	}
	return 0
}

func (x *GetPairingStatusResponse) GetPairs() []*CardPair {
	if x != nil {
		return x.Pairs
	}
	return nil
}

func (x *GetPairingStatusResponse) GetOrphans() []*Upload {
	if x != nil {
		return x.Orphans
	}
	return nil
}

type EnqueueExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueExtractionRequest) Reset() {
	*x = EnqueueExtractionRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExtractionRequest) ProtoMessage() {}

func (x *EnqueueExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExtractionRequest.ProtoReflect.Descriptor instead.
func (*EnqueueExtractionRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{11}
}

func (x *EnqueueExtractionRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *EnqueueExtractionRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type EnqueueExtractionResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Job   *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	// True when an existing non-terminal job was returned instead of a new one.
	Deduplicated  bool `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueExtractionResponse) Reset() {
	*x = EnqueueExtractionResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExtractionResponse) ProtoMessage() {}

func (x *EnqueueExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExtractionResponse.ProtoReflect.Descriptor instead.
func (*EnqueueExtractionResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{12}
}

func (x *EnqueueExtractionResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *EnqueueExtractionResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{13}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobStatusRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Events        []*JobEvent            `protobuf:"bytes,2,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{14}
}

func (x *GetJobStatusResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetJobStatusResponse) GetEvents() []*JobEvent {
	if x != nil {
		return x.Events
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{15}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CancelJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{16}
}

func (x *CancelJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBatchRequest) Reset() {
	*x = ExportBatchRequest{}
	mi := &file_cards_v1_cards_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBatchRequest) ProtoMessage() {}

func (x *ExportBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBatchRequest.ProtoReflect.Descriptor instead.
func (*ExportBatchRequest) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{17}
}

func (x *ExportBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *ExportBatchRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ExportBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBatchResponse) Reset() {
	*x = ExportBatchResponse{}
	mi := &file_cards_v1_cards_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBatchResponse) ProtoMessage() {}

func (x *ExportBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cards_v1_cards_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBatchResponse.ProtoReflect.Descriptor instead.
func (*ExportBatchResponse) Descriptor() ([]byte, []int) {
	return file_cards_v1_cards_proto_rawDescGZIP(), []int{18}
}

func (x *ExportBatchResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_cards_v1_cards_proto protoreflect.FileDescriptor

const file_cards_v1_cards_proto_rawDesc = "" +
	"\n" +
	"\x14cards/v1/cards.proto\x12\bcards.v1\"\xb3\x01\n" +
	"\x06Upload\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12%\n" +
	"\x0esequence_index\x18\x04 \x01(\x05R\rsequenceIndex\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rorphan_reason\x18\x06 \x01(\tR\forphanReason\"\xa8\x02\n" +
	"\bCardPair\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12&\n" +
	"\x0ffront_upload_id\x18\x03 \x01(\tR\rfrontUploadId\x12$\n" +
	"\x0eback_upload_id\x18\x04 \x01(\tR\fbackUploadId\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x16\n" +
	"\x06method\x18\x06 \x01(\tR\x06method\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\x124\n" +
	"\n" +
	"extraction\x18\b \x01(\v2\x14.cards.v1.ExtractionR\n" +
	"extraction\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\xfd\x02\n" +
	"\n" +
	"Extraction\x128\n" +
	"\x06fields\x18\x01 \x03(\v2 .cards.v1.Extraction.FieldsEntryR\x06fields\x12T\n" +
	"\x10field_confidence\x18\x02 \x03(\v2).cards.v1.Extraction.FieldConfidenceEntryR\x0ffieldConfidence\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\x12!\n" +
	"\ftotal_tokens\x18\x04 \x01(\x05R\vtotalTokens\x12!\n" +
	"\fextracted_at\x18\x05 \x01(\tR\vextractedAt\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\x1aB\n" +
	"\x14FieldConfidenceEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x02R\x05value:\x028\x01\"\xd2\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bbatch_id\x18\x02 \x01(\tR\abatchId\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vpairs_total\x18\x06 \x01(\x05R\n" +
	"pairsTotal\x12'\n" +
	"\x0fpairs_succeeded\x18\a \x01(\x05R\x0epairsSucceeded\x12&\n" +
	"\x0ffailed_pair_ids\x18\b \x03(\tR\rfailedPairIds\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\n" +
	" \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\v \x01(\tR\n" +
	"finishedAt\"~\n" +
	"\bJobEvent\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x10\n" +
	"\x03seq\x18\x02 \x01(\x05R\x03seq\x12\x12\n" +
	"\x04kind\x18\x03 \x01(\tR\x04kind\x12\x16\n" +
	"\x06detail\x18\x04 \x01(\tR\x06detail\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"M\n" +
	"\x15RunAutoPairingRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\"\x91\x01\n" +
	"\x16RunAutoPairingResponse\x12(\n" +
	"\x05pairs\x18\x01 \x03(\v2\x12.cards.v1.CardPairR\x05pairs\x12*\n" +
	"\aorphans\x18\x02 \x03(\v2\x10.cards.v1.UploadR\aorphans\x12!\n" +
	"\fbatch_status\x18\x03 \x01(\tR\vbatchStatus\"\x9d\x01\n" +
	"\x17CreateManualPairRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12&\n" +
	"\x0ffront_upload_id\x18\x03 \x01(\tR\rfrontUploadId\x12$\n" +
	"\x0eback_upload_id\x18\x04 \x01(\tR\fbackUploadId\"e\n" +
	"\x18CreateManualPairResponse\x12&\n" +
	"\x04pair\x18\x01 \x01(\v2\x12.cards.v1.CardPairR\x04pair\x12!\n" +
	"\fbatch_status\x18\x02 \x01(\tR\vbatchStatus\"O\n" +
	"\x17GetPairingStatusRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\"\x8a\x02\n" +
	"\x18GetPairingStatusResponse\x12!\n" +
	"\fbatch_status\x18\x01 \x01(\tR\vbatchStatus\x12#\n" +
	"\rtotal_uploads\x18\x02 \x01(\x05R\ftotalUploads\x12%\n" +
	"\x0epaired_uploads\x18\x03 \x01(\x05R\rpairedUploads\x12)\n" +
	"\x10orphaned_uploads\x18\x04 \x01(\x05R\x0forphanedUploads\x12(\n" +
	"\x05pairs\x18\x05 \x03(\v2\x12.cards.v1.CardPairR\x05pairs\x12*\n" +
	"\aorphans\x18\x06 \x03(\v2\x10.cards.v1.UploadR\aorphans\"P\n" +
	"\x18EnqueueExtractionRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\"`\n" +
	"\x19EnqueueExtractionResponse\x12\x1f\n" +
	"\x03job\x18\x01 \x01(\v2\r.cards.v1.JobR\x03job\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\"G\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\"c\n" +
	"\x14GetJobStatusResponse\x12\x1f\n" +
	"\x03job\x18\x01 \x01(\v2\r.cards.v1.JobR\x03job\x12*\n" +
	"\x06events\x18\x02 \x03(\v2\x12.cards.v1.JobEventR\x06events\"D\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\"4\n" +
	"\x11CancelJobResponse\x12\x1f\n" +
	"\x03job\x18\x01 \x01(\v2\r.cards.v1.JobR\x03job\"J\n" +
	"\x12ExportBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\")\n" +
	"\x13ExportBatchResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x9b\x02\n" +
	"\x0ePairingService\x12S\n" +
	"\x0eRunAutoPairing\x12\x1f.cards.v1.RunAutoPairingRequest\x1a .cards.v1.RunAutoPairingResponse\x12Y\n" +
	"\x10CreateManualPair\x12!.cards.v1.CreateManualPairRequest\x1a\".cards.v1.CreateManualPairResponse\x12Y\n" +
	"\x10GetPairingStatus\x12!.cards.v1.GetPairingStatusRequest\x1a\".cards.v1.GetPairingStatusResponse2\x80\x02\n" +
	"\vJobsService\x12\\\n" +
	"\x11EnqueueExtraction\x12\".cards.v1.EnqueueExtractionRequest\x1a#.cards.v1.EnqueueExtractionResponse\x12M\n" +
	"\fGetJobStatus\x12\x1d.cards.v1.GetJobStatusRequest\x1a\x1e.cards.v1.GetJobStatusResponse\x12D\n" +
	"\tCancelJob\x12\x1a.cards.v1.CancelJobRequest\x1a\x1b.cards.v1.CancelJobResponse2[\n" +
	"\rExportService\x12J\n" +
	"\vExportBatch\x12\x1c.cards.v1.ExportBatchRequest\x1a\x1d.cards.v1.ExportBatchResponseB:Z8github.com/slabworks/cardscan/gen/proto/cards/v1;cardsv1b\x06proto3"

var (
	file_cards_v1_cards_proto_rawDescOnce sync.Once
	file_cards_v1_cards_proto_rawDescData []byte
)

func file_cards_v1_cards_proto_rawDescGZIP() []byte {
	file_cards_v1_cards_proto_rawDescOnce.Do(func() {
		file_cards_v1_cards_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)))
	})
	return file_cards_v1_cards_proto_rawDescData
}

var file_cards_v1_cards_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_cards_v1_cards_proto_goTypes = []any{
	(*Upload)(nil),                    // 0: cards.v1.Upload
	(*CardPair)(nil),                  // 1: cards.v1.CardPair
	(*Extraction)(nil),                // 2: cards.v1.Extraction
	(*Job)(nil),                       // 3: cards.v1.Job
	(*JobEvent)(nil),                  // 4: cards.v1.JobEvent
	(*RunAutoPairingRequest)(nil),     // 5: cards.v1.RunAutoPairingRequest
	(*RunAutoPairingResponse)(nil),    // 6: cards.v1.RunAutoPairingResponse
	(*CreateManualPairRequest)(nil),   // 7: cards.v1.CreateManualPairRequest
	(*CreateManualPairResponse)(nil),  // 8: cards.v1.CreateManualPairResponse
	(*GetPairingStatusRequest)(nil),   // 9: cards.v1.GetPairingStatusRequest
	(*GetPairingStatusResponse)(nil),  // 10: cards.v1.GetPairingStatusResponse
	(*EnqueueExtractionRequest)(nil),  // 11: cards.v1.EnqueueExtractionRequest
	(*EnqueueExtractionResponse)(nil), // 12: cards.v1.EnqueueExtractionResponse
	(*GetJobStatusRequest)(nil),       // 13: cards.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),      // 14: cards.v1.GetJobStatusResponse
	(*CancelJobRequest)(nil),          // 15: cards.v1.CancelJobRequest
	(*CancelJobResponse)(nil),         // 16: cards.v1.CancelJobResponse
	(*ExportBatchRequest)(nil),        // 17: cards.v1.ExportBatchRequest
	(*ExportBatchResponse)(nil),       // 18: cards.v1.ExportBatchResponse
	nil,                               // 19: cards.v1.Extraction.FieldsEntry
	nil,                               // 20: cards.v1.Extraction.FieldConfidenceEntry
}
var file_cards_v1_cards_proto_depIdxs = []int32{
	2,  // 0: cards.v1.CardPair.extraction:type_name -> cards.v1.Extraction
	19, // 1: cards.v1.Extraction.fields:type_name -> cards.v1.Extraction.FieldsEntry
	20, // 2: cards.v1.Extraction.field_confidence:type_name -> cards.v1.Extraction.FieldConfidenceEntry
	1,  // 3: cards.v1.RunAutoPairingResponse.pairs:type_name -> cards.v1.CardPair
	0,  // 4: cards.v1.RunAutoPairingResponse.orphans:type_name -> cards.v1.Upload
	1,  // 5: cards.v1.CreateManualPairResponse.pair:type_name -> cards.v1.CardPair
	1,  // 6: cards.v1.GetPairingStatusResponse.pairs:type_name -> cards.v1.CardPair
	0,  // 7: cards.v1.GetPairingStatusResponse.orphans:type_name -> cards.v1.Upload
	3,  // 8: cards.v1.EnqueueExtractionResponse.job:type_name -> cards.v1.Job
	3,  // 9: cards.v1.GetJobStatusResponse.job:type_name -> cards.v1.Job
	4,  // 10: cards.v1.GetJobStatusResponse.events:type_name -> cards.v1.JobEvent
	3,  // 11: cards.v1.CancelJobResponse.job:type_name -> cards.v1.Job
	5,  // 12: cards.v1.PairingService.RunAutoPairing:input_type -> cards.v1.RunAutoPairingRequest
	7,  // 13: cards.v1.PairingService.CreateManualPair:input_type -> cards.v1.CreateManualPairRequest
	9,  // 14: cards.v1.PairingService.GetPairingStatus:input_type -> cards.v1.GetPairingStatusRequest
	11, // 15: cards.v1.JobsService.EnqueueExtraction:input_type -> cards.v1.EnqueueExtractionRequest
	13, // 16: cards.v1.JobsService.GetJobStatus:input_type -> cards.v1.GetJobStatusRequest
	15, // 17: cards.v1.JobsService.CancelJob:input_type -> cards.v1.CancelJobRequest
	17, // 18: cards.v1.ExportService.ExportBatch:input_type -> cards.v1.ExportBatchRequest
	6,  // 19: cards.v1.PairingService.RunAutoPairing:output_type -> cards.v1.RunAutoPairingResponse
	8,  // 20: cards.v1.PairingService.CreateManualPair:output_type -> cards.v1.CreateManualPairResponse
	10, // 21: cards.v1.PairingService.GetPairingStatus:output_type -> cards.v1.GetPairingStatusResponse
	12, // 22: cards.v1.JobsService.EnqueueExtraction:output_type -> cards.v1.EnqueueExtractionResponse
	14, // 23: cards.v1.JobsService.GetJobStatus:output_type -> cards.v1.GetJobStatusResponse
	16, // 24: cards.v1.JobsService.CancelJob:output_type -> cards.v1.CancelJobResponse
	18, // 25: cards.v1.ExportService.ExportBatch:output_type -> cards.v1.ExportBatchResponse
	19, // [19:26] is the sub-list for method output_type
	12, // [12:19] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_cards_v1_cards_proto_init() }
func file_cards_v1_cards_proto_init() {
	if File_cards_v1_cards_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cards_v1_cards_proto_rawDesc), len(file_cards_v1_cards_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_cards_v1_cards_proto_goTypes,
		DependencyIndexes: file_cards_v1_cards_proto_depIdxs,
		MessageInfos:      file_cards_v1_cards_proto_msgTypes,
	}.Build()
	File_cards_v1_cards_proto = out.File
	file_cards_v1_cards_proto_goTypes = nil
	file_cards_v1_cards_proto_depIdxs = nil
}
