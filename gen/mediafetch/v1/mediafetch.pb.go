// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: mediafetch/v1/mediafetch.proto

package mediafetchv1

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

type SubmitJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	Platform      string                 `protobuf:"bytes,2,opt,name=platform,proto3" json:"platform,omitempty"`                                  // optional, auto-detected when empty
	CookieBlob    []byte                 `protobuf:"bytes,3,opt,name=cookie_blob,json=cookieBlob,proto3" json:"cookie_blob,omitempty"`            // optional Netscape cookie file contents
	VideoFormatId string                 `protobuf:"bytes,4,opt,name=video_format_id,json=videoFormatId,proto3" json:"video_format_id,omitempty"` // optional explicit format from ListFormats
	AudioFormatId string                 `protobuf:"bytes,5,opt,name=audio_format_id,json=audioFormatId,proto3" json:"audio_format_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitJobRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *SubmitJobRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *SubmitJobRequest) GetCookieBlob() []byte {
	if x != nil {
		return x.CookieBlob
	}
	return nil
}

func (x *SubmitJobRequest) GetVideoFormatId() string {
	if x != nil {
		return x.VideoFormatId
	}
	return ""
}

func (x *SubmitJobRequest) GetAudioFormatId() string {
	if x != nil {
		return x.AudioFormatId
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type JobProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	VideoDone     bool                   `protobuf:"varint,1,opt,name=video_done,json=videoDone,proto3" json:"video_done,omitempty"`
	AudioDone     bool                   `protobuf:"varint,2,opt,name=audio_done,json=audioDone,proto3" json:"audio_done,omitempty"`
	MergeDone     bool                   `protobuf:"varint,3,opt,name=merge_done,json=mergeDone,proto3" json:"merge_done,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobProgress) Reset() {
	*x = JobProgress{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobProgress) ProtoMessage() {}

func (x *JobProgress) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobProgress.ProtoReflect.Descriptor instead.
func (*JobProgress) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{2}
}

func (x *JobProgress) GetVideoDone() bool {
	if x != nil {
		return x.VideoDone
	}
	return false
}

func (x *JobProgress) GetAudioDone() bool {
	if x != nil {
		return x.AudioDone
	}
	return false
}

func (x *JobProgress) GetMergeDone() bool {
	if x != nil {
		return x.MergeDone
	}
	return false
}

type JobError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobError) Reset() {
	*x = JobError{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobError) ProtoMessage() {}

func (x *JobError) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobError.ProtoReflect.Descriptor instead.
func (*JobError) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{3}
}

func (x *JobError) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *JobError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[4]
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
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	State         string                 `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Progress      *JobProgress           `protobuf:"bytes,4,opt,name=progress,proto3" json:"progress,omitempty"`
	Error         *JobError              `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`    // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty while running
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[5]
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
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobStatusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *GetJobStatusResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GetJobStatusResponse) GetProgress() *JobProgress {
	if x != nil {
		return x.Progress
	}
	return nil
}

func (x *GetJobStatusResponse) GetError() *JobError {
	if x != nil {
		return x.Error
	}
	return nil
}

func (x *GetJobStatusResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *GetJobStatusResponse) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetJobResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResultRequest) Reset() {
	*x = GetJobResultRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResultRequest) ProtoMessage() {}

func (x *GetJobResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResultRequest.ProtoReflect.Descriptor instead.
func (*GetJobResultRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{6}
}

func (x *GetJobResultRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	SizeBytes     int64                  `protobuf:"varint,2,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResultResponse) Reset() {
	*x = GetJobResultResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResultResponse) ProtoMessage() {}

func (x *GetJobResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResultResponse.ProtoReflect.Descriptor instead.
func (*GetJobResultResponse) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{7}
}

func (x *GetJobResultResponse) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *GetJobResultResponse) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[8]
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
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{8}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[9]
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
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{9}
}

type WatchJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchJobRequest) Reset() {
	*x = WatchJobRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchJobRequest) ProtoMessage() {}

func (x *WatchJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchJobRequest.ProtoReflect.Descriptor instead.
func (*WatchJobRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{10}
}

func (x *WatchJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListFormatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFormatsRequest) Reset() {
	*x = ListFormatsRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFormatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFormatsRequest) ProtoMessage() {}

func (x *ListFormatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFormatsRequest.ProtoReflect.Descriptor instead.
func (*ListFormatsRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{11}
}

func (x *ListFormatsRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

type VideoFormat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Resolution    string                 `protobuf:"bytes,2,opt,name=resolution,proto3" json:"resolution,omitempty"`
	Label         string                 `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	Ext           string                 `protobuf:"bytes,4,opt,name=ext,proto3" json:"ext,omitempty"`
	BitrateKbps   int32                  `protobuf:"varint,5,opt,name=bitrate_kbps,json=bitrateKbps,proto3" json:"bitrate_kbps,omitempty"`
	Height        int32                  `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
	HasAudio      bool                   `protobuf:"varint,7,opt,name=has_audio,json=hasAudio,proto3" json:"has_audio,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VideoFormat) Reset() {
	*x = VideoFormat{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VideoFormat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VideoFormat) ProtoMessage() {}

func (x *VideoFormat) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VideoFormat.ProtoReflect.Descriptor instead.
func (*VideoFormat) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{12}
}

func (x *VideoFormat) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VideoFormat) GetResolution() string {
	if x != nil {
		return x.Resolution
	}
	return ""
}

func (x *VideoFormat) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *VideoFormat) GetExt() string {
	if x != nil {
		return x.Ext
	}
	return ""
}

func (x *VideoFormat) GetBitrateKbps() int32 {
	if x != nil {
		return x.BitrateKbps
	}
	return 0
}

func (x *VideoFormat) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *VideoFormat) GetHasAudio() bool {
	if x != nil {
		return x.HasAudio
	}
	return false
}

type AudioFormat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Language      string                 `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	BitrateKbps   int32                  `protobuf:"varint,3,opt,name=bitrate_kbps,json=bitrateKbps,proto3" json:"bitrate_kbps,omitempty"`
	Ext           string                 `protobuf:"bytes,4,opt,name=ext,proto3" json:"ext,omitempty"`
	Label         string                 `protobuf:"bytes,5,opt,name=label,proto3" json:"label,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AudioFormat) Reset() {
	*x = AudioFormat{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AudioFormat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AudioFormat) ProtoMessage() {}

func (x *AudioFormat) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AudioFormat.ProtoReflect.Descriptor instead.
func (*AudioFormat) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{13}
}

func (x *AudioFormat) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AudioFormat) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *AudioFormat) GetBitrateKbps() int32 {
	if x != nil {
		return x.BitrateKbps
	}
	return 0
}

func (x *AudioFormat) GetExt() string {
	if x != nil {
		return x.Ext
	}
	return ""
}

func (x *AudioFormat) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

type ListFormatsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Title           string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	DurationSeconds float64                `protobuf:"fixed64,2,opt,name=duration_seconds,json=durationSeconds,proto3" json:"duration_seconds,omitempty"`
	Thumbnail       string                 `protobuf:"bytes,3,opt,name=thumbnail,proto3" json:"thumbnail,omitempty"`
	Videos          []*VideoFormat         `protobuf:"bytes,4,rep,name=videos,proto3" json:"videos,omitempty"`
	Audios          []*AudioFormat         `protobuf:"bytes,5,rep,name=audios,proto3" json:"audios,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListFormatsResponse) Reset() {
	*x = ListFormatsResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFormatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFormatsResponse) ProtoMessage() {}

func (x *ListFormatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFormatsResponse.ProtoReflect.Descriptor instead.
func (*ListFormatsResponse) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{14}
}

func (x *ListFormatsResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ListFormatsResponse) GetDurationSeconds() float64 {
	if x != nil {
		return x.DurationSeconds
	}
	return 0
}

func (x *ListFormatsResponse) GetThumbnail() string {
	if x != nil {
		return x.Thumbnail
	}
	return ""
}

func (x *ListFormatsResponse) GetVideos() []*VideoFormat {
	if x != nil {
		return x.Videos
	}
	return nil
}

func (x *ListFormatsResponse) GetAudios() []*AudioFormat {
	if x != nil {
		return x.Audios
	}
	return nil
}

type ExportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsRequest) Reset() {
	*x = ExportJobsRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsRequest) ProtoMessage() {}

func (x *ExportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobsRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{15}
}

func (x *ExportJobsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportJobsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobsResponse) Reset() {
	*x = ExportJobsResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobsResponse) ProtoMessage() {}

func (x *ExportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobsResponse) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{16}
}

func (x *ExportJobsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type AdminGenerateKeyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminGenerateKeyRequest) Reset() {
	*x = AdminGenerateKeyRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminGenerateKeyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminGenerateKeyRequest) ProtoMessage() {}

func (x *AdminGenerateKeyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminGenerateKeyRequest.ProtoReflect.Descriptor instead.
func (*AdminGenerateKeyRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{17}
}

type AdminGenerateKeyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApiKey        string                 `protobuf:"bytes,1,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminGenerateKeyResponse) Reset() {
	*x = AdminGenerateKeyResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminGenerateKeyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminGenerateKeyResponse) ProtoMessage() {}

func (x *AdminGenerateKeyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminGenerateKeyResponse.ProtoReflect.Descriptor instead.
func (*AdminGenerateKeyResponse) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{18}
}

func (x *AdminGenerateKeyResponse) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

type AdminRevokeKeyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApiKey        string                 `protobuf:"bytes,1,opt,name=api_key,json=apiKey,proto3" json:"api_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminRevokeKeyRequest) Reset() {
	*x = AdminRevokeKeyRequest{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminRevokeKeyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminRevokeKeyRequest) ProtoMessage() {}

func (x *AdminRevokeKeyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminRevokeKeyRequest.ProtoReflect.Descriptor instead.
func (*AdminRevokeKeyRequest) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{19}
}

func (x *AdminRevokeKeyRequest) GetApiKey() string {
	if x != nil {
		return x.ApiKey
	}
	return ""
}

type AdminRevokeKeyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdminRevokeKeyResponse) Reset() {
	*x = AdminRevokeKeyResponse{}
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdminRevokeKeyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdminRevokeKeyResponse) ProtoMessage() {}

func (x *AdminRevokeKeyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mediafetch_v1_mediafetch_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdminRevokeKeyResponse.ProtoReflect.Descriptor instead.
func (*AdminRevokeKeyResponse) Descriptor() ([]byte, []int) {
	return file_mediafetch_v1_mediafetch_proto_rawDescGZIP(), []int{20}
}

var File_mediafetch_v1_mediafetch_proto protoreflect.FileDescriptor

const file_mediafetch_v1_mediafetch_proto_rawDesc = "" +
	"\n" +
	"\x1emediafetch/v1/mediafetch.proto\x12\rmediafetch.v1\"\xb1\x01\n" +
	"\x10SubmitJobRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x1a\n" +
	"\bplatform\x18\x02 \x01(\tR\bplatform\x12\x1f\n" +
	"\vcookie_blob\x18\x03 \x01(\fR\n" +
	"cookieBlob\x12&\n" +
	"\x0fvideo_format_id\x18\x04 \x01(\tR\rvideoFormatId\x12&\n" +
	"\x0faudio_format_id\x18\x05 \x01(\tR\raudioFormatId\"*\n" +
	"\x11SubmitJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"j\n" +
	"\vJobProgress\x12\x1d\n" +
	"\n" +
	"video_done\x18\x01 \x01(\bR\tvideoDone\x12\x1d\n" +
	"\n" +
	"audio_done\x18\x02 \x01(\bR\taudioDone\x12\x1d\n" +
	"\n" +
	"merge_done\x18\x03 \x01(\bR\tmergeDone\"8\n" +
	"\bJobError\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x80\x02\n" +
	"\x14GetJobStatusResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05state\x18\x02 \x01(\tR\x05state\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x126\n" +
	"\bprogress\x18\x04 \x01(\v2\x1a.mediafetch.v1.JobProgressR\bprogress\x12-\n" +
	"\x05error\x18\x05 \x01(\v2\x17.mediafetch.v1.JobErrorR\x05error\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\",\n" +
	"\x13GetJobResultRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"I\n" +
	"\x14GetJobResultResponse\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x02 \x01(\x03R\tsizeBytes\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x13\n" +
	"\x11CancelJobResponse\"(\n" +
	"\x0fWatchJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"&\n" +
	"\x12ListFormatsRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\"\xbd\x01\n" +
	"\vVideoFormat\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1e\n" +
	"\n" +
	"resolution\x18\x02 \x01(\tR\n" +
	"resolution\x12\x14\n" +
	"\x05label\x18\x03 \x01(\tR\x05label\x12\x10\n" +
	"\x03ext\x18\x04 \x01(\tR\x03ext\x12!\n" +
	"\fbitrate_kbps\x18\x05 \x01(\x05R\vbitrateKbps\x12\x16\n" +
	"\x06height\x18\x06 \x01(\x05R\x06height\x12\x1b\n" +
	"\thas_audio\x18\a \x01(\bR\bhasAudio\"\x84\x01\n" +
	"\vAudioFormat\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12!\n" +
	"\fbitrate_kbps\x18\x03 \x01(\x05R\vbitrateKbps\x12\x10\n" +
	"\x03ext\x18\x04 \x01(\tR\x03ext\x12\x14\n" +
	"\x05label\x18\x05 \x01(\tR\x05label\"\xdc\x01\n" +
	"\x13ListFormatsResponse\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12)\n" +
	"\x10duration_seconds\x18\x02 \x01(\x01R\x0fdurationSeconds\x12\x1c\n" +
	"\tthumbnail\x18\x03 \x01(\tR\tthumbnail\x122\n" +
	"\x06videos\x18\x04 \x03(\v2\x1a.mediafetch.v1.VideoFormatR\x06videos\x122\n" +
	"\x06audios\x18\x05 \x03(\v2\x1a.mediafetch.v1.AudioFormatR\x06audios\"I\n" +
	"\x11ExportJobsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"(\n" +
	"\x12ExportJobsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x19\n" +
	"\x17AdminGenerateKeyRequest\"3\n" +
	"\x18AdminGenerateKeyResponse\x12\x17\n" +
	"\aapi_key\x18\x01 \x01(\tR\x06apiKey\"0\n" +
	"\x15AdminRevokeKeyRequest\x12\x17\n" +
	"\aapi_key\x18\x01 \x01(\tR\x06apiKey\"\x18\n" +
	"\x16AdminRevokeKeyResponse2\xa5\x06\n" +
	"\x11MediaFetchService\x12N\n" +
	"\tSubmitJob\x12\x1f.mediafetch.v1.SubmitJobRequest\x1a .mediafetch.v1.SubmitJobResponse\x12W\n" +
	"\fGetJobStatus\x12\".mediafetch.v1.GetJobStatusRequest\x1a#.mediafetch.v1.GetJobStatusResponse\x12W\n" +
	"\fGetJobResult\x12\".mediafetch.v1.GetJobResultRequest\x1a#.mediafetch.v1.GetJobResultResponse\x12N\n" +
	"\tCancelJob\x12\x1f.mediafetch.v1.CancelJobRequest\x1a .mediafetch.v1.CancelJobResponse\x12Q\n" +
	"\bWatchJob\x12\x1e.mediafetch.v1.WatchJobRequest\x1a#.mediafetch.v1.GetJobStatusResponse0\x01\x12T\n" +
	"\vListFormats\x12!.mediafetch.v1.ListFormatsRequest\x1a\".mediafetch.v1.ListFormatsResponse\x12Q\n" +
	"\n" +
	"ExportJobs\x12 .mediafetch.v1.ExportJobsRequest\x1a!.mediafetch.v1.ExportJobsResponse\x12c\n" +
	"\x10AdminGenerateKey\x12&.mediafetch.v1.AdminGenerateKeyRequest\x1a'.mediafetch.v1.AdminGenerateKeyResponse\x12]\n" +
	"\x0eAdminRevokeKey\x12$.mediafetch.v1.AdminRevokeKeyRequest\x1a%.mediafetch.v1.AdminRevokeKeyResponseB+Z)mediafetch/gen/mediafetch/v1;mediafetchv1b\x06proto3"

var (
	file_mediafetch_v1_mediafetch_proto_rawDescOnce sync.Once
	file_mediafetch_v1_mediafetch_proto_rawDescData []byte
)

func file_mediafetch_v1_mediafetch_proto_rawDescGZIP() []byte {
	file_mediafetch_v1_mediafetch_proto_rawDescOnce.Do(func() {
		file_mediafetch_v1_mediafetch_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mediafetch_v1_mediafetch_proto_rawDesc), len(file_mediafetch_v1_mediafetch_proto_rawDesc)))
	})
	return file_mediafetch_v1_mediafetch_proto_rawDescData
}

var file_mediafetch_v1_mediafetch_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_mediafetch_v1_mediafetch_proto_goTypes = []any{
	(*SubmitJobRequest)(nil),         // 0: mediafetch.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),        // 1: mediafetch.v1.SubmitJobResponse
	(*JobProgress)(nil),              // 2: mediafetch.v1.JobProgress
	(*JobError)(nil),                 // 3: mediafetch.v1.JobError
	(*GetJobStatusRequest)(nil),      // 4: mediafetch.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),     // 5: mediafetch.v1.GetJobStatusResponse
	(*GetJobResultRequest)(nil),      // 6: mediafetch.v1.GetJobResultRequest
	(*GetJobResultResponse)(nil),     // 7: mediafetch.v1.GetJobResultResponse
	(*CancelJobRequest)(nil),         // 8: mediafetch.v1.CancelJobRequest
	(*CancelJobResponse)(nil),        // 9: mediafetch.v1.CancelJobResponse
	(*WatchJobRequest)(nil),          // 10: mediafetch.v1.WatchJobRequest
	(*ListFormatsRequest)(nil),       // 11: mediafetch.v1.ListFormatsRequest
	(*VideoFormat)(nil),              // 12: mediafetch.v1.VideoFormat
	(*AudioFormat)(nil),              // 13: mediafetch.v1.AudioFormat
	(*ListFormatsResponse)(nil),      // 14: mediafetch.v1.ListFormatsResponse
	(*ExportJobsRequest)(nil),        // 15: mediafetch.v1.ExportJobsRequest
	(*ExportJobsResponse)(nil),       // 16: mediafetch.v1.ExportJobsResponse
	(*AdminGenerateKeyRequest)(nil),  // 17: mediafetch.v1.AdminGenerateKeyRequest
	(*AdminGenerateKeyResponse)(nil), // 18: mediafetch.v1.AdminGenerateKeyResponse
	(*AdminRevokeKeyRequest)(nil),    // 19: mediafetch.v1.AdminRevokeKeyRequest
	(*AdminRevokeKeyResponse)(nil),   // 20: mediafetch.v1.AdminRevokeKeyResponse
}
var file_mediafetch_v1_mediafetch_proto_depIdxs = []int32{
	2,  // 0: mediafetch.v1.GetJobStatusResponse.progress:type_name -> mediafetch.v1.JobProgress
	3,  // 1: mediafetch.v1.GetJobStatusResponse.error:type_name -> mediafetch.v1.JobError
	12, // 2: mediafetch.v1.ListFormatsResponse.videos:type_name -> mediafetch.v1.VideoFormat
	13, // 3: mediafetch.v1.ListFormatsResponse.audios:type_name -> mediafetch.v1.AudioFormat
	0,  // 4: mediafetch.v1.MediaFetchService.SubmitJob:input_type -> mediafetch.v1.SubmitJobRequest
	4,  // 5: mediafetch.v1.MediaFetchService.GetJobStatus:input_type -> mediafetch.v1.GetJobStatusRequest
	6,  // 6: mediafetch.v1.MediaFetchService.GetJobResult:input_type -> mediafetch.v1.GetJobResultRequest
	8,  // 7: mediafetch.v1.MediaFetchService.CancelJob:input_type -> mediafetch.v1.CancelJobRequest
	10, // 8: mediafetch.v1.MediaFetchService.WatchJob:input_type -> mediafetch.v1.WatchJobRequest
	11, // 9: mediafetch.v1.MediaFetchService.ListFormats:input_type -> mediafetch.v1.ListFormatsRequest
	15, // 10: mediafetch.v1.MediaFetchService.ExportJobs:input_type -> mediafetch.v1.ExportJobsRequest
	17, // 11: mediafetch.v1.MediaFetchService.AdminGenerateKey:input_type -> mediafetch.v1.AdminGenerateKeyRequest
	19, // 12: mediafetch.v1.MediaFetchService.AdminRevokeKey:input_type -> mediafetch.v1.AdminRevokeKeyRequest
	1,  // 13: mediafetch.v1.MediaFetchService.SubmitJob:output_type -> mediafetch.v1.SubmitJobResponse
	5,  // 14: mediafetch.v1.MediaFetchService.GetJobStatus:output_type -> mediafetch.v1.GetJobStatusResponse
	7,  // 15: mediafetch.v1.MediaFetchService.GetJobResult:output_type -> mediafetch.v1.GetJobResultResponse
	9,  // 16: mediafetch.v1.MediaFetchService.CancelJob:output_type -> mediafetch.v1.CancelJobResponse
	5,  // 17: mediafetch.v1.MediaFetchService.WatchJob:output_type -> mediafetch.v1.GetJobStatusResponse
	14, // 18: mediafetch.v1.MediaFetchService.ListFormats:output_type -> mediafetch.v1.ListFormatsResponse
	16, // 19: mediafetch.v1.MediaFetchService.ExportJobs:output_type -> mediafetch.v1.ExportJobsResponse
	18, // 20: mediafetch.v1.MediaFetchService.AdminGenerateKey:output_type -> mediafetch.v1.AdminGenerateKeyResponse
	20, // 21: mediafetch.v1.MediaFetchService.AdminRevokeKey:output_type -> mediafetch.v1.AdminRevokeKeyResponse
	13, // [13:22] is the sub-list for method output_type
	4,  // [4:13] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_mediafetch_v1_mediafetch_proto_init() }
func file_mediafetch_v1_mediafetch_proto_init() {
	if File_mediafetch_v1_mediafetch_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mediafetch_v1_mediafetch_proto_rawDesc), len(file_mediafetch_v1_mediafetch_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_mediafetch_v1_mediafetch_proto_goTypes,
		DependencyIndexes: file_mediafetch_v1_mediafetch_proto_depIdxs,
		MessageInfos:      file_mediafetch_v1_mediafetch_proto_msgTypes,
	}.Build()
	File_mediafetch_v1_mediafetch_proto = out.File
	file_mediafetch_v1_mediafetch_proto_goTypes = nil
	file_mediafetch_v1_mediafetch_proto_depIdxs = nil
}
