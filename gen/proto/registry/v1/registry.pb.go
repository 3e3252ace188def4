// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: registry/v1/registry.proto

package registryv1

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
	state   protoimpl.MessageState `protogen:"open.v1"`
	Id      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AdminId string                 `protobuf:"bytes,2,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	// base name of the stored file, path stripped
	Filename string `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	// pending | processing | completed | failed
	Status       string `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	TotalRecords int64  `protobuf:"varint,5,opt,name=total_records,json=totalRecords,proto3" json:"total_records,omitempty"`
	// false until the row count is known
	TotalKnown       bool   `protobuf:"varint,6,opt,name=total_known,json=totalKnown,proto3" json:"total_known,omitempty"`
	ProcessedRecords int64  `protobuf:"varint,7,opt,name=processed_records,json=processedRecords,proto3" json:"processed_records,omitempty"`
	FailureCode      string `protobuf:"bytes,8,opt,name=failure_code,json=failureCode,proto3" json:"failure_code,omitempty"`
	// populated only when status is failed
	Reason        string `protobuf:"bytes,9,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedAt     string `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Upload) Reset() {
	*x = Upload{}
	mi := &file_registry_v1_registry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Upload) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Upload) ProtoMessage() {}

func (x *Upload) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[0]
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
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{0}
}

func (x *Upload) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Upload) GetAdminId() string {
	if x != nil {
		return x.AdminId
	}
	return ""
}

func (x *Upload) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Upload) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Upload) GetTotalRecords() int64 {
	if x != nil {
		return x.TotalRecords
	}
	return 0
}

func (x *Upload) GetTotalKnown() bool {
	if x != nil {
		return x.TotalKnown
	}
	return false
}

func (x *Upload) GetProcessedRecords() int64 {
	if x != nil {
		return x.ProcessedRecords
	}
	return 0
}

func (x *Upload) GetFailureCode() string {
	if x != nil {
		return x.FailureCode
	}
	return ""
}

func (x *Upload) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *Upload) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Upload) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SubmitUploadRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	AdminId string                 `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	// original filename; its extension declares the format (csv, xls, xlsx)
	Filename      string `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadRequest) Reset() {
	*x = SubmitUploadRequest{}
	mi := &file_registry_v1_registry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadRequest) ProtoMessage() {}

func (x *SubmitUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadRequest.ProtoReflect.Descriptor instead.
func (*SubmitUploadRequest) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitUploadRequest) GetAdminId() string {
	if x != nil {
		return x.AdminId
	}
	return ""
}

func (x *SubmitUploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitUploadRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type SubmitUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Upload        *Upload                `protobuf:"bytes,1,opt,name=upload,proto3" json:"upload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadResponse) Reset() {
	*x = SubmitUploadResponse{}
	mi := &file_registry_v1_registry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadResponse) ProtoMessage() {}

func (x *SubmitUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadResponse.ProtoReflect.Descriptor instead.
func (*SubmitUploadResponse) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitUploadResponse) GetUpload() *Upload {
	if x != nil {
		return x.Upload
	}
	return nil
}

type GetUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUploadRequest) Reset() {
	*x = GetUploadRequest{}
	mi := &file_registry_v1_registry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUploadRequest) ProtoMessage() {}

func (x *GetUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUploadRequest.ProtoReflect.Descriptor instead.
func (*GetUploadRequest) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{3}
}

func (x *GetUploadRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetUploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Upload        *Upload                `protobuf:"bytes,1,opt,name=upload,proto3" json:"upload,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUploadResponse) Reset() {
	*x = GetUploadResponse{}
	mi := &file_registry_v1_registry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUploadResponse) ProtoMessage() {}

func (x *GetUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUploadResponse.ProtoReflect.Descriptor instead.
func (*GetUploadResponse) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{4}
}

func (x *GetUploadResponse) GetUpload() *Upload {
	if x != nil {
		return x.Upload
	}
	return nil
}

type ListUploadsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AdminId       string                 `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUploadsRequest) Reset() {
	*x = ListUploadsRequest{}
	mi := &file_registry_v1_registry_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUploadsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUploadsRequest) ProtoMessage() {}

func (x *ListUploadsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUploadsRequest.ProtoReflect.Descriptor instead.
func (*ListUploadsRequest) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{5}
}

func (x *ListUploadsRequest) GetAdminId() string {
	if x != nil {
		return x.AdminId
	}
	return ""
}

// Uploads are ordered newest-first.
type ListUploadsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Uploads       []*Upload              `protobuf:"bytes,1,rep,name=uploads,proto3" json:"uploads,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUploadsResponse) Reset() {
	*x = ListUploadsResponse{}
	mi := &file_registry_v1_registry_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUploadsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUploadsResponse) ProtoMessage() {}

func (x *ListUploadsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUploadsResponse.ProtoReflect.Descriptor instead.
func (*ListUploadsResponse) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{6}
}

func (x *ListUploadsResponse) GetUploads() []*Upload {
	if x != nil {
		return x.Uploads
	}
	return nil
}

type Elector struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AdminId             string                 `protobuf:"bytes,2,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Email               string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	MatriculationNumber string                 `protobuf:"bytes,4,opt,name=matriculation_number,json=matriculationNumber,proto3" json:"matriculation_number,omitempty"`
	FullName            string                 `protobuf:"bytes,5,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Gender              string                 `protobuf:"bytes,6,opt,name=gender,proto3" json:"gender,omitempty"`
	Department          string                 `protobuf:"bytes,7,opt,name=department,proto3" json:"department,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Elector) Reset() {
	*x = Elector{}
	mi := &file_registry_v1_registry_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Elector) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Elector) ProtoMessage() {}

func (x *Elector) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Elector.ProtoReflect.Descriptor instead.
func (*Elector) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{7}
}

func (x *Elector) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Elector) GetAdminId() string {
	if x != nil {
		return x.AdminId
	}
	return ""
}

func (x *Elector) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Elector) GetMatriculationNumber() string {
	if x != nil {
		return x.MatriculationNumber
	}
	return ""
}

func (x *Elector) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Elector) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *Elector) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *Elector) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListElectorsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AdminId       string                 `protobuf:"bytes,1,opt,name=admin_id,json=adminId,proto3" json:"admin_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListElectorsRequest) Reset() {
	*x = ListElectorsRequest{}
	mi := &file_registry_v1_registry_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListElectorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListElectorsRequest) ProtoMessage() {}

func (x *ListElectorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListElectorsRequest.ProtoReflect.Descriptor instead.
func (*ListElectorsRequest) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{8}
}

func (x *ListElectorsRequest) GetAdminId() string {
	if x != nil {
		return x.AdminId
	}
	return ""
}

func (x *ListElectorsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListElectorsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListElectorsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Electors      []*Elector             `protobuf:"bytes,1,rep,name=electors,proto3" json:"electors,omitempty"`
	Total         int64                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListElectorsResponse) Reset() {
	*x = ListElectorsResponse{}
	mi := &file_registry_v1_registry_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListElectorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListElectorsResponse) ProtoMessage() {}

func (x *ListElectorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_registry_v1_registry_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListElectorsResponse.ProtoReflect.Descriptor instead.
func (*ListElectorsResponse) Descriptor() ([]byte, []int) {
	return file_registry_v1_registry_proto_rawDescGZIP(), []int{9}
}

func (x *ListElectorsResponse) GetElectors() []*Elector {
	if x != nil {
		return x.Electors
	}
	return nil
}

func (x *ListElectorsResponse) GetTotal() int64 {
	if x != nil {
		return x.Total
	}
	return 0
}

var File_registry_v1_registry_proto protoreflect.FileDescriptor

const file_registry_v1_registry_proto_rawDesc = "" +
	"\n" +
	"\x1aregistry/v1/registry.proto\x12\vregistry.v1\"\xd3\x02\n" +
	"\x06Upload\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\badmin_id\x18\x02 \x01(\tR\aadminId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rtotal_records\x18\x05 \x01(\x03R\ftotalRecords\x12\x1f\n" +
	"\vtotal_known\x18\x06 \x01(\bR\n" +
	"totalKnown\x12+\n" +
	"\x11processed_records\x18\a \x01(\x03R\x10processedRecords\x12!\n" +
	"\ffailure_code\x18\b \x01(\tR\vfailureCode\x12\x16\n" +
	"\x06reason\x18\t \x01(\tR\x06reason\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"f\n" +
	"\x13SubmitUploadRequest\x12\x19\n" +
	"\badmin_id\x18\x01 \x01(\tR\aadminId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"C\n" +
	"\x14SubmitUploadResponse\x12+\n" +
	"\x06upload\x18\x01 \x01(\v2\x13.registry.v1.UploadR\x06upload\"\"\n" +
	"\x10GetUploadRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"@\n" +
	"\x11GetUploadResponse\x12+\n" +
	"\x06upload\x18\x01 \x01(\v2\x13.registry.v1.UploadR\x06upload\"/\n" +
	"\x12ListUploadsRequest\x12\x19\n" +
	"\badmin_id\x18\x01 \x01(\tR\aadminId\"D\n" +
	"\x13ListUploadsResponse\x12-\n" +
	"\auploads\x18\x01 \x03(\v2\x13.registry.v1.UploadR\auploads\"\xf1\x01\n" +
	"\aElector\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\badmin_id\x18\x02 \x01(\tR\aadminId\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x121\n" +
	"\x14matriculation_number\x18\x04 \x01(\tR\x13matriculationNumber\x12\x1b\n" +
	"\tfull_name\x18\x05 \x01(\tR\bfullName\x12\x16\n" +
	"\x06gender\x18\x06 \x01(\tR\x06gender\x12\x1e\n" +
	"\n" +
	"department\x18\a \x01(\tR\n" +
	"department\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"^\n" +
	"\x13ListElectorsRequest\x12\x19\n" +
	"\badmin_id\x18\x01 \x01(\tR\aadminId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\"^\n" +
	"\x14ListElectorsResponse\x120\n" +
	"\belectors\x18\x01 \x03(\v2\x14.registry.v1.ElectorR\belectors\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x03R\x05total2\x82\x02\n" +
	"\rUploadService\x12S\n" +
	"\fSubmitUpload\x12 .registry.v1.SubmitUploadRequest\x1a!.registry.v1.SubmitUploadResponse\x12J\n" +
	"\tGetUpload\x12\x1d.registry.v1.GetUploadRequest\x1a\x1e.registry.v1.GetUploadResponse\x12P\n" +
	"\vListUploads\x12\x1f.registry.v1.ListUploadsRequest\x1a .registry.v1.ListUploadsResponse2e\n" +
	"\x0eElectorService\x12S\n" +
	"\fListElectors\x12 .registry.v1.ListElectorsRequest\x1a!.registry.v1.ListElectorsResponseBGZEgithub.com/davidolu/elector-registry/gen/proto/registry/v1;registryv1b\x06proto3"

var (
	file_registry_v1_registry_proto_rawDescOnce sync.Once
	file_registry_v1_registry_proto_rawDescData []byte
)

func file_registry_v1_registry_proto_rawDescGZIP() []byte {
	file_registry_v1_registry_proto_rawDescOnce.Do(func() {
		file_registry_v1_registry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_registry_v1_registry_proto_rawDesc), len(file_registry_v1_registry_proto_rawDesc)))
	})
	return file_registry_v1_registry_proto_rawDescData
}

var file_registry_v1_registry_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_registry_v1_registry_proto_goTypes = []any{
	(*Upload)(nil),               // 0: registry.v1.Upload
	(*SubmitUploadRequest)(nil),  // 1: registry.v1.SubmitUploadRequest
	(*SubmitUploadResponse)(nil), // 2: registry.v1.SubmitUploadResponse
	(*GetUploadRequest)(nil),     // 3: registry.v1.GetUploadRequest
	(*GetUploadResponse)(nil),    // 4: registry.v1.GetUploadResponse
	(*ListUploadsRequest)(nil),   // 5: registry.v1.ListUploadsRequest
	(*ListUploadsResponse)(nil),  // 6: registry.v1.ListUploadsResponse
	(*Elector)(nil),              // 7: registry.v1.Elector
	(*ListElectorsRequest)(nil),  // 8: registry.v1.ListElectorsRequest
	(*ListElectorsResponse)(nil), // 9: registry.v1.ListElectorsResponse
}
var file_registry_v1_registry_proto_depIdxs = []int32{
	0, // 0: registry.v1.SubmitUploadResponse.upload:type_name -> registry.v1.Upload
	0, // 1: registry.v1.GetUploadResponse.upload:type_name -> registry.v1.Upload
	0, // 2: registry.v1.ListUploadsResponse.uploads:type_name -> registry.v1.Upload
	7, // 3: registry.v1.ListElectorsResponse.electors:type_name -> registry.v1.Elector
	1, // 4: registry.v1.UploadService.SubmitUpload:input_type -> registry.v1.SubmitUploadRequest
	3, // 5: registry.v1.UploadService.GetUpload:input_type -> registry.v1.GetUploadRequest
	5, // 6: registry.v1.UploadService.ListUploads:input_type -> registry.v1.ListUploadsRequest
	8, // 7: registry.v1.ElectorService.ListElectors:input_type -> registry.v1.ListElectorsRequest
	2, // 8: registry.v1.UploadService.SubmitUpload:output_type -> registry.v1.SubmitUploadResponse
	4, // 9: registry.v1.UploadService.GetUpload:output_type -> registry.v1.GetUploadResponse
	6, // 10: registry.v1.UploadService.ListUploads:output_type -> registry.v1.ListUploadsResponse
	9, // 11: registry.v1.ElectorService.ListElectors:output_type -> registry.v1.ListElectorsResponse
	8, // [8:12] is the sub-list for method output_type
	4, // [4:8] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_registry_v1_registry_proto_init() }
func file_registry_v1_registry_proto_init() {
	if File_registry_v1_registry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_registry_v1_registry_proto_rawDesc), len(file_registry_v1_registry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_registry_v1_registry_proto_goTypes,
		DependencyIndexes: file_registry_v1_registry_proto_depIdxs,
		MessageInfos:      file_registry_v1_registry_proto_msgTypes,
	}.Build()
	File_registry_v1_registry_proto = out.File
	file_registry_v1_registry_proto_goTypes = nil
	file_registry_v1_registry_proto_depIdxs = nil
}
