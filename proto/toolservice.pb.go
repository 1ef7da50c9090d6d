// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: toolservice.proto

package proto

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

type InvokeRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Operator name: google_search, url_context, structured_output,
	// function_calling, similarity_expansion, academic_search.
	Operator string `protobuf:"bytes,1,opt,name=operator,proto3" json:"operator,omitempty"`
	// JSON-encoded operator input.
	InputJson string `protobuf:"bytes,2,opt,name=input_json,json=inputJson,proto3" json:"input_json,omitempty"`
	// Originating fill event, for tracing on the service side.
	EventId       string `protobuf:"bytes,3,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvokeRequest) Reset() {
	*x = InvokeRequest{}
	mi := &file_toolservice_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvokeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvokeRequest) ProtoMessage() {}

func (x *InvokeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_toolservice_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvokeRequest.ProtoReflect.Descriptor instead.
func (*InvokeRequest) Descriptor() ([]byte, []int) {
	return file_toolservice_proto_rawDescGZIP(), []int{0}
}

func (x *InvokeRequest) GetOperator() string {
	if x != nil {
		return x.Operator
	}
	return ""
}

func (x *InvokeRequest) GetInputJson() string {
	if x != nil {
		return x.InputJson
	}
	return ""
}

func (x *InvokeRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

type InvokeResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// JSON-encoded operator output.
	OutputJson    string `protobuf:"bytes,1,opt,name=output_json,json=outputJson,proto3" json:"output_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvokeResponse) Reset() {
	*x = InvokeResponse{}
	mi := &file_toolservice_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvokeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvokeResponse) ProtoMessage() {}

func (x *InvokeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_toolservice_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvokeResponse.ProtoReflect.Descriptor instead.
func (*InvokeResponse) Descriptor() ([]byte, []int) {
	return file_toolservice_proto_rawDescGZIP(), []int{1}
}

func (x *InvokeResponse) GetOutputJson() string {
	if x != nil {
		return x.OutputJson
	}
	return ""
}

var File_toolservice_proto protoreflect.FileDescriptor

const file_toolservice_proto_rawDesc = "" +
	"\n" +
	"\x11toolservice.proto\x12\x0frowboat.tool.v1\"e\n" +
	"\rInvokeRequest\x12\x1a\n" +
	"\boperator\x18\x01 \x01(\tR\boperator\x12\x1d\n" +
	"\n" +
	"input_json\x18\x02 \x01(\tR\tinputJson\x12\x19\n" +
	"\bevent_id\x18\x03 \x01(\tR\aeventId\"1\n" +
	"\x0eInvokeResponse\x12\x1f\n" +
	"\voutput_json\x18\x01 \x01(\tR\n" +
	"outputJson2X\n" +
	"\vToolService\x12I\n" +
	"\x06Invoke\x12\x1e.rowboat.tool.v1.InvokeRequest\x1a\x1f.rowboat.tool.v1.InvokeResponseB&Z$github.com/rowboat-dev/rowboat/protob\x06proto3"

var (
	file_toolservice_proto_rawDescOnce sync.Once
	file_toolservice_proto_rawDescData []byte
)

func file_toolservice_proto_rawDescGZIP() []byte {
	file_toolservice_proto_rawDescOnce.Do(func() {
		file_toolservice_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_toolservice_proto_rawDesc), len(file_toolservice_proto_rawDesc)))
	})
	return file_toolservice_proto_rawDescData
}

var file_toolservice_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_toolservice_proto_goTypes = []any{
	(*InvokeRequest)(nil),  // 0: rowboat.tool.v1.InvokeRequest
	(*InvokeResponse)(nil), // 1: rowboat.tool.v1.InvokeResponse
}
var file_toolservice_proto_depIdxs = []int32{
	0, // 0: rowboat.tool.v1.ToolService.Invoke:input_type -> rowboat.tool.v1.InvokeRequest
	1, // 1: rowboat.tool.v1.ToolService.Invoke:output_type -> rowboat.tool.v1.InvokeResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_toolservice_proto_init() }
func file_toolservice_proto_init() {
	if File_toolservice_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_toolservice_proto_rawDesc), len(file_toolservice_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_toolservice_proto_goTypes,
		DependencyIndexes: file_toolservice_proto_depIdxs,
		MessageInfos:      file_toolservice_proto_msgTypes,
	}.Build()
	File_toolservice_proto = out.File
	file_toolservice_proto_goTypes = nil
	file_toolservice_proto_depIdxs = nil
}
