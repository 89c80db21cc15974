package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)

	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FloatArray struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []float32              `protobuf:"fixed32,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FloatArray) Reset() {
	*x = FloatArray{}
	mi := &file_v1_reducer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FloatArray) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FloatArray) ProtoMessage() {}

func (x *FloatArray) ProtoReflect() protoreflect.Message {
	mi := &file_v1_reducer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*FloatArray) Descriptor() ([]byte, []int) {
	return file_v1_reducer_proto_rawDescGZIP(), []int{0}
}

func (x *FloatArray) GetValues() []float32 {
	if x != nil {
		return x.Values
	}
	return nil
}

type FitRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vectors       []*FloatArray          `protobuf:"bytes,1,rep,name=vectors,proto3" json:"vectors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FitRequest) Reset() {
	*x = FitRequest{}
	mi := &file_v1_reducer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FitRequest) ProtoMessage() {}

func (x *FitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_reducer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*FitRequest) Descriptor() ([]byte, []int) {
	return file_v1_reducer_proto_rawDescGZIP(), []int{1}
}

func (x *FitRequest) GetVectors() []*FloatArray {
	if x != nil {
		return x.Vectors
	}
	return nil
}

type TransformRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ModelName     string                 `protobuf:"bytes,1,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	Vectors       []*FloatArray          `protobuf:"bytes,2,rep,name=vectors,proto3" json:"vectors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TransformRequest) Reset() {
	*x = TransformRequest{}
	mi := &file_v1_reducer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TransformRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TransformRequest) ProtoMessage() {}

func (x *TransformRequest) ProtoReflect() protoreflect.Message {
	mi := &file_v1_reducer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*TransformRequest) Descriptor() ([]byte, []int) {
	return file_v1_reducer_proto_rawDescGZIP(), []int{2}
}

func (x *TransformRequest) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *TransformRequest) GetVectors() []*FloatArray {
	if x != nil {
		return x.Vectors
	}
	return nil
}

type VectorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Vectors       []*FloatArray          `protobuf:"bytes,1,rep,name=vectors,proto3" json:"vectors,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VectorResponse) Reset() {
	*x = VectorResponse{}
	mi := &file_v1_reducer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VectorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VectorResponse) ProtoMessage() {}

func (x *VectorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_v1_reducer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*VectorResponse) Descriptor() ([]byte, []int) {
	return file_v1_reducer_proto_rawDescGZIP(), []int{3}
}

func (x *VectorResponse) GetVectors() []*FloatArray {
	if x != nil {
		return x.Vectors
	}
	return nil
}

type PipelineInfo struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Chain         bool                   `protobuf:"varint,2,opt,name=chain,proto3" json:"chain,omitempty"`
	Steps         []string               `protobuf:"bytes,3,rep,name=steps,proto3" json:"steps,omitempty"`
	InputDim      int32                  `protobuf:"varint,4,opt,name=input_dim,json=inputDim,proto3" json:"input_dim,omitempty"`
	OutputDim     int32                  `protobuf:"varint,5,opt,name=output_dim,json=outputDim,proto3" json:"output_dim,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PipelineInfo) Reset() {
	*x = PipelineInfo{}
	mi := &file_v1_reducer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PipelineInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PipelineInfo) ProtoMessage() {}

func (x *PipelineInfo) ProtoReflect() protoreflect.Message {
	mi := &file_v1_reducer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*PipelineInfo) Descriptor() ([]byte, []int) {
	return file_v1_reducer_proto_rawDescGZIP(), []int{4}
}

func (x *PipelineInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PipelineInfo) GetChain() bool {
	if x != nil {
		return x.Chain
	}
	return false
}

func (x *PipelineInfo) GetSteps() []string {
	if x != nil {
		return x.Steps
	}
	return nil
}

func (x *PipelineInfo) GetInputDim() int32 {
	if x != nil {
		return x.InputDim
	}
	return 0
}

func (x *PipelineInfo) GetOutputDim() int32 {
	if x != nil {
		return x.OutputDim
	}
	return 0
}

type PipelineList struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Generation    string                 `protobuf:"bytes,1,opt,name=generation,proto3" json:"generation,omitempty"`
	Pipelines     []*PipelineInfo        `protobuf:"bytes,2,rep,name=pipelines,proto3" json:"pipelines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PipelineList) Reset() {
	*x = PipelineList{}
	mi := &file_v1_reducer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PipelineList) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PipelineList) ProtoMessage() {}

func (x *PipelineList) ProtoReflect() protoreflect.Message {
	mi := &file_v1_reducer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*PipelineList) Descriptor() ([]byte, []int) {
	return file_v1_reducer_proto_rawDescGZIP(), []int{5}
}

func (x *PipelineList) GetGeneration() string {
	if x != nil {
		return x.Generation
	}
	return ""
}

func (x *PipelineList) GetPipelines() []*PipelineInfo {
	if x != nil {
		return x.Pipelines
	}
	return nil
}

var File_v1_reducer_proto protoreflect.FileDescriptor

const file_v1_reducer_proto_rawDesc = "" +
	"\n" +
	"\x10v1/reducer.proto\x12\tdimred.v1\x1a\x1bgoogle/protobuf/empty.proto\"$\n" +
	"\n" +
	"FloatArray\x12\x16\n" +
	"\x06values\x18\x01 \x03(\x02R\x06values\"=\n" +
	"\n" +
	"FitRequest\x12/\n" +
	"\avectors\x18\x01 \x03(\v2\x15.dimred.v1.FloatArrayR\avectors\"b\n" +
	"\x10TransformRequest\x12\x1d\n" +
	"\n" +
	"model_name\x18\x01 \x01(\tR\tmodelName\x12/\n" +
	"\avectors\x18\x02 \x03(\v2\x15.dimred.v1.FloatArrayR\avectors\"A\n" +
	"\x0eVectorResponse\x12/\n" +
	"\avectors\x18\x01 \x03(\v2\x15.dimred.v1.FloatArrayR\avectors\"\x8a\x01\n" +
	"\fPipelineInfo\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05chain\x18\x02 \x01(\bR\x05chain\x12\x14\n" +
	"\x05steps\x18\x03 \x03(\tR\x05steps\x12\x1b\n" +
	"\tinput_dim\x18\x04 \x01(\x05R\binputDim\x12\x1d\n" +
	"\n" +
	"output_dim\x18\x05 \x01(\x05R\toutputDim\"e\n" +
	"\fPipelineList\x12\x1e\n" +
	"\n" +
	"generation\x18\x01 \x01(\tR\n" +
	"generation\x125\n" +
	"\tpipelines\x18\x02 \x03(\v2\x17.dimred.v1.PipelineInfoR\tpipelines2\xfe\x01\n" +
	"\aReducer\x124\n" +
	"\x03Fit\x12\x15.dimred.v1.FitRequest\x1a\x16.google.protobuf.Empty\x12C\n" +
	"\tTransform\x12\x1b.dimred.v1.TransformRequest\x1a\x19.dimred.v1.VectorResponse\x126\n" +
	"\x04Load\x12\x16.google.protobuf.Empty\x1a\x16.google.protobuf.Empty\x12@\n" +
	"\rListPipelines\x12\x16.google.protobuf.Empty\x1a\x17.dimred.v1.PipelineListB\x18Z\x16dimred/api/proto/v1;pbb\x06proto3"

var (
	file_v1_reducer_proto_rawDescOnce sync.Once
	file_v1_reducer_proto_rawDescData []byte
)

func file_v1_reducer_proto_rawDescGZIP() []byte {
	file_v1_reducer_proto_rawDescOnce.Do(func() {
		file_v1_reducer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_v1_reducer_proto_rawDesc), len(file_v1_reducer_proto_rawDesc)))
	})
	return file_v1_reducer_proto_rawDescData
}

var file_v1_reducer_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_v1_reducer_proto_goTypes = []any{
	(*FloatArray)(nil),
	(*FitRequest)(nil),
	(*TransformRequest)(nil),
	(*VectorResponse)(nil),
	(*PipelineInfo)(nil),
	(*PipelineList)(nil),
	(*emptypb.Empty)(nil),
}
var file_v1_reducer_proto_depIdxs = []int32{
	0,
	0,
	0,
	4,
	1,
	2,
	6,
	6,
	6,
	3,
	6,
	5,
	8,
	4,
	4,
	4,
	0,
}

func init() { file_v1_reducer_proto_init() }
func file_v1_reducer_proto_init() {
	if File_v1_reducer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_v1_reducer_proto_rawDesc), len(file_v1_reducer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_v1_reducer_proto_goTypes,
		DependencyIndexes: file_v1_reducer_proto_depIdxs,
		MessageInfos:      file_v1_reducer_proto_msgTypes,
	}.Build()
	File_v1_reducer_proto = out.File
	file_v1_reducer_proto_goTypes = nil
	file_v1_reducer_proto_depIdxs = nil
}
