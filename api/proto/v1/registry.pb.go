package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)

	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Snapshot struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	FormatVersion    uint32                 `protobuf:"varint,1,opt,name=format_version,json=formatVersion,proto3" json:"format_version,omitempty"`
	Generation       string                 `protobuf:"bytes,2,opt,name=generation,proto3" json:"generation,omitempty"`
	FittedAtUnixNano int64                  `protobuf:"varint,3,opt,name=fitted_at_unix_nano,json=fittedAtUnixNano,proto3" json:"fitted_at_unix_nano,omitempty"`
	Pipelines        []*PipelineState       `protobuf:"bytes,4,rep,name=pipelines,proto3" json:"pipelines,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Snapshot) Reset() {
	*x = Snapshot{}
	mi := &file_v1_registry_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Snapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Snapshot) ProtoMessage() {}

func (x *Snapshot) ProtoReflect() protoreflect.Message {
	mi := &file_v1_registry_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*Snapshot) Descriptor() ([]byte, []int) {
	return file_v1_registry_proto_rawDescGZIP(), []int{0}
}

func (x *Snapshot) GetFormatVersion() uint32 {
	if x != nil {
		return x.FormatVersion
	}
	return 0
}

func (x *Snapshot) GetGeneration() string {
	if x != nil {
		return x.Generation
	}
	return ""
}

func (x *Snapshot) GetFittedAtUnixNano() int64 {
	if x != nil {
		return x.FittedAtUnixNano
	}
	return 0
}

func (x *Snapshot) GetPipelines() []*PipelineState {
	if x != nil {
		return x.Pipelines
	}
	return nil
}

type PipelineState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Chain         bool                   `protobuf:"varint,2,opt,name=chain,proto3" json:"chain,omitempty"`
	Steps         []*StepState           `protobuf:"bytes,3,rep,name=steps,proto3" json:"steps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PipelineState) Reset() {
	*x = PipelineState{}
	mi := &file_v1_registry_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PipelineState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PipelineState) ProtoMessage() {}

func (x *PipelineState) ProtoReflect() protoreflect.Message {
	mi := &file_v1_registry_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*PipelineState) Descriptor() ([]byte, []int) {
	return file_v1_registry_proto_rawDescGZIP(), []int{1}
}

func (x *PipelineState) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PipelineState) GetChain() bool {
	if x != nil {
		return x.Chain
	}
	return false
}

func (x *PipelineState) GetSteps() []*StepState {
	if x != nil {
		return x.Steps
	}
	return nil
}

type StepState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Components    int32                  `protobuf:"varint,2,opt,name=components,proto3" json:"components,omitempty"`
	Seed          int64                  `protobuf:"varint,3,opt,name=seed,proto3" json:"seed,omitempty"`
	InputDim      int32                  `protobuf:"varint,4,opt,name=input_dim,json=inputDim,proto3" json:"input_dim,omitempty"`
	OutputDim     int32                  `protobuf:"varint,5,opt,name=output_dim,json=outputDim,proto3" json:"output_dim,omitempty"`
	Offset        []float64              `protobuf:"fixed64,6,rep,packed,name=offset,proto3" json:"offset,omitempty"`
	Scale         []float64              `protobuf:"fixed64,7,rep,packed,name=scale,proto3" json:"scale,omitempty"`
	Projection    *DenseMatrix           `protobuf:"bytes,8,opt,name=projection,proto3" json:"projection,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepState) Reset() {
	*x = StepState{}
	mi := &file_v1_registry_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepState) ProtoMessage() {}

func (x *StepState) ProtoReflect() protoreflect.Message {
	mi := &file_v1_registry_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*StepState) Descriptor() ([]byte, []int) {
	return file_v1_registry_proto_rawDescGZIP(), []int{2}
}

func (x *StepState) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *StepState) GetComponents() int32 {
	if x != nil {
		return x.Components
	}
	return 0
}

func (x *StepState) GetSeed() int64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *StepState) GetInputDim() int32 {
	if x != nil {
		return x.InputDim
	}
	return 0
}

func (x *StepState) GetOutputDim() int32 {
	if x != nil {
		return x.OutputDim
	}
	return 0
}

func (x *StepState) GetOffset() []float64 {
	if x != nil {
		return x.Offset
	}
	return nil
}

func (x *StepState) GetScale() []float64 {
	if x != nil {
		return x.Scale
	}
	return nil
}

func (x *StepState) GetProjection() *DenseMatrix {
	if x != nil {
		return x.Projection
	}
	return nil
}

type DenseMatrix struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          int32                  `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols          int32                  `protobuf:"varint,2,opt,name=cols,proto3" json:"cols,omitempty"`
	Data          []float64              `protobuf:"fixed64,3,rep,packed,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DenseMatrix) Reset() {
	*x = DenseMatrix{}
	mi := &file_v1_registry_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DenseMatrix) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DenseMatrix) ProtoMessage() {}

func (x *DenseMatrix) ProtoReflect() protoreflect.Message {
	mi := &file_v1_registry_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*DenseMatrix) Descriptor() ([]byte, []int) {
	return file_v1_registry_proto_rawDescGZIP(), []int{3}
}

func (x *DenseMatrix) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

func (x *DenseMatrix) GetCols() int32 {
	if x != nil {
		return x.Cols
	}
	return 0
}

func (x *DenseMatrix) GetData() []float64 {
	if x != nil {
		return x.Data
	}
	return nil
}

type RegistryEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Generation    string                 `protobuf:"bytes,3,opt,name=generation,proto3" json:"generation,omitempty"`
	Pipelines     []string               `protobuf:"bytes,4,rep,name=pipelines,proto3" json:"pipelines,omitempty"`
	Rows          int32                  `protobuf:"varint,5,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols          int32                  `protobuf:"varint,6,opt,name=cols,proto3" json:"cols,omitempty"`
	AtUnixNano    int64                  `protobuf:"varint,7,opt,name=at_unix_nano,json=atUnixNano,proto3" json:"at_unix_nano,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegistryEvent) Reset() {
	*x = RegistryEvent{}
	mi := &file_v1_registry_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegistryEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegistryEvent) ProtoMessage() {}

func (x *RegistryEvent) ProtoReflect() protoreflect.Message {
	mi := &file_v1_registry_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (*RegistryEvent) Descriptor() ([]byte, []int) {
	return file_v1_registry_proto_rawDescGZIP(), []int{4}
}

func (x *RegistryEvent) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RegistryEvent) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *RegistryEvent) GetGeneration() string {
	if x != nil {
		return x.Generation
	}
	return ""
}

func (x *RegistryEvent) GetPipelines() []string {
	if x != nil {
		return x.Pipelines
	}
	return nil
}

func (x *RegistryEvent) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

func (x *RegistryEvent) GetCols() int32 {
	if x != nil {
		return x.Cols
	}
	return 0
}

func (x *RegistryEvent) GetAtUnixNano() int64 {
	if x != nil {
		return x.AtUnixNano
	}
	return 0
}

var File_v1_registry_proto protoreflect.FileDescriptor

const file_v1_registry_proto_rawDesc = "" +
	"\n" +
	"\x11v1/registry.proto\x12\tdimred.v1\"\xb8\x01\n" +
	"\bSnapshot\x12%\n" +
	"\x0eformat_version\x18\x01 \x01(\rR\rformatVersion\x12\x1e\n" +
	"\n" +
	"generation\x18\x02 \x01(\tR\n" +
	"generation\x12-\n" +
	"\x13fitted_at_unix_nano\x18\x03 \x01(\x03R\x10fittedAtUnixNano\x126\n" +
	"\tpipelines\x18\x04 \x03(\v2\x18.dimred.v1.PipelineStateR\tpipelines\"e\n" +
	"\rPipelineState\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05chain\x18\x02 \x01(\bR\x05chain\x12*\n" +
	"\x05steps\x18\x03 \x03(\v2\x14.dimred.v1.StepStateR\x05steps\"\xf5\x01\n" +
	"\tStepState\x12\x12\n" +
	"\x04kind\x18\x01 \x01(\tR\x04kind\x12\x1e\n" +
	"\n" +
	"components\x18\x02 \x01(\x05R\n" +
	"components\x12\x12\n" +
	"\x04seed\x18\x03 \x01(\x03R\x04seed\x12\x1b\n" +
	"\tinput_dim\x18\x04 \x01(\x05R\binputDim\x12\x1d\n" +
	"\n" +
	"output_dim\x18\x05 \x01(\x05R\toutputDim\x12\x16\n" +
	"\x06offset\x18\x06 \x03(\x01R\x06offset\x12\x14\n" +
	"\x05scale\x18\a \x03(\x01R\x05scale\x126\n" +
	"\n" +
	"projection\x18\b \x01(\v2\x16.dimred.v1.DenseMatrixR\n" +
	"projection\"I\n" +
	"\vDenseMatrix\x12\x12\n" +
	"\x04rows\x18\x01 \x01(\x05R\x04rows\x12\x12\n" +
	"\x04cols\x18\x02 \x01(\x05R\x04cols\x12\x12\n" +
	"\x04data\x18\x03 \x03(\x01R\x04data\"\xbb\x01\n" +
	"\rRegistryEvent\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04type\x18\x02 \x01(\tR\x04type\x12\x1e\n" +
	"\n" +
	"generation\x18\x03 \x01(\tR\n" +
	"generation\x12\x1c\n" +
	"\tpipelines\x18\x04 \x03(\tR\tpipelines\x12\x12\n" +
	"\x04rows\x18\x05 \x01(\x05R\x04rows\x12\x12\n" +
	"\x04cols\x18\x06 \x01(\x05R\x04cols\x12 \n" +
	"\fat_unix_nano\x18\a \x01(\x03R\n" +
	"atUnixNanoB\x18Z\x16dimred/api/proto/v1;pbb\x06proto3"

var (
	file_v1_registry_proto_rawDescOnce sync.Once
	file_v1_registry_proto_rawDescData []byte
)

func file_v1_registry_proto_rawDescGZIP() []byte {
	file_v1_registry_proto_rawDescOnce.Do(func() {
		file_v1_registry_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_v1_registry_proto_rawDesc), len(file_v1_registry_proto_rawDesc)))
	})
	return file_v1_registry_proto_rawDescData
}

var file_v1_registry_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_v1_registry_proto_goTypes = []any{
	(*Snapshot)(nil),
	(*PipelineState)(nil),
	(*StepState)(nil),
	(*DenseMatrix)(nil),
	(*RegistryEvent)(nil),
}
var file_v1_registry_proto_depIdxs = []int32{
	1,
	2,
	3,
	3,
	3,
	3,
	3,
	0,
}

func init() { file_v1_registry_proto_init() }
func file_v1_registry_proto_init() {
	if File_v1_registry_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_v1_registry_proto_rawDesc), len(file_v1_registry_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_v1_registry_proto_goTypes,
		DependencyIndexes: file_v1_registry_proto_depIdxs,
		MessageInfos:      file_v1_registry_proto_msgTypes,
	}.Build()
	File_v1_registry_proto = out.File
	file_v1_registry_proto_goTypes = nil
	file_v1_registry_proto_depIdxs = nil
}
