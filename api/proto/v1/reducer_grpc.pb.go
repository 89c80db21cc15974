package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

const _ = grpc.SupportPackageIsVersion9

const (
	Reducer_Fit_FullMethodName           = "/dimred.v1.Reducer/Fit"
	Reducer_Transform_FullMethodName     = "/dimred.v1.Reducer/Transform"
	Reducer_Load_FullMethodName          = "/dimred.v1.Reducer/Load"
	Reducer_ListPipelines_FullMethodName = "/dimred.v1.Reducer/ListPipelines"
)

type ReducerClient interface {
	Fit(ctx context.Context, in *FitRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Transform(ctx context.Context, in *TransformRequest, opts ...grpc.CallOption) (*VectorResponse, error)
	Load(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListPipelines(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PipelineList, error)
}

type reducerClient struct {
	cc grpc.ClientConnInterface
}

func NewReducerClient(cc grpc.ClientConnInterface) ReducerClient {
	return &reducerClient{cc}
}

func (c *reducerClient) Fit(ctx context.Context, in *FitRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Reducer_Fit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reducerClient) Transform(ctx context.Context, in *TransformRequest, opts ...grpc.CallOption) (*VectorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VectorResponse)
	err := c.cc.Invoke(ctx, Reducer_Transform_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reducerClient) Load(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, Reducer_Load_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reducerClient) ListPipelines(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*PipelineList, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PipelineList)
	err := c.cc.Invoke(ctx, Reducer_ListPipelines_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type ReducerServer interface {
	Fit(context.Context, *FitRequest) (*emptypb.Empty, error)
	Transform(context.Context, *TransformRequest) (*VectorResponse, error)
	Load(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ListPipelines(context.Context, *emptypb.Empty) (*PipelineList, error)
	mustEmbedUnimplementedReducerServer()
}

type UnimplementedReducerServer struct{}

func (UnimplementedReducerServer) Fit(context.Context, *FitRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Fit not implemented")
}
func (UnimplementedReducerServer) Transform(context.Context, *TransformRequest) (*VectorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Transform not implemented")
}
func (UnimplementedReducerServer) Load(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Load not implemented")
}
func (UnimplementedReducerServer) ListPipelines(context.Context, *emptypb.Empty) (*PipelineList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPipelines not implemented")
}
func (UnimplementedReducerServer) mustEmbedUnimplementedReducerServer() {}
func (UnimplementedReducerServer) testEmbeddedByValue()                 {}

type UnsafeReducerServer interface {
	mustEmbedUnimplementedReducerServer()
}

func RegisterReducerServer(s grpc.ServiceRegistrar, srv ReducerServer) {

	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Reducer_ServiceDesc, srv)
}

func _Reducer_Fit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReducerServer).Fit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Reducer_Fit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReducerServer).Fit(ctx, req.(*FitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Reducer_Transform_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransformRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReducerServer).Transform(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Reducer_Transform_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReducerServer).Transform(ctx, req.(*TransformRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Reducer_Load_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReducerServer).Load(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Reducer_Load_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReducerServer).Load(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Reducer_ListPipelines_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReducerServer).ListPipelines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Reducer_ListPipelines_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReducerServer).ListPipelines(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var Reducer_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dimred.v1.Reducer",
	HandlerType: (*ReducerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Fit",
			Handler:    _Reducer_Fit_Handler,
		},
		{
			MethodName: "Transform",
			Handler:    _Reducer_Transform_Handler,
		},
		{
			MethodName: "Load",
			Handler:    _Reducer_Load_Handler,
		},
		{
			MethodName: "ListPipelines",
			Handler:    _Reducer_ListPipelines_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "v1/reducer.proto",
}
