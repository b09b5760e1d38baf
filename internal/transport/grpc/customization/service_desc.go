package customization

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const serviceName = "customization.v1.CustomizationService"

// CustomizationServiceServer is the server API for the customization service.
// Requests and replies are JSON objects carried as google.protobuf.Struct.
type CustomizationServiceServer interface {
	PriceItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DefineSchema(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSchema(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ActivateSchema(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeactivateSchema(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSchema(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListItemSchemas(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterCustomizationServiceServer(s grpc.ServiceRegistrar, srv CustomizationServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc is the grpc.ServiceDesc for CustomizationService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CustomizationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PriceItem", Handler: unary("PriceItem", CustomizationServiceServer.PriceItem)},
		{MethodName: "DefineSchema", Handler: unary("DefineSchema", CustomizationServiceServer.DefineSchema)},
		{MethodName: "UpdateSchema", Handler: unary("UpdateSchema", CustomizationServiceServer.UpdateSchema)},
		{MethodName: "ActivateSchema", Handler: unary("ActivateSchema", CustomizationServiceServer.ActivateSchema)},
		{MethodName: "DeactivateSchema", Handler: unary("DeactivateSchema", CustomizationServiceServer.DeactivateSchema)},
		{MethodName: "GetSchema", Handler: unary("GetSchema", CustomizationServiceServer.GetSchema)},
		{MethodName: "ListItemSchemas", Handler: unary("ListItemSchemas", CustomizationServiceServer.ListItemSchemas)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "customization/v1/customization.proto",
}

type unaryMethod func(CustomizationServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(method string, call unaryMethod) grpc.MethodHandler {
	fullMethod := "/" + serviceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CustomizationServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CustomizationServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client is a thin client for CustomizationService.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes one method by name, e.g. "PriceItem".
func (c *Client) Call(ctx context.Context, method string, in map[string]any, opts ...grpc.CallOption) (map[string]any, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}
