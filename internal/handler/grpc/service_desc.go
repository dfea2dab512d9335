package grpc

import (
	"context"

	"github.com/MKhiriev/go-feature-serving/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServingServiceName is the fully qualified gRPC service name.
const ServingServiceName = "feast.serving.ServingService"

// ServingServer is the server API of the serving service.
type ServingServer interface {
	GetFeastServingInfo(context.Context, *models.GetServingInfoRequest) (*models.AppVersionResponse, error)
	GetOnlineFeatures(context.Context, *models.OnlineRequest) (*models.OnlineResponse, error)
	GetOnlineFeaturesV2(context.Context, *models.OnlineRequestV2) (*models.OnlineResponse, error)
	GetBatchFeatures(context.Context, *models.BatchRequest) (*models.Job, error)
	GetJob(context.Context, *models.GetJobRequest) (*models.Job, error)
}

// ServingServiceDesc describes the serving service for grpc.Server.RegisterService.
var ServingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServingServiceName,
	HandlerType: (*ServingServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetFeastServingInfo", Handler: unaryHandler("GetFeastServingInfo", ServingServer.GetFeastServingInfo)},
		{MethodName: "GetOnlineFeatures", Handler: unaryHandler("GetOnlineFeatures", ServingServer.GetOnlineFeatures)},
		{MethodName: "GetOnlineFeaturesV2", Handler: unaryHandler("GetOnlineFeaturesV2", ServingServer.GetOnlineFeaturesV2)},
		{MethodName: "GetBatchFeatures", Handler: unaryHandler("GetBatchFeatures", ServingServer.GetBatchFeatures)},
		{MethodName: "GetJob", Handler: unaryHandler("GetJob", ServingServer.GetJob)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "feast/serving/ServingService.proto",
}

// FullMethod returns the "/service/method" path of a serving method.
func FullMethod(method string) string {
	return "/" + ServingServiceName + "/" + method
}

// unaryHandler adapts a typed ServingServer method to grpc.MethodDesc.Handler:
// it decodes the request, then runs the method through the interceptor chain.
func unaryHandler[Req, Resp any](method string, call func(ServingServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := FullMethod(method)

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s request: %v", method, err)
		}

		server := srv.(ServingServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		})
	}
}
