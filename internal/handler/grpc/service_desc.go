package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/video-blog/internal/app"
	"github.com/MKhiriev/video-blog/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "videoblog.VideoBlog"

// Method names of the VideoBlog service.
const (
	MethodRegister    = "Register"
	MethodLogin       = "Login"
	MethodListVideos  = "ListVideos"
	MethodGetVideo    = "GetVideo"
	MethodCreateVideo = "CreateVideo"
	MethodUpdateVideo = "UpdateVideo"
	MethodDeleteVideo = "DeleteVideo"
)

// FullMethod returns the "/service/method" path of method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// VideoBlogServer is the server API of the VideoBlog service. Payloads are
// the HTTP API's JSON bodies.
type VideoBlogServer interface {
	Register(context.Context, *models.User) (*models.AuthResponse, error)
	Login(context.Context, *models.Credentials) (*models.AuthResponse, error)
	ListVideos(context.Context, *Empty) ([]models.Video, error)
	GetVideo(context.Context, *VideoRequest) (*models.Video, error)
	CreateVideo(context.Context, *models.NewVideo) (*models.Video, error)
	UpdateVideo(context.Context, *UpdateVideoRequest) (*models.Video, error)
	DeleteVideo(context.Context, *VideoRequest) (*Empty, error)
}

// ServiceDesc describes VideoBlog for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VideoBlogServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodRegister, VideoBlogServer.Register),
		unaryMethod(MethodLogin, VideoBlogServer.Login),
		unaryMethod(MethodListVideos, VideoBlogServer.ListVideos),
		unaryMethod(MethodGetVideo, VideoBlogServer.GetVideo),
		unaryMethod(MethodCreateVideo, VideoBlogServer.CreateVideo),
		unaryMethod(MethodUpdateVideo, VideoBlogServer.UpdateVideo),
		unaryMethod(MethodDeleteVideo, VideoBlogServer.DeleteVideo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "videoblog.json",
}

// unaryMethod builds the method descriptor for call, decoding the request
// into a fresh *Req and running the server's interceptor chain.
func unaryMethod[Req, Resp any](name string, call func(VideoBlogServer, context.Context, *Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, status.Error(codes.InvalidArgument, app.MsgInvalidJSON)
			}
			if interceptor == nil {
				return call(srv.(VideoBlogServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(VideoBlogServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
