package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/service"
	"github.com/MKhiriev/video-blog/internal/utils"
)

// Handler is the root gRPC transport handler.
//
// It implements [VideoBlogServer] on top of the service layer. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	traceIDs *utils.UUIDGenerator

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

var _ VideoBlogServer = (*Handler)(nil)

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// ServerOptions returns the unary interceptor chain: trace id, access log,
// panic recovery, then authorization.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withRecover, h.withAuth),
	}
}

// RegisterService attaches the VideoBlog service to server.
func (h *Handler) RegisterService(server *grpc.Server) {
	server.RegisterService(&ServiceDesc, h)
}
