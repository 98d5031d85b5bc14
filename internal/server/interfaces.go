package server

// Server runs the video-blog transports.
type Server interface {
	// RunServer serves HTTP and/or gRPC and blocks until a stop signal has
	// been handled and every transport has shut down.
	RunServer()

	// Shutdown stops accepting requests and drains the in-flight ones.
	Shutdown()
}
