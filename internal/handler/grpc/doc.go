// Package grpc exposes the video-blog API as the gRPC service
// "videoblog.VideoBlog".
//
// Messages are the HTTP API's JSON bodies carried by a JSON codec registered
// under the "json" content-subtype, so clients call it with
// grpc.CallContentSubtype("json") and no generated code. Authorization uses
// the "authorization" metadata key with a bearer token.
package grpc
