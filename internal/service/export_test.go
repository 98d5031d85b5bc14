package service

// VideoValidationServiceImpl exposes the unexported validation wrapper type to
// the external service_test package.
type VideoValidationServiceImpl = videoValidationService
