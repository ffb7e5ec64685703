package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name reported in structured logs
	ServiceName = "cyphera-pitch"
)
