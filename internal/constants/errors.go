package constants

// Error messages used throughout the API handlers
const (
	// Not found errors
	ChapterNotFound = "chapter not found"
	RouteNotFound   = "route not found"

	// Access errors
	AccessDenied      = "access code required"
	RateLimitExceeded = "rate limit exceeded"

	// Render errors
	RenderFailed = "failed to render page"
)
