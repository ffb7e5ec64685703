package middleware

import (
	"github.com/cyphera/cyphera-pitch/internal/logger"
)

func init() {
	logger.InitLogger("test")
}
