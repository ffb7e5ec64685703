//go:build lambda
// +build lambda

package main

import (
	"context"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/middleware"
	"github.com/cyphera/cyphera-pitch/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title           Cyphera Pitch API
// @version         1.0
// @description     Localized business plan and pitch deck content

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey AccessCode
// @in header
// @name X-Access-Code

var ginLambda *ginadapter.GinLambda

func init() {
	// Content is embedded, so cold starts only normalize it once.
	s := server.InitializeHandlers(context.Background())
	ginLambda = ginadapter.New(s.Router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if logger.L().Core().Enabled(zapcore.DebugLevel) {
		dump := req
		dump.Headers = redactHeaders(req.Headers)
		dump.MultiValueHeaders = nil
		logger.Debug("Received Lambda request",
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(dump)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func redactHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if strings.EqualFold(k, middleware.AccessCodeHeader) || strings.EqualFold(k, "Cookie") {
			v = "[redacted]"
		}
		out[k] = v
	}
	return out
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
