package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/container"
)

var adapter *chiadapter.ChiLambda

func init() {
	settings, err := config.Load(".")
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to load configuration")
	}

	c := container.New(context.Background(), settings)
	adapter = chiadapter.New(c.Router())
	config.Logger.Info("Lambda handler ready")
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
