package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

const HeaderConnectionID = "X-Connection-Id"

// ErrGone means the client is no longer connected and its registration can be dropped.
var ErrGone = errors.New("connection is gone")

type GatewayClient interface {
	PostToConnection(ctx context.Context, connID string, data any) error
	DeleteConnection(ctx context.Context, connID string) error
}

type AWSGatewayClient struct {
	client *apigatewaymanagementapi.Client
}

func NewAWSGatewayClient(ctx context.Context, endpoint, region string) (*AWSGatewayClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		if region != "" {
			o.Region = region
		}
	})
	return &AWSGatewayClient{client: client}, nil
}

func (g *AWSGatewayClient) PostToConnection(ctx context.Context, connID string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = g.client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connID),
		Data:         payload,
	})
	return translateErr(err)
}

func (g *AWSGatewayClient) DeleteConnection(ctx context.Context, connID string) error {
	_, err := g.client.DeleteConnection(ctx, &apigatewaymanagementapi.DeleteConnectionInput{
		ConnectionId: aws.String(connID),
	})
	return translateErr(err)
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var gone *types.GoneException
	if errors.As(err, &gone) {
		return ErrGone
	}
	return err
}
