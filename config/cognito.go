package config

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

func GetCognitoClientID() (string, error) {
	return requireEnv("COGNITO_CLIENT_ID")
}

// InitCognito builds the identity provider client from the default AWS credential chain.
func InitCognito(ctx context.Context) (*cognitoidentityprovider.Client, error) {
	region, err := requireEnv("AWS_REGION")
	if err != nil {
		return nil, err
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return cognitoidentityprovider.NewFromConfig(cfg), nil
}
