package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"

	"recruitment/domain"
)

// CognitoAPI is the slice of the Cognito client this adapter calls.
type CognitoAPI interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
}

type cognitoRepository struct {
	client   CognitoAPI
	clientID string
}

func NewCognitoRepository(client CognitoAPI, clientID string) domain.IdentityProvider {
	return &cognitoRepository{
		client:   client,
		clientID: clientID,
	}
}

func (cr *cognitoRepository) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.SignUpResult, error) {
	attrs := make([]types.AttributeType, 0, len(input.UserAttributes))
	for _, a := range input.UserAttributes {
		attrs = append(attrs, types.AttributeType{
			Name:  aws.String(a.Name),
			Value: aws.String(a.Value),
		})
	}

	out, err := cr.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:       aws.String(cr.clientID),
		Username:       aws.String(input.Username),
		Password:       aws.String(input.Password),
		UserAttributes: attrs,
	})
	if err != nil {
		var exists *types.UsernameExistsException
		if errors.As(err, &exists) {
			return nil, &domain.ProviderError{
				Name:    exists.ErrorCode(),
				Message: exists.ErrorMessage(),
				Err:     fmt.Errorf("%w: %w", domain.ErrUsernameExists, err),
			}
		}

		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, &domain.ProviderError{
				Name:    apiErr.ErrorCode(),
				Message: apiErr.ErrorMessage(),
				Err:     err,
			}
		}

		return nil, fmt.Errorf("cognito sign up failed: %w", err)
	}

	return &domain.SignUpResult{
		UserSub:       aws.ToString(out.UserSub),
		UserConfirmed: out.UserConfirmed,
	}, nil
}
