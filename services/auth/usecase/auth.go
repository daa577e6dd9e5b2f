package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"recruitment/config"
	"recruitment/domain"
)

type authUC struct {
	provider domain.IdentityProvider
	TimeOut  time.Duration
}

func NewAuthUseCase(provider domain.IdentityProvider, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		provider: provider,
		TimeOut:  timeOut,
	}
}

func (auc *authUC) RegisterUser(ctx context.Context, data *domain.RegisterRequest) (*domain.SignUpResult, error) {
	if data == nil {
		data = &domain.RegisterRequest{}
	}
	details := map[string]any{"email": data.Email}

	if isBlank(data.Email) || isBlank(data.Password) || isBlank(data.GivenName) || isBlank(data.FamilyName) || isBlank(data.Gender) {
		return nil, domain.BadRequest("All fields are required", details)
	}

	if strings.Contains(data.Password, data.Email) ||
		strings.Contains(data.Password, data.GivenName) ||
		strings.Contains(data.Password, data.FamilyName) {
		return nil, domain.BadRequest("Password cannot contain personal info", details)
	}

	if appErr := domain.Validate(data); appErr != nil {
		appErr.Details["email"] = data.Email
		return nil, appErr
	}

	ctx, cancel := context.WithTimeout(ctx, auc.TimeOut)
	defer cancel()

	res, err := auc.provider.SignUp(ctx, domain.SignUpInput{
		Username: data.Email,
		Password: data.Password,
		UserAttributes: []domain.UserAttribute{
			{Name: "email", Value: data.Email},
			{Name: "given_name", Value: data.GivenName},
			{Name: "family_name", Value: data.FamilyName},
			{Name: "gender", Value: data.Gender},
		},
	})
	if err != nil {
		config.LogErrorLocation("auth.go", "RegisterUser", err, "AWS Cognito signup error",
			config.RequestMeta{Other: map[string]any{"data": data.Redacted()}})

		if errors.Is(err, domain.ErrUsernameExists) {
			return nil, domain.Conflict("User already exists with this email", details).Wrap(err)
		}

		message := "Failed to register user"
		var provErr *domain.ProviderError
		if errors.As(err, &provErr) && provErr.Message != "" {
			message = provErr.Message
		}
		return nil, domain.InternalServerError(message, details).Wrap(err)
	}

	return res, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
