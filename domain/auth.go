package domain

import "context"

type RegisterRequest struct {
	Email      string `json:"email" valid:"email~Invalid email format"`
	Password   string `json:"password"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Gender     string `json:"gender"`
}

// Redacted is what gets logged alongside provider failures.
func (r RegisterRequest) Redacted() map[string]any {
	return map[string]any{
		"email":       r.Email,
		"given_name":  r.GivenName,
		"family_name": r.FamilyName,
		"gender":      r.Gender,
	}
}

type UserAttribute struct {
	Name  string
	Value string
}

type SignUpInput struct {
	Username       string
	Password       string
	UserAttributes []UserAttribute
}

type SignUpResult struct {
	UserSub       string `json:"user_sub"`
	UserConfirmed bool   `json:"user_confirmed"`
}

// ProviderError carries the identity provider's own error name and message.
type ProviderError struct {
	Name    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Name + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type RegisterResponse struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Data    SignUpResponse `json:"data"`
}

type SignUpResponse struct {
	Success *bool          `json:"success,omitempty"`
	Failure *SignUpFailure `json:"failure,omitempty"`
}

type SignUpFailure struct {
	Email string `json:"email"`
}

type IdentityProvider interface {
	SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error)
}

type AuthUseCase interface {
	RegisterUser(ctx context.Context, data *RegisterRequest) (*SignUpResult, error)
}
