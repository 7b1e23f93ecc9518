package services

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jobscout/jobscout/internal/entities"
	"github.com/jobscout/jobscout/internal/metrics"
	"github.com/jobscout/jobscout/pkg/validate"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"

	minPasswordLength = 8

	defaultProfilePicture = "https://via.placeholder.com/150"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Session is a user record paired with an opaque token.
type Session struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

// AuthService is a mock credential backend: one hardcoded account, token
// uniqueness only within the process lifetime.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

func (s *AuthService) Login(ctx context.Context, credentials Credentials) (Session, error) {

	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	if credentials.Email != demoEmail || credentials.Password != demoPassword {
		metrics.LoginAttemptsCounter.WithLabelValues("failure").Inc()
		return Session{}, entities.ErrInvalidCredentials
	}

	metrics.LoginAttemptsCounter.WithLabelValues("success").Inc()
	return Session{
		User: entities.User{
			ID:             "1",
			Username:       "Demo User",
			Email:          credentials.Email,
			ProfilePicture: defaultProfilePicture,
			Bio:            "Full-stack developer with 5+ years of experience",
			Skills:         []string{"React Native", "TypeScript", "Node.js", "PostgreSQL"},
			Experience:     "5+ years",
			Location:       "San Francisco, CA",
		},
		Token: newToken(),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, registration Registration) (Session, error) {

	if err := ctx.Err(); err != nil {
		return Session{}, err
	}

	if !validate.Email(registration.Email) {
		return Session{}, &entities.ValidationError{Field: "email", Reason: "invalid email address"}
	}

	if registration.Password != registration.ConfirmPassword {
		return Session{}, &entities.ValidationError{Field: "confirmPassword", Reason: "passwords do not match"}
	}

	if len(registration.Password) < minPasswordLength {
		return Session{}, &entities.ValidationError{Field: "password", Reason: "password must be at least 8 characters long"}
	}

	return Session{
		User: entities.User{
			ID:             strconv.FormatInt(time.Now().UnixMilli(), 10),
			Username:       registration.Username,
			Email:          registration.Email,
			ProfilePicture: defaultProfilePicture,
			Skills:         []string{},
			Experience:     "Entry level",
		},
		Token: newToken(),
	}, nil
}

// UpdateProfile merges partial fields over the demo baseline. Missing
// fields fall back to defaults rather than being patched around, matching
// the backend contract.
func (s *AuthService) UpdateProfile(ctx context.Context, partial entities.User) (entities.User, error) {

	if err := ctx.Err(); err != nil {
		return entities.User{}, err
	}

	updated := entities.User{
		ID:             "1",
		Username:       "Demo User",
		Email:          demoEmail,
		ProfilePicture: defaultProfilePicture,
		Skills:         []string{},
		Experience:     "Entry level",
		Resume:         partial.Resume,
	}

	if partial.ID != "" {
		updated.ID = partial.ID
	}
	if partial.Username != "" {
		updated.Username = partial.Username
	}
	if partial.Email != "" {
		updated.Email = partial.Email
	}
	if partial.ProfilePicture != "" {
		updated.ProfilePicture = partial.ProfilePicture
	}
	if partial.Bio != "" {
		updated.Bio = partial.Bio
	}
	if len(partial.Skills) > 0 {
		updated.Skills = partial.Skills
	}
	if partial.Experience != "" {
		updated.Experience = partial.Experience
	}
	if partial.Location != "" {
		updated.Location = partial.Location
	}

	return updated, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validate.Email(email) {
		return "", &entities.ValidationError{Field: "email", Reason: "invalid email address"}
	}
	return "Password reset email sent to " + email, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(newPassword) < minPasswordLength {
		return "", &entities.ValidationError{Field: "newPassword", Reason: "password must be at least 8 characters long"}
	}
	return "Password changed successfully", nil
}

func newToken() string {
	return "mock-jwt-token-" + uuid.NewString()
}
