package service_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shubham56-h/Trackify/internal/domain"
	"github.com/shubham56-h/Trackify/internal/metrics"
	"github.com/shubham56-h/Trackify/internal/repository/postgres"
	"github.com/shubham56-h/Trackify/internal/service"
	fixtures "github.com/shubham56-h/Trackify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	testDB := fixtures.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	m := metrics.NewTestManager()
	authService := service.NewAuthService(repos.User, fixtures.TestConfig(), m)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     service.SignupInput
		setup     func()
		wantErr   error
		wantValid bool
	}{
		{
			name: "successful signup",
			input: service.SignupInput{
				Email:    "  Mixed.Case@Example.com ",
				Password: "password123",
				Name:     "Mixed Case",
				Mobile:   "5550100",
			},
		},
		{
			name: "missing name",
			input: service.SignupInput{
				Email:    "a@example.com",
				Password: "password123",
				Mobile:   "5550100",
			},
			wantValid: true,
		},
		{
			name: "email taken regardless of case",
			input: service.SignupInput{
				Email:    "TAKEN@example.com",
				Password: "password123",
				Name:     "Dup",
				Mobile:   "5550100",
			},
			setup: func() {
				fixtures.NewUserBuilder().WithEmail("taken@example.com").Build(t, testDB.DB)
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.Signup(ctx, tt.input)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantValid:
				assert.True(t, domain.IsValidation(err), "got %v", err)
			default:
				require.NoError(t, err)
				assert.Equal(t, "mixed.case@example.com", user.Email)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			}
		})
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSignups))
}

func TestAuthService_LoginAndToken(t *testing.T) {
	testDB := fixtures.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, fixtures.TestConfig(), nil)
	ctx := context.Background()

	user, password := fixtures.NewUserBuilder().WithEmail("login@example.com").Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{Email: "Login@Example.com", Password: password})
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)

	userID, err := authService.UserIDFromToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, err = authService.Login(ctx, service.LoginInput{Email: "login@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = authService.Login(ctx, service.LoginInput{Email: "ghost@example.com", Password: password})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = authService.UserIDFromToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret is rejected.
	otherCfg := fixtures.TestConfig()
	otherCfg.JWTSecret = "another-secret"
	other := service.NewAuthService(repos.User, otherCfg, nil)
	_, err = other.UserIDFromToken(result.AccessToken)
	assert.Error(t, err)
}
