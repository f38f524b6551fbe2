package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shubham56-h/Trackify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name            string
		request         map[string]interface{}
		setup           func()
		expectedStatus  int
		expectedMessage string
		checkResponse   func(*testing.T, *http.Response)
	}{
		{
			name: "successful signup",
			request: map[string]interface{}{
				"email":    "New.User@Example.com",
				"password": "password123",
				"name":     "New User",
				"mobile":   "5550100",
				"age":      30,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var result map[string]string
				testutil.AssertJSONResponse(t, resp, &result)
				assert.NotEmpty(t, result["id"])
				assert.Equal(t, "new.user@example.com", result["email"])
				assert.Equal(t, "New User", result["name"])
			},
		},
		{
			name: "missing mobile",
			request: map[string]interface{}{
				"email":    "a@example.com",
				"password": "password123",
				"name":     "A",
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email, password, name, and mobile are required",
		},
		{
			name: "duplicate email",
			request: map[string]interface{}{
				"email":    "taken@example.com",
				"password": "password123",
				"name":     "Dup",
				"mobile":   "5550101",
			},
			setup: func() {
				testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, ts.DB.DB)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email already taken",
		},
		{
			name:            "empty request body",
			request:         map[string]interface{}{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email, password, name, and mobile are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/signup"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			if tt.expectedMessage != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedMessage)
				return
			}
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("login@example.com").
		WithPassword("correctpassword").
		Build(t, ts.DB.DB)

	tests := []struct {
		name           string
		request        map[string]string
		expectedStatus int
	}{
		{
			name: "successful login",
			request: map[string]string{
				"email":    user.Email,
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "email is case-insensitive",
			request: map[string]string{
				"email":    "LOGIN@example.com",
				"password": rawPassword,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid password",
			request: map[string]string{
				"email":    user.Email,
				"password": "wrongpassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "non-existent user",
			request: map[string]string{
				"email":    "nobody@example.com",
				"password": "anypassword",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			request: map[string]string{
				"email": user.Email,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus == http.StatusOK {
				var result map[string]string
				testutil.AssertJSONResponse(t, resp, &result)
				assert.NotEmpty(t, result["access_token"])
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().WithName("Profile Owner").BuildAndAuthenticate(t, ts)

	t.Run("returns profile", func(t *testing.T) {
		resp := testutil.Do(t, http.MethodGet, ts.APIURL("/auth/me"), nil, token)
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var profile map[string]interface{}
		testutil.AssertJSONResponse(t, resp, &profile)
		assert.Equal(t, user.ID.String(), profile["id"])
		assert.Equal(t, "Profile Owner", profile["name"])
		assert.NotContains(t, profile, "password_hash")
	})

	t.Run("missing token", func(t *testing.T) {
		resp := testutil.Do(t, http.MethodGet, ts.APIURL("/auth/me"), nil, "")
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Missing Authorization Header")
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := testutil.Do(t, http.MethodGet, ts.APIURL("/auth/me"), nil, "not-a-jwt")
		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid token")
	})
}

func TestHealthAndMetrics(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.BaseURL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var health map[string]string
	testutil.AssertJSONResponse(t, resp, &health)
	assert.Equal(t, "ok", health["status"])

	metricsResp, err := http.Get(ts.BaseURL() + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
}
