package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"schoolhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := helpers.UniqueEmail("register")
	registerBody := map[string]interface{}{
		"name":     "New Student",
		"email":    email,
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", tx, registerBody)
	assert.Equal(t, http.StatusCreated, regRes.Code, regBodyStr)
	assert.Contains(t, regBodyStr, email)
	// new accounts always start as active students
	assert.Contains(t, regBodyStr, `"role":"student"`)
	assert.Contains(t, regBodyStr, `"status":"active"`)
	assert.NotContains(t, regBodyStr, "password", "password material must never leave the server")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", tx, loginBody)
	assert.Equal(t, http.StatusOK, logRes.Code, logBodyStr)

	var loginResponse struct {
		Success     bool   `json:"success"`
		AccessToken string `json:"access_token"`
		User        struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &loginResponse))
	assert.True(t, loginResponse.Success)
	assert.NotEmpty(t, loginResponse.AccessToken)
	assert.Equal(t, email, loginResponse.User.Email)
	assert.NotEmpty(t, loginResponse.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := helpers.UniqueEmail("duplicate")
	body := map[string]interface{}{
		"name":     "First Account",
		"email":    email,
		"password": "password123",
	}

	firstRes, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", tx, body)
	require.Equal(t, http.StatusCreated, firstRes.Code)

	secondRes, secondBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", tx, body)
	assert.Equal(t, http.StatusConflict, secondRes.Code)
	assert.Contains(t, secondBodyStr, "User with this email already exists")
	assert.Contains(t, secondBodyStr, `"success":false`)
}

func TestLogin_WrongCredentialsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, user := helpers.CreateAndLoginStudent(t, ts, tx)

	wrongPassword := map[string]interface{}{
		"email":    user.Email,
		"password": "not-the-password",
	}
	unknownUser := map[string]interface{}{
		"email":    helpers.UniqueEmail("ghost"),
		"password": "whatever123",
	}

	res1, body1 := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", tx, wrongPassword)
	res2, body2 := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", tx, unknownUser)

	// both failures answer identically so account existence cannot be probed
	assert.Equal(t, http.StatusUnauthorized, res1.Code)
	assert.Equal(t, http.StatusUnauthorized, res2.Code)
	assert.Contains(t, body1, "Invalid email or password")
	assert.Contains(t, body2, "Invalid email or password")
}

func TestAuth_ValidationMessages(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	cases := []struct {
		name     string
		path     string
		body     map[string]interface{}
		expected string
	}{
		{
			name:     "login missing password",
			path:     "/api/v1/auth/login",
			body:     map[string]interface{}{"email": "someone@test.com"},
			expected: "Email and password are required",
		},
		{
			name:     "login malformed email",
			path:     "/api/v1/auth/login",
			body:     map[string]interface{}{"email": "not-an-email", "password": "password123"},
			expected: "Invalid email format",
		},
		{
			name:     "register missing email",
			path:     "/api/v1/auth/register",
			body:     map[string]interface{}{"name": "No Email", "password": "password123"},
			expected: "Email, password and name are required",
		},
		{
			name:     "register short password",
			path:     "/api/v1/auth/register",
			body:     map[string]interface{}{"name": "Shorty", "email": helpers.UniqueEmail("short"), "password": "12345"},
			expected: "Password must be at least 6 characters long",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, bodyStr := ts.SendRequest(t, http.MethodPost, tc.path, "", tx, tc.body)
			assert.Equal(t, http.StatusBadRequest, res.Code, bodyStr)
			assert.Contains(t, bodyStr, tc.expected)
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginStudent(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, tx, nil)
	assert.Equal(t, http.StatusOK, res.Code, bodyStr)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Name)

	noTokenRes, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", tx, nil)
	assert.Equal(t, http.StatusUnauthorized, noTokenRes.Code)
}
