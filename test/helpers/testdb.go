package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"schoolhub_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing PasswordHash first when it is still a
// raw password.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash test password")
		user.PasswordHash = string(hashed)
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	if user.Role == "" {
		user.Role = models.UserRoleStudent
	}

	require.NoError(t, db.Create(user).Error, "failed to create test user %s", user.Email)
	return user
}

// UniqueEmail returns an address that will not collide with other tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateAndLoginUser creates a user inside tx and logs in through the API,
// returning the bearer token alongside the stored user.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, tx, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", tx, loginBody)
	require.Equal(t, http.StatusOK, res.Code, "login should succeed, got: %s", bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token, "login must return a token")

	return loginResponse.Token, user
}

// CreateAndLoginAdmin is a shortcut for tests that need write capabilities.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	return CreateAndLoginUser(t, ts, tx, "Test Admin", UniqueEmail("admin"), "password123", models.UserRoleAdmin)
}

// CreateAndLoginStudent creates a regular student account.
func CreateAndLoginStudent(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	return CreateAndLoginUser(t, ts, tx, "Test Student", UniqueEmail("student"), "password123", models.UserRoleStudent)
}

// CreateNotificationFor inserts a notification and fans it out to the given
// users directly through the database.
func CreateNotificationFor(t *testing.T, tx *gorm.DB, title string, userIDs ...string) *models.Notification {
	notification := &models.Notification{
		Title:   title,
		Message: "test message",
		Type:    models.NotificationTypeInfo,
	}
	require.NoError(t, tx.Create(notification).Error)

	for _, userID := range userIDs {
		un := &models.UserNotification{
			NotificationID: notification.ID,
			UserID:         userID,
		}
		require.NoError(t, tx.Create(un).Error)
	}
	return notification
}
