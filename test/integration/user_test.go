package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"schoolhub_backend/internal/models"
	"schoolhub_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginStudent(t, ts, tx)

	body := map[string]interface{}{
		"name":  "Renamed Student",
		"phone": "+7 700 000 0000",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me", token, tx, body)
	assert.Equal(t, http.StatusOK, res.Code, bodyStr)
	assert.Contains(t, bodyStr, "Renamed Student")

	var stored models.User
	require.NoError(t, tx.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "Renamed Student", stored.Name)
	assert.Equal(t, "+7 700 000 0000", stored.Phone)
	// fields absent from the request keep their values
	assert.Equal(t, user.Email, stored.Email)
}

func TestUpdateUserStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	studentToken, student := helpers.CreateAndLoginStudent(t, ts, tx)

	path := fmt.Sprintf("/api/v1/users/%s/status", student.ID)
	body := map[string]interface{}{"status": "suspended"}

	// students cannot manage accounts
	forbiddenRes, _ := ts.SendRequest(t, http.MethodPut, path, studentToken, tx, body)
	assert.Equal(t, http.StatusForbidden, forbiddenRes.Code)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, path, adminToken, tx, body)
	assert.Equal(t, http.StatusOK, res.Code, bodyStr)

	var stored models.User
	require.NoError(t, tx.First(&stored, "id = ?", student.ID).Error)
	assert.Equal(t, models.UserStatusSuspended, stored.Status)

	badRes, badBodyStr := ts.SendRequest(t, http.MethodPut, path, adminToken, tx, map[string]interface{}{"status": "banana"})
	assert.Equal(t, http.StatusBadRequest, badRes.Code, badBodyStr)
}
