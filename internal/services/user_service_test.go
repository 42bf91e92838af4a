package services

import (
	"net/http"
	"testing"

	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile_PartialMerge(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{
		Email: "p@x.c",
		Name:  "Before",
		Phone: "111",
	})
	service := NewUserService(userRepo)

	newName := "After"
	updated, err := service.UpdateProfile(nil, user.ID, &dto.UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "111", updated.Phone, "fields absent from the request are untouched")
	assert.Equal(t, "p@x.c", updated.Email)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	service := NewUserService(newFakeUserRepo())

	name := "x"
	_, err := service.UpdateProfile(nil, "missing", &dto.UpdateProfileRequest{Name: &name})
	assertAppError(t, err, http.StatusNotFound, "User not found")
}

func TestUpdateStatus(t *testing.T) {
	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{Email: "s@x.c"})
	service := NewUserService(userRepo)

	require.NoError(t, service.UpdateStatus(nil, user.ID, models.UserStatusSuspended))
	assert.Equal(t, models.UserStatusSuspended, userRepo.users[user.ID].Status)

	err := service.UpdateStatus(nil, user.ID, models.UserStatus("banana"))
	assertAppError(t, err, http.StatusBadRequest, "Status must be one of: active, inactive, suspended")

	err = service.UpdateStatus(nil, "missing", models.UserStatusActive)
	assertAppError(t, err, http.StatusNotFound, "User not found")
}
