package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tailyapp/taily-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUserHidesPassword(t *testing.T) {
	users := &stubUserUsecase{
		createUser: func(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
			user := &models.User{
				ID:        primitive.NewObjectID(),
				Email:     req.Email,
				Password:  "$2a$10$secret-hash",
				FirstName: req.FirstName,
				LastName:  req.LastName,
				IsActive:  true,
				Role:      models.RoleUser,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			user.ComputeFullName()
			return user, nil
		},
	}
	e := newTestServer(&stubPetUsecase{}, users)

	rec := doJSON(e, http.MethodPost, "/api/users",
		`{"email":"jane@x.com","password":"hunter22","firstName":"Jane","lastName":"Doe"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	body := decodeBody(t, rec)
	assert.Equal(t, "jane@x.com", body["email"])
	assert.Equal(t, "Jane Doe", body["fullName"])
	assert.Equal(t, "user", body["role"])
}

func TestCreateUserValidationError(t *testing.T) {
	e := newTestServer(&stubPetUsecase{}, &stubUserUsecase{})

	rec := doJSON(e, http.MethodPost, "/api/users",
		`{"email":"not-an-email","password":"hunter22","firstName":"Jane"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Validation error", body["message"])
	assert.Contains(t, body["details"], "email must be a valid email address")
	assert.Contains(t, body["details"], "lastName is required")
}

func TestCreateUserConflictResponse(t *testing.T) {
	users := &stubUserUsecase{
		createUser: func(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
			return nil, models.NewConflict("email", "Email already exists")
		},
	}
	e := newTestServer(&stubPetUsecase{}, users)

	rec := doJSON(e, http.MethodPost, "/api/users",
		`{"email":"jane@x.com","password":"hunter22","firstName":"Jane","lastName":"Doe"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Email already exists", body["message"])
	assert.Equal(t, "email", body["field"])
}

func TestGetUserNotFoundResponse(t *testing.T) {
	users := &stubUserUsecase{
		getUser: func(ctx context.Context, id string) (*models.User, error) {
			return nil, models.NewNotFound("User")
		},
	}
	e := newTestServer(&stubPetUsecase{}, users)

	rec := doJSON(e, http.MethodGet, "/api/users/"+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeBody(t, rec)["message"])
}

func TestDeleteUserResponse(t *testing.T) {
	users := &stubUserUsecase{
		deleteUser: func(ctx context.Context, id string) error {
			return nil
		},
	}
	e := newTestServer(&stubPetUsecase{}, users)

	rec := doJSON(e, http.MethodDelete, "/api/users/"+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User deleted successfully", body["message"])
	assert.NotContains(t, body, "user")
}
