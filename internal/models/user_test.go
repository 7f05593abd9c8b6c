package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFullName(t *testing.T) {
	u := User{FirstName: "Jane", LastName: "Doe"}
	u.ComputeFullName()
	assert.Equal(t, "Jane Doe", u.FullName)
}

func TestUserJSONNeverExposesPassword(t *testing.T) {
	u := User{
		Email:    "jane@x.com",
		Password: "$2a$10$secret-hash",
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "secret-hash")
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleVeterinarian.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}
