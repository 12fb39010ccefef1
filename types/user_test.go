package types_test

import (
	"encoding/json"
	"testing"

	"github.com/StarJun26/users-api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_JSONUsesNames(t *testing.T) {
	data, err := json.Marshal(types.User{ID: 1, Role: types.RoleAdmin})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"Admin"`)
	assert.NotContains(t, string(data), `"password`)

	var role types.Role
	require.NoError(t, json.Unmarshal([]byte(`"User"`), &role))
	assert.Equal(t, types.RoleUser, role)

	err = json.Unmarshal([]byte(`"Superuser"`), &role)
	assert.ErrorIs(t, err, types.ErrInvalidRole)
}

func TestNewUser_DefaultsRole(t *testing.T) {
	user, err := types.NewUser(types.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, types.RoleUser, user.Role)

	user, err = types.NewUser(types.CreateUserRequest{Email: "a@x.com", Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)

	_, err = types.NewUser(types.CreateUserRequest{Email: "a@x.com", Role: "root"})
	assert.ErrorIs(t, err, types.ErrInvalidRole)
}

func TestUpdateUserRequest_ApplyTo(t *testing.T) {
	ptr := func(s string) *string { return &s }

	user := types.User{
		ID:           1,
		Title:        "Mr",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@x.com",
		Role:         types.RoleUser,
		PasswordHash: "orig-hash",
	}

	// Omitted fields stay untouched, present ones apply, and an
	// explicit empty string is a real value.
	req := types.UpdateUserRequest{
		FirstName: ptr("Grace"),
		Title:     ptr(""),
		Role:      ptr("Admin"),
		Password:  ptr("ignored-here"),
	}
	require.NoError(t, req.ApplyTo(&user))

	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "", user.Title)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@x.com", user.Email)
	assert.Equal(t, types.RoleAdmin, user.Role)
	assert.Equal(t, "orig-hash", user.PasswordHash, "ApplyTo must never touch the hash")
}

func TestUpdateUserRequest_ApplyTo_BadRole(t *testing.T) {
	ptr := func(s string) *string { return &s }

	user := types.User{ID: 1, Role: types.RoleUser}
	err := types.UpdateUserRequest{Role: ptr("Wizard")}.ApplyTo(&user)
	assert.ErrorIs(t, err, types.ErrInvalidRole)
}

func TestUpdateUserRequest_OmittedVersusEmptyJSON(t *testing.T) {
	var omitted types.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &omitted))
	assert.Nil(t, omitted.Email)

	var empty types.UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":""}`), &empty))
	require.NotNil(t, empty.Email)
	assert.Equal(t, "", *empty.Email)
}
