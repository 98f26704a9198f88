package service

import (
	"testing"
	"ticket_master/model"
	"ticket_master/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := testutil.NewDB(t)

	id, err := CreateUser(db, model.CreateUserInput{
		Name:     "Ada",
		Email:    " Ada@Uni.test ",
		Password: "correct horse",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)

	user, err := GetUserById(db, id)
	require.NoError(t, err)
	assert.Equal(t, "ada@uni.test", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct horse", user.Password)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "ada@uni.test", "password1", model.RoleStudent)

	_, err := CreateUser(db, model.CreateUserInput{Name: "Ada", Email: "ADA@uni.test", Password: "password2", Role: model.RoleStudent})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateUserEmailUniqueness(t *testing.T) {
	db := testutil.NewDB(t)
	ada := testutil.CreateUser(t, db, "ada@uni.test", "password1", model.RoleStudent)
	testutil.CreateUser(t, db, "bob@uni.test", "password1", model.RoleStudent)

	_, err := UpdateUser(db, ada.ID, model.UpdateUserInput{Name: "Ada L", Email: "ada@uni.test", Role: model.RoleOrganizer})
	require.NoError(t, err)

	_, err = UpdateUser(db, ada.ID, model.UpdateUserInput{Name: "Ada L", Email: "bob@uni.test", Role: model.RoleOrganizer})
	assert.ErrorIs(t, err, ErrDuplicate)

	updated, err := GetUserById(db, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleOrganizer, updated.Role)
}

func TestAuthenticate(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, "org@uni.test", "secret-pass", model.RoleOrganizer)

	tests := []struct {
		name  string
		input model.LoginInput
		kind  error
	}{
		{"unknown email", model.LoginInput{Email: "nobody@uni.test", Password: "secret-pass", Role: model.RoleOrganizer}, ErrInvalidCredentials},
		{"wrong password", model.LoginInput{Email: "org@uni.test", Password: "nope", Role: model.RoleOrganizer}, ErrInvalidCredentials},
		{"wrong role", model.LoginInput{Email: "org@uni.test", Password: "secret-pass", Role: model.RoleAdmin}, ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Authenticate(db, tt.input)
			assert.ErrorIs(t, err, tt.kind)
		})
	}

	got, err := Authenticate(db, model.LoginInput{Email: "ORG@uni.test", Password: "secret-pass", Role: model.RoleOrganizer})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = SetUserActive(db, user.ID, false)
	require.NoError(t, err)
	_, err = Authenticate(db, model.LoginInput{Email: "org@uni.test", Password: "secret-pass", Role: model.RoleOrganizer})
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestGetUsersByRole(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "org@uni.test", "password1", model.RoleOrganizer)
	testutil.CreateUser(t, db, "stu@uni.test", "password1", model.RoleStudent)

	organizers, err := GetUsersByRole(db, model.RoleOrganizer)
	require.NoError(t, err)
	require.Len(t, organizers, 1)
	assert.Equal(t, "org@uni.test", organizers[0].Email)
}

func TestAuthenticateTrimsPassword(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := CreateUser(db, model.CreateUserInput{Name: "Ada", Email: "ada@uni.test", Password: "  padded-secret ", Role: model.RoleStudent})
	require.NoError(t, err)

	for _, password := range []string{"  padded-secret ", "padded-secret"} {
		_, err := Authenticate(db, model.LoginInput{Email: "ada@uni.test", Password: password, Role: model.RoleStudent})
		assert.NoError(t, err, "password %q", password)
	}
}
