package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Terracotich/apitest/internal/model"
)

func TestValidator_Phone(t *testing.T) {
	v := NewValidator()

	user := model.User{
		FirstName:      "Ivan",
		SurName:        "Petrov",
		PhoneNumber:    "+79990000001",
		ClientLogin:    "ivan",
		ClientPassword: "secret1",
		RoleID:         1,
	}
	assert.NoError(t, v.Validate(&user))

	user.PhoneNumber = "not-a-phone"
	assert.Error(t, v.Validate(&user))

	// Too short to be a phone number.
	user.PhoneNumber = "+123"
	assert.Error(t, v.Validate(&user))
}

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	assert.Error(t, v.Validate(&model.Role{}))
	assert.NoError(t, v.Validate(&model.Role{CharacterTitle: "ADMIN"}))

	// Title over the column limit.
	assert.Error(t, v.Validate(&model.Role{CharacterTitle: "FOURTEEN-CHARS"}))

	assert.Error(t, v.Validate(&model.Review{ReviewTitle: "ok", Rating: 6, UserID: 1, OrderID: 1}))
	assert.NoError(t, v.Validate(&model.Review{ReviewTitle: "ok", Rating: 5, UserID: 1, OrderID: 1}))
}
