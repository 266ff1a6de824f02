package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTableName(t *testing.T) {
	user := User{}
	assert.Equal(t, "users", user.TableName(), "Table name should be 'users'")
}

func TestUserStructFields(t *testing.T) {
	user := User{
		Auth0ID: "auth0|abc123",
		Name:    "Maya Reeves",
		Email:   "test@example.com",
	}

	assert.Equal(t, "auth0|abc123", user.Auth0ID, "Auth0 ID should be set correctly")
	assert.Equal(t, "Maya Reeves", user.Name, "Name should be set correctly")
	assert.Equal(t, "test@example.com", user.Email, "Email should be set correctly")
}

func TestUserDefaultValues(t *testing.T) {
	// Test that a new user can be created with only the required fields
	user := User{
		Auth0ID: "auth0|new",
		Email:   "new@example.com",
	}

	assert.Equal(t, "new@example.com", user.Email, "Email should be set")
	assert.Equal(t, "", user.Name, "Name should be empty string by default in Go struct")
	assert.Empty(t, user.Items, "Items should be empty by default")
	assert.Empty(t, user.Outfits, "Outfits should be empty by default")
}
