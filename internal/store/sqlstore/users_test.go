package sqlstore

import (
	"testing"
)

func TestCreateUser(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	id, err := testStore.CreateUser("testuser", "hashed-password")
	if err != nil {
		t.Errorf("Failed to create user: %v", err)
	}
	if id == 0 {
		t.Error("Expected non-zero user ID")
	}

	// Test duplicate user
	_, err = testStore.CreateUser("testuser", "hashed-password")
	if err == nil {
		t.Error("Expected error when creating duplicate user, got nil")
	}
}

func TestGetUserByUsername(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	id, _ := testStore.CreateUser("testuser", "hashed-password")

	user, err := testStore.GetUserByUsername("testuser")
	if err != nil {
		t.Errorf("Failed to get user: %v", err)
	}

	if user.ID != id {
		t.Errorf("Expected user ID %d, got %d", id, user.ID)
	}
	if user.Username != "testuser" {
		t.Errorf("Expected username 'testuser', got '%s'", user.Username)
	}
	if user.Password != "hashed-password" {
		t.Error("Expected stored password hash to round-trip")
	}

	_, err = testStore.GetUserByUsername("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent user, got nil")
	}
}

func TestUsernameExists(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	testStore.CreateUser("alice", "hash")

	exists, err := testStore.UsernameExists("alice")
	if err != nil {
		t.Errorf("UsernameExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected 'alice' to exist")
	}

	exists, _ = testStore.UsernameExists("bob")
	if exists {
		t.Error("Expected 'bob' to not exist")
	}
}
