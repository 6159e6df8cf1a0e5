package pocketbook

import (
	"errors"
	"testing"
)

func TestSession_RegisterValidates(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		passcode string
		valid    bool
	}{
		{name: "minimum length passcode", username: "alice", passcode: "1234", valid: true},
		{name: "longer passcode", username: "alice", passcode: "123456789", valid: true},
		{name: "empty username", username: "", passcode: "1234"},
		{name: "too short passcode", username: "alice", passcode: "123"},
		{name: "letters in passcode", username: "alice", passcode: "12ab"},
		{name: "spaces in passcode", username: "alice", passcode: "12 34"},
		{name: "empty passcode", username: "alice", passcode: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(newTestStore(t))
			err := s.Register(tc.username, tc.passcode)
			if tc.valid {
				if err != nil {
					t.Fatalf("Register = %v, want nil", err)
				}
				if !s.Registered() {
					t.Error("Registered = false after a successful Register")
				}
				return
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Register = %v, want ErrInvalidInput", err)
			}
			if s.Registered() {
				t.Error("Registered = true after a rejected Register")
			}
		})
	}
}

func TestSession_LoginLogout(t *testing.T) {
	s := NewSession(newTestStore(t))
	if err := s.Register("alice", "1234"); err != nil {
		t.Fatal(err)
	}

	// Registering does not log the user in.
	if s.IsAuthenticated() {
		t.Error("authenticated right after Register")
	}

	// A wrong passcode is rejected and leaves state unchanged.
	if err := s.Login("0000"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong passcode = %v, want ErrInvalidCredentials", err)
	}
	if s.IsAuthenticated() {
		t.Error("authenticated after a failed Login")
	}

	if err := s.Login("1234"); err != nil {
		t.Fatal(err)
	}
	if !s.IsAuthenticated() {
		t.Error("not authenticated after a successful Login")
	}
	if name, ok := s.Username(); !ok || name != "alice" {
		t.Errorf("Username = %q, %v; want alice, true", name, ok)
	}

	// Logout clears the flag but keeps the credentials.
	if err := s.Logout(); err != nil {
		t.Fatal(err)
	}
	if s.IsAuthenticated() {
		t.Error("still authenticated after Logout")
	}
	if !s.Registered() {
		t.Error("credentials gone after Logout")
	}
	if err := s.Login("1234"); err != nil {
		t.Errorf("Login after Logout = %v, want nil", err)
	}
}

func TestSession_LoginWithoutRegistration(t *testing.T) {
	s := NewSession(newTestStore(t))
	if err := s.Login("1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login on empty store = %v, want ErrInvalidCredentials", err)
	}
}

func TestSession_ExactMatchOnly(t *testing.T) {
	// The comparison is an exact string match, leading zeros included.
	s := NewSession(newTestStore(t))
	if err := s.Register("alice", "0123"); err != nil {
		t.Fatal(err)
	}
	if err := s.Login("123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login = %v, want ErrInvalidCredentials", err)
	}
	if err := s.Login("0123"); err != nil {
		t.Errorf("Login = %v, want nil", err)
	}
}
