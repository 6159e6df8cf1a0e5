package pocketbook

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidCredentials reports a login attempt with a passcode that does
// not match the stored one. Authentication state is left unchanged.
var ErrInvalidCredentials = errors.New("invalid passcode")

// passcodes are numeric, at least four digits.
var passcodeRe = regexp.MustCompile(`^[0-9]{4,}$`)

// Session is the credential registration/login/logout state machine. It
// stores a single username and numeric passcode pair plus a logged-in flag
// in the record store.
//
// The passcode is stored in plain text. That is a known weakness of the
// design, accepted for a store that never leaves the user's machine.
type Session struct {
	store *Store
}

// NewSession returns a session gate over the given store.
func NewSession(store *Store) *Session {
	return &Session{store: store}
}

// Register persists the username and passcode. It fails with
// ErrInvalidInput unless the username is non-empty and the passcode is all
// digits with length at least 4. Registration does not log the user in.
func (s *Session) Register(username, passcode string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if !passcodeRe.MatchString(passcode) {
		return fmt.Errorf("%w: passcode must be numeric, at least 4 digits", ErrInvalidInput)
	}
	if err := s.store.Set(keyUsername, username); err != nil {
		return err
	}
	return s.store.Set(keyUserPasscode, passcode)
}

// Registered reports whether credentials have been stored.
func (s *Session) Registered() bool {
	_, ok, err := s.store.Get(keyUserPasscode)
	return err == nil && ok
}

// Login compares the submitted passcode against the stored one by exact
// string match. On success it sets the logged-in flag; on failure it leaves
// state unchanged and returns ErrInvalidCredentials.
func (s *Session) Login(passcode string) error {
	stored, ok, err := s.store.Get(keyUserPasscode)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: no user registered yet", ErrInvalidCredentials)
	}
	if passcode != stored {
		return ErrInvalidCredentials
	}
	return s.store.Set(keyLoggedIn, "true")
}

// Logout clears the logged-in flag only; credentials remain stored for
// future logins.
func (s *Session) Logout() error {
	return s.store.Delete(keyLoggedIn)
}

// IsAuthenticated reflects the current logged-in flag. Commands that read
// or mutate the ledger must check this first.
func (s *Session) IsAuthenticated() bool {
	v, ok, err := s.store.Get(keyLoggedIn)
	return err == nil && ok && v == "true"
}

// Username returns the registered username, if any.
func (s *Session) Username() (string, bool) {
	name, ok, err := s.store.Get(keyUsername)
	if err != nil {
		return "", false
	}
	return name, ok
}
