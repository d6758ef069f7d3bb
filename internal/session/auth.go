// Package session holds the interactive core of the application: the
// authentication controller and the session controller. Both are plain state
// machines driven by single key events and are independent of any rendering.
package session

import (
	"context"
	"fmt"

	"todoterm/internal/logger"
	"todoterm/internal/store"
	"todoterm/models"
)

// AuthState is the authentication controller's state.
type AuthState int

const (
	// AuthDefault is the initial state: the user can quit or enter input.
	AuthDefault AuthState = iota
	// AuthUserInput accepts keystrokes for the login/create-account form.
	AuthUserInput
	// AuthLoggedIn is terminal: an identity has been captured and the
	// session controller takes over.
	AuthLoggedIn
)

// AuthFocus identifies the focused element of the form's 4-position ring.
type AuthFocus int

const (
	FocusUsername AuthFocus = iota
	FocusPassword
	FocusLogin
	FocusCreateAccount

	authFocusCount
)

// Auth is the authentication controller. It owns the username/password
// input buffers, the focus ring and the feedback message, and produces an
// authenticated identity on success.
type Auth struct {
	store store.Gateway
	log   *logger.Logger

	state AuthState
	focus AuthFocus

	usernameInput string
	passwordInput string
	message       string

	user     models.User
	loggedIn bool
}

// NewAuth constructs the controller in its default state.
func NewAuth(gw store.Gateway, log *logger.Logger) *Auth {
	return &Auth{
		store:   gw,
		log:     log,
		message: "Create an account or login!",
	}
}

// State returns the current authentication state.
func (a *Auth) State() AuthState { return a.state }

// Focus returns the currently focused form element.
func (a *Auth) Focus() AuthFocus { return a.focus }

// Message returns the current user-facing feedback line.
func (a *Auth) Message() string { return a.message }

// UsernameInput returns the username buffer for rendering.
func (a *Auth) UsernameInput() string { return a.usernameInput }

// PasswordInput returns the password buffer for rendering.
func (a *Auth) PasswordInput() string { return a.passwordInput }

// Identity returns the authenticated user. The second return is false until
// a login has succeeded.
func (a *Auth) Identity() (models.User, bool) {
	if !a.loggedIn {
		return models.User{}, false
	}
	return a.user, true
}

// EnterInput moves from the default state into form input.
func (a *Auth) EnterInput() {
	if a.state == AuthDefault {
		a.state = AuthUserInput
	}
}

// Escape leaves form input, discarding both buffers.
func (a *Auth) Escape() {
	if a.state == AuthUserInput {
		a.state = AuthDefault
		a.usernameInput = ""
		a.passwordInput = ""
		a.focus = FocusUsername
	}
}

// NextFocus advances the focus ring, wrapping past the last element.
func (a *Auth) NextFocus() {
	a.focus = (a.focus + 1) % authFocusCount
}

// PrevFocus moves the focus ring backwards, wrapping below the first element.
func (a *Auth) PrevFocus() {
	a.focus = (a.focus - 1 + authFocusCount) % authFocusCount
}

// AddChar appends c to the focused field's buffer. Button focus ignores
// character input.
func (a *Auth) AddChar(c rune) {
	switch a.focus {
	case FocusUsername:
		a.usernameInput += string(c)
	case FocusPassword:
		a.passwordInput += string(c)
	}
}

// Backspace removes the last character of the focused field's buffer.
func (a *Auth) Backspace() {
	switch a.focus {
	case FocusUsername:
		a.usernameInput = dropLastChar(a.usernameInput)
	case FocusPassword:
		a.passwordInput = dropLastChar(a.passwordInput)
	}
}

// Confirm triggers the action under focus: login or account creation.
// Field focus is a no-op.
func (a *Auth) Confirm(ctx context.Context) {
	switch a.focus {
	case FocusLogin:
		a.login(ctx)
	case FocusCreateAccount:
		a.createAccount(ctx)
	}
}

// login drains both buffers and attempts to authenticate. Empty input aborts
// silently. Exactly one match captures the identity; zero matches leave the
// controller in form input with a not-found message.
func (a *Auth) login(ctx context.Context) {
	username, password := a.drain()
	if username == "" || password == "" {
		return
	}

	users, err := a.store.Authenticate(ctx, username, password)
	if err != nil {
		a.log.Err(err).Str("username", username).Msg("login query failed")
		a.message = fmt.Sprintf("Storage error during login: %v", err)
		return
	}

	if len(users) == 1 {
		a.user = users[0]
		a.loggedIn = true
		a.state = AuthLoggedIn
		a.message = "User: " + username + " logged in! Press any key to proceed."
		return
	}

	a.message = "User: " + username + " does not exist. Create an account!"
}

// createAccount drains both buffers and creates a new account unless one
// with the same credentials already exists. Identifier collisions are
// resolved by regeneration inside a capped retry loop.
func (a *Auth) createAccount(ctx context.Context) {
	username, password := a.drain()
	if username == "" || password == "" {
		return
	}

	users, err := a.store.Authenticate(ctx, username, password)
	if err != nil {
		a.log.Err(err).Str("username", username).Msg("account lookup failed")
		a.message = fmt.Sprintf("Storage error during account creation: %v", err)
		return
	}

	if len(users) > 0 {
		a.message = "User: " + username + " already exists, pick a new username and password"
		return
	}

	_, err = insertWithFreshID(ctx, func(ctx context.Context, id uint32) error {
		return a.store.CreateUser(ctx, username, password, id)
	})
	if err != nil {
		a.log.Err(err).Str("username", username).Msg("account creation failed")
		a.message = fmt.Sprintf("Storage error during account creation: %v", err)
		return
	}

	a.message = "Account created for User: " + username
}

func (a *Auth) drain() (username, password string) {
	username, password = a.usernameInput, a.passwordInput
	a.usernameInput = ""
	a.passwordInput = ""
	return username, password
}

func dropLastChar(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
