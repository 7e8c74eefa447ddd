package auth

import (
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/notes/pkg/logs"
)

// MaxAttempts is how many wrong passwords are tolerated before giving up.
const MaxAttempts = 3

const (
	msgSetup     = "Set a password to protect your notes:"
	msgEnter     = "Enter password:"
	msgIncorrect = "Incorrect password!"
)

// Prompter asks the user for a password and shows short notices.
type Prompter interface {
	// PromptPassword returns the entered password. ok is false when the user
	// cancelled the prompt.
	PromptPassword(message string) (password string, ok bool, err error)
	Notify(message string)
}

// Passwords is the subset of PasswordStore used by Authenticate.
type Passwords interface {
	IsInitialized() bool
	Initialize(plain string) error
	Verify(plain string) (bool, error)
}

// Authenticate runs the first-run setup or the login flow and returns nil only
// when access is granted. Every failure is reported as ErrAuthFailed.
func Authenticate(passwords Passwords, prompter Prompter) error {
	if !passwords.IsInitialized() {
		return setup(passwords, prompter)
	}

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		input, ok, err := prompter.PromptPassword(msgEnter)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		if !ok {
			return fmt.Errorf("%w: cancelled", ErrAuthFailed)
		}

		match, err := passwords.Verify(input)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		if match {
			return nil
		}
		logs.Logger.Warn("incorrect password", zap.Int("attempt", attempt))
		prompter.Notify(msgIncorrect)
	}
	return fmt.Errorf("%w: %d incorrect attempts", ErrAuthFailed, MaxAttempts)
}

func setup(passwords Passwords, prompter Prompter) error {
	input, ok, err := prompter.PromptPassword(msgSetup)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	if !ok {
		return fmt.Errorf("%w: cancelled", ErrAuthFailed)
	}
	if err := passwords.Initialize(input); err != nil {
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	return nil
}
