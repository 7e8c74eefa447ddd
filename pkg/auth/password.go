// Package auth gates access to the notes behind a single local password.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/notes/pkg/logs"
	"tableflip.dev/notes/pkg/store"
)

// RecordName is the password record kept alongside the notes.
const RecordName = "password.dat"

var (
	// ErrEmptyInput is returned when a blank password is offered for setup.
	ErrEmptyInput = errors.New("auth: password must not be empty")
	// ErrAuthFailed is returned when access could not be granted.
	ErrAuthFailed = errors.New("auth: authentication failed")
)

// Hash returns the lowercase hex SHA-256 digest of the UTF-8 password.
func Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// PasswordStore reads and writes the password record in the notes directory.
type PasswordStore struct {
	d        *diskv.Diskv
	basePath string
}

// NewPasswordStore opens the password record under basePath.
func NewPasswordStore(basePath string) *PasswordStore {
	return &PasswordStore{d: store.NewDiskv(basePath), basePath: basePath}
}

// BasePath is the directory holding the record.
func (s *PasswordStore) BasePath() string {
	return s.basePath
}

// IsInitialized reports whether a password record exists.
func (s *PasswordStore) IsInitialized() bool {
	return s.d.Has(RecordName)
}

// Initialize stores the digest of plain, replacing any previous record.
func (s *PasswordStore) Initialize(plain string) error {
	if strings.TrimSpace(plain) == "" {
		return ErrEmptyInput
	}
	if err := s.d.Write(RecordName, []byte(Hash(plain))); err != nil {
		return fmt.Errorf("auth: write %s: %w", RecordName, err)
	}
	logs.Logger.Info("password initialized", zap.String("path", s.basePath))
	return nil
}

// Verify compares the digest of plain with the stored record. Surrounding
// whitespace in the record is ignored.
func (s *PasswordStore) Verify(plain string) (bool, error) {
	rc, err := s.d.ReadStream(RecordName, true)
	if err != nil {
		return false, fmt.Errorf("auth: read %s: %w", RecordName, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return false, fmt.Errorf("auth: read %s: %w", RecordName, err)
	}
	stored := strings.TrimSpace(string(data))
	return subtle.ConstantTimeCompare([]byte(stored), []byte(Hash(plain))) == 1, nil
}
