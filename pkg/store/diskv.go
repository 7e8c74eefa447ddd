package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/notes/pkg/logs"
	"tableflip.dev/notes/pkg/note"
)

// Persistence defines the persistence contract for notes. Every call goes
// to disk; nothing is cached between calls.
type Persistence interface {
	BasePath() string
	ListAll(ctx context.Context) []note.Summary
	Search(notes []note.Summary, query string) []note.Summary
	Load(filename string) (*note.Note, error)
	Save(filename, title, date, content string) (string, error)
	Delete(filename string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config,
// creating the notes directory if it does not exist yet.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return newPersistence(basePath), nil
}

// NewDiskv opens the flat diskv store rooted at basePath. Keys are file
// names directly under basePath.
func NewDiskv(basePath string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 0, // listings must always reflect the directory
		FilePerm:     0o644,
		PathPerm:     0o755,
	})
}

func newPersistence(basePath string) *persistence {
	return &persistence{d: NewDiskv(basePath), basePath: basePath, now: time.Now}
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

var errBadFilename = errors.New("not a note file name")

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) ListAll(ctx context.Context) []note.Summary {
	all := make([]note.Summary, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasSuffix(key, note.Extension) {
			continue
		}
		s, err := p.summary(key)
		if errors.Is(err, fs.ErrNotExist) {
			// removed since the walk, or nested below the notes directory
			continue
		}
		if err != nil {
			logs.Logger.Warn("unreadable note", zap.String("file", key), zap.Error(err))
		}
		all = append(all, s)
	}
	note.SortByDate(all)
	return all
}

func (p *persistence) summary(key string) (note.Summary, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		return note.Summary{Filename: key}, err
	}
	defer rc.Close()
	return note.ReadSummary(key, rc)
}

func (p *persistence) Search(notes []note.Summary, query string) []note.Summary {
	return note.Filter(notes, query)
}

func (p *persistence) Load(filename string) (*note.Note, error) {
	if err := validFilename(filename); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, filename, err)
	}
	rc, err := p.d.ReadStream(filename, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, filename, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, filename, err)
	}
	n, err := note.Decode(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, filename, err)
	}
	return n, nil
}

func (p *persistence) Save(filename, title, date, content string) (string, error) {
	title = strings.TrimSpace(title)
	date = strings.TrimSpace(date)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return "", ErrEmptyField
	}
	if strings.ContainsAny(title, "\r\n") || strings.ContainsAny(date, "\r\n") {
		return "", ErrInvalidField
	}

	if filename == "" {
		filename = p.newFilename(title)
	} else if err := validFilename(filename); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, filename, err)
	}

	if err := p.d.Write(filename, note.Encode(title, date, content)); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWrite, filename, err)
	}
	logs.Logger.Debug("note saved", zap.String("file", filename))
	return filename, nil
}

// newFilename synthesises a file name from the title and the current time,
// moving forward a millisecond at a time if that name is already taken.
func (p *persistence) newFilename(title string) string {
	created := p.now()
	name := note.Filename(title, created)
	for p.d.Has(name) {
		created = created.Add(time.Millisecond)
		name = note.Filename(title, created)
	}
	return name
}

func (p *persistence) Delete(filename string) error {
	if err := validFilename(filename); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, filename, err)
	}
	if err := p.d.Erase(filename); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDelete, filename, err)
	}
	logs.Logger.Debug("note deleted", zap.String("file", filename))
	return nil
}

// validFilename accepts bare note file names only, which keeps callers out
// of other directories and away from password.dat.
func validFilename(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || !strings.HasSuffix(filename, note.Extension) {
		return errBadFilename
	}
	return nil
}
