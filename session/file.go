package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const fileSchemaVersion = 1

// fileRecord is the on-disk format. Version gates future layout changes.
type fileRecord struct {
	Version int    `json:"version"`
	Token   string `json:"token,omitempty"`
	User    string `json:"user,omitempty"`
}

// FileBackend persists the session record as a single JSON file with 0600
// permissions. Writes go through a temp file + rename so a crashed write
// never leaves a half-written record behind.
type FileBackend struct {
	path string
}

// NewFileBackend creates a [FileBackend] rooted at path. The parent
// directory is created on first Save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// DefaultSessionPath returns ~/.goshop/session.json, the conventional
// location used by the admin CLI.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".goshop", "session.json"), nil
}

// Load describes the load operation and its observable behavior.
//
// A missing file is an absent session, not an error. An unreadable or
// non-JSON file is reported as a present-but-corrupt record (zero Token and
// User with no error would hide the corruption from the caller), so Load
// returns the raw strings untouched and leaves validity to the caller.
func (b *FileBackend) Load(ctx context.Context) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var fr fileRecord
	if err := json.Unmarshal(data, &fr); err != nil {
		// Surface a corrupt file as a corrupt record: the caller's
		// discard path will Clear it.
		return Record{Token: "", User: string(data)}, nil
	}

	return Record{Token: fr.Token, User: fr.User}, nil
}

// Save describes the save operation and its observable behavior.
func (b *FileBackend) Save(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fileRecord{
		Version: fileSchemaVersion,
		Token:   rec.Token,
		User:    rec.User,
	}, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// Clear describes the clear operation and its observable behavior.
func (b *FileBackend) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(b.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
