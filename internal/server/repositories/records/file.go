package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
)

// FileRepository stores one JSON file per user under dir. The storage key is
// a sanitized form of the user id (path separators replaced), so hostile ids
// cannot escape the data directory.
//
// Writes go to a uniquely named temp file first and are moved into place with
// os.Rename, so a record is either fully replaced or left intact, never torn.
// A per-id mutex serializes writers of the same record; concurrent writers
// end up last-writer-wins.
type FileRepository struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func sanitizeID(id string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(id)
}

// fileName is the durable resource name for id, also used in error messages.
func fileName(id string) string {
	return sanitizeID(id) + ".json"
}

func (r *FileRepository) path(id string) string {
	return filepath.Join(r.dir, fileName(id))
}

func (r *FileRepository) lock(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sanitizeID(id)
	l, ok := r.locks[key]
	if !ok {
		l = &sync.Mutex{}
		r.locks[key] = l
	}
	return l
}

func (r *FileRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := os.Stat(r.path(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %s: %v", common.ErrorUnavailable, fileName(id), err)
}

func (r *FileRepository) Get(ctx context.Context, id string) (*models.User, error) {
	return r.load(id)
}

func (r *FileRepository) Save(ctx context.Context, user *models.User) error {
	l := r.lock(user.ID)
	l.Lock()
	defer l.Unlock()

	return r.store(user)
}

func (r *FileRepository) ClearData(ctx context.Context, id string) error {
	l := r.lock(id)
	l.Lock()
	defer l.Unlock()

	user, err := r.load(id)
	if err != nil {
		return err
	}

	user.Data = nil
	return r.store(user)
}

func (r *FileRepository) ListIDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading data dir: %v", common.ErrorUnavailable, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		b, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", common.ErrorUnavailable, entry.Name(), err)
		}

		var user models.User
		if err := json.Unmarshal(b, &user); err != nil {
			// One corrupt record invalidates the whole enumeration. Failing
			// loud here beats silently serving a partial user list.
			return nil, fmt.Errorf("%w: %s: %v", common.ErrorCorrupt, entry.Name(), err)
		}

		ids = append(ids, user.ID)
	}

	sort.Strings(ids)
	return ids, nil
}

func (r *FileRepository) load(id string) (*models.User, error) {
	b, err := os.ReadFile(r.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: user %q", common.ErrorNotFound, id)
		}
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrorUnavailable, fileName(id), err)
	}

	user := &models.User{}
	if err := json.Unmarshal(b, user); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrorCorrupt, fileName(id), err)
	}

	return user, nil
}

// store writes the record to a temp file and renames it into place. Callers
// must hold the per-id lock.
func (r *FileRepository) store(user *models.User) error {
	b, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", user.ID, err)
	}

	tmp := r.path(user.ID) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", common.ErrorUnavailable, fileName(user.ID), err)
	}

	if err := os.Rename(tmp, r.path(user.ID)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: replacing %s: %v", common.ErrorUnavailable, fileName(user.ID), err)
	}

	return nil
}
