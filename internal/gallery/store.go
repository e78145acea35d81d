package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mememe-app/mememe/internal/model"
	"github.com/mememe-app/mememe/internal/platform"
	"github.com/mememe-app/mememe/internal/render"
)

// File naming
const (
	ImageExtension     = ".png"
	MetaExtension      = ".json"
	SourceSuffix       = "-source"
	MemeIDPrefix       = "meme-"
	metaFilePermission = platform.DefaultFilePermissions
)

// ErrNoImage is returned when a record has nothing to store
var ErrNoImage = errors.New("meme has no rendered image")

// Store writes memes into a directory
type Store struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// NewStore creates a store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Dir returns the directory the store writes to
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the record and returns its metadata
func (s *Store) Save(meme model.Meme) (*model.MemeInfo, error) {
	if meme.MemeImage == nil {
		return nil, ErrNoImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := platform.CreateDirectoryIfNotExists(s.dir); err != nil {
		return nil, fmt.Errorf("creating gallery directory: %w", err)
	}

	id := generateMemeID()
	bounds := meme.MemeImage.Bounds()
	info := &model.MemeInfo{
		ID:         id,
		TopText:    meme.TopText,
		BottomText: meme.BottomText,
		FontName:   meme.FontName,
		ImagePath:  filepath.Join(s.dir, id+ImageExtension),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		CreatedAt:  s.now(),
	}

	if err := render.WritePNGFile(info.ImagePath, meme.MemeImage); err != nil {
		return nil, fmt.Errorf("saving meme %s: %w", id, err)
	}

	if meme.HasOriginal() {
		info.SourcePath = filepath.Join(s.dir, id+SourceSuffix+ImageExtension)
		if err := render.WritePNGFile(info.SourcePath, meme.OriginalImage); err != nil {
			s.cleanup(info)
			return nil, fmt.Errorf("saving original for %s: %w", id, err)
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		s.cleanup(info)
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, id+MetaExtension), data, metaFilePermission); err != nil {
		s.cleanup(info)
		return nil, fmt.Errorf("writing metadata for %s: %w", id, err)
	}

	log.Printf("Saved meme %s to %s", id, s.dir)
	return info, nil
}

// List returns the metadata of every saved meme, newest first. Unreadable
// metadata files are skipped.
func (s *Store) List() ([]*model.MemeInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading gallery: %w", err)
	}

	var infos []*model.MemeInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MetaExtension) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			log.Printf("gallery: cannot read %s: %v", entry.Name(), err)
			continue
		}
		var info model.MemeInfo
		if err := json.Unmarshal(data, &info); err != nil {
			log.Printf("gallery: bad metadata %s: %v", entry.Name(), err)
			continue
		}
		infos = append(infos, &info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})
	return infos, nil
}

// Remove deletes every file belonging to the meme with the given ID
func (s *Store) Remove(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid meme id: %q", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meta := filepath.Join(s.dir, id+MetaExtension)
	if _, err := os.Stat(meta); err != nil {
		return fmt.Errorf("meme not found: %s", id)
	}
	for _, name := range []string{id + ImageExtension, id + SourceSuffix + ImageExtension, id + MetaExtension} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}

// cleanup removes the partial files of a failed save
func (s *Store) cleanup(info *model.MemeInfo) {
	for _, path := range []string{info.ImagePath, info.SourcePath} {
		if path != "" {
			os.Remove(path)
		}
	}
}

// generateMemeID generates a unique meme ID
func generateMemeID() string {
	return MemeIDPrefix + uuid.NewString()
}
