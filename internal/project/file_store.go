package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	managementDirName = ".project_management"
	metadataFileName  = "project_metadata.json"
	reportsDirName    = "reports"
)

// FileStore keeps one JSON file per record under a per-category
// directory, plus the metadata index file. Milestones live in logs/ for
// compatibility with the layout the reports tooling expects.
type FileStore struct {
	projectName string
	baseDir     string
	reportsDir  string
	metaPath    string
	mu          sync.Mutex
	log         zerolog.Logger
}

func NewFileStore(projectRoot, projectName string, log zerolog.Logger) *FileStore {
	base := filepath.Join(projectRoot, managementDirName)
	return &FileStore{
		projectName: projectName,
		baseDir:     base,
		reportsDir:  filepath.Join(base, reportsDirName),
		metaPath:    filepath.Join(base, metadataFileName),
		log:         log,
	}
}

func (s *FileStore) kindDir(kind Kind) string {
	switch kind {
	case KindMeeting:
		return filepath.Join(s.baseDir, "meetings")
	case KindRequirement:
		return filepath.Join(s.baseDir, "requirements")
	default:
		return filepath.Join(s.baseDir, "logs")
	}
}

func (s *FileStore) Initialize() error {
	dirs := []string{s.baseDir, s.reportsDir}
	for _, k := range Kinds {
		dirs = append(dirs, s.kindDir(k))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: ensure dir %s: %w", ErrStorageUnavailable, dir, err)
		}
	}
	if _, err := os.Stat(s.metaPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: stat metadata: %w", ErrStorageUnavailable, err)
	}
	now := time.Now().Format(time.RFC3339)
	initial := &Metadata{
		ProjectName:   s.projectName,
		CreatedAt:     now,
		LastUpdated:   now,
		Status:        "Active",
		Milestones:    []string{},
		KeyObjectives: []string{},
	}
	if err := s.writeJSON(s.metaPath, initial); err != nil {
		return fmt.Errorf("%w: write metadata: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *FileStore) Append(kind Kind, id string, record any) error {
	path := filepath.Join(s.kindDir(kind), id+".json")
	if err := s.writeJSON(path, record); err != nil {
		return fmt.Errorf("%w: write record %s: %w", ErrStorageUnavailable, id, err)
	}
	if err := s.updateMetadata(kind, id); err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Str("section", metadataSection(kind)).Msg("record appended")
	return nil
}

func (s *FileStore) Scan(kind Kind) ([]json.RawMessage, error) {
	dir := s.kindDir(kind)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read dir %s: %w", ErrStorageUnavailable, dir, err)
	}
	var out []json.RawMessage
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		// logs/ may hold non-milestone files; keep the prefix filter there.
		if kind == KindMilestone && !strings.HasPrefix(e.Name(), "milestone_") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: read record %s: %w", ErrStorageUnavailable, e.Name(), err)
		}
		out = append(out, json.RawMessage(data))
	}
	return out, nil
}

func (s *FileStore) Empty() (bool, error) {
	for _, k := range Kinds {
		entries, err := os.ReadDir(s.kindDir(k))
		if err != nil {
			return false, fmt.Errorf("%w: read dir: %w", ErrStorageUnavailable, err)
		}
		if len(entries) > 0 {
			return false, nil
		}
	}
	return true, nil
}

func (s *FileStore) Metadata() (*Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readMetadataUnlocked()
}

func (s *FileStore) WriteReport(summary *Summary) (string, error) {
	name := fmt.Sprintf("project_report_%s.json", time.Now().Format(timestampLayout))
	path := filepath.Join(s.reportsDir, name)
	if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: ensure reports dir: %w", ErrStorageUnavailable, err)
	}
	if err := s.writeJSON(path, summary); err != nil {
		return "", fmt.Errorf("%w: write report: %w", ErrStorageUnavailable, err)
	}
	return path, nil
}

func (s *FileStore) Close() error { return nil }

// updateMetadata is a full read, in-memory append, full rewrite. The
// mutex serializes writers within this process only; across processes
// the last writer wins.
func (s *FileStore) updateMetadata(kind Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, err := s.readMetadataUnlocked()
	if err != nil {
		return err
	}
	meta.appendID(kind, id)
	meta.LastUpdated = time.Now().Format(time.RFC3339)
	if err := s.writeJSON(s.metaPath, meta); err != nil {
		return fmt.Errorf("%w: rewrite metadata: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *FileStore) readMetadataUnlocked() (*Metadata, error) {
	data, err := os.ReadFile(s.metaPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read metadata: %w", ErrStorageUnavailable, err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", ErrCorruptRecord, err)
	}
	return &meta, nil
}

func (s *FileStore) writeJSON(path string, v any) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
