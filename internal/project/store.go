package project

import (
	"encoding/json"
	"errors"
)

// ErrStorageUnavailable wraps any filesystem or database failure on a
// store operation.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrCorruptRecord marks a record whose stored form failed to parse.
// Such records are skipped during scans, never fatal.
var ErrCorruptRecord = errors.New("corrupt record")

// Metadata is the per-project index file. It tracks which record IDs
// exist per category and is purely advisory: scans read the category
// storage directly and never consult it.
type Metadata struct {
	ProjectName   string   `json:"project_name"`
	CreatedAt     string   `json:"created_at"`
	LastUpdated   string   `json:"last_updated"`
	Status        string   `json:"status"`
	Milestones    []string `json:"milestones"`
	KeyObjectives []string `json:"key_objectives"`
	Meetings      []string `json:"meetings,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
}

// Store is the persistence backend for project records. Implementations
// must keep the same observable contract so backends are interchangeable:
// records are immutable once appended, the metadata index is updated on
// every append, and Scan returns raw record payloads in unspecified order.
type Store interface {
	// Initialize creates the on-disk layout and the metadata index if
	// they do not exist yet. Idempotent.
	Initialize() error
	// Append persists a freshly built record and indexes its id under
	// the kind's metadata section. The two writes are not transactional.
	Append(kind Kind, id string, record any) error
	// Scan returns the raw serialized form of every record of the kind.
	// Payloads are returned as stored; callers decide what to do with
	// ones that fail to parse.
	Scan(kind Kind) ([]json.RawMessage, error)
	// Empty reports whether no records of any kind exist yet.
	Empty() (bool, error)
	// Metadata returns the current index contents.
	Metadata() (*Metadata, error)
	// WriteReport persists a summary snapshot as a timestamped report
	// artifact and returns its path.
	WriteReport(summary *Summary) (string, error)
	// Close releases backend resources.
	Close() error
}

// metadataSection maps a record kind to its metadata index section.
func metadataSection(kind Kind) string {
	switch kind {
	case KindMeeting:
		return "meetings"
	case KindRequirement:
		return "requirements"
	default:
		return "milestones"
	}
}

func (m *Metadata) appendID(kind Kind, id string) {
	switch kind {
	case KindMeeting:
		m.Meetings = append(m.Meetings, id)
	case KindRequirement:
		m.Requirements = append(m.Requirements, id)
	default:
		m.Milestones = append(m.Milestones, id)
	}
}
