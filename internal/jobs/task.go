package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
)

// Kind discriminates the five background operation types.
type Kind string

const (
	KindImport         Kind = "import"
	KindExport         Kind = "export"
	KindGeneratePasses Kind = "generate_passes"
	KindUpdateStatus   Kind = "update_status"
	KindCleanup        Kind = "cleanup"
)

// Payload is the sealed set of operation inputs. Exactly one concrete type
// exists per Kind; the runner dispatches on the concrete type, so an unknown
// operation cannot reach a handler.
type Payload interface {
	Kind() Kind
}

// ImportPayload describes a bulk application import from an uploaded file.
type ImportPayload struct {
	FileRef        string `json:"fileRef"`
	SkipDuplicates bool   `json:"skipDuplicates"`
	UpdateExisting bool   `json:"updateExisting"`
	ChunkSize      int    `json:"chunkSize,omitempty"`
}

func (ImportPayload) Kind() Kind { return KindImport }

// ExportPayload describes an application export to an artifact.
type ExportPayload struct {
	Format         string     `json:"format"` // "xlsx" or "csv"
	From           *time.Time `json:"from,omitempty"`
	To             *time.Time `json:"to,omitempty"`
	IncludeDeleted bool       `json:"includeDeleted"`
}

func (ExportPayload) Kind() Kind { return KindExport }

// GeneratePassesPayload describes bulk pass generation for approved
// applications. ValidityDays of 0 means the handler default.
type GeneratePassesPayload struct {
	ApplicationIDs []uuid.UUID `json:"applicationIds"`
	ValidityDays   int         `json:"validityDays,omitempty"`
	ChunkSize      int         `json:"chunkSize,omitempty"`
}

func (GeneratePassesPayload) Kind() Kind { return KindGeneratePasses }

// UpdateStatusPayload describes a bulk pass status transition. When
// ExpireDue is set the handler selects passes whose expiry has elapsed
// itself and PassIDs must be empty.
type UpdateStatusPayload struct {
	PassIDs   []uuid.UUID          `json:"passIds,omitempty"`
	NewStatus constants.PassStatus `json:"newStatus"`
	ExpireDue bool                 `json:"expireDue,omitempty"`
	ChunkSize int                  `json:"chunkSize,omitempty"`
}

func (UpdateStatusPayload) Kind() Kind { return KindUpdateStatus }

// CleanupPayload describes retention cleanup. The set of rows to delete is
// evaluated at execution time, so the job's total is unknown at enqueue.
type CleanupPayload struct {
	RetentionDays int `json:"retentionDays"`
}

func (CleanupPayload) Kind() Kind { return KindCleanup }

// Task is the unit handed to a lane worker: the job record id, ownership,
// and the typed operation payload.
type Task struct {
	JobID         uuid.UUID
	UserID        uuid.UUID
	InstitutionID *uuid.UUID
	Payload       Payload
}

// LaneFor maps an operation kind to its queue lane.
func LaneFor(k Kind) string {
	switch k {
	case KindImport:
		return constants.LaneImport
	case KindExport:
		return constants.LaneExport
	case KindGeneratePasses:
		return constants.LanePassGen
	case KindUpdateStatus:
		return constants.LaneStatusUpdate
	case KindCleanup:
		return constants.LaneCleanup
	}
	return ""
}

// envelope is the wire form stored in queue_tasks.payload.
type envelope struct {
	Kind          Kind            `json:"kind"`
	UserID        uuid.UUID       `json:"userId"`
	InstitutionID *uuid.UUID      `json:"institutionId,omitempty"`
	Data          json.RawMessage `json:"data"`
}

// EncodeTask serializes a task for storage on its queue entry.
func EncodeTask(t Task) (json.RawMessage, error) {
	data, err := json.Marshal(t.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(envelope{
		Kind:          t.Payload.Kind(),
		UserID:        t.UserID,
		InstitutionID: t.InstitutionID,
		Data:          data,
	})
}

// DecodeTask restores a task from a queue entry. The job id travels on the
// queue row, not in the envelope.
func DecodeTask(jobID uuid.UUID, raw json.RawMessage) (Task, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Task{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	payload, err := decodePayload(env.Kind, env.Data)
	if err != nil {
		return Task{}, err
	}
	return Task{
		JobID:         jobID,
		UserID:        env.UserID,
		InstitutionID: env.InstitutionID,
		Payload:       payload,
	}, nil
}

func decodePayload(k Kind, data json.RawMessage) (Payload, error) {
	switch k {
	case KindImport:
		var p ImportPayload
		return p, json.Unmarshal(data, &p)
	case KindExport:
		var p ExportPayload
		return p, json.Unmarshal(data, &p)
	case KindGeneratePasses:
		var p GeneratePassesPayload
		return p, json.Unmarshal(data, &p)
	case KindUpdateStatus:
		var p UpdateStatusPayload
		return p, json.Unmarshal(data, &p)
	case KindCleanup:
		var p CleanupPayload
		return p, json.Unmarshal(data, &p)
	}
	return nil, fmt.Errorf("unknown task kind %q", k)
}
