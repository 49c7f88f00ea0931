package constants

// Lane names for the queue manager. Each lane has its own worker pool;
// concurrency per lane is configuration (see common.QueueConfig).
const (
	LaneImport       = "import"
	LaneExport       = "export"
	LanePassGen      = "pass-generation"
	LaneStatusUpdate = "status-update"
	LaneCleanup      = "cleanup"
)

// Lanes lists every known lane, in registration order.
var Lanes = []string{LaneImport, LaneExport, LanePassGen, LaneStatusUpdate, LaneCleanup}

// Chunk size bounds for bulk operations. Inputs outside the bounds are
// clamped, not rejected.
const (
	DefaultChunkSize = 100
	MinChunkSize     = 10
	MaxChunkSize     = 1000
)

// MaxJobErrors caps the per-record error list stored on a job record.
const MaxJobErrors = 50
