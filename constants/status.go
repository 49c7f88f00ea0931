package constants

// JobStatus is the canonical status for rows in job_records.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"    // enqueued, not yet leased
	JobStatusProcessing JobStatus = "PROCESSING" // leased by a runner
	JobStatusCompleted  JobStatus = "COMPLETED"  // terminal success (may include record-level failures)
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure or cancellation
)

// Terminal reports whether a job status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// ApplicationStatus is the lifecycle of a student pass application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// PassStatus is the lifecycle of an issued pass.
type PassStatus string

const (
	PassActive  PassStatus = "ACTIVE"
	PassExpired PassStatus = "EXPIRED"
	PassRevoked PassStatus = "REVOKED"
)

// passTransitions lists the allowed status edges for issued passes.
// Revocation is final; an expired pass can be reactivated after renewal.
var passTransitions = map[PassStatus][]PassStatus{
	PassActive:  {PassExpired, PassRevoked},
	PassExpired: {PassActive, PassRevoked},
	PassRevoked: {},
}

// CanTransitionPass reports whether from -> to is a legal pass status edge.
func CanTransitionPass(from, to PassStatus) bool {
	for _, next := range passTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
