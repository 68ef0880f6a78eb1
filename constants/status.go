package constants

// JobStatus is the canonical status for a fetch job, both in the in-memory
// registry and in archived fetch_job rows.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending   JobStatus = "PENDING"   // accepted, waiting for a worker
	JobStatusFetching  JobStatus = "FETCHING"  // stream tasks in flight
	JobStatusMerging   JobStatus = "MERGING"   // both tracks on disk, muxing
	JobStatusCompleted JobStatus = "COMPLETED" // artifact published
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
	JobStatusCancelled JobStatus = "CANCELLED" // cancelled by the client
)

// Terminal reports whether no further transitions can occur.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// jobStatusRank orders the forward path of the state machine. Terminal
// failure states are reachable from any non-terminal rank.
var jobStatusRank = map[JobStatus]int{
	JobStatusPending:   0,
	JobStatusFetching:  1,
	JobStatusMerging:   2,
	JobStatusCompleted: 3,
}

// CanTransition reports whether from -> to is a legal move. The machine is
// monotonic: no state is ever revisited.
func CanTransition(from, to JobStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == JobStatusCancelled {
		return true
	}
	if to == JobStatusFailed {
		return from != JobStatusCompleted
	}
	fr, ok := jobStatusRank[from]
	if !ok {
		return false
	}
	tr, ok := jobStatusRank[to]
	if !ok {
		return false
	}
	return tr == fr+1
}
