package domain

// SourceStatus tags the variant held by a SourceResult
type SourceStatus int

const (
	SourceNotFound SourceStatus = iota
	SourceFound
	SourceFailed
	SourceTimedOut
)

func (s SourceStatus) String() string {
	switch s {
	case SourceFound:
		return "found"
	case SourceNotFound:
		return "not_found"
	case SourceFailed:
		return "failed"
	case SourceTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// SourceResult is what a product source returns for one search key.
// Record is set only for SourceFound; Err only for SourceFailed and SourceTimedOut.
type SourceResult struct {
	Status SourceStatus
	Record *ProductRecord
	Err    error
}

// Found wraps a record in a SourceFound result
func Found(record *ProductRecord) SourceResult {
	return SourceResult{Status: SourceFound, Record: record}
}

// NotFound returns an empty SourceNotFound result
func NotFound() SourceResult {
	return SourceResult{Status: SourceNotFound}
}

// Failed wraps err in a SourceFailed result
func Failed(err error) SourceResult {
	return SourceResult{Status: SourceFailed, Err: err}
}

// TimedOut wraps err in a SourceTimedOut result
func TimedOut(err error) SourceResult {
	return SourceResult{Status: SourceTimedOut, Err: err}
}
