package pipeline

import "github.com/backmassage/picmrg/internal/merge"

// Status is the outcome of one directory.
type Status string

const (
	StatusMerged  Status = "merged"
	StatusPlanned Status = "planned" // Dry run: would have been merged.
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// DirResult records what happened to one directory.
type DirResult struct {
	Name   string
	Dir    string
	Images int
	Status Status
	Result *merge.Result // Set for merged and planned directories.
	Err    error         // Set for skipped and failed directories.
}

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total            int // Directories with images found by the scan.
	Current          int // Directories processed so far.
	Merged           int // Includes dry-run plans.
	Skipped          int
	Failed           int
	TotalOutputBytes int64
	Interrupted      bool
	Results          []DirResult
}

func (s *RunStats) record(r DirResult) {
	switch r.Status {
	case StatusMerged, StatusPlanned:
		s.Merged++
		if r.Result != nil {
			s.TotalOutputBytes += r.Result.Bytes
		}
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}
