package executor

import (
	"fmt"
	"strings"
	"time"
)

// CountSuccessful returns the number of results without an error
func CountSuccessful(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Error == nil {
			count++
		}
	}
	return count
}

// CountFailed returns the number of results with an error
func CountFailed(results []Result) int {
	return len(results) - CountSuccessful(results)
}

// HasErrors returns true if any result has an error
func HasErrors(results []Result) bool {
	return CountFailed(results) > 0
}

// MaxDuration returns the longest task duration
func MaxDuration(results []Result) time.Duration {
	var max time.Duration
	for _, r := range results {
		if r.Duration > max {
			max = r.Duration
		}
	}
	return max
}

// Summary aggregates a batch of results
type Summary struct {
	Total       int
	Successful  int
	Failed      int
	MaxDuration time.Duration
}

// Summarize creates a summary of the results
func Summarize(results []Result) Summary {
	return Summary{
		Total:       len(results),
		Successful:  CountSuccessful(results),
		Failed:      CountFailed(results),
		MaxDuration: MaxDuration(results),
	}
}

// String returns a human-readable summary
func (s Summary) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total: %d, ", s.Total))
	sb.WriteString(fmt.Sprintf("Successful: %d, ", s.Successful))
	sb.WriteString(fmt.Sprintf("Failed: %d", s.Failed))

	if s.Total > 0 {
		sb.WriteString(fmt.Sprintf(", Max: %s", s.MaxDuration.Round(time.Millisecond)))
	}

	return sb.String()
}
