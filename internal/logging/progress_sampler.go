package logging

import "strings"

// ProgressSampler suppresses repetitive progress logs. It emits when the
// completion percentage crosses a bucket boundary or the sheet changes.
type ProgressSampler struct {
	bucketSize float64
	lastSheet  string
	lastBucket int
}

// NewProgressSampler constructs a sampler with the given bucket size in
// percent (default 10).
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 10
	}
	return &ProgressSampler{bucketSize: bucketSize, lastBucket: -1}
}

// ShouldLog reports whether a progress event should be logged. A negative
// percent means unknown and only sheet changes emit.
func (s *ProgressSampler) ShouldLog(percent float64, sheet string) bool {
	if s == nil {
		return true
	}
	sheet = strings.TrimSpace(sheet)
	emit := false
	if sheet != "" && sheet != s.lastSheet {
		s.lastSheet = sheet
		emit = true
	}
	if percent >= 0 {
		if percent > 100 {
			percent = 100
		}
		bucket := int(percent / s.bucketSize)
		if bucket > s.lastBucket {
			s.lastBucket = bucket
			emit = true
		}
	}
	return emit
}

// Reset clears the sampler state before a new scan.
func (s *ProgressSampler) Reset() {
	if s == nil {
		return
	}
	s.lastSheet = ""
	s.lastBucket = -1
}
