package gradebook

import (
	"math"
	"strconv"
	"strings"
)

// Record holds one student's scores keyed by subject name.
type Record struct {
	// Subjects maps a subject name to the score recorded for it.
	Subjects map[string]float64
}

// NewRecord creates a record with an empty subject map.
func NewRecord() *Record {
	return &Record{
		Subjects: make(map[string]float64),
	}
}

// Average returns the arithmetic mean of all recorded scores.
// A record with no subjects averages to zero rather than dividing by zero.
func (r *Record) Average() float64 {
	if len(r.Subjects) == 0 {
		return 0
	}

	var sum float64
	for _, score := range r.Subjects {
		sum += score
	}

	return sum / float64(len(r.Subjects))
}

// Grade returns the letter grade derived from the record's average.
func (r *Record) Grade() Grade {
	return GradeFromAverage(r.Average())
}

// Clone returns a deep copy of the record to avoid leaking internal maps.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	cloned := NewRecord()
	for subject, score := range r.Subjects {
		cloned.Subjects[subject] = score
	}

	return cloned
}

// Grade is a coarse letter category derived from a numeric average.
type Grade string

// Letter grades in descending order of achievement.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeFromAverage maps a numeric average to a letter grade:
// >=90 A, >=80 B, >=70 C, >=60 D, otherwise F.
func GradeFromAverage(average float64) Grade {
	switch {
	case average >= 90:
		return GradeA
	case average >= 80:
		return GradeB
	case average >= 70:
		return GradeC
	case average >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// ParseScore converts raw console input to a score value.
// Anything that is not a finite number fails with ErrInvalidScore.
func ParseScore(raw string) (float64, error) {
	score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidScore
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, ErrInvalidScore
	}

	return score, nil
}
