//
// Package history keeps the most recent capability radars of each
// student so progress can be compared between attempts.
//
package history

import (
	"sync"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-grade/internal/util"
	"github.com/pkg/errors"
)

// DefaultSize is the number of snapshots kept per student.
const DefaultSize = 5

// Snapshot is one graded attempt.
type Snapshot struct {
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
	Attributes []string  `json:"attributes"`
	Scores     []float64 `json:"scores"`
}

//
// Store is a bounded in-memory history, safe for use by concurrent
// request handlers.
//
type Store struct {
	mu       sync.Mutex
	size     int
	students []string
	snaps    map[string][]Snapshot
}

// New creates a store keeping at most size snapshots per student.
func New(size int) *Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{size: size, snaps: map[string][]Snapshot{}}
}

// Size is the per-student bound.
func (s *Store) Size() int {
	return s.size
}

//
// Append records a radar for student, evicting the oldest snapshot
// once the bound is reached. Empty student names are ignored.
//
func (s *Store) Append(student string, attributes []string, scores []float64) (Snapshot, bool) {
	if student == "" {
		return Snapshot{}, false
	}
	snap := Snapshot{
		ID:         util.GenerateID(),
		At:         time.Now(),
		Attributes: append([]string(nil), attributes...),
		Scores:     append([]float64(nil), scores...),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, known := s.snaps[student]
	if !known {
		s.students = append(s.students, student)
	}
	list = append(list, snap)
	if len(list) > s.size {
		log.Debugf("history for %s full, dropping snapshot %s", student, list[0].ID)
		list = append([]Snapshot(nil), list[len(list)-s.size:]...)
	}
	s.snaps[student] = list
	log.Infof("history: stored snapshot %s for %s (%d kept)", snap.ID, student, len(list))

	return snap, true
}

// Get returns a copy of the student's snapshots, oldest first.
func (s *Store) Get(student string) []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Snapshot{}, s.snaps[student]...)
}

// Latest returns the student's most recent snapshot.
func (s *Store) Latest(student string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.snaps[student]
	if len(list) == 0 {
		return Snapshot{}, false
	}
	return list[len(list)-1], true
}

// Students lists known students in first-seen order.
func (s *Store) Students() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.students...)
}

// MinCompared is the fewest students a comparison is drawn for.
const MinCompared = 2

// ErrTooFewStudents is returned when fewer than MinCompared students can be compared.
var ErrTooFewStudents = errors.New("comparison needs at least 2 students with matching attributes")

// StudentScores is one student's latest radar scores.
type StudentScores struct {
	Student string    `json:"student"`
	Scores  []float64 `json:"scores"`
}

// Comparison lines up the latest scores of several students.
type Comparison struct {
	Attributes []string        `json:"attributes"`
	Students   []StudentScores `json:"students"`
}

//
// Compare takes every student's latest snapshot, in first-seen order.
// The first student's attributes set the axes; students scored on
// different attributes are left out.
//
func (s *Store) Compare() (Comparison, error) {
	cmp := Comparison{Students: []StudentScores{}}
	for _, student := range s.Students() {
		snap, ok := s.Latest(student)
		if !ok {
			continue
		}
		if cmp.Attributes == nil {
			cmp.Attributes = snap.Attributes
		} else if !sameAttributes(cmp.Attributes, snap.Attributes) {
			log.Debugf("history: %s left out of comparison, attributes differ", student)
			continue
		}
		cmp.Students = append(cmp.Students, StudentScores{Student: student, Scores: snap.Scores})
	}
	if len(cmp.Students) < MinCompared {
		return Comparison{}, ErrTooFewStudents
	}
	return cmp, nil
}

func sameAttributes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
