// SPDX-License-Identifier: MIT

package student

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for record and population validation.
var (
	// ErrNilStudent indicates a nil *Student in a population.
	ErrNilStudent = errors.New("student: nil student")

	// ErrEmptyName indicates a student without a name.
	ErrEmptyName = errors.New("student: name is empty")

	// ErrDuplicateStudent indicates two students share the same name.
	ErrDuplicateStudent = errors.New("student: duplicate student name")

	// ErrIndexOutOfRange indicates an arena index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("student: index out of range")
)

// NoInternship is the literal token meaning "no internship".
const NoInternship = "None"

// NotRanked is the rank of a name absent from a preference list.
const NotRanked = math.MaxInt

// Kind tags the record variant used for score dispatch.
type Kind int

const (
	// KindUnknown is the zero value; no strategy is registered for it.
	KindUnknown Kind = iota

	// KindUniversity marks a university student scored by UniversityStrategy.
	KindUniversity
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindUniversity:
		return "university"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Student is a student profile.
type Student struct {
	Name   string
	Age    int // 0 = unknown
	Gender string
	Year   int
	Major  string // "" = unknown
	GPA    float64

	// RoommatePreferences is ordered highest priority first.
	RoommatePreferences []string

	// PreviousInternships lists company names; "None" and "" mean no internship.
	PreviousInternships []string

	Kind Kind
}

// Option configures a Student built by New.
type Option func(*Student)

// WithAge sets the age; negative values are clamped to 0 (unknown).
func WithAge(age int) Option {
	return func(s *Student) {
		if age < 0 {
			age = 0
		}
		s.Age = age
	}
}

// WithGender sets the gender.
func WithGender(gender string) Option { return func(s *Student) { s.Gender = gender } }

// WithYear sets the academic year.
func WithYear(year int) Option { return func(s *Student) { s.Year = year } }

// WithMajor sets the major.
func WithMajor(major string) Option { return func(s *Student) { s.Major = major } }

// WithGPA sets the grade point average.
func WithGPA(gpa float64) Option { return func(s *Student) { s.GPA = gpa } }

// WithPreferences sets the ranked roommate preferences (copied).
func WithPreferences(names ...string) Option {
	return func(s *Student) { s.RoommatePreferences = append([]string(nil), names...) }
}

// WithInternships sets the internship history (copied).
func WithInternships(companies ...string) Option {
	return func(s *Student) { s.PreviousInternships = append([]string(nil), companies...) }
}

// New builds a university student named name.
// Preference and internship slices are never nil on the result.
func New(name string, opts ...Option) *Student {
	s := &Student{
		Name:                name,
		Kind:                KindUniversity,
		RoommatePreferences: []string{},
		PreviousInternships: []string{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsNoInternship reports whether company stands for "no internship".
func IsNoInternship(company string) bool {
	c := strings.TrimSpace(company)

	return c == "" || strings.EqualFold(c, NoInternship)
}

// HasInternship reports whether company appears in s's internship history,
// compared case-insensitively. The "None" token never matches.
func (s *Student) HasInternship(company string) bool {
	if s == nil || IsNoInternship(company) {
		return false
	}
	for _, c := range s.PreviousInternships {
		if !IsNoInternship(c) && strings.EqualFold(c, company) {
			return true
		}
	}

	return false
}

// PreferenceRank returns the position of name in s's roommate preferences,
// compared case-insensitively, or NotRanked when absent.
func (s *Student) PreferenceRank(name string) int {
	if s == nil {
		return NotRanked
	}
	for i, p := range s.RoommatePreferences {
		if strings.EqualFold(p, name) {
			return i
		}
	}

	return NotRanked
}

// Prefers reports whether name appears anywhere in s's roommate preferences.
func (s *Student) Prefers(name string) bool {
	return s.PreferenceRank(name) != NotRanked
}

// String implements fmt.Stringer.
func (s *Student) String() string {
	if s == nil {
		return "Student{<nil>}"
	}

	return fmt.Sprintf(
		"Student{name=%q, age=%d, gender=%s, year=%d, major=%s, gpa=%.2f, prefs=%v, internships=%v}",
		s.Name, s.Age, s.Gender, s.Year, s.Major, s.GPA, s.RoommatePreferences, s.PreviousInternships,
	)
}
