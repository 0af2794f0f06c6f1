// SPDX-License-Identifier: MIT

package student

import (
	"fmt"
	"strings"
)

// Unassigned is the roommate index of a student without a roommate.
const Unassigned = -1

// Population is an ordered arena of students. Students are addressed by their
// index; the roommate relation is stored as indices so reciprocity can be
// checked and repaired without pointer cycles.
//
// A Population is not safe for concurrent mutation. Matching writes the
// roommate slots; callers serialize matching with any concurrent reader.
type Population struct {
	students []*Student
	byName   map[string]int // exact name → index
	byFold   map[string]int // lower-cased name → first index with that fold
	roommate []int
}

// NewPopulation validates students and builds the arena. Order is preserved.
//
// Errors:
//   - ErrNilStudent: a nil entry.
//   - ErrEmptyName: a student with an empty name.
//   - ErrDuplicateStudent: two students with the same (case-sensitive) name.
func NewPopulation(students []*Student) (*Population, error) {
	p := &Population{
		students: make([]*Student, 0, len(students)),
		byName:   make(map[string]int, len(students)),
		byFold:   make(map[string]int, len(students)),
		roommate: make([]int, 0, len(students)),
	}
	for i, s := range students {
		if s == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilStudent, i)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyName, i)
		}
		if _, dup := p.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStudent, s.Name)
		}
		idx := len(p.students)
		p.students = append(p.students, s)
		p.byName[s.Name] = idx
		if _, ok := p.byFold[strings.ToLower(s.Name)]; !ok {
			p.byFold[strings.ToLower(s.Name)] = idx
		}
		p.roommate = append(p.roommate, Unassigned)
	}

	return p, nil
}

// Len returns the number of students.
func (p *Population) Len() int { return len(p.students) }

// At returns the student at index i, or nil when i is out of range.
func (p *Population) At(i int) *Student {
	if i < 0 || i >= len(p.students) {
		return nil
	}

	return p.students[i]
}

// Students returns the students in population order. The slice is a copy.
func (p *Population) Students() []*Student {
	out := make([]*Student, len(p.students))
	copy(out, p.students)

	return out
}

// Index returns the index of the student with exactly this name.
func (p *Population) Index(name string) (int, bool) {
	i, ok := p.byName[name]

	return i, ok
}

// Lookup resolves a preference entry: exact name first, then a
// case-insensitive match.
func (p *Population) Lookup(name string) (int, bool) {
	if i, ok := p.byName[name]; ok {
		return i, true
	}
	i, ok := p.byFold[strings.ToLower(name)]

	return i, ok
}

// IndexOf returns the index of s, matched by name identity.
func (p *Population) IndexOf(s *Student) (int, bool) {
	if s == nil {
		return Unassigned, false
	}

	return p.Index(s.Name)
}

// RoommateOf returns the roommate index of i, or Unassigned.
func (p *Population) RoommateOf(i int) int {
	if i < 0 || i >= len(p.roommate) {
		return Unassigned
	}

	return p.roommate[i]
}

// Roommate returns the roommate of s, or nil when s has none or is not part
// of the population.
func (p *Population) Roommate(s *Student) *Student {
	i, ok := p.IndexOf(s)
	if !ok {
		return nil
	}

	return p.At(p.roommate[i])
}

// Pair assigns i and j as each other's roommates. Previous partners are not
// touched; the caller unpairs them first.
func (p *Population) Pair(i, j int) error {
	if err := p.check(i); err != nil {
		return err
	}
	if err := p.check(j); err != nil {
		return err
	}
	p.roommate[i] = j
	p.roommate[j] = i

	return nil
}

// Unpair clears the roommate slot of i only.
func (p *Population) Unpair(i int) error {
	if err := p.check(i); err != nil {
		return err
	}
	p.roommate[i] = Unassigned

	return nil
}

// ClearRoommates resets every roommate slot.
func (p *Population) ClearRoommates() {
	for i := range p.roommate {
		p.roommate[i] = Unassigned
	}
}

// RepairRoommates nulls every assignment whose partner does not point back
// and returns how many slots were cleared.
func (p *Population) RepairRoommates() int {
	repaired := 0
	for i, r := range p.roommate {
		if r == Unassigned {
			continue
		}
		if r < 0 || r >= len(p.roommate) || r == i || p.roommate[r] != i {
			p.roommate[i] = Unassigned
			repaired++
		}
	}

	return repaired
}

func (p *Population) check(i int) error {
	if i < 0 || i >= len(p.students) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return nil
}
