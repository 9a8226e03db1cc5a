package solarkit

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// System is a named collection of bodies sharing a common focus. Body names
// are unique within a system. A System is not safe for concurrent use.
type System struct {
	Name      string
	CreatedAt time.Time
	bodies    []Body
	runner    *Animator // animator currently driving this system, if any
}

// NewSystem returns an empty system with the given name.
func NewSystem(name string) *System {
	return &System{Name: name, CreatedAt: time.Now().UTC()}
}

// Add validates b and appends it to the system. Invalid bodies and duplicate
// names are rejected and leave the system unchanged.
func (s *System) Add(b Body) error {
	if err := b.validate(); err != nil {
		return err
	}
	for _, o := range s.bodies {
		if o.Name == b.Name {
			return DuplicateBodyError{System: s.Name, Body: b.Name}
		}
	}
	s.bodies = append(s.bodies, b)
	return nil
}

// Remove drops the named body from the system.
func (s *System) Remove(name string) error {
	for i, o := range s.bodies {
		if o.Name == name {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return nil
		}
	}
	return UnknownBodyError{System: s.Name, Body: name}
}

// Body returns the named body and whether it is in the system.
func (s *System) Body(name string) (Body, bool) {
	for _, o := range s.bodies {
		if o.Name == name {
			return o, true
		}
	}
	return Body{}, false
}

// Bodies returns the bodies in insertion order. The slice is a copy.
func (s *System) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// ByPeriod returns the bodies sorted by orbital period, shortest first.
func (s *System) ByPeriod() []Body {
	out := s.Bodies()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// Len returns the number of bodies in the system.
func (s *System) Len() int {
	return len(s.bodies)
}

func (s *System) String() string {
	names := make([]string, len(s.bodies))
	for i, o := range s.bodies {
		names[i] = o.Name
	}
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(names, ", "))
}
