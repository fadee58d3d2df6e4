// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package program

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/tpctlgo/internal/config"
)

// Validation errors returned by Program operations. Callers are expected to
// report these and carry on; none of them leave the sequence modified.
var (
	ErrPositionRange = fmt.Errorf("position out of range")
	ErrEmptyName     = fmt.Errorf("name must not be empty")
	ErrTooFewWeeks   = fmt.Errorf("need at least 2 weeks to reorder")
)

// Week is one entry in the curriculum. Position is assigned by the owning
// Program and always matches the week's 1-based index in the sequence.
type Week struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
}

// Program is the owned container for the week sequence. It replaces the
// shared module-level list of the original editor so operations can be
// exercised in isolation.
type Program struct {
	weeks []Week
}

// defaultWeeks is the canonical five-week teacher-training curriculum.
var defaultWeeks = []string{
	"Classroom Management Techniques",
	"Student Engagement Strategies",
	"Assessment and Evaluation Methods",
	"Differentiated Instruction Approaches",
	"Technology Integration in Teaching",
}

// New returns a Program seeded with the given week names in order. With no
// names it seeds the default curriculum.
func New(names ...string) *Program {
	if len(names) == 0 {
		names = defaultWeeks
	}

	p := &Program{weeks: make([]Week, 0, len(names))}
	for i, name := range names {
		p.weeks = append(p.weeks, Week{Position: i + 1, Name: name})
	}
	return p
}

// FromConfig builds a Program from the weeks list in tpctl.yaml, falling
// back to the default curriculum when the key is absent or empty.
func FromConfig() *Program {
	names, err := config.GetStringSlice("weeks")
	if err != nil || len(names) == 0 {
		log.Debugf("no weeks in config, seeding defaults: %v", err)
		return New()
	}
	return New(names...)
}

// Len returns the number of weeks.
func (p *Program) Len() int {
	return len(p.weeks)
}

// Weeks returns a copy of the sequence so callers can't bypass the
// position invariant.
func (p *Program) Weeks() []Week {
	out := make([]Week, len(p.weeks))
	copy(out, p.weeks)
	return out
}

// Week returns the week at the given 1-based position.
func (p *Program) Week(pos int) (Week, error) {
	if pos < 1 || pos > len(p.weeks) {
		return Week{}, fmt.Errorf("%w: %d not in [1, %d]", ErrPositionRange, pos, len(p.weeks))
	}
	return p.weeks[pos-1], nil
}

// Rename replaces the name of the week at the given position. The new name
// is trimmed and must be non-empty.
func (p *Program) Rename(pos int, name string) error {
	if pos < 1 || pos > len(p.weeks) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrPositionRange, pos, len(p.weeks))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	log.Debugf("rename week %d: %q -> %q", pos, p.weeks[pos-1].Name, name)
	p.weeks[pos-1].Name = name
	return nil
}

// Move removes the week at position from and reinserts it so that it
// occupies position to, then renumbers the whole sequence back to 1..N.
// Splice semantics: weeks between from and to shift by one to close and
// reopen the gap. from == to is a successful no-op.
func (p *Program) Move(from, to int) error {
	n := len(p.weeks)
	if n < 2 {
		return ErrTooFewWeeks
	}
	if from < 1 || from > n {
		return fmt.Errorf("%w: from %d not in [1, %d]", ErrPositionRange, from, n)
	}
	if to < 1 || to > n {
		return fmt.Errorf("%w: to %d not in [1, %d]", ErrPositionRange, to, n)
	}
	if from == to {
		return nil
	}

	week := p.weeks[from-1]
	p.weeks = append(p.weeks[:from-1], p.weeks[from:]...)
	p.weeks = append(p.weeks[:to-1], append([]Week{week}, p.weeks[to-1:]...)...)
	p.renumber()

	log.Debugf("moved %q from %d to %d", week.Name, from, to)
	return nil
}

// renumber restores the 1..N position run after a splice.
func (p *Program) renumber() {
	for i := range p.weeks {
		p.weeks[i].Position = i + 1
	}
}

// JSON marshals the sequence for the output pipeline.
func (p *Program) JSON() ([]byte, error) {
	doc, err := json.Marshal(p.weeks)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal weeks: %w", err)
	}
	return doc, nil
}
