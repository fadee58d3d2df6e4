// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(p *Program) []string {
	var out []string
	for _, w := range p.Weeks() {
		out = append(out, w.Name)
	}
	return out
}

// assertContiguous checks the 1..N invariant against list order.
func assertContiguous(t *testing.T, p *Program) {
	t.Helper()
	for i, w := range p.Weeks() {
		assert.Equal(t, i+1, w.Position)
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New()
	assert.Equal(t, 5, p.Len())
	assertContiguous(t, p)

	w, err := p.Week(1)
	assert.NoError(t, err)
	assert.Equal(t, "Classroom Management Techniques", w.Name)
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		seed    []string
		from    int
		to      int
		want    []string
		wantErr error
	}{
		{
			name: "first to last",
			seed: []string{"A", "B", "C"},
			from: 1,
			to:   3,
			want: []string{"B", "C", "A"},
		},
		{
			name: "last to first",
			seed: []string{"A", "B", "C"},
			from: 3,
			to:   1,
			want: []string{"C", "A", "B"},
		},
		{
			name: "middle shift down",
			seed: []string{"A", "B", "C", "D", "E"},
			from: 2,
			to:   4,
			want: []string{"A", "C", "D", "B", "E"},
		},
		{
			name: "middle shift up",
			seed: []string{"A", "B", "C", "D", "E"},
			from: 4,
			to:   2,
			want: []string{"A", "D", "B", "C", "E"},
		},
		{
			name: "same position is a no-op",
			seed: []string{"A", "B", "C"},
			from: 2,
			to:   2,
			want: []string{"A", "B", "C"},
		},
		{
			name:    "from out of range",
			seed:    []string{"A", "B", "C"},
			from:    4,
			to:      1,
			want:    []string{"A", "B", "C"},
			wantErr: ErrPositionRange,
		},
		{
			name:    "to out of range",
			seed:    []string{"A", "B", "C"},
			from:    1,
			to:      0,
			want:    []string{"A", "B", "C"},
			wantErr: ErrPositionRange,
		},
		{
			name:    "too few weeks",
			seed:    []string{"A"},
			from:    1,
			to:      1,
			want:    []string{"A"},
			wantErr: ErrTooFewWeeks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.seed...)
			err := p.Move(tt.from, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.want, names(p))
			assertContiguous(t, p)
		})
	}
}

// The element originally at from must land at index to for every valid pair.
func TestMove_AllValidPairs(t *testing.T) {
	seed := []string{"A", "B", "C", "D", "E"}

	for from := 1; from <= len(seed); from++ {
		for to := 1; to <= len(seed); to++ {
			p := New(seed...)
			moved, _ := p.Week(from)

			assert.NoError(t, p.Move(from, to))

			landed, err := p.Week(to)
			assert.NoError(t, err)
			assert.Equal(t, moved.Name, landed.Name, "from=%d to=%d", from, to)
			assertContiguous(t, p)
		}
	}
}

func TestRename(t *testing.T) {
	tests := []struct {
		name    string
		pos     int
		newName string
		want    string
		wantErr error
	}{
		{
			name:    "valid rename",
			pos:     2,
			newName: "Peer Observation",
			want:    "Peer Observation",
		},
		{
			name:    "rename trims whitespace",
			pos:     2,
			newName: "  Peer Observation  ",
			want:    "Peer Observation",
		},
		{
			name:    "empty name rejected",
			pos:     2,
			newName: "",
			want:    "B",
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace-only name rejected",
			pos:     2,
			newName: "   ",
			want:    "B",
			wantErr: ErrEmptyName,
		},
		{
			name:    "position out of range",
			pos:     9,
			newName: "X",
			want:    "B",
			wantErr: ErrPositionRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("A", "B", "C")
			err := p.Rename(tt.pos, tt.newName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			w, _ := p.Week(2)
			assert.Equal(t, tt.want, w.Name)
			assertContiguous(t, p)
		})
	}
}

func TestWeeks_ReturnsCopy(t *testing.T) {
	p := New("A", "B")
	weeks := p.Weeks()
	weeks[0].Name = "mutated"

	w, _ := p.Week(1)
	assert.Equal(t, "A", w.Name)
}

func TestJSON(t *testing.T) {
	p := New("A", "B")
	doc, err := p.JSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"position":1,"name":"A"},{"position":2,"name":"B"}]`, string(doc))
}
