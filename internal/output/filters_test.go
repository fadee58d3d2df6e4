// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/staranto/tpctlgo/internal/attrs"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantCount int
		want      []Filter
	}{
		{
			name:      "empty spec",
			spec:      "",
			wantCount: 0,
		},
		{
			name:      "single exact match filter",
			spec:      "name=Assessment",
			wantCount: 1,
			want: []Filter{
				{Key: "name", Operand: "=", Target: "Assessment", Negate: false},
			},
		},
		{
			name:      "prefix match filter",
			spec:      "name^Class",
			wantCount: 1,
			want: []Filter{
				{Key: "name", Operand: "^", Target: "Class", Negate: false},
			},
		},
		{
			name:      "negated exact match",
			spec:      "name!=test",
			wantCount: 1,
			want: []Filter{
				{Key: "name", Operand: "=", Target: "test", Negate: true},
			},
		},
		{
			name:      "greater than numeric",
			spec:      "position>3",
			wantCount: 1,
			want: []Filter{
				{Key: "position", Operand: ">", Target: "3", Negate: false},
			},
		},
		{
			name:      "contains operand",
			spec:      "name@Teaching",
			wantCount: 1,
			want: []Filter{
				{Key: "name", Operand: "@", Target: "Teaching", Negate: false},
			},
		},
		{
			name:      "multiple filters",
			spec:      "name^Class,position<3",
			wantCount: 2,
			want: []Filter{
				{Key: "name", Operand: "^", Target: "Class", Negate: false},
				{Key: "position", Operand: "<", Target: "3", Negate: false},
			},
		},
		{
			name:      "invalid filter skipped",
			spec:      "name=test,bogus-filter",
			wantCount: 1,
			want: []Filter{
				{Key: "name", Operand: "=", Target: "test", Negate: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilters(tt.spec)
			assert.Len(t, got, tt.wantCount)
			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildFilters_CustomDelimiter(t *testing.T) {
	t.Setenv("TPCTL_FILTER_DELIM", ";")

	got := BuildFilters("name=a,b;position>1")
	assert.Len(t, got, 2)
	assert.Equal(t, "a,b", got[0].Target)
}

func TestFilterDataset(t *testing.T) {
	doc := `[
		{"position": 1, "name": "Classroom Management Techniques"},
		{"position": 2, "name": "Student Engagement Strategies"},
		{"position": 3, "name": "Assessment and Evaluation Methods"}
	]`

	var al attrs.AttrList
	assert.NoError(t, al.Set(".position,.name"))

	tests := []struct {
		name      string
		spec      string
		wantNames []string
	}{
		{
			name:      "no filter returns all rows",
			spec:      "",
			wantNames: []string{"Classroom Management Techniques", "Student Engagement Strategies", "Assessment and Evaluation Methods"},
		},
		{
			name:      "prefix filter",
			spec:      "name^Student",
			wantNames: []string{"Student Engagement Strategies"},
		},
		{
			name:      "numeric filter",
			spec:      "position>1",
			wantNames: []string{"Student Engagement Strategies", "Assessment and Evaluation Methods"},
		},
		{
			name:      "negated contains",
			spec:      "name!@Engagement",
			wantNames: []string{"Classroom Management Techniques", "Assessment and Evaluation Methods"},
		},
		{
			name:      "regex filter",
			spec:      "name~(?i)assessment",
			wantNames: []string{"Assessment and Evaluation Methods"},
		},
		{
			name:      "no match",
			spec:      "name=nothing",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDataset(gjson.Parse(doc), al, tt.spec)

			var names []string
			for _, row := range got {
				names = append(names, row["name"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}
