// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want AttrList
	}{
		{
			name: "empty spec is a no-op",
			spec: "",
			want: nil,
		},
		{
			name: "single key",
			spec: "name",
			want: AttrList{
				{Key: "name", OutputKey: "name", Include: true},
			},
		},
		{
			name: "rooted key",
			spec: ".position",
			want: AttrList{
				{Key: "position", OutputKey: "position", Include: true},
			},
		},
		{
			name: "explicit output key",
			spec: "position:week",
			want: AttrList{
				{Key: "position", OutputKey: "week", Include: true},
			},
		},
		{
			name: "excluded key",
			spec: "!position",
			want: AttrList{
				{Key: "position", OutputKey: "position", Include: false},
			},
		},
		{
			name: "transform spec",
			spec: "name::u",
			want: AttrList{
				{Key: "name", OutputKey: "name", Include: true, TransformSpec: "u"},
			},
		},
		{
			name: "multiple specs",
			spec: "position,name:title",
			want: AttrList{
				{Key: "position", OutputKey: "position", Include: true},
				{Key: "name", OutputKey: "title", Include: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var al AttrList
			assert.NoError(t, al.Set(tt.spec))
			assert.Equal(t, tt.want, al)
		})
	}
}

func TestSet_OverridesExisting(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("position,name"))

	// Re-specifying an existing attr updates it in place rather than
	// appending a duplicate.
	assert.NoError(t, al.Set("name:title:u"))
	assert.Len(t, al, 2)
	assert.Equal(t, "title", al[1].OutputKey)
	assert.Equal(t, "u", al[1].TransformSpec)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		value interface{}
		want  interface{}
	}{
		{
			name:  "no spec passes through",
			spec:  "",
			value: "Assessment",
			want:  "Assessment",
		},
		{
			name:  "upper case",
			spec:  "u",
			value: "Assessment",
			want:  "ASSESSMENT",
		},
		{
			name:  "lower case",
			spec:  "l",
			value: "Assessment",
			want:  "assessment",
		},
		{
			name:  "attr case overrides global",
			spec:  "u,l",
			value: "Assessment",
			want:  "assessment",
		},
		{
			name:  "truncation",
			spec:  "6",
			value: "Assessment",
			want:  "Assess",
		},
		{
			name:  "middle elision",
			spec:  "-8",
			value: "Classroom Management",
			want:  "Cla..ent",
		},
		{
			name:  "non-string passes through",
			spec:  "u",
			value: 3,
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attr{TransformSpec: tt.spec}
			assert.Equal(t, tt.want, a.Transform(tt.value))
		})
	}
}

func TestSetGlobalTransformSpec(t *testing.T) {
	var al AttrList
	assert.NoError(t, al.Set("position,name,*::u"))
	assert.NoError(t, al.SetGlobalTransformSpec())

	for _, attr := range al {
		assert.Contains(t, attr.TransformSpec, "u")
	}
}
