//go:build unit

package classref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassFilePath(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		expected string
	}{
		{
			name:     "top-level class",
			class:    "com.google.common.base.Joiner",
			expected: "com/google/common/base/Joiner.class",
		},
		{
			name:     "nested class",
			class:    "com.google.common.base.Joiner$MapJoiner",
			expected: "com/google/common/base/Joiner$MapJoiner.class",
		},
		{
			name:     "default package",
			class:    "Main",
			expected: "Main.class",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassFilePath(tt.class))
		})
	}
}

func TestSourceFilePath(t *testing.T) {
	tests := []struct {
		name     string
		class    string
		expected string
	}{
		{
			name:     "top-level class",
			class:    "com.google.common.collect.ImmutableList",
			expected: "com/google/common/collect/ImmutableList.java",
		},
		{
			name:     "nested class maps to enclosing source file",
			class:    "com.google.common.collect.ImmutableList$Builder",
			expected: "com/google/common/collect/ImmutableList.java",
		},
		{
			name:     "anonymous class maps to enclosing source file",
			class:    "com.google.common.base.Suppliers$1",
			expected: "com/google/common/base/Suppliers.java",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SourceFilePath(tt.class))
		})
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "plain path",
			path:     "com/google/common/base/Joiner.class",
			expected: "com.google.common.base.Joiner",
		},
		{
			name:     "nested class path",
			path:     "com/google/common/base/Joiner$MapJoiner.class",
			expected: "com.google.common.base.Joiner$MapJoiner",
		},
		{
			name:     "windows separators",
			path:     `com\google\common\base\Joiner.class`,
			expected: "com.google.common.base.Joiner",
		},
		{
			name:     "leading slash",
			path:     "/com/google/common/base/Joiner.class",
			expected: "com.google.common.base.Joiner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassName(tt.path))
		})
	}
}

func TestClassName_RoundTrip(t *testing.T) {
	names := []string{
		"com.google.common.base.Joiner",
		"com.google.common.base.Joiner$MapJoiner",
		"com.google.common.cache.LocalCache$Segment$1",
	}

	for _, name := range names {
		assert.Equal(t, name, ClassName(ClassFilePath(name)))
	}
}

func TestIsNested(t *testing.T) {
	assert.False(t, IsNested("com.google.common.base.Joiner"))
	assert.True(t, IsNested("com.google.common.base.Joiner$MapJoiner"))
	assert.True(t, IsNested("com.google.common.base.Suppliers$1"))
}

func TestIsClassFilePath(t *testing.T) {
	assert.True(t, IsClassFilePath("com/google/common/base/Joiner.class"))
	assert.False(t, IsClassFilePath("com/google/common/base/Joiner.java"))
	assert.False(t, IsClassFilePath(""))
}
