//go:build unit

package slim

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testClassList = `com/google/common/base/Joiner.class
com/google/common/collect/ImmutableList.class

# paths without the class extension are ignored
com/google/common/base/Joiner.java
`

func TestSlim_Minimize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, mockAnalyzer, mockArchiver := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(false, nil)
	mockFS.EXPECT().ReadFile("deps.txt").Return([]byte(testClassList), nil)
	mockFS.EXPECT().TempDir().Return("/tmp")
	mockFS.EXPECT().MkdirAll(gomock.Any(), os.FileMode(0o700)).Return(nil)
	mockFS.EXPECT().RemoveAll(gomock.Any()).Return(nil)

	mockAnalyzer.EXPECT().TransitiveDeps(gomock.Any()).Return([]string{
		"com.google.common.base.Preconditions",
		"com.google.common.base.Joiner$MapJoiner",
	}, nil)

	// Union of listed entries and discovered dependencies, sorted, plus the
	// metadata wildcard.
	mockArchiver.EXPECT().Extract("lib/guava.jar", []string{
		"com/google/common/base/Joiner$MapJoiner.class",
		"com/google/common/base/Joiner.class",
		"com/google/common/base/Preconditions.class",
		"com/google/common/collect/ImmutableList.class",
		"META-INF/*",
	}, gomock.Any()).Return(nil)
	mockArchiver.EXPECT().Create(gomock.Any(), "lib/guava-min.jar").Return(nil)

	dest, err := s.Minimize(MinimizeParams{
		ArchivePath:   "lib/guava.jar",
		ClassListPath: "deps.txt",
	})

	assert.NoError(t, err)
	assert.Equal(t, "lib/guava-min.jar", dest)
}

func TestSlim_Minimize_ArchiveNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, _, _ := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("missing.jar").Return(false, nil)

	_, err := s.Minimize(MinimizeParams{ArchivePath: "missing.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "missing.jar")
}

func TestSlim_Minimize_DestinationExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, _, _ := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(true, nil)

	// Refuses before reading the list or touching any tool.
	_, err := s.Minimize(MinimizeParams{ArchivePath: "lib/guava.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrDestinationExists)
	assert.Contains(t, err.Error(), "lib/guava-min.jar")
}

func TestSlim_Minimize_EmptyClassList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, _, _ := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(false, nil)
	mockFS.EXPECT().ReadFile("deps.txt").Return([]byte("com/google/common/base/Joiner.java\n\n"), nil)

	_, err := s.Minimize(MinimizeParams{ArchivePath: "lib/guava.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrNoClassEntries)
}

func TestSlim_Minimize_TransitiveResolutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, mockAnalyzer, _ := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(false, nil)
	mockFS.EXPECT().ReadFile("deps.txt").Return([]byte(testClassList), nil)
	mockFS.EXPECT().TempDir().Return("/tmp")
	mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)

	// Scratch directory is removed on the failure path too.
	mockFS.EXPECT().RemoveAll(gomock.Any()).Return(nil)

	mockAnalyzer.EXPECT().TransitiveDeps(gomock.Any()).Return(nil, errors.New("jdeps command failed"))

	_, err := s.Minimize(MinimizeParams{ArchivePath: "lib/guava.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrTransitiveResolution)
}

func TestSlim_Minimize_NoEdges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, mockAnalyzer, _ := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(false, nil)
	mockFS.EXPECT().ReadFile("deps.txt").Return([]byte(testClassList), nil)
	mockFS.EXPECT().TempDir().Return("/tmp")
	mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockFS.EXPECT().RemoveAll(gomock.Any()).Return(nil)

	mockAnalyzer.EXPECT().TransitiveDeps(gomock.Any()).Return(nil, nil)

	_, err := s.Minimize(MinimizeParams{ArchivePath: "lib/guava.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrTransitiveResolution)
}

func TestSlim_Minimize_ExtractionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, mockAnalyzer, mockArchiver := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(false, nil)
	mockFS.EXPECT().ReadFile("deps.txt").Return([]byte(testClassList), nil)
	mockFS.EXPECT().TempDir().Return("/tmp")
	mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockFS.EXPECT().RemoveAll(gomock.Any()).Return(nil)

	mockAnalyzer.EXPECT().TransitiveDeps(gomock.Any()).Return([]string{"com.google.common.base.Preconditions"}, nil)
	mockArchiver.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("unzip command failed: entry not found"))

	_, err := s.Minimize(MinimizeParams{ArchivePath: "lib/guava.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrExtraction)
	assert.Contains(t, err.Error(), "entry not found")
}

func TestSlim_Minimize_PackagingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockFS, mockAnalyzer, mockArchiver := newTestSlim(ctrl)

	mockFS.EXPECT().Exists("lib/guava.jar").Return(true, nil)
	mockFS.EXPECT().Exists("deps.txt").Return(true, nil)
	mockFS.EXPECT().Exists("lib/guava-min.jar").Return(false, nil)
	mockFS.EXPECT().ReadFile("deps.txt").Return([]byte(testClassList), nil)
	mockFS.EXPECT().TempDir().Return("/tmp")
	mockFS.EXPECT().MkdirAll(gomock.Any(), gomock.Any()).Return(nil)
	mockFS.EXPECT().RemoveAll(gomock.Any()).Return(nil)

	mockAnalyzer.EXPECT().TransitiveDeps(gomock.Any()).Return([]string{"com.google.common.base.Preconditions"}, nil)
	mockArchiver.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockArchiver.EXPECT().Create(gomock.Any(), "lib/guava-min.jar").Return(errors.New("zip command failed"))

	_, err := s.Minimize(MinimizeParams{ArchivePath: "lib/guava.jar", ClassListPath: "deps.txt"})

	assert.ErrorIs(t, err, ErrPackaging)
}

func TestMinimizedPath(t *testing.T) {
	tests := []struct {
		name     string
		archive  string
		expected string
	}{
		{
			name:     "jar archive",
			archive:  "lib/guava.jar",
			expected: "lib/guava-min.jar",
		},
		{
			name:     "zip archive",
			archive:  "bundle.zip",
			expected: "bundle-min.zip",
		},
		{
			name:     "no extension",
			archive:  "archive",
			expected: "archive-min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinimizedPath(tt.archive))
		})
	}
}
