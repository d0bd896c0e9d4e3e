package stores

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bench-report/internal/shared/filestorages"
	"bench-report/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBenchLogStore_ReadLines_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewBenchLogStore(mockFileStorage)

	ctx := context.Background()
	content := "64B 1 a 10.0 b 20.0\r\n64B 1 a 30.0 b 40.0\n\n512B 1 a 5.0 b 5.0"
	readCloser := &closableReader{Reader: strings.NewReader(content)}

	mockFileStorage.EXPECT().
		Get(ctx, "data-cas-sequential").
		Return(readCloser, nil)

	lines, err := store.ReadLines(ctx, "data-cas-sequential")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"64B 1 a 10.0 b 20.0",
		"64B 1 a 30.0 b 40.0",
		"",
		"512B 1 a 5.0 b 5.0",
	}, lines)
	assert.True(t, readCloser.closed, "bench log must be closed after reading")
}

func TestBenchLogStore_ReadLines_EmptyFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewBenchLogStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "empty").
		Return(io.NopCloser(strings.NewReader("")), nil)

	lines, err := store.ReadLines(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBenchLogStore_ReadLines_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		getResult   io.ReadCloser
		getError    error
		expectedIs  error
		expectedMsg string
	}{
		{
			name:        "file not found",
			getError:    filestorages.ErrFileNotFound,
			expectedIs:  ErrBenchLogNotFound,
			expectedMsg: "bench log not found: data-cas-sequential",
		},
		{
			name:        "storage error",
			getError:    errors.New("permission denied"),
			expectedMsg: "failed to open bench log",
		},
		{
			name:        "read error",
			getResult:   io.NopCloser(&errorReader{err: errors.New("read error")}),
			expectedMsg: "failed to read bench log",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewBenchLogStore(mockFileStorage)

			ctx := context.Background()
			mockFileStorage.EXPECT().
				Get(ctx, "data-cas-sequential").
				Return(tt.getResult, tt.getError)

			lines, err := store.ReadLines(ctx, "data-cas-sequential")
			assert.Nil(t, lines)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedMsg)
			if tt.expectedIs != nil {
				assert.ErrorIs(t, err, tt.expectedIs)
			}
		})
	}
}

func TestBenchLogStore_ReadLines_LineTooLong(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewBenchLogStore(mockFileStorage)

	ctx := context.Background()
	content := "64B a 1.0\n" + strings.Repeat("9", maxLineBytes+1) + "\n"
	mockFileStorage.EXPECT().
		Get(ctx, "data-cas-sequential").
		Return(io.NopCloser(strings.NewReader(content)), nil)

	lines, err := store.ReadLines(ctx, "data-cas-sequential")
	assert.Nil(t, lines)
	assert.ErrorIs(t, err, ErrBenchLogLineTooLong)
	assert.Contains(t, err.Error(), "line 2 exceeds")
}

// errorReader is a reader that always returns an error
type errorReader struct {
	err error
}

func (r *errorReader) Read(p []byte) (n int, err error) {
	return 0, r.err
}

// closableReader is a ReadCloser that tracks if it was closed
type closableReader struct {
	io.Reader
	closed bool
}

func (r *closableReader) Close() error {
	r.closed = true
	return nil
}
