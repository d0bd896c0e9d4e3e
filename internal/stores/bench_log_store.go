package stores

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"bench-report/internal/shared/filestorages"
)

var (
	ErrBenchLogNotFound    = errors.New("bench log not found")
	ErrBenchLogLineTooLong = errors.New("bench log line too long")
)

// maxLineBytes bounds one benchmark log line.
const maxLineBytes = 1024 * 1024

// BenchLogStore reads raw benchmark logs. The whole file is read eagerly: aggregation
// only starts once every line is in memory.
//
//go:generate mockgen -source=bench_log_store.go -destination=./mocks/bench_log_store_mock.go -package=mocks
type BenchLogStore interface {
	ReadLines(ctx context.Context, key string) ([]string, error)
}

type benchLogStore struct {
	fileStorage filestorages.FileStorage
}

func NewBenchLogStore(fileStorage filestorages.FileStorage) BenchLogStore {
	return &benchLogStore{fileStorage: fileStorage}
}

func (s *benchLogStore) ReadLines(ctx context.Context, key string) ([]string, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBenchLogNotFound, key)
		}
		return nil, fmt.Errorf("failed to open bench log: %w", err)
	}
	defer readCloser.Close()

	var lines []string
	scanner := bufio.NewScanner(readCloser)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", ErrBenchLogLineTooLong, len(lines)+1, maxLineBytes)
		}
		return nil, fmt.Errorf("failed to read bench log: %w", err)
	}
	return lines, nil
}
