package logs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// maxLineBytes bounds a single log record; longer lines are reported as errors.
const maxLineBytes = 1024 * 1024

// Filter selects lines to keep. A nil Filter keeps every line.
type Filter func(line string) bool

// ContainsFilter keeps lines containing substr, ignoring case.
func ContainsFilter(substr string) Filter {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return nil
	}
	return func(line string) bool {
		return strings.Contains(strings.ToLower(line), needle)
	}
}

// Last returns up to limit trailing lines of path that pass filter, oldest
// first. A missing file yields no lines and no error. limit <= 0 returns
// every matching line.
func Last(path string, limit int, filter Filter) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("log path %q is a directory", path)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if limit <= 0 {
		var lines []string
		for scanner.Scan() {
			if line := scanner.Text(); filter == nil || filter(line) {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log file: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, limit)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if filter != nil && !filter(line) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := make([]string, count)
	if count == limit {
		for i := range count {
			lines[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}
