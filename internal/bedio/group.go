package bedio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseGroupFile reads a two-column TSV of path_id<TAB>group_label,
// per spec.md §6 "Group file". A path mapped to two different group
// labels is fatal, per §4.2 "enforce uniqueness".
func ParseGroupFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	defer f.Close()

	groups := make(map[string]string)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Split(raw, "\t")
		if len(fields) < 2 {
			return nil, &ParseError{File: path, Line: line, Err: fmt.Errorf("%w: expected 2 TSV columns", ErrMalformedLine)}
		}
		pathID, label := fields[0], fields[1]
		if prev, ok := groups[pathID]; ok && prev != label {
			return nil, &ParseError{File: path, Line: line, Err: fmt.Errorf("%w: %q already mapped to %q", ErrInconsistentGroup, pathID, prev)}
		}
		groups[pathID] = label
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return groups, nil
}
