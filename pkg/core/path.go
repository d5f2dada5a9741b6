package core

import (
	"fmt"
	"strings"
)

// PathSeparator separates segments of a logical path.
const PathSeparator = "/"

// SplitFilePath splits a logical file path into its directory segments and
// the leaf name. Every segment must be a literal, non-empty name.
func SplitFilePath(p string) (dirs []string, leaf string, err error) {
	if p == "" {
		return nil, "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	parts := strings.Split(p, PathSeparator)
	for _, part := range parts {
		if err := checkSegment(p, part); err != nil {
			return nil, "", err
		}
	}
	return parts[:len(parts)-1], parts[len(parts)-1], nil
}

// SplitDirPath splits a logical directory path, dropping empty segments so
// that "", "/" and "/notes/" are accepted.
func SplitDirPath(p string) ([]string, error) {
	var segments []string
	for _, part := range strings.Split(p, PathSeparator) {
		if part == "" {
			continue
		}
		if err := checkSegment(p, part); err != nil {
			return nil, err
		}
		segments = append(segments, part)
	}
	return segments, nil
}

// JoinPath joins a prefix and a child name with the separator.
func JoinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + PathSeparator + name
}

func checkSegment(p, segment string) error {
	switch {
	case segment == "":
		return fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, p)
	case segment == "." || segment == "..":
		return fmt.Errorf("%w: relative segment %q in %q", ErrInvalidPath, segment, p)
	case strings.ContainsRune(segment, 0):
		return fmt.Errorf("%w: NUL byte in %q", ErrInvalidPath, p)
	case strings.HasPrefix(segment, TempFilePrefix):
		return fmt.Errorf("%w: reserved name %q in %q", ErrInvalidPath, segment, p)
	}
	return nil
}
