// Package sequence reads integer sequences from command line arguments,
// plain text and YAML lists.
package sequence

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ErrEmptyField is returned for a blank entry in a comma separated list.
var ErrEmptyField = errors.New("empty field")

// ParseArgs parses one integer per argument. An argument may itself be a
// comma separated list such as "-2,1,-3".
func ParseArgs(args []string) ([]int64, error) {
	out := make([]int64, 0, len(args))
	for i, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				return nil, fmt.Errorf("argument %d %q: %w", i+1, arg, ErrEmptyField)
			}
			n, err := parseInt(field)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			out = append(out, n)
		}
	}
	return out, nil
}

// Parse reads a YAML list of integers or whitespace/comma separated
// integers. An empty document yields an empty sequence.
func Parse(r io.Reader) ([]int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Content) == 1 && doc.Content[0].Kind == yaml.SequenceNode {
		var out []int64
		if err := doc.Content[0].Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to parse sequence: %w", err)
		}
		if out == nil {
			out = []int64{}
		}
		return out, nil
	}

	fields := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]int64, 0, len(fields))
	for _, field := range fields {
		n, err := parseInt(field)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Load parses the sequence stored in the file at path.
func Load(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sequence: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}
