package main

import (
	"fmt"
	"strings"
)

// parseAssignments turns a list of "key=value" strings into a map,
// preserving the shell-friendly --set form mint and set take their
// properties in.
func parseAssignments(assignments []string) (map[string]string, error) {
	props := make(map[string]string, len(assignments))
	for _, kv := range assignments {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed assignment %q, want key=value", kv)
		}
		props[k] = v
	}
	return props, nil
}
