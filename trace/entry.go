// Package trace parses the indented call-tree text produced by a C
// call-graph analysis tool and reconstructs it as a graph of functions and
// caller/callee relations.
package trace

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry represents one parsed trace line.
type Entry struct {
	Depth      int      // Nesting level derived from leading whitespace
	Name       string   // Function name
	ReturnType string   // May be compound, e.g. "static int"
	Arguments  []string // Argument declarations, empty for a void list
	SourceFile string
	SourceLine int
	Trailing   string // Anything after the closing angle bracket, e.g. a recursion marker
}

// entryPattern captures indent, name, return type, argument list, source
// location and trailing text of one trace line, e.g.
//
//	    helper() <void helper (int x) at util.c:5>:
var entryPattern = regexp.MustCompile(`^( *)([A-Za-z_]\w*)\(\) <(.*?) (\S+) \((.*)\) at (.+):(\d+)>(.*)$`)

// ParseEntry matches one newline-stripped line against the trace grammar.
// The second result is false for lines outside the grammar; such lines are
// not an error, trace dumps interleave headers and annotations freely.
func ParseEntry(line string, config *Config) (*Entry, bool) {
	match := entryPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	unit := DefaultIndentUnit
	if config != nil && config.IndentUnit > 0 {
		unit = config.IndentUnit
	}
	sourceLine, err := strconv.Atoi(match[7])
	if err != nil {
		return nil, false
	}
	return &Entry{
		Depth:      len(match[1]) / unit,
		Name:       match[2],
		ReturnType: match[3],
		Arguments:  splitArguments(match[5]),
		SourceFile: match[6],
		SourceLine: sourceLine,
		Trailing:   match[8],
	}, true
}

// splitArguments splits a comma-space separated argument list. An empty list
// yields no arguments rather than a single empty one; a C void parameter
// list declares no arguments either.
func splitArguments(arguments string) []string {
	if arguments == "" || arguments == "void" {
		return nil
	}
	return strings.Split(arguments, ", ")
}
