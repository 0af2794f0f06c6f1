// SPDX-License-Identifier: MIT

// Package dataset reads student records from comma-separated text.
//
// Columns, in order:
//
//	name,age,gender,year,major,gpa,roommatePrefs,internships
//
// roommatePrefs and internships hold ";"-separated lists. Each line is read
// on its own: blank lines and lines whose first non-space character is "#" are
// skipped, and so is a leading header row (the first record mentioning both
// "name" and "age"). A field may be quoted to hold a comma; a line whose quotes
// do not balance is split on plain commas instead, so it never spills into the
// next line. Missing trailing columns are treated as empty, unparsable numbers
// as 0, and rows without a name are dropped.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnet/student"
)

// Column positions.
const (
	colName = iota
	colAge
	colGender
	colYear
	colMajor
	colGPA
	colPrefs
	colInternships
	numColumns
)

// ListSeparator splits list-valued columns.
const ListSeparator = ";"

// maxLineSize bounds a single roster line.
const maxLineSize = 1 << 20

// Parse reads every student record from r.
func Parse(r io.Reader) ([]*student.Student, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		out   []*student.Student
		first = true
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec := splitLine(line)
		if first {
			first = false
			if isHeader(rec) {
				continue
			}
		}
		if s := parseRecord(rec); s != nil {
			out = append(out, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	return out, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]*student.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// splitLine splits one line into fields, honoring quoted fields. A line the
// csv reader rejects falls back to a plain comma split with quotes stripped.
func splitLine(line string) []string {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if rec, err := cr.Read(); err == nil {
		return rec
	}

	rec := strings.Split(line, ",")
	for i, f := range rec {
		rec[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}

	return rec
}

func isHeader(rec []string) bool {
	line := strings.ToLower(strings.Join(rec, ","))

	return strings.Contains(line, "name") && strings.Contains(line, "age")
}

// parseRecord converts one row; nil means the row has no name.
func parseRecord(rec []string) *student.Student {
	if len(rec) < numColumns {
		padded := make([]string, numColumns)
		copy(padded, rec)
		rec = padded
	}
	name := strings.TrimSpace(rec[colName])
	if name == "" {
		return nil
	}

	return student.New(name,
		student.WithAge(atoi(rec[colAge])),
		student.WithGender(strings.TrimSpace(rec[colGender])),
		student.WithYear(atoi(rec[colYear])),
		student.WithMajor(strings.TrimSpace(rec[colMajor])),
		student.WithGPA(atof(rec[colGPA])),
		student.WithPreferences(splitList(rec[colPrefs])...),
		student.WithInternships(splitList(rec[colInternships])...),
	)
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return f
}

// splitList returns the trimmed, non-empty tokens of raw.
func splitList(raw string) []string {
	out := []string{}
	for _, tok := range strings.Split(raw, ListSeparator) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}

	return out
}
