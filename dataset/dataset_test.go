// SPDX-License-Identifier: MIT

package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnet/dataset"
)

const sample = `# campus roster
name,age,gender,year,major,gpa,roommatePrefs,internships
Alice,20,Female,2,Computer Science,3.5,Bob;Charlie;Frank,Google

Bob,21,Male,3,Computer Science,3.7, Alice ; ;Charlie ,Google;Facebook
`

func TestParse_Sample(t *testing.T) {
	ss, err := dataset.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, ss, 2)

	a := ss[0]
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, 20, a.Age)
	assert.Equal(t, "Female", a.Gender)
	assert.Equal(t, 2, a.Year)
	assert.Equal(t, "Computer Science", a.Major)
	assert.InDelta(t, 3.5, a.GPA, 1e-9)
	assert.Equal(t, []string{"Bob", "Charlie", "Frank"}, a.RoommatePreferences)
	assert.Equal(t, []string{"Google"}, a.PreviousInternships)

	b := ss[1]
	assert.Equal(t, []string{"Alice", "Charlie"}, b.RoommatePreferences)
	assert.Equal(t, []string{"Google", "Facebook"}, b.PreviousInternships)
}

func TestParse_HeaderOnlyOnFirstRecord(t *testing.T) {
	// A later row mentioning "name" and "age" is data, not a header.
	in := "Ann,19\nname,age\n"
	ss, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "name", ss[1].Name)
	assert.Equal(t, 0, ss[1].Age)
}

func TestParse_ShortRowsAndBadNumbers(t *testing.T) {
	ss, err := dataset.Parse(strings.NewReader("Leo,twenty,Male,x,History,abc\n"))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	l := ss[0]
	assert.Equal(t, 0, l.Age)
	assert.Equal(t, 0, l.Year)
	assert.Zero(t, l.GPA)
	assert.Equal(t, "History", l.Major)
	assert.NotNil(t, l.RoommatePreferences)
	assert.Empty(t, l.RoommatePreferences)
	assert.Empty(t, l.PreviousInternships)
}

func TestParse_SkipsNamelessRows(t *testing.T) {
	ss, err := dataset.Parse(strings.NewReader(",20,Female\n  ,21\nZoe\n"))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "Zoe", ss[0].Name)
}

func TestParse_Empty(t *testing.T) {
	ss, err := dataset.Parse(strings.NewReader("# nothing here\n\n"))
	require.NoError(t, err)
	assert.Empty(t, ss)
}

func TestParse_UnbalancedQuoteStaysOnItsLine(t *testing.T) {
	in := "Alice,20,F,2,\"CS,3.5,Bob,Google\n" +
		"Bob,21,M,3,CS,3.7,Alice,Google\n" +
		"Carol,22,F,4,Math,3.9,,\n"
	ss, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ss, 3)

	a := ss[0]
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, "CS", a.Major)
	assert.InDelta(t, 3.5, a.GPA, 1e-9)
	assert.Equal(t, []string{"Bob"}, a.RoommatePreferences)
	assert.Equal(t, []string{"Google"}, a.PreviousInternships)

	assert.Equal(t, "Bob", ss[1].Name)
	assert.Equal(t, "Carol", ss[2].Name)
	assert.Equal(t, "Math", ss[2].Major)
}

func TestParse_IndentedComment(t *testing.T) {
	in := "  # just a note\n\t# another\nBob,21,Male,3,CS,3.7,Alice,Google\n"
	ss, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "Bob", ss[0].Name)
}

func TestParse_QuotedComma(t *testing.T) {
	in := `Dana,22,Female,4,"Biology, Marine",3.8,Evan,Pfizer` + "\n"
	ss, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "Biology, Marine", ss[0].Major)
	assert.Equal(t, []string{"Evan"}, ss[0].RoommatePreferences)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	ss, err := dataset.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, ss, 2)

	_, err = dataset.ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
