// SPDX-License-Identifier: MIT

package harness

import "github.com/katalvlaran/campusnet/student"

// Case is one population to grade.
type Case struct {
	Number   int
	Name     string
	Students []*student.Student

	// ExpectReferral requires a non-empty referral path from the first student.
	ExpectReferral bool
}

// Samples returns the built-in cases. Each call builds fresh records.
func Samples() []Case {
	return []Case{
		{Number: 1, Name: "two study groups", Students: caseOne()},
		{Number: 2, Name: "economics referral", Students: caseTwo(), ExpectReferral: true},
		{Number: 3, Name: "odd history group", Students: caseThree()},
	}
}

func uni(name string, age int, gender string, year int, major string, gpa float64, prefs, internships []string) *student.Student {
	return student.New(name,
		student.WithAge(age),
		student.WithGender(gender),
		student.WithYear(year),
		student.WithMajor(major),
		student.WithGPA(gpa),
		student.WithPreferences(prefs...),
		student.WithInternships(internships...),
	)
}

// caseOne: four students who all rank each other, plus a mutually
// preferring biology pair.
func caseOne() []*student.Student {
	return []*student.Student{
		uni("Alice", 20, "Female", 2, "Computer Science", 3.5,
			[]string{"Bob", "Charlie", "Frank"}, []string{"Google"}),
		uni("Bob", 21, "Male", 3, "Computer Science", 3.7,
			[]string{"Alice", "Charlie", "Frank"}, []string{"Google", "Microsoft"}),
		uni("Charlie", 20, "Male", 2, "Mathematics", 3.2,
			[]string{"Alice", "Bob", "Frank"}, []string{student.NoInternship}),
		uni("Frank", 23, "Male", 3, "Chemistry", 3.1,
			[]string{"Alice", "Bob", "Charlie"}, nil),
		uni("Dana", 22, "Female", 4, "Biology", 3.8,
			[]string{"Evan"}, []string{"Pfizer"}),
		uni("Evan", 22, "Male", 4, "Biology", 3.6,
			[]string{"Dana"}, []string{"Moderna", "Pfizer"}),
	}
}

// caseTwo: Ivy interned at DummyCompany.
func caseTwo() []*student.Student {
	return []*student.Student{
		uni("Greg", 24, "Male", 4, "Economics", 3.4,
			[]string{"Helen", "Ivy"}, []string{"InternshipA"}),
		uni("Helen", 24, "Female", 4, "Economics", 3.5,
			[]string{"Greg", "Ivy"}, []string{"InternshipB"}),
		uni("Ivy", 25, "Female", 4, "Economics", 3.8,
			[]string{"Helen", "Greg"}, []string{"DummyCompany"}),
	}
}

// caseThree: Leo states no preferences and stays unpaired.
func caseThree() []*student.Student {
	return []*student.Student{
		uni("Jack", 19, "Male", 1, "History", 3.0,
			[]string{"Kim"}, []string{"MuseumIntern"}),
		uni("Kim", 19, "Female", 1, "History", 3.2,
			[]string{"Jack"}, []string{"MuseumIntern"}),
		uni("Leo", 20, "Male", 1, "History", 3.5,
			nil, []string{student.NoInternship}),
	}
}
