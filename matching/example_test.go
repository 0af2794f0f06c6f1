// SPDX-License-Identifier: MIT

package matching_test

import (
	"fmt"

	"github.com/katalvlaran/campusnet/matching"
	"github.com/katalvlaran/campusnet/student"
)

// ExampleAssignRoommates pairs four students who all want Alice.
func ExampleAssignRoommates() {
	pop, _ := student.NewPopulation([]*student.Student{
		student.New("Alice", student.WithPreferences("Bob", "Charlie", "Frank")),
		student.New("Bob", student.WithPreferences("Alice", "Charlie", "Frank")),
		student.New("Charlie", student.WithPreferences("Alice", "Bob", "Frank")),
		student.New("Frank", student.WithPreferences("Alice", "Bob", "Charlie")),
	})
	res, _ := matching.AssignRoommates(pop)
	for _, pair := range res.Pairs {
		fmt.Printf("%s & %s\n", pair.First.Name, pair.Second.Name)
	}
	fmt.Println("unmatched:", len(res.Unmatched))
	// Output:
	// Alice & Bob
	// Charlie & Frank
	// unmatched: 0
}
