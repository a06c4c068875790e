package list_test

import (
	"fmt"

	"github.com/toolbuilder/list"
)

func Example() {
	l := list.Of("A", "B", "D")
	b := l.Find(func(v string) bool { return v == "B" })
	l.InsertAfter(b, "C")

	for v := range l.Values(nil, nil) {
		fmt.Println(v)
	}
	// Output:
	// A
	// B
	// C
	// D
}

func ExampleList_Slice() {
	l := list.Of(1, 2, 3, 4, 5)
	three := l.Find(func(v int) bool { return v == 3 })

	fmt.Println(l.Slice(three, nil).ToSlice())
	fmt.Println(l.Slice(nil, three).ToSlice())
	// Output:
	// [3 4 5]
	// [1 2]
}

func ExampleList_NodesReversed() {
	l := list.Of("x", "y", "z")
	for n := range l.NodesReversed() {
		fmt.Print(n.Value)
	}
	// Output:
	// zyx
}
