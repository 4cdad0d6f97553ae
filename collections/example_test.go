package collections_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-enumerable/collections"
)

func ExampleListOf() {
	l := collections.ListOf(1, 2, 3, 4, 5)
	fmt.Println(l.Count(), l.Sum(collections.Numeric(func(n int) int { return n })))
	// Output: 5 15
}

func ExampleQuery_Where() {
	evens := collections.ListOf(1, 2, 3, 4, 5, 6).
		Where(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.ToArray())
	// Output: [2 4 6]
}

func ExampleQuery_OrderBy() {
	words := collections.ListOf("pear", "fig", "apple").
		OrderBy(func(s string) any { return len(s) }, collections.Descending)
	fmt.Println(words.ToArray())
	// Output: [apple pear fig]
}

func ExampleQuery_FirstOrDefault() {
	l := collections.ListOf(3, 8, 11, 20)
	n, ok := l.FirstOrDefault(func(n int) bool { return n > 10 })
	fmt.Println(n, ok)
	n, ok = l.FirstOrDefault(func(n int) bool { return n > 100 })
	fmt.Println(n, ok)
	// Output:
	// 11 true
	// 0 false
}

func ExampleQuery_Avg() {
	scores := map[string]float64{"ann": 9}
	l := collections.ListOf("ann", "bob")
	avg := l.Avg(func(name string) (float64, bool) {
		v, ok := scores[name]
		return v, ok
	})
	fmt.Println(avg)
	// Output: 4.5
}

func ExampleConvert() {
	strs := collections.Convert[int, string](collections.ListOf(1, 2, 3), strconv.Itoa)
	fmt.Printf("%q\n", strs.ToArray())
	// Output: ["1" "2" "3"]
}

func ExampleStack() {
	s := collections.NewStack[string](nil)
	s.Push("a")
	s.Push("b")
	top, _ := s.Pop()
	fmt.Println(top, s.Count())
	// Output: b 1
}

func ExampleQueue() {
	q := collections.QueueOf("first", "second")
	front, _ := q.Dequeue()
	fmt.Println(front, q.ToArray())
	// Output: first [second]
}

func ExampleDictionary_AddItem() {
	d := collections.NewDictionary[string, int]()
	_ = d.AddItem("k", 1)
	err := d.AddItem("k", 2)
	v, _ := d.GetByKey("k")
	fmt.Println(errors.Is(err, collections.ErrDuplicateKey), v)
	// Output: true 1
}
