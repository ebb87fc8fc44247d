package fraction_test

import (
	"errors"
	"fmt"

	"github.com/aatomu/fraction"
)

func ExampleFrac_arithmetic() {
	a := fraction.Must(fraction.New(1, 2))
	b := fraction.Must(fraction.New(3, 4))

	q, _ := a.Div(b)
	fmt.Println(a.Add(b), a.Sub(b), a.Mul(b), q)
	// Output: 5/4 -1/4 3/8 2/3
}

func ExampleFrac_Mixed() {
	f := fraction.Must(fraction.New(7, 3))
	fmt.Println(f.Mixed())
	// Output: 2 1/3
}

func ExampleFrac_IsAdjacentTo() {
	half := fraction.Must(fraction.New(1, 2))
	fmt.Println(half.IsAdjacentTo(fraction.Must(fraction.New(2, 3))))
	fmt.Println(half.IsAdjacentTo(fraction.Must(fraction.New(3, 4))))
	// Output:
	// true
	// false
}

func ExampleNew_invalidDenominator() {
	_, err := fraction.New(1, 0)
	fmt.Println(errors.Is(err, fraction.ErrInvalidDenominator))
	// Output: true
}
