package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/acocharge/matrix"
)

// ExampleDense_Scale evaporates a small trail table by 20%.
func ExampleDense_Scale() {
	m, _ := matrix.NewFilled(2, 2, 1)
	m.Scale(1 - 0.2)
	_, _ = m.AddAt(0, 1, 0.5)
	fmt.Print(m)
	// Output:
	// [0.8, 1.3]
	// [0.8, 0.8]
}
