package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cachematrix/matrix"
)

// ExampleInverse inverts a literal and checks the product with the original.
func ExampleInverse() {
	A := matrix.MustParse("[[2, 1], [1, 1]]")

	inv, err := matrix.Inverse(A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(inv)

	prod, _ := matrix.Mul(A, inv)
	id, _ := matrix.NewIdentity(2)
	ok, _ := matrix.AllClose(prod, id, 0, 1e-12)
	fmt.Println("A*inv ≈ I:", ok)

	// Output:
	// [1, -1]
	// [-1, 2]
	// A*inv ≈ I: true
}

// ExampleInverse_singular shows the sentinel returned for a singular matrix.
func ExampleInverse_singular() {
	_, err := matrix.Inverse(matrix.MustParse("[[1, 2], [2, 4]]"))
	fmt.Println(err)

	// Output:
	// Inverse: zero pivot at column 1: matrix: singular matrix
}
