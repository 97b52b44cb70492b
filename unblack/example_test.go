package unblack_test

import (
	"fmt"

	"github.com/katalvlaran/pbmclean/grid"
	"github.com/katalvlaran/pbmclean/unblack"
)

// ExampleUnblack cleans a small scan whose left margin is a black bar
// touching a letter-like stroke, while a separate stroke inside the page
// survives.
//
//	1 1 0 0 0 0
//	1 1 1 0 0 0
//	1 0 0 0 1 0
//	1 0 0 0 1 0
//	1 1 0 0 0 0
func ExampleUnblack() {
	rows := []string{
		"110000",
		"111000",
		"100010",
		"100010",
		"110000",
	}
	bm, _ := grid.NewBit(6, 5)
	for row, line := range rows {
		for col, ch := range line {
			if ch == '1' {
				_, _ = bm.Put(col, row, 1)
			}
		}
	}

	n, err := unblack.Unblack(bm)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cleared:", n)
	fmt.Print(bm)

	// Output:
	// cleared: 9
	// 000000
	// 000000
	// 000010
	// 000010
	// 000000
}
