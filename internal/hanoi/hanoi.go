// Package hanoi solves the Tower of Hanoi puzzle while tracking peg
// positions as ternary state: disk i's current peg (0, 1 or 2) is digit i of
// the packed state string, most significant disk first.
package hanoi

import (
	"errors"
	"fmt"
	"io"
)

// ErrNegativeDisks is returned by Solve for a negative disk count.
var ErrNegativeDisks = errors.New("hanoi: disk count must be non-negative")

// Solve moves n disks from peg 0 to peg 2, writing every move and the
// resulting peg state to w. It returns the number of moves made, always
// 2^n - 1.
func Solve(n int, w io.Writer) (int, error) {
	if n < 0 {
		return 0, ErrNegativeDisks
	}
	s := &solver{state: make([]int, n), w: w}
	fmt.Fprintln(w, "Initial state (all disks on peg 0):")
	s.printState()
	s.solve(n, 0, 2, 1)
	return s.moves, nil
}

type solver struct {
	state []int
	moves int
	w     io.Writer
}

func (s *solver) solve(n, from, to, aux int) {
	if n == 0 {
		return
	}
	s.solve(n-1, from, aux, to)
	s.move(n-1, from, to)
	s.solve(n-1, aux, to, from)
}

func (s *solver) move(disk, from, to int) {
	fmt.Fprintf(s.w, "Move disk %d from peg %d to peg %d\n", disk, from, to)
	s.state[disk] = to
	s.moves++
	s.printState()
}

func (s *solver) printState() {
	fmt.Fprint(s.w, "State: ")
	for i := len(s.state) - 1; i >= 0; i-- {
		fmt.Fprintf(s.w, "%d", s.state[i])
	}
	fmt.Fprintln(s.w)
}
