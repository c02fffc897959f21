package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/smasonuk/gotraj"
)

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// runDemo prints a random trajectory, its third point and its length, then
// walks a MyVector through an in-range write and a growing push.
func runDemo(w io.Writer, rng *rand.Rand) error {
	trajectory := gotraj.NewTrajectory(rng)

	fmt.Fprintln(w, "Trajectory Points:")
	if err := trajectory.Fprint(w); err != nil {
		return err
	}

	fmt.Fprint(w, "Point 3 (via getPoint): ")
	if err := trajectory.Point(2).Fprint(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "Total Distance of Trajectory: %s\n", gotraj.FormatFloat(trajectory.TotalDistance()))

	myVec := gotraj.NewMyVectorSized(5)
	myVec.Set(2, 42.0)
	fmt.Fprintf(w, "Size of myVec: %d\n", myVec.Size())
	fmt.Fprintf(w, "Element at index 2: %s\n", gotraj.FormatFloat(myVec.At(2)))
	myVec.Push(99.9)
	_, err := fmt.Fprintf(w, "Size of myVec after push: %d\n", myVec.Size())
	return err
}
