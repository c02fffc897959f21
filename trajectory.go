package gotraj

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"go.uber.org/zap"
)

// NumberOfPoints is the fixed length of every Trajectory.
const NumberOfPoints = 10

// Trajectory is an ordered path of exactly NumberOfPoints points.
// It is not safe for concurrent mutation.
type Trajectory struct {
	points [NumberOfPoints]Point3d
}

// NewTrajectory fills every point with random coordinates drawn from rng, in
// index order. See NewRandomPoint3d for a nil rng.
func NewTrajectory(rng *rand.Rand) *Trajectory {
	t := &Trajectory{}
	for i := range t.points {
		t.points[i].randomize(rng)
	}
	return t
}

func (t *Trajectory) Len() int {
	return NumberOfPoints
}

// Point returns the n-th point for in-place access. An index outside
// [0, NumberOfPoints) is logged and yields the first point instead.
func (t *Trajectory) Point(n int) *Point3d {
	if n >= 0 && n < NumberOfPoints {
		return &t.points[n]
	}
	Logger().Warn("invalid point index, returning the first point",
		zap.Int("index", n),
		zap.Int("points", NumberOfPoints),
	)
	return &t.points[0]
}

// SegmentLengths returns the distance between each pair of consecutive points.
func (t *Trajectory) SegmentLengths() [NumberOfPoints - 1]float32 {
	var lengths [NumberOfPoints - 1]float32
	for i := range lengths {
		lengths[i] = t.points[i].DistanceTo(&t.points[i+1])
	}
	return lengths
}

// TotalDistance is the length of the path through all points in order.
func (t *Trajectory) TotalDistance() float32 {
	var total float32
	for _, l := range t.SegmentLengths() {
		total += l
	}
	return total
}

// Fprint writes one "Point N: Point3D(x, y, z)" line per point, N starting at 1.
func (t *Trajectory) Fprint(w io.Writer) error {
	for i := range t.points {
		if _, err := fmt.Fprintf(w, "Point %d: ", i+1); err != nil {
			return err
		}
		if err := t.points[i].Fprint(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trajectory) Print() {
	_ = t.Fprint(os.Stdout)
}
