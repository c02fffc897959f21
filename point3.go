package gotraj

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// maxRandomCoord is the inclusive upper bound of a randomly constructed coordinate.
const maxRandomCoord = 100

// Point3d is a location in 3D space. It is not safe for concurrent mutation.
type Point3d struct {
	x float32
	y float32
	z float32
}

func NewPoint3d(x, y, z float32) *Point3d {
	return &Point3d{
		x: x,
		y: y,
		z: z,
	}
}

// NewRandomPoint3d sets each coordinate to an integer drawn from [0, 100].
// A nil rng reads from the shared math/rand generator, which the caller is
// expected to seed once per process.
func NewRandomPoint3d(rng *rand.Rand) *Point3d {
	p := &Point3d{}
	p.randomize(rng)
	return p
}

func (p *Point3d) randomize(rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	p.x = float32(intn(maxRandomCoord + 1))
	p.y = float32(intn(maxRandomCoord + 1))
	p.z = float32(intn(maxRandomCoord + 1))
}

func (p *Point3d) SetXYZ(x, y, z float32) {
	p.x = x
	p.y = y
	p.z = z
}

func (p *Point3d) SetX(x float32) { p.x = x }
func (p *Point3d) SetY(y float32) { p.y = y }
func (p *Point3d) SetZ(z float32) { p.z = z }

func (p *Point3d) X() float32 { return p.x }
func (p *Point3d) Y() float32 { return p.y }
func (p *Point3d) Z() float32 { return p.z }

// Vec returns the coordinates as a mathgl vector.
func (p *Point3d) Vec() mgl32.Vec3 {
	return mgl32.Vec3{p.x, p.y, p.z}
}

func (p *Point3d) Copy() *Point3d {
	return &Point3d{
		x: p.x,
		y: p.y,
		z: p.z,
	}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p *Point3d) DistanceTo(other *Point3d) float32 {
	return p.Vec().Sub(other.Vec()).Len()
}

func (p *Point3d) String() string {
	return "Point3D(" + FormatFloat(p.x) + ", " + FormatFloat(p.y) + ", " + FormatFloat(p.z) + ")"
}

// Fprint writes the point followed by a newline.
func (p *Point3d) Fprint(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

// Print writes the point to stdout.
func (p *Point3d) Print() {
	_ = p.Fprint(os.Stdout)
}

// FormatFloat renders v with six significant digits and no trailing zeros,
// e.g. 42, 412.338, 1.23457e+06.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}
