package solids

import (
	"math"

	"github.com/arvo-stacks/rupert/interval"
	"github.com/arvo-stacks/rupert/vector"
)

func v3(k interval.Kernel, x, y, z float64) vector.Vector3 {
	return vector.NewVector3(k.FromBounds(x, x), k.FromBounds(y, y), k.FromBounds(z, z))
}

// Cube returns the 8 vertices of a cube centered on the origin with edge
// length 2*half.
func Cube(k interval.Kernel, half float64) []vector.Vector3 {
	var out []vector.Vector3
	for _, sx := range []float64{-half, half} {
		for _, sy := range []float64{-half, half} {
			for _, sz := range []float64{-half, half} {
				out = append(out, v3(k, sx, sy, sz))
			}
		}
	}
	return out
}

// Tetrahedron returns the 4 vertices of a regular tetrahedron inscribed in
// a cube of the given half-width, using alternating cube corners.
func Tetrahedron(k interval.Kernel, half float64) []vector.Vector3 {
	return []vector.Vector3{
		v3(k, half, half, half),
		v3(k, half, -half, -half),
		v3(k, -half, half, -half),
		v3(k, -half, -half, half),
	}
}

// Octahedron returns the 6 vertices of a regular octahedron centered on
// the origin with circumradius r.
func Octahedron(k interval.Kernel, r float64) []vector.Vector3 {
	return []vector.Vector3{
		v3(k, r, 0, 0), v3(k, -r, 0, 0),
		v3(k, 0, r, 0), v3(k, 0, -r, 0),
		v3(k, 0, 0, r), v3(k, 0, 0, -r),
	}
}

// Dodecahedron returns the 20 vertices of a regular dodecahedron centered
// on the origin, scaled so its circumradius is r.
func Dodecahedron(k interval.Kernel, r float64) []vector.Vector3 {
	phi := (1 + math.Sqrt(5)) / 2
	inv := 1 / phi
	raw := [][3]float64{}
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				raw = append(raw, [3]float64{sx, sy, sz})
			}
		}
	}
	for _, s0 := range []float64{-1, 1} {
		for _, s1 := range []float64{-1, 1} {
			raw = append(raw, [3]float64{0, s0 * inv, s1 * phi})
			raw = append(raw, [3]float64{s0 * inv, s1 * phi, 0})
			raw = append(raw, [3]float64{s0 * phi, 0, s1 * inv})
		}
	}
	circumradius := math.Sqrt(3)
	scale := r / circumradius
	out := make([]vector.Vector3, len(raw))
	for i, p := range raw {
		out[i] = v3(k, p[0]*scale, p[1]*scale, p[2]*scale)
	}
	return out
}

// Icosahedron returns the 12 vertices of a regular icosahedron centered on
// the origin, scaled so its circumradius is r.
func Icosahedron(k interval.Kernel, r float64) []vector.Vector3 {
	phi := (1 + math.Sqrt(5)) / 2
	raw := [][3]float64{}
	for _, s0 := range []float64{-1, 1} {
		for _, s1 := range []float64{-1, 1} {
			raw = append(raw, [3]float64{0, s0, s1 * phi})
			raw = append(raw, [3]float64{s0, s1 * phi, 0})
			raw = append(raw, [3]float64{s0 * phi, 0, s1})
		}
	}
	circumradius := math.Sqrt(1 + phi*phi)
	scale := r / circumradius
	out := make([]vector.Vector3, len(raw))
	for i, p := range raw {
		out[i] = v3(k, p[0]*scale, p[1]*scale, p[2]*scale)
	}
	return out
}
