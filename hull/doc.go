// Package hull builds the finite 2-vector point sets whose convex closure
// rigorously encloses the image of a projected (and separately rotated) 3D
// vertex over an angular box, plus the gift-wrap convex hull builder that
// turns such a point set into a geom.Polygon (spec.md §4.D, §4.F).
//
// Three escalating precision tiers back both the projection hull and the
// rotation hull:
//
//   - Trivial  — naive interval evaluation of the projection/rotation
//     formula over the box, widened to its axis-aligned rectangle.
//   - Combined — the same formula evaluated via the combined-harmonic
//     reparametrization (A*cos + B*sin -> amplitude*cos(x-psi)), tighter
//     than naive multiplication.
//   - Polygon  — subdivides the angular box into 2N samples and assembles a
//     4N+4-point enclosure, degrading to Combined when the box is too wide
//     for the sampling to stay sound (spec.md §4.D).
package hull
