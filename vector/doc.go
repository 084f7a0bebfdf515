// Package vector provides interval-valued 2D/3D vector and 3x3 matrix
// algebra over an interval.Kernel backend.
//
// Every value here encloses the Minkowski box of its realizable concrete
// counterparts: a Vector3 built from three Intervals contains every
// concrete (x, y, z) with x in X, y in Y, z in Z, and every operation below
// preserves that containment.
package vector
