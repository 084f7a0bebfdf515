// Package solids generates the vertex sets of a handful of named Platonic
// and Archimedean-adjacent solids for use by _test.go files across this
// module. It is internal, not a public catalog: the Non-goal ruling out
// "catalogs of named polyhedra" as a product feature says nothing about a
// test fixture that exercises the rest of the module against recognizable
// shapes (Rupert's classic cube-through-cube passage chief among them).
package solids
