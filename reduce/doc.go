// Package reduce implements the four collective reduction algorithms —
// linear, binomial, recursive-doubling and Rabenseifner — over the
// pgas.Fabric transport: one generic ToAll<Algo> entry point per algorithm,
// parameterised by fold.Op[T] rather than emitted per (type, op) pair.
//
// ops_gen.go additionally exposes named reduce_<type>_<op>_to_all_<algo>
// style wrappers over the generic entry points, for callers that want a
// fixed API surface instead of instantiating fold.Op themselves.
package reduce

//go:generate go run ../cmd/genreduceops
