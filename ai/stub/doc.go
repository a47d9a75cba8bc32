// Package stub provides an offline answer generator. It is the default
// backend: deployments without a model service still get deterministic,
// well-formed answers for development and testing.
package stub
