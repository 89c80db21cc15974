// Package transform wraps the numerical routines (gonum) behind a uniform
// Fit/Transform interface. Each kind registers a factory under its name so the
// pipeline catalog and the snapshot decoder can build steps by kind.
package transform
