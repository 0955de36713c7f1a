// Package vdf implements a Wesolowski verifiable delay function over a fixed
// RSA group of unknown order. Computing a proof requires a configurable number
// of strictly sequential modular squarings; verifying one requires only a few
// modular exponentiations. For now, see vdf_test.go on how to use the library.
package vdf
