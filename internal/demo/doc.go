// Package demo runs the calculator demonstration.
//
// A demonstration is described by a Script: a banner, a set of named
// operands, and ordered sections of steps. The default script is embedded
// in the binary (demo.yaml) and validated against an embedded CUE schema
// (schema.cue) when loaded.
//
// Computation and presentation are separate. Run executes a script and
// returns a Report; failed steps keep their *arith.Error. RenderText turns a
// Report into the console transcript, and Diagnostic decides how an error
// is shown. Report.Canonical produces deterministic JSON.
package demo
