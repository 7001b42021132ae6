// Package units implements a calculator for quantities with physical
// dimensions.
//
// The syntax of expressions is meant to look like the units you'd write in
// your notes. "2kg*3m/s^2" is six newtons, and so is "6 kg m/s^2". Unit
// symbols written together, like "kgm", are split into the longest symbols
// the registry knows. "-2^2" is the same as "-(2^2)", where "a^n" raises a to
// an integer power. Units written after a number belong to it, so
// "2 m s^-1" raises all of 2 m s to the -1.
//
// Every evaluation consults a Registry, which maps unit symbols to dimension
// vectors. Registries are plain values owned by the caller; clone one to give
// different expressions different custom units.
package units
