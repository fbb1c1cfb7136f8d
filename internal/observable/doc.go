// Package observable provides a single-slot observable variable.
//
// Value holds exactly one current value, replaced atomically on every write.
// Subscribers get the latest value immediately and every later write in
// order; slow subscribers are conflated to the latest value so writers
// never block. It is a plain mutex-and-channel construction with no
// reactive runtime behind it.
package observable
