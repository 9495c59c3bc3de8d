// Package testing provides a headless harness for widget tests.
//
// A Tester owns an engine.App wired to a recording backend and a fake
// clock, so tests can pump render cycles deterministically: build a
// widget tree, Pump a frame, locate nodes in the resulting description
// with finders, and deliver synthetic taps, drags and key presses. The
// fake clock is installed for both the gesture recognizer and the
// animation tickers, and restored on cleanup.
//
// The recording backend measures text with fixed metrics instead of
// real font faces, so geometry in tests is stable across platforms.
package testing
