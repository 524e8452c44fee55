// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build race

// Package race exposes the handful of race-detector annotation hooks
// that the queue and pool use to tell the race detector about the
// synchronization their CAS loops perform by hand. It mirrors the
// standard library's unexported internal/race package, which cannot be
// imported from outside GOROOT, via the same go:linkname mechanism
// used elsewhere in this module to reach runtime internals.
package race

import (
	"unsafe"
)

const Enabled = true

//go:linkname raceAcquire runtime.RaceAcquire
func raceAcquire(addr unsafe.Pointer)

//go:linkname raceReleaseMerge runtime.RaceReleaseMerge
func raceReleaseMerge(addr unsafe.Pointer)

//go:linkname raceDisable runtime.RaceDisable
func raceDisable()

//go:linkname raceEnable runtime.RaceEnable
func raceEnable()

// Acquire tells the race detector that the calling goroutine has
// acquired addr, pairing with a prior ReleaseMerge.
func Acquire(addr unsafe.Pointer) { raceAcquire(addr) }

// ReleaseMerge tells the race detector that addr has been released for
// acquisition by another goroutine.
func ReleaseMerge(addr unsafe.Pointer) { raceReleaseMerge(addr) }

// Disable turns off race instrumentation for the calling goroutine,
// for regions that do their own manual synchronization annotation.
func Disable() { raceDisable() }

// Enable re-enables race instrumentation after Disable.
func Enable() { raceEnable() }
