// Package io provides the console tape for the LMC emulator: numeric input
// read from an io.Reader, and OUT/OTC text written to an io.Writer.
package io
