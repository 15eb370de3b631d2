// Package store reads and writes vault files.
//
// The vault package produces and consumes containers as plain values; this
// package is the only place that touches the file on disk. Saves are
// all-or-nothing: the new container is written to a temporary file in the
// same directory, flushed, and renamed over the old vault, so an interrupted
// save leaves the previous vault intact.
//
// There is no locking. Two processes saving the same vault at once race on
// the final rename and the last one wins.
package store
