// Package allocation implements the seat allocation engine for exam
// seating plans.  It is a pure in-memory package: callers load rooms and
// eligible students from the database, hand them to the engine, and persist
// the resulting assignments themselves.  Nothing in this package performs
// I/O or touches shared state, so a single allocation run is trivially
// serializable by the caller (one mutex per exam in the service layer).
//
// The engine is built from small parts that compose in a fixed order:
// capacity validation gates the run, the sequencer turns the eligible
// students into program-balanced queues, a Strategy pours students into the
// seat grids, and the validator inspects the finished arrangement for
// same-program adjacency and produces occupancy statistics.
package allocation
