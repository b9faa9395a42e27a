// Package scan drives extraction across every sheet and row of a workbook.
//
// Run is single-threaded and cooperative: it yields after each sheet and
// after every Options.YieldEvery rows inside a sheet, reports Progress at
// those points, and stops at the first yield after ctx is cancelled. The
// roster and tracklist snapshot are read-only for the duration of a run, and
// the accumulated matches.Set is append-only, so a cancelled run's partial
// result can be dropped without cleanup.
package scan
