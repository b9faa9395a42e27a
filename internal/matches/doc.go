// Package matches models the spins found by a scan and turns them into the
// ordered, grouped, and gridded views that presentation and export code
// consume.
//
// Nothing here renders output for a terminal. Sort and Group return plain
// data; WriteCSV and WriteJSON serialize it for files or pipes.
package matches
