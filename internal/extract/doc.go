// Package extract pulls a clean (artist, song) pair out of one airplay row.
//
// Source sheets have no shared schema, so extraction runs an ordered list of
// candidate strategies over the first five cells of a row. Column-pair
// strategies treat one cell as the artist and another as the song; the
// combined-cell strategy splits a single free-text field such as
// "Song - Artist - Album", "Song by Artist on KXYZ", or "TEXT=Song-Artist".
// Every strategy yields scored candidates and a single reducer keeps the
// highest score, with the first candidate found winning ties.
//
// Nothing in this package returns an error. A row that yields no confident
// candidate produces the zero Pair and is skipped by the caller.
package extract
