// Command spinscan finds airplay spins for a roster of artists in station
// spreadsheets and maintains the canonical tracklist used to tidy their
// spellings.
package main
