package tracklist

import "errors"

var (
	// ErrEmptyName indicates a blank artist or song name in an admin edit.
	ErrEmptyName = errors.New("name cannot be empty")
	// ErrArtistNotFound indicates the artist key does not exist.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrSongNotFound indicates the song is not listed for the artist.
	ErrSongNotFound = errors.New("song not found")
)
