// Package model defines the core data structures used throughout
// the lobbygen application.
//
// # Track
//
// Track represents one audio file in the lobby music directory:
//
//	track := model.NewTrack("Intro Theme.mp3")
//	fmt.Println(track.ID())                        // "Intro Theme"
//	fmt.Println(track.VirtualPath("/Audio/Lobby/")) // "/Audio/Lobby/Intro Theme.mp3"
//
// The title defaults to the file name stem until a metadata reader
// replaces it with a tag value.
//
// # Matching
//
// IsAudioFileName decides which directory entries are lobby music:
//
//	model.IsAudioFileName("Song.MP3", model.MatchSubstring)     // true
//	model.IsAudioFileName("song.mp3.bak", model.MatchSubstring) // true
//	model.IsAudioFileName("song.mp3.bak", model.MatchSuffix)    // false
package model
