// Package audio provides title extraction for lobby tracks and
// rendering of the prototype documents that list them.
//
// # Title Extraction
//
// Use a TitleReader with ResolveTitle to fill in a track's title:
//
//	reader := audio.NewNativeReader()
//	track := model.NewTrack("Intro Theme.mp3")
//	err := audio.ResolveTitle(reader, lobbyDir, track)
//	// On error track.Title keeps the file name stem.
//
// Readers:
//   - NativeReader: ID3v2 TIT2 for MP3, Vorbis "title" for Ogg
//   - TaglibReader: TagLib TITLE property for both
//   - NormalizingReader: wraps another reader and applies NFC
//
// # Catalog Generation
//
// Generate the two prototype documents:
//
//	writer := audio.NewCatalogWriter("/Audio/Lobby/", "LobbyMusic")
//	collection := writer.CreateCollection(fileNames)
//	err := writer.WriteJukeboxRecord(f, track)
//
// Supported formats:
//   - soundCollection (one record, list of files)
//   - jukebox (one record per track)
package audio
