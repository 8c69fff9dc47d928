// Package generate provides the orchestration that turns the lobby
// music directory into the sound collection and jukebox prototypes.
//
// # Manager
//
// The Manager runs the whole pipeline sequentially:
//
//  1. Scan the audio directory for .mp3 and .ogg files
//  2. Write the soundCollection prototype listing every file
//  3. Resolve each track's title from its tags
//  4. Append one jukebox record per track
//
// # Basic Usage
//
//	manager := generate.NewManager(settings, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := manager.Generate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Preview resolves titles without writing anything, which backs the
// scan command and the TUI review screen.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Title fallbacks are reported at LevelVerbose only.
package generate
