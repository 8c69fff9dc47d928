// Package ioutils provides file system utilities.
//
// # Listing
//
//	names, err := ioutils.ListFiles(ctx, "/game/Resources/Audio/Lobby")
//
// Only regular files are returned; subdirectories are skipped.
//
// # Writing
//
//	f, err := ioutils.CreateFile(ctx, "/game/Resources/Prototypes/Soundcollections/lobby.yml")
//	defer f.Close()
//
// Whole files, such as the TOML config written by config.Settings.Save,
// go through EnsureDir and WriteFile:
//
//	err := ioutils.EnsureDir(filepath.Dir(path))
//	err = ioutils.WriteFile(ctx, path, data)
//
// # Sniffing
//
// ReadHead returns the first bytes of a file for container detection:
//
//	head, err := ioutils.ReadHead("/game/Resources/Audio/Lobby/a.ogg", 262)
package ioutils
