// Package config provides configuration management for lobbygen.
//
// This package handles:
//   - Loading and saving settings from TOML files
//   - Default configuration values
//   - Resolving resource paths against the game root
//
// # Default Settings
//
// Use DefaultSettings() to get the layout of a standard game checkout:
//
//	settings := config.DefaultSettings()
//	// Reads Resources/Audio/Lobby
//	// Writes Resources/Prototypes/Soundcollections/lobby.yml
//	// Writes Resources/Prototypes/Catalog/Jukebox/Standard.yml
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/lobbygen.toml")
//	if err != nil {
//	    // Parse or validation failure; a missing file yields defaults
//	}
//
// # Saving Settings
//
//	settings.MatchMode = "suffix"
//	err := settings.Save("/path/to/lobbygen.toml")
//
// # Configuration Options
//
// Settings includes options for:
//   - Game root and resource paths
//   - Virtual asset prefix and collection id
//   - Substring or suffix extension matching
//   - Metadata reader backend and title normalization
package config
