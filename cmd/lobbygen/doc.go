// Command lobbygen regenerates the lobby music prototypes of a game
// checkout from the files in Resources/Audio/Lobby.
//
// Usage:
//
//	lobbygen [--root DIR] [--config FILE] [--verbose] [--dry-run]
//	lobbygen scan
//	lobbygen config init [--overwrite]
//	lobbygen config validate
//
// Without a subcommand it writes
// Resources/Prototypes/Soundcollections/lobby.yml and
// Resources/Prototypes/Catalog/Jukebox/Standard.yml.
package main
