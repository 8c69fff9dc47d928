// Package scan finds lobby music files in a directory.
//
// The scan is non-recursive and only looks at regular files. A name
// qualifies when it contains ".mp3" or ".ogg" in any case (substring
// mode) or ends with one of them (suffix mode).
package scan
