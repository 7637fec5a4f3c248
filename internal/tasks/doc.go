// Package tasks implements the two decisions a playmate run can make.
//
// # Playlist Resolution
//
// [Resolver] runs once per profile. It drains the playlist listing, prints a 1-indexed menu and
// loops on [ParseSelection] until the user enters a number in range. Non-numeric input, empty
// lines, 0 and count+1 all re-prompt. A listed entry that failed to load is fatal when the
// menu reaches it.
//
// # Moving the Current Track
//
// [Mover] reads the currently playing item and, for catalog tracks, removes every occurrence
// from the target playlist and appends it once. Snapshot ids returned by the API are logged
// and dropped.
package tasks
