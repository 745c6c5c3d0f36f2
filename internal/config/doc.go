// Package config resolves, reads and writes steamer configuration records.
//
// A record lives at {base}/.steamer/{name}.{ext} and holds the owning plugin
// name plus an arbitrary payload. Two scopes exist:
//   - Global — rooted at the user's home directory
//   - Local  — rooted at the working directory (the default)
//
// Reads never fail: a missing or unreadable record is an empty payload. A
// local read deep-merges the global payload under the local one, and the
// shared tool record ("steamer") is further layered over [DefaultConfig].
//
// Use [NewStore] to obtain a [Store], [Store.ReadConfig] and
// [Store.CreateConfig] for plugin records, and [Store.ReadToolDefaultConfig]
// for the tool-wide settings.
package config
