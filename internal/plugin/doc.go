// Package plugin defines the contract between the steamer host and its plugins.
//
// Plugins compose a [Base], which bundles a [ConfigStore] (scoped config
// records) and a [Reporter] (colored console output), rather than inheriting
// behaviour. The host registers plugins in a [Registry] and invokes
// [Plugin.Init] with parsed [Args], or [Plugin.Help] for --help.
package plugin
