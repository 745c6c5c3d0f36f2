// Steamer is a plugin-driven scaffolding CLI.
//
// Every subcommand is a plugin. Plugins share a two-tier configuration:
// global records in ~/.steamer and local records in ./.steamer, with local
// keys overriding global ones.
//
// Usage:
//
//	steamer config --list             # show the tool config over its defaults
//	steamer config -s NPM=yarn -g     # set a key in the global tool config
//	steamer config --init             # create ./.steamer/steamer.js
//	steamer env                       # show config and plugin directories
//	steamer <plugin> --help           # plugin usage and options
package main
