// Package console renders human-facing steamer output with semantic colors.
//
// A [Reporter] writes every line to a single writer (stdout by default, errors
// included) and returns the rendered string so callers and tests can inspect
// exactly what was printed. Levels map to fixed colors:
//   - error   — red
//   - info    — cyan
//   - warn    — yellow
//   - success — green
//
// [Reporter.PrintTitle] and [Reporter.PrintEnd] draw "=" rules sized to the
// terminal (84 columns when the width cannot be detected), and
// [Reporter.PrintUsage] and [Reporter.PrintOption] render command help.
package console
