// Package cmd implements the sublog subcommands.
//
// Each command's Run method receives the logger registry and the merged
// settings as kong bindings from [github.com/okeefe/sublog/cli.Run].
package cmd

// SettingsIdentifier is the kong variable holding the default settings file
// path.
const SettingsIdentifier = "settings_file"
