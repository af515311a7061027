// Package cli implements the sublog command-line interface.
//
// Flags in the logging group feed [github.com/okeefe/sublog/log.Configure];
// an optional YAML settings file (--config) provides base values that
// explicit flags override. See the cmd subpackage for the individual
// commands.
package cli
