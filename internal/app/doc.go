// Package app wires application dependencies for the CLI.
//
// It builds the logger, the key file store and the key service from Config,
// exposing them via the App struct for commands to use.
package app
