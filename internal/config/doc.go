// Package config assembles the runtime options of the appsettings command.
//
// Options are collected from several sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (APPSETTINGS_ prefix)
//  3. JSON options file (path from -c/-config or APPSETTINGS_CONFIG)
//
// The main entry point is [GetStructuredConfig].
package config
