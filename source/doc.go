// Package source provides built-in data source implementations.
//
// Data sources load the players and teams of a matching run.
// The package includes:
//
//   - Static: Fixed in-memory dataset
//   - File: Text, YAML or JSON dataset file, optionally zstd-compressed
//
// Custom sources can be implemented by satisfying the types.DataSource interface.
package source
