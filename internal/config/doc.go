// Package config provides configuration structures and utilities for rstfy.
// It defines the command-level options for report generation and the
// optional per-user defaults file.
package config
