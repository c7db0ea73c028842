// Package config loads logger settings from configuration files.
//
// Package: config
// Title: zcheck Configuration Loading
// Description: This package reads logger settings (module name, backend
//              selection, severity threshold) from TOML or YAML files,
//              applies environment variable overrides, validates them
//              against the defined backends and levels, and resolves
//              them into a log.Config ready to open a runtime logger.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-24
// Modified: 2025-08-24
//
// Change History:
// - 2025-08-24 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//
//	settings, err := config.Load("logging.toml")
//	if err != nil {
//	    return err
//	}
//	logger := log.NewRuntime()
//	if err := settings.Open(logger); err != nil {
//	    return err
//	}
//	defer logger.Close()
//
// A minimal logging.toml:
//
//	module  = "svc"
//	backend = "stdout"
//	level   = "warning"
//
// Environment variables ZCHECK_MODULE, ZCHECK_BACKEND and ZCHECK_LEVEL
// override the file values.
package config
