// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the host log for the developer console.
//
// Console lines are echoed here when console.logToHost is on; errors are
// always echoed. Until Init is called, L returns a no-op logger, so packages
// can log unconditionally.
//
// # Usage
//
//	log, err := logging.Init("devconsole", logging.Options{Level: "debug"})
//	if err != nil {
//	    return err
//	}
//	defer logging.Sync()
//	log.Infow("macro reload", "path", path)
package logging
