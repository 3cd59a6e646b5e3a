// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package samples provides example console subscribers: a spawner that
// records primitives placed with spawn.* commands, and a listener that
// announces console activation.
package samples
