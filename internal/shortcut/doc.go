// Copyright (c) 2026 Steve Taranto staranto@gmail.com.
// SPDX-License-Identifier: Apache-2.0

// Package shortcut owns the start page shortcut list: the record type, its
// JSON encoding, and the Store that mediates every read and write against a
// string-keyed storage backend.
package shortcut
