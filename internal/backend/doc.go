// Copyright (c) 2025 Steve Taranto staranto@gmail.com.
// SPDX-License-Identifier: Apache-2.0

// Package backend implements the string-keyed storage the shortcut list is
// persisted in (memory, file, sqlite, postgres and s3) and selects one from
// config, environment and flags.
package backend
