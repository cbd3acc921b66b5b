// Copyright (c) 2026 Steve Taranto staranto@gmail.com.
// SPDX-License-Identifier: Apache-2.0

// Package datadir resolves where tabctl keeps its on-disk state and maps
// storage keys to file names inside it.
package datadir
