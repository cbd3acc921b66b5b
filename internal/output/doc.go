// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output turns a shortcut list into rows and emits them as a table,
// JSON or YAML after filtering, transforming and sorting them.
package output
