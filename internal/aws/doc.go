// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws contains the AWS SDK v2 config and client helpers used by the
// S3 storage backend.
package aws
