// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders query result sets. A raw JSON dataset is filtered,
// transformed, sorted and finally spit out as text, json or yaml per the
// common command flags.
package output
