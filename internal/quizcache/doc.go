// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package quizcache is the in-memory quiz store behind the caching
// demonstration: generation pays a one-time simulated cost, retrieval is an
// instant lookup. Entries live for the life of the process and are never
// evicted.
package quizcache
