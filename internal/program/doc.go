// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package program owns the ordered curriculum of training weeks and the
// operations that mutate it. Positions are 1-based, unique and contiguous;
// every mutation leaves the sequence numbered exactly 1..N in list order.
package program
