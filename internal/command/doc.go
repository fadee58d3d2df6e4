// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command wires the tpctl subcommands: curriculum queries and
// editing, the quiz-cache demonstration, and shell completion.
package command
