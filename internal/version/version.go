// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package version

// Version is the release version stamped at build time via
// -ldflags "-X github.com/staranto/tpctlgo/internal/version.Version=...".
var Version = "dev"
