// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			PaddingLeft(1)

	renamePromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
)
