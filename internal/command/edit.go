// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tpctlgo/internal/meta"
	"github.com/staranto/tpctlgo/internal/program"
	"github.com/staranto/tpctlgo/internal/tui"
)

// EditCommandAction is the action handler for the "edit" subcommand. It runs
// the line-oriented menu editor against the configured curriculum, or the
// full-screen editor when --tui is set.
func EditCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "edit") {
		return nil
	}

	p := program.FromConfig()

	if cmd.Bool("tui") {
		return tui.Run(p)
	}

	return runEditor(p, os.Stdin, os.Stdout)
}

// EditCommandBuilder constructs the cli.Command for "edit".
func EditCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "interactive curriculum editor",
		UsageText: `tpctl edit [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "full-screen editor instead of the menu loop",
				Value: false,
			},
			tldrFlag,
		},
		Action: EditCommandAction,
	}
}

const rule = "============================================================"

// runEditor drives the menu loop. All input errors are recovered locally by
// printing a message and returning to the menu; only EOF ends the loop.
func runEditor(p *program.Program, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Welcome to the Training Program Editor.")

	for {
		printMenu(out)
		fmt.Fprint(out, "Enter your choice (1-4): ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			listWeeks(p, out)
		case "2":
			renameWeek(p, scanner, out)
		case "3":
			moveWeek(p, scanner, out)
		case "4":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 4.")
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "TRAINING PROGRAM EDITOR")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "1. Display All Weeks")
	fmt.Fprintln(out, "2. Rename a Week")
	fmt.Fprintln(out, "3. Reorder Weeks")
	fmt.Fprintln(out, "4. Exit")
	fmt.Fprintln(out, rule)
}

func listWeeks(p *program.Program, out io.Writer) {
	weeks := p.Weeks()
	if len(weeks) == 0 {
		fmt.Fprintln(out, "No weeks in the training program.")
		return
	}
	for _, w := range weeks {
		fmt.Fprintf(out, "Week %d: %s\n", w.Position, w.Name)
	}
}

func renameWeek(p *program.Program, scanner *bufio.Scanner, out io.Writer) {
	listWeeks(p, out)

	pos, ok := promptInt(scanner, out, fmt.Sprintf("Enter the week number to rename (1-%d): ", p.Len()))
	if !ok {
		return
	}

	// Validate the position before asking for the replacement name.
	old, err := p.Week(pos)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	fmt.Fprint(out, "Enter the new name for this week: ")
	if !scanner.Scan() {
		return
	}
	name := scanner.Text()

	if err := p.Rename(pos, name); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	renamed, _ := p.Week(pos)
	fmt.Fprintf(out, "Renamed the %s week from %q to %q.\n",
		humanize.Ordinal(pos), old.Name, renamed.Name)
}

func moveWeek(p *program.Program, scanner *bufio.Scanner, out io.Writer) {
	listWeeks(p, out)

	from, ok := promptInt(scanner, out, fmt.Sprintf("Enter the week number to move (1-%d): ", p.Len()))
	if !ok {
		return
	}
	to, ok := promptInt(scanner, out, fmt.Sprintf("Enter the new position for this week (1-%d): ", p.Len()))
	if !ok {
		return
	}

	// Move validates first, so an out-of-range pair or a too-short program
	// reports its error even when from == to.
	if err := p.Move(from, to); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	if from == to {
		fmt.Fprintln(out, "Week is already at that position. No changes made.")
		return
	}

	week, _ := p.Week(to)
	fmt.Fprintf(out, "Moved %q to the %s position. All weeks renumbered.\n",
		week.Name, humanize.Ordinal(to))
}

// promptInt reads one line and parses it as an integer. A parse failure is
// reported and ok=false returned so the caller drops back to the menu.
func promptInt(scanner *bufio.Scanner, out io.Writer, prompt string) (int, bool) {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Fprintln(out, "Error: please enter a valid number.")
		return 0, false
	}
	return n, true
}
