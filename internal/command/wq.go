// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tpctlgo/internal/config"
	"github.com/staranto/tpctlgo/internal/meta"
	"github.com/staranto/tpctlgo/internal/program"
)

// WqCommandAction is the action handler for the "wq" subcommand. It lists
// the curriculum weeks, supports --tldr short-circuit, and emits results per
// common flags.
func WqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "wq") {
		return nil
	}

	config.Config.Namespace = "wq"

	attrs := BuildAttrs(cmd, ".position", ".name")
	log.Debugf("attrs: %v", attrs)

	p := program.FromConfig()

	doc, err := p.JSON()
	if err != nil {
		return err
	}

	if err := EmitJSONSlice(doc, attrs, cmd); err != nil {
		return err
	}

	return nil
}

// WqCommandBuilder constructs the cli.Command for "wq", wiring metadata,
// flags, and action/validator handlers.
func WqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "wq",
		Usage:     "week query",
		UsageText: `tpctl wq [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags("wq")...),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := WqCommandValidator(ctx, c); err != nil {
				return err
			}
			return WqCommandAction(ctx, c)
		},
	}
}

// WqCommandValidator performs validation for "wq" and delegates to
// GlobalFlagsValidator.
func WqCommandValidator(ctx context.Context, cmd *cli.Command) error {
	return GlobalFlagsValidator(ctx, cmd)
}
