// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/tpctlgo/internal/meta"
	"github.com/staranto/tpctlgo/internal/quizcache"
)

// DemoCommandAction is the action handler for the "demo" subcommand. It runs
// the fixed quiz-cache demonstration: one slow generation pass, then instant
// retrievals from the cache.
func DemoCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "demo") {
		return nil
	}

	cache := quizcache.New(cmd.Duration("delay"))
	return runDemo(ctx, cache, cmd.String("content"), cmd.String("group"), os.Stdout)
}

// DemoCommandBuilder constructs the cli.Command for "demo".
func DemoCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "quiz cache demonstration",
		UsageText: `tpctl demo [options]`,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "content",
				Usage: "content name to generate a quiz for",
				Value: "Presentation-on-Classroom-Control.pdf",
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "simulated generation latency",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("demo.delay", altsrc.StringSourcer(cfg.Source)),
				),
				Value: 7 * time.Second,
			},
			&cli.StringFlag{
				Name:  "group",
				Usage: "group the content belongs to",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("demo.group", altsrc.StringSourcer(cfg.Source)),
				),
				Value: "Week 1",
			},
			tldrFlag,
		},
		Action: DemoCommandAction,
	}
}

// runDemo executes the scripted sequence: slow admin-side generation, then
// instant student-side retrievals, then a deliberate miss.
func runDemo(ctx context.Context, cache *quizcache.Cache, content, group string, out io.Writer) error {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "QUIZ GENERATION AND CACHING DEMONSTRATION")
	fmt.Fprintln(out, rule)

	fmt.Fprintf(out, "[admin] uploading %q for %s...\n", content, group)

	start := time.Now()
	quiz, err := cache.Generate(ctx, content, group)
	if err != nil {
		return fmt.Errorf("failed to generate quiz: %w", err)
	}
	generation := time.Since(start)

	fmt.Fprintf(out, "[admin] generated and cached %d questions in %s\n",
		len(quiz.Questions), generation.Round(time.Millisecond))
	fmt.Fprintf(out, "[admin] updated %q\n", quizcache.CheckpointID(group))

	for _, id := range []string{content, quizcache.CheckpointID(group)} {
		if err := retrieve(cache, id, out); err != nil {
			return err
		}
	}

	// A lookup miss is a reported condition, not a failure of the demo.
	if _, err := cache.Retrieve("not-yet-uploaded.pdf"); err != nil {
		fmt.Fprintf(out, "[student] %v\n", err)
	}

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "One-time generation cost: %s. Every retrieval after: instant.\n",
		generation.Round(time.Millisecond))
	fmt.Fprintln(out, rule)

	return nil
}

func retrieve(cache *quizcache.Cache, id string, out io.Writer) error {
	fmt.Fprintf(out, "[student] requesting quiz %q...\n", id)

	start := time.Now()
	quiz, err := cache.Retrieve(id)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for i, q := range quiz.Questions {
		fmt.Fprintf(out, "          %d. %s\n", i+1, q)
	}
	fmt.Fprintf(out, "[student] retrieved in %sµs\n",
		humanize.Comma(elapsed.Microseconds()))

	return nil
}
