// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package quizcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
)

// ErrNotFound is reported on a cache miss. A miss never mutates the cache.
var ErrNotFound = fmt.Errorf("quiz not found")

// Quiz is a generated quiz held by the cache. Questions are only ever
// appended to (the checkpoint aggregate grows with each contribution).
type Quiz struct {
	ID          string    `json:"id"`
	Questions   []string  `json:"questions"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Cache maps quiz IDs to generated quizzes. The delay models the slow
// generation step and is injected so tests and demos can dial it to zero.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Quiz
	delay   time.Duration
	now     func() time.Time
}

// New returns an empty cache whose Generate calls block for delay.
func New(delay time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*Quiz),
		delay:   delay,
		now:     time.Now,
	}
}

// CheckpointID is the aggregate entry key for a group.
func CheckpointID(groupID string) string {
	return groupID + " Checkpoint"
}

// Generate simulates the slow one-time processing of uploaded content. It
// stores a quiz under contentID and appends two derived questions to the
// group's checkpoint aggregate, creating it on first use. The sleep honors
// ctx cancellation.
func (c *Cache) Generate(ctx context.Context, contentID, groupID string) (Quiz, error) {
	log.Debugf("generating quiz for %q (group %q)", contentID, groupID)

	if err := c.sleep(ctx); err != nil {
		return Quiz{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	quiz := &Quiz{
		ID: contentID,
		Questions: []string{
			fmt.Sprintf("Question 1 about %s", contentID),
			fmt.Sprintf("Question 2 about %s", contentID),
			fmt.Sprintf("Question 3 about %s", contentID),
		},
		GeneratedAt: c.now(),
	}
	c.entries[contentID] = quiz

	checkpointID := CheckpointID(groupID)
	checkpoint, ok := c.entries[checkpointID]
	if !ok {
		checkpoint = &Quiz{
			ID:          checkpointID,
			GeneratedAt: c.now(),
		}
		c.entries[checkpointID] = checkpoint
	}

	// Contributions accumulate in call order. No dedup: repeat uploads of
	// the same content add their questions again.
	checkpoint.Questions = append(checkpoint.Questions,
		fmt.Sprintf("Checkpoint question from %s - Part 1", contentID),
		fmt.Sprintf("Checkpoint question from %s - Part 2", contentID),
	)

	return *quiz, nil
}

// Retrieve is the instant lookup path. It returns a copy of the stored
// entry or ErrNotFound.
func (c *Cache) Retrieve(id string) (Quiz, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	quiz, ok := c.entries[id]
	if !ok {
		return Quiz{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	out := *quiz
	out.Questions = append([]string(nil), quiz.Questions...)
	return out, nil
}

// Len returns the number of cached entries, aggregates included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) sleep(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("generation interrupted: %w", ctx.Err())
	}
}
