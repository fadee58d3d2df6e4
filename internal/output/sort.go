// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// sortKey is one parsed component of the --sort spec. A leading '-' sorts
// descending; a leading '!' makes string comparison case-sensitive.
type sortKey struct {
	key           string
	descending    bool
	caseSensitive bool
}

// SortDataset sorts the result set in place per the comma-delimited spec.
// Earlier keys carry more weight. An empty spec leaves the dataset in its
// natural order.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	//nolint:prealloc
	var keys []sortKey
	for _, s := range strings.Split(spec, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		k := sortKey{}
		for {
			if strings.HasPrefix(s, "-") {
				k.descending = true
				s = s[1:]
			} else if strings.HasPrefix(s, "!") {
				k.caseSensitive = true
				s = s[1:]
			} else {
				break
			}
		}
		k.key = s
		keys = append(keys, k)
	}

	if len(keys) == 0 {
		return
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, k := range keys {
			c := compare(dataset[i][k.key], dataset[j][k.key], k.caseSensitive)
			if c == 0 {
				continue
			}
			if k.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compare orders two values. Numbers compare numerically; everything else
// falls back to string comparison, case-insensitive unless asked otherwise.
func compare(a, b interface{}, caseSensitive bool) int {
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as := InterfaceToString(a)
	bs := InterfaceToString(b)
	if !caseSensitive {
		as = strings.ToLower(as)
		bs = strings.ToLower(bs)
	}
	return strings.Compare(as, bs)
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
