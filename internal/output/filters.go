// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/tpctlgo/internal/attrs"
)

// filterRegex is the pattern used to parse filter expressions into key,
// operator, and target components. It matches: key + operator + target,
// where the operator can be negated with !. Operators are one of = ^ ~ < >
// @ or /, optionally prefixed with '!'. This allows forms like '=', '!=',
// '^', '!^', etc.
var filterRegex = regexp.MustCompile(`^(.*?)(!?[=^~<>@/])(.*)$`)

// Filter represents a single parsed --filter expression including the key,
// operand, optional negation and target value.
type Filter struct {
	Key     string
	Negate  bool
	Operand string
	Target  string
}

// BuildFilters parses a filter specification string into a slice of Filter.
// Invalid specs (unsupported operand or malformed expression) are skipped.
func BuildFilters(spec string) []Filter {
	// Don't prealloc because we don't know what len will be and performance is
	// not critical.
	//nolint:prealloc
	var filters []Filter

	// If there are no filters specified, go home early.
	if spec == "" {
		return filters
	}

	// Default delimiter is ",", allow an override.
	delim := ","
	if d, ok := os.LookupEnv("TPCTL_FILTER_DELIM"); ok {
		delim = d
	}

	// Split the spec and iterate over each filter spec entry.
	filterSpecs := strings.Split(spec, delim)
	for _, filterSpec := range filterSpecs {
		parts := filterRegex.FindStringSubmatch(filterSpec)

		// If a supported operand was not found, log an error and throw it away.
		if parts == nil {
			log.Error("invalid filter: " + filterSpec)
			continue
		}

		// parts[2] is the operand. It may have a leading negation. If so, trim
		// it and just use the remainder as the working operand.
		negate := strings.HasPrefix(parts[2], "!")
		if negate {
			parts[2] = strings.TrimPrefix(parts[2], "!")
		}

		// We've got a valid filter, append it to the result set.
		filters = append(filters, Filter{
			Key:     parts[1],
			Negate:  negate,
			Operand: parts[2],
			Target:  parts[3],
		})
	}

	return filters
}

// FilterDataset returns a result set filtered per the provided spec. It is
// the public entry point used by SliceDiceSpit.
func FilterDataset(candidates gjson.Result, attrs attrs.AttrList, spec string) []map[string]interface{} {
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var filteredResults []map[string]interface{}

	// Build a slice of filters from the spec once so we can discard invalid
	// entries and avoid reparsing for each candidate row.
	filters := BuildFilters(spec)

	// Iterate over the candidate dataset, checking each against the filters.
	for _, candidate := range candidates.Array() {
		if !applyFilters(candidate, attrs, filters) {
			continue
		}

		// If the filter check was successful, add each attribute from the
		// candidate to the filtered result set. Transformation is deferred to
		// the SliceDiceSpit output phase; this function filters only.
		result := make(map[string]interface{})
		for i := range attrs {
			attr := attrs[i]
			result[attr.OutputKey] = candidate.Get(attr.Key).Value()
		}
		filteredResults = append(filteredResults, result)
	}

	return filteredResults
}

// applyFilters returns true if the candidate row matches all of the provided
// filters.
func applyFilters(candidate gjson.Result, attrs attrs.AttrList, filters []Filter) bool {
	// No filters, so go home early.
	if len(filters) == 0 {
		return true
	}

	// Iterate over the filters, checking each against the candidate.
	for _, filter := range filters {
		var key string

		// Find the attribute that matches the filter key.
		for _, attr := range attrs {
			if attr.OutputKey == filter.Key {
				key = attr.Key
				break
			}
		}

		// If an attribute matching the filter key was not found, log the
		// condition and skip this filter (continue processing other filters).
		// This allows invalid filters to be reported without rejecting the
		// entire row.
		if key == "" {
			log.Errorf("filter key not found: %s", filter.Key)
			continue
		}

		value := candidate.Get(key)
		if !match(value, filter) {
			return false
		}
	}

	return true
}

// match evaluates a single filter against a single value.
func match(value gjson.Result, filter Filter) bool {
	var matched bool

	switch filter.Operand {
	case "=":
		matched = value.String() == filter.Target
	case "^":
		matched = strings.HasPrefix(value.String(), filter.Target)
	case "@":
		matched = strings.Contains(value.String(), filter.Target)
	case "~", "/":
		re, err := regexp.Compile(filter.Target)
		if err != nil {
			log.Error("invalid filter regex: " + filter.Target)
			return true
		}
		matched = re.MatchString(value.String())
	case "<", ">":
		target, err := strconv.ParseFloat(filter.Target, 64)
		if err != nil {
			log.Error("non-numeric filter target: " + filter.Target)
			return true
		}
		if filter.Operand == "<" {
			matched = value.Float() < target
		} else {
			matched = value.Float() > target
		}
	default:
		return true
	}

	if filter.Negate {
		matched = !matched
	}

	return matched
}
