package fontloader

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/fontpack/core/font/format"
	"github.com/npillmayer/fontpack/core/option"
)

// Query selects the weights, styles and formats to produce. Unset dimensions
// are derived from the sources.
type Query struct {
	Weight option.Values[int]
	Style  option.Values[string]
	Format option.Values[format.ID]
}

func (q Query) String() string {
	return fmt.Sprintf("{weight=%v style=%v format=%v}", q.Weight, q.Style, q.Format)
}

// Target is a (weight, style, format) combination to produce.
type Target struct {
	Weight int
	Style  string
	Format format.ID
}

func (t Target) String() string {
	return fmt.Sprintf("%d|%s|%s", t.Weight, t.Style, t.Format)
}

// Expand computes all targets for a query: the cartesian product of the
// weights, styles and formats of the query. For a dimension not set in the
// query, the distinct values of the sources are used, in order of first
// appearance.
//
// Targets are ordered by weight, then style, then format.
func Expand(sources []*Source, q Query) []Target {
	weights := q.Weight.OrElse(distinct(sources, func(s *Source) int { return s.Weight }))
	styles := q.Style.OrElse(distinct(sources, func(s *Source) string { return s.Style }))
	formats := q.Format.OrElse(distinct(sources, func(s *Source) format.ID { return s.Format }))
	targets := make([]Target, 0, len(weights)*len(styles)*len(formats))
	for _, w := range weights {
		for _, s := range styles {
			for _, f := range formats {
				targets = append(targets, Target{Weight: w, Style: s, Format: f})
			}
		}
	}
	tracer().Debugf("query %v expands to %d targets", q, len(targets))
	return targets
}

func distinct[T comparable](sources []*Source, get func(*Source) T) []T {
	set := linkedhashset.New()
	for _, src := range sources {
		set.Add(get(src))
	}
	values := make([]T, 0, set.Size())
	for _, v := range set.Values() {
		values = append(values, v.(T))
	}
	return values
}
