package fontloader

// Match finds the source font for a weight and style. If more than one source
// qualifies, the first one is returned.
func Match(sources []*Source, weight int, style string) (*Source, error) {
	for _, src := range sources {
		if src.Weight == weight && src.Style == style {
			return src, nil
		}
	}
	return nil, MissingSourceError{Weight: weight, Style: style}
}
