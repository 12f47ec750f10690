package fiber

import (
	"strings"

	"sales-insights-service/internal/catalog/core/domain"
)

// csvToSet converts a comma-separated query value into a typed selection
// set. Blank items and the "all" placeholder are dropped; CSV is purely
// a wire concern, the engine only sees sets.
func csvToSet(csv string) domain.StringSet {
	if csv == "" {
		return nil
	}

	set := domain.StringSet{}
	for _, raw := range strings.Split(csv, ",") {
		v := strings.TrimSpace(raw)
		if v == "" || strings.EqualFold(v, "all") {
			continue
		}
		set.Add(v)
	}

	if set.Empty() {
		return nil
	}
	return set
}
