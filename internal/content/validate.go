package content

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the bundled content. An empty
// pool or a malformed question is a build-time configuration error, not a
// runtime condition: the binary refuses to start on a broken catalog.
// Returns a combined error describing all problems found, or nil if valid.
func Validate() error {
	var errs []string

	for _, c := range AllQuizCategories() {
		pool := QuestionPool(c)
		if len(pool) == 0 {
			errs = append(errs, fmt.Sprintf("quiz pool %q is empty", c))
			continue
		}
		for _, q := range pool {
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("quiz pool %q contains a question without ID", c))
			}
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("question %q has %d options, need at least 2", q.ID, len(q.Options)))
			}
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				errs = append(errs, fmt.Sprintf("question %q has correct answer index %d out of range", q.ID, q.CorrectAnswer))
			}
			if q.Category != c {
				errs = append(errs, fmt.Sprintf("question %q declares category %q but lives in pool %q", q.ID, q.Category, c))
			}
		}
	}

	if len(Works) == 0 {
		errs = append(errs, "works catalog is empty")
	}
	if len(MythologyItems) == 0 {
		errs = append(errs, "mythology pool is empty")
	}

	seen := make(map[string]bool, len(Works)+len(MythologyItems))
	for _, w := range Works {
		if w.ID == "" {
			errs = append(errs, fmt.Sprintf("work %q has no ID", w.Title))
			continue
		}
		if seen[w.ID] {
			errs = append(errs, fmt.Sprintf("duplicate work ID: %q", w.ID))
		}
		seen[w.ID] = true
	}
	for _, m := range MythologyItems {
		if m.ID == "" {
			errs = append(errs, fmt.Sprintf("mythology item %q has no ID", m.Title))
			continue
		}
		if seen[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate mythology ID: %q", m.ID))
		}
		seen[m.ID] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
