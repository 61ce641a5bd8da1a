package services

import "strings"

// Reconcile computes the photo set difference for an edit: URLs present in
// oldURLs but not in newURLs go to toDelete, URLs present only in newURLs go
// to toCreate. URLs in both are retained and appear in neither result. Both
// results keep input order and contain no duplicates.
func Reconcile(oldURLs, newURLs []string) (toDelete, toCreate []string) {
	oldSet := make(map[string]struct{}, len(oldURLs))
	for _, u := range oldURLs {
		oldSet[u] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(newURLs))
	for _, u := range newURLs {
		newSet[u] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, u := range oldURLs {
		if _, keep := newSet[u]; keep {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		toDelete = append(toDelete, u)
	}
	for _, u := range newURLs {
		if _, exists := oldSet[u]; exists {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		toCreate = append(toCreate, u)
	}
	return toDelete, toCreate
}

// normalizeURLs trims whitespace, drops blanks and removes duplicates while
// keeping first-seen order.
func normalizeURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
