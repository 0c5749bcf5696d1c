package secrets

import (
	"sort"
	"strings"

	"secretsInspector/internal/models"
)

// Filter drops every record whose category is suppressed or whose name does not
// contain substring (case-sensitive; empty matches all) and returns the survivors
// sorted by name. The input slice is left untouched.
func Filter(records []models.SecretRecord, substring string, suppressed models.SuppressionSet) []models.SecretRecord {
	result := make([]models.SecretRecord, 0, len(records))
	for _, r := range records {
		if suppressed.Has(Classify(r.Kind, r.Name)) {
			continue
		}
		if substring != "" && !strings.Contains(r.Name, substring) {
			continue
		}
		result = append(result, r)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
