package services

import (
	"strings"

	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/helpers"
	"golang.org/x/text/cases"
)

// FilterResources returns the resources whose title or file type contains
// term, compared with Unicode case folding. An empty term matches everything.
// The input order is preserved.
func FilterResources(resources []models.Resource, term string) []models.Resource {
	term = strings.TrimSpace(term)
	if term == "" {
		return resources
	}

	fold := cases.Fold()
	needle := fold.String(term)

	matched := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if strings.Contains(fold.String(r.Title), needle) ||
			strings.Contains(fold.String(helpers.ValueOrEmpty(r.FileType)), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}
