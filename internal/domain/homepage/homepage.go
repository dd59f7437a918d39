// Package homepage holds the data assembled for the site's home page.
package homepage

import "github.com/kailas-cloud/browse/internal/domain/taxonomy"

// Page is the response data for one home page request.
type Page struct {
	groups        []taxonomy.Group
	archives      []taxonomy.Archive
	categories    []taxonomy.Category
	documentCount *int64
}

// New creates a Page. documentCount is nil when no source could supply it.
func New(
	groups []taxonomy.Group,
	archives []taxonomy.Archive,
	categories []taxonomy.Category,
	documentCount *int64,
) Page {
	return Page{
		groups:        groups,
		archives:      archives,
		categories:    categories,
		documentCount: documentCount,
	}
}

// Groups returns the subject groups.
func (p Page) Groups() []taxonomy.Group { return p.groups }

// Archives returns the active archives.
func (p Page) Archives() []taxonomy.Archive { return p.archives }

// Categories returns the active categories.
func (p Page) Categories() []taxonomy.Category { return p.categories }

// DocumentCount returns the total count, or nil when unknown.
func (p Page) DocumentCount() *int64 { return p.documentCount }
