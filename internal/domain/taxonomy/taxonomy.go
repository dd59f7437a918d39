// Package taxonomy models the classification tree of the repository:
// groups contain archives, archives contain categories.
package taxonomy

import (
	"fmt"

	"github.com/kailas-cloud/browse/internal/domain"
)

// Group is a top-level subject group (e.g. grp_physics).
type Group struct {
	id       string
	name     string
	fullName string
	isTest   bool
}

// NewGroup validates and creates a Group.
func NewGroup(id, name, fullName string, isTest bool) (Group, error) {
	if id == "" {
		return Group{}, fmt.Errorf("%w: group id is required", domain.ErrInvalidTaxonomy)
	}
	if name == "" {
		return Group{}, fmt.Errorf("%w: group %q has no name", domain.ErrInvalidTaxonomy, id)
	}
	return Group{id: id, name: name, fullName: fullName, isTest: isTest}, nil
}

// ID returns the group identifier.
func (g Group) ID() string { return g.id }

// Name returns the short display name.
func (g Group) Name() string { return g.name }

// FullName returns the long display name.
func (g Group) FullName() string { return g.fullName }

// IsTest reports whether the group only exists for testing.
func (g Group) IsTest() bool { return g.isTest }

// Archive is a collection of categories inside a group.
type Archive struct {
	id        string
	name      string
	fullName  string
	inGroup   string
	startDate string // yymm
	endDate   string // yymm, empty while the archive accepts submissions
}

// NewArchive validates and creates an Archive.
func NewArchive(id, name, fullName, inGroup, startDate, endDate string) (Archive, error) {
	if id == "" {
		return Archive{}, fmt.Errorf("%w: archive id is required", domain.ErrInvalidTaxonomy)
	}
	if inGroup == "" {
		return Archive{}, fmt.Errorf("%w: archive %q has no group", domain.ErrInvalidTaxonomy, id)
	}
	return Archive{
		id:        id,
		name:      name,
		fullName:  fullName,
		inGroup:   inGroup,
		startDate: startDate,
		endDate:   endDate,
	}, nil
}

// ID returns the archive identifier.
func (a Archive) ID() string { return a.id }

// Name returns the short display name.
func (a Archive) Name() string { return a.name }

// FullName returns the long display name.
func (a Archive) FullName() string { return a.fullName }

// InGroup returns the id of the parent group.
func (a Archive) InGroup() string { return a.inGroup }

// StartDate returns the first submission month (yymm).
func (a Archive) StartDate() string { return a.startDate }

// EndDate returns the last submission month (yymm), empty if still open.
func (a Archive) EndDate() string { return a.endDate }

// IsActive reports whether the archive still accepts submissions.
func (a Archive) IsActive() bool { return a.endDate == "" }

// Category is a leaf subject class.
type Category struct {
	id          string
	name        string
	inArchive   string
	description string
	isActive    bool
	isGeneral   bool
}

// NewCategory validates and creates a Category.
func NewCategory(id, name, inArchive, description string, isActive, isGeneral bool) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("%w: category id is required", domain.ErrInvalidTaxonomy)
	}
	if inArchive == "" {
		return Category{}, fmt.Errorf("%w: category %q has no archive", domain.ErrInvalidTaxonomy, id)
	}
	return Category{
		id:          id,
		name:        name,
		inArchive:   inArchive,
		description: description,
		isActive:    isActive,
		isGeneral:   isGeneral,
	}, nil
}

// ID returns the category identifier.
func (c Category) ID() string { return c.id }

// Name returns the display name.
func (c Category) Name() string { return c.name }

// InArchive returns the id of the parent archive.
func (c Category) InArchive() string { return c.inArchive }

// Description returns the free-text scope note.
func (c Category) Description() string { return c.description }

// IsActive reports whether the category accepts submissions.
func (c Category) IsActive() bool { return c.isActive }

// IsGeneral reports whether the category is the catch-all of its archive.
func (c Category) IsGeneral() bool { return c.isGeneral }

// Catalog is an immutable, validated taxonomy snapshot. Order is preserved
// as supplied so the home page renders in curated order.
type Catalog struct {
	groups     []Group
	archives   []Archive
	categories []Category
}

// NewCatalog validates references and uniqueness and creates a Catalog.
func NewCatalog(groups []Group, archives []Archive, categories []Category) (Catalog, error) {
	groupIDs := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if _, dup := groupIDs[g.id]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate group %q", domain.ErrInvalidTaxonomy, g.id)
		}
		groupIDs[g.id] = struct{}{}
	}

	archiveIDs := make(map[string]struct{}, len(archives))
	for _, a := range archives {
		if _, dup := archiveIDs[a.id]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate archive %q", domain.ErrInvalidTaxonomy, a.id)
		}
		if _, ok := groupIDs[a.inGroup]; !ok {
			return Catalog{}, fmt.Errorf("%w: archive %q references unknown group %q",
				domain.ErrInvalidTaxonomy, a.id, a.inGroup)
		}
		archiveIDs[a.id] = struct{}{}
	}

	categoryIDs := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, dup := categoryIDs[c.id]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate category %q", domain.ErrInvalidTaxonomy, c.id)
		}
		if _, ok := archiveIDs[c.inArchive]; !ok {
			return Catalog{}, fmt.Errorf("%w: category %q references unknown archive %q",
				domain.ErrInvalidTaxonomy, c.id, c.inArchive)
		}
		categoryIDs[c.id] = struct{}{}
	}

	return Catalog{
		groups:     append([]Group(nil), groups...),
		archives:   append([]Archive(nil), archives...),
		categories: append([]Category(nil), categories...),
	}, nil
}

// Groups returns all groups.
func (c Catalog) Groups() []Group {
	return append([]Group(nil), c.groups...)
}

// Archives returns all archives, including closed ones.
func (c Catalog) Archives() []Archive {
	return append([]Archive(nil), c.archives...)
}

// Categories returns all categories, including inactive ones.
func (c Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// ActiveArchives returns archives that still accept submissions.
func (c Catalog) ActiveArchives() []Archive {
	out := make([]Archive, 0, len(c.archives))
	for _, a := range c.archives {
		if a.IsActive() {
			out = append(out, a)
		}
	}
	return out
}

// ActiveCategories returns categories that accept submissions.
func (c Catalog) ActiveCategories() []Category {
	out := make([]Category, 0, len(c.categories))
	for _, cat := range c.categories {
		if cat.isActive {
			out = append(out, cat)
		}
	}
	return out
}

// IsEmpty reports whether the catalog has no groups.
func (c Catalog) IsEmpty() bool { return len(c.groups) == 0 }
