package taxonomy

import (
	"fmt"

	domtax "github.com/kailas-cloud/browse/internal/domain/taxonomy"
)

// catalogDTO is the on-disk YAML layout of a taxonomy catalog.
type catalogDTO struct {
	Groups     []groupDTO    `yaml:"groups"`
	Archives   []archiveDTO  `yaml:"archives"`
	Categories []categoryDTO `yaml:"categories"`
}

type groupDTO struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	FullName string `yaml:"full_name"`
	IsTest   bool   `yaml:"is_test"`
}

type archiveDTO struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	FullName  string `yaml:"full_name"`
	InGroup   string `yaml:"in_group"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

type categoryDTO struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	InArchive   string `yaml:"in_archive"`
	Description string `yaml:"description"`
	// IsActive defaults to true when omitted.
	IsActive  *bool `yaml:"is_active"`
	IsGeneral bool  `yaml:"is_general"`
}

func (d *catalogDTO) toDomain() (domtax.Catalog, error) {
	groups := make([]domtax.Group, 0, len(d.Groups))
	for _, g := range d.Groups {
		grp, err := domtax.NewGroup(g.ID, g.Name, g.FullName, g.IsTest)
		if err != nil {
			return domtax.Catalog{}, err
		}
		groups = append(groups, grp)
	}

	archives := make([]domtax.Archive, 0, len(d.Archives))
	for _, a := range d.Archives {
		arc, err := domtax.NewArchive(a.ID, a.Name, a.FullName, a.InGroup, a.StartDate, a.EndDate)
		if err != nil {
			return domtax.Catalog{}, err
		}
		archives = append(archives, arc)
	}

	categories := make([]domtax.Category, 0, len(d.Categories))
	for _, c := range d.Categories {
		active := c.IsActive == nil || *c.IsActive
		cat, err := domtax.NewCategory(c.ID, c.Name, c.InArchive, c.Description, active, c.IsGeneral)
		if err != nil {
			return domtax.Catalog{}, err
		}
		categories = append(categories, cat)
	}

	catalog, err := domtax.NewCatalog(groups, archives, categories)
	if err != nil {
		return domtax.Catalog{}, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}
