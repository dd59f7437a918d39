package chi

import (
	domhome "github.com/kailas-cloud/browse/internal/domain/homepage"
	"github.com/kailas-cloud/browse/internal/domain/taxonomy"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes.
const (
	ErrorCodeInternal     ErrorCode = "internal_error"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// HomePageResponse is the home page data. DocumentCount is null when unknown.
type HomePageResponse struct {
	Groups        []GroupResponse    `json:"groups"`
	Archives      []ArchiveResponse  `json:"archives"`
	Categories    []CategoryResponse `json:"categories"`
	DocumentCount *int64             `json:"document_count"`
}

// GroupResponse is a subject group.
type GroupResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name,omitempty"`
	IsTest   bool   `json:"is_test,omitempty"`
}

// ArchiveResponse is an archive.
type ArchiveResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	FullName  string  `json:"full_name,omitempty"`
	InGroup   string  `json:"in_group"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// CategoryResponse is a category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	InArchive   string `json:"in_archive"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsGeneral   bool   `json:"is_general,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func homePageToResponse(p domhome.Page) HomePageResponse {
	groups := make([]GroupResponse, len(p.Groups()))
	for i, g := range p.Groups() {
		groups[i] = groupToResponse(g)
	}
	archives := make([]ArchiveResponse, len(p.Archives()))
	for i, a := range p.Archives() {
		archives[i] = archiveToResponse(a)
	}
	categories := make([]CategoryResponse, len(p.Categories()))
	for i, c := range p.Categories() {
		categories[i] = categoryToResponse(c)
	}

	return HomePageResponse{
		Groups:        groups,
		Archives:      archives,
		Categories:    categories,
		DocumentCount: p.DocumentCount(),
	}
}

func groupToResponse(g taxonomy.Group) GroupResponse {
	return GroupResponse{
		ID:       g.ID(),
		Name:     g.Name(),
		FullName: g.FullName(),
		IsTest:   g.IsTest(),
	}
}

func archiveToResponse(a taxonomy.Archive) ArchiveResponse {
	resp := ArchiveResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		FullName:  a.FullName(),
		InGroup:   a.InGroup(),
		StartDate: a.StartDate(),
	}
	if end := a.EndDate(); end != "" {
		resp.EndDate = &end
	}
	return resp
}

func categoryToResponse(c taxonomy.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		InArchive:   c.InArchive(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		IsGeneral:   c.IsGeneral(),
	}
}
