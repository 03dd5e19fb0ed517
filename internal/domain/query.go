package domain

import (
	"cmp"
	"slices"

	"projecthub/internal/domain/entities"
)

// Sort keys accepted by the project listing.
const (
	SortRecent         = "recent"
	SortDeadline       = "deadline"
	SortComplexityHigh = "complexity_high"
	SortComplexityLow  = "complexity_low"
)

var (
	complexityHigh = []string{ComplexityAdvanced, ComplexityIntermediate, ComplexityBasic}
	complexityLow  = []string{ComplexityBasic, ComplexityIntermediate, ComplexityAdvanced}
)

// ProjectFilter holds optional equality filters. Empty fields match everything.
type ProjectFilter struct {
	ProjectType  string
	BusinessArea string
	Deadline     string
	Complexity   string
}

// Matches reports whether p satisfies every non-empty filter field.
// Comparison is exact and case-sensitive.
func (f ProjectFilter) Matches(p *entities.Project) bool {
	if f.ProjectType != "" && p.ProjectType != f.ProjectType {
		return false
	}
	if f.BusinessArea != "" && p.BusinessArea != f.BusinessArea {
		return false
	}
	if f.Deadline != "" && p.Deadline != f.Deadline {
		return false
	}
	if f.Complexity != "" && p.Complexity != f.Complexity {
		return false
	}
	return true
}

// FilterProjects returns the matching projects in input order. The result is a
// new slice and is never nil.
func FilterProjects(projects []entities.Project, f ProjectFilter) []entities.Project {
	out := make([]entities.Project, 0, len(projects))
	for i := range projects {
		if f.Matches(&projects[i]) {
			out = append(out, projects[i])
		}
	}
	return out
}

// ParseSort normalizes a sort key; "" means SortRecent.
func ParseSort(key string) (string, error) {
	switch key {
	case "":
		return SortRecent, nil
	case SortRecent, SortDeadline, SortComplexityHigh, SortComplexityLow:
		return key, nil
	default:
		return "", ErrInvalidSort
	}
}

// SortProjects returns a sorted copy of projects. The sort is stable: equal
// keys keep their input order. Values missing from a fixed order list sort last.
func SortProjects(projects []entities.ProjectWithEntrepreneur, key string) []entities.ProjectWithEntrepreneur {
	out := slices.Clone(projects)
	if out == nil {
		out = []entities.ProjectWithEntrepreneur{}
	}
	switch key {
	case SortDeadline:
		sortByRank(out, DeadlineOrder, func(p *entities.ProjectWithEntrepreneur) string { return p.Deadline })
	case SortComplexityHigh:
		sortByRank(out, complexityHigh, func(p *entities.ProjectWithEntrepreneur) string { return p.Complexity })
	case SortComplexityLow:
		sortByRank(out, complexityLow, func(p *entities.ProjectWithEntrepreneur) string { return p.Complexity })
	default:
		slices.SortStableFunc(out, func(a, b entities.ProjectWithEntrepreneur) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return out
}

func sortByRank(ps []entities.ProjectWithEntrepreneur, order []string, field func(*entities.ProjectWithEntrepreneur) string) {
	rank := func(p *entities.ProjectWithEntrepreneur) int {
		if i := slices.Index(order, field(p)); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(ps, func(a, b entities.ProjectWithEntrepreneur) int {
		return cmp.Compare(rank(&a), rank(&b))
	})
}
