package domain

import (
	"testing"
	"time"

	"projecthub/internal/domain/entities"
)

func sampleProjects() []entities.Project {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []entities.Project{
		{ID: "p1", ProjectType: ProjectTypeWebSystem, BusinessArea: "saude", Deadline: Deadline3To6Months, Complexity: ComplexityIntermediate, CreatedAt: base},
		{ID: "p2", ProjectType: ProjectTypeMobileApp, BusinessArea: "comercio", Deadline: Deadline3To6Months, Complexity: ComplexityAdvanced, CreatedAt: base.Add(time.Hour)},
		{ID: "p3", ProjectType: ProjectTypeLandingPage, BusinessArea: "educacao", Deadline: Deadline1Month, Complexity: ComplexityBasic, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "p4", ProjectType: ProjectTypeWebSystem, BusinessArea: "educacao", Deadline: Deadline6PlusMonth, Complexity: ComplexityAdvanced, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "p5", ProjectType: ProjectTypeWebSystem, BusinessArea: "saude", Deadline: Deadline1To3Months, Complexity: ComplexityBasic, CreatedAt: base.Add(-time.Hour)},
	}
}

func joined(ps []entities.Project) []entities.ProjectWithEntrepreneur {
	out := make([]entities.ProjectWithEntrepreneur, len(ps))
	for i := range ps {
		out[i] = entities.ProjectWithEntrepreneur{Project: ps[i]}
	}
	return out
}

func ids(ps []entities.ProjectWithEntrepreneur) []string {
	out := make([]string, len(ps))
	for i := range ps {
		out[i] = ps[i].ID
	}
	return out
}

func TestFilterProjects(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	tests := []struct {
		name   string
		filter ProjectFilter
		want   int
	}{
		{name: "no filter", filter: ProjectFilter{}, want: 5},
		{name: "project type", filter: ProjectFilter{ProjectType: ProjectTypeWebSystem}, want: 3},
		{name: "type and area", filter: ProjectFilter{ProjectType: ProjectTypeWebSystem, BusinessArea: "saude"}, want: 2},
		{name: "type area deadline", filter: ProjectFilter{ProjectType: ProjectTypeWebSystem, BusinessArea: "saude", Deadline: Deadline1To3Months}, want: 1},
		{name: "all four", filter: ProjectFilter{ProjectType: ProjectTypeWebSystem, BusinessArea: "saude", Deadline: Deadline1To3Months, Complexity: ComplexityAdvanced}, want: 0},
		{name: "case sensitive", filter: ProjectFilter{BusinessArea: "Saude"}, want: 0},
		{name: "unknown value", filter: ProjectFilter{Complexity: "expert"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.filter)
			if got == nil {
				t.Fatal("FilterProjects returned nil, want empty slice")
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterProjectsMonotonic(t *testing.T) {
	t.Parallel()

	projects := sampleProjects()
	steps := []ProjectFilter{
		{},
		{ProjectType: ProjectTypeWebSystem},
		{ProjectType: ProjectTypeWebSystem, BusinessArea: "educacao"},
		{ProjectType: ProjectTypeWebSystem, BusinessArea: "educacao", Deadline: Deadline6PlusMonth},
		{ProjectType: ProjectTypeWebSystem, BusinessArea: "educacao", Deadline: Deadline6PlusMonth, Complexity: ComplexityAdvanced},
	}
	prev := len(projects) + 1
	for i, f := range steps {
		n := len(FilterProjects(projects, f))
		if n > prev {
			t.Fatalf("step %d: result grew from %d to %d", i, prev, n)
		}
		prev = n
	}
}

func TestSortProjectsRecent(t *testing.T) {
	t.Parallel()

	got := SortProjects(joined(sampleProjects()), SortRecent)
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("createdAt increases at %d: %v after %v", i, got[i].CreatedAt, got[i-1].CreatedAt)
		}
	}
	if got[0].ID != "p4" {
		t.Fatalf("first = %s, want p4", got[0].ID)
	}
}

func TestSortProjectsDeadline(t *testing.T) {
	t.Parallel()

	in := joined([]entities.Project{
		{ID: "six", Deadline: Deadline6PlusMonth},
		{ID: "one", Deadline: Deadline1Month},
		{ID: "three", Deadline: Deadline3To6Months},
		{ID: "onethree", Deadline: Deadline1To3Months},
	})
	got := SortProjects(in, SortDeadline)
	want := []string{"one", "onethree", "three", "six"}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
	if in[0].ID != "six" {
		t.Fatal("input slice was mutated")
	}
}

func TestSortProjectsUnknownBucketLast(t *testing.T) {
	t.Parallel()

	in := joined([]entities.Project{
		{ID: "weird", Deadline: "someday"},
		{ID: "six", Deadline: Deadline6PlusMonth},
		{ID: "one", Deadline: Deadline1Month},
	})
	got := ids(SortProjects(in, SortDeadline))
	want := []string{"one", "six", "weird"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortProjectsComplexity(t *testing.T) {
	t.Parallel()

	in := joined([]entities.Project{
		{ID: "mid", Complexity: ComplexityIntermediate},
		{ID: "low", Complexity: ComplexityBasic},
		{ID: "high", Complexity: ComplexityAdvanced},
	})
	high := ids(SortProjects(in, SortComplexityHigh))
	if high[0] != "high" || high[1] != "mid" || high[2] != "low" {
		t.Fatalf("complexity_high = %v", high)
	}
	low := ids(SortProjects(in, SortComplexityLow))
	if low[0] != "low" || low[1] != "mid" || low[2] != "high" {
		t.Fatalf("complexity_low = %v", low)
	}
}

func TestSortProjectsEmpty(t *testing.T) {
	t.Parallel()

	if got := SortProjects(nil, SortRecent); got == nil || len(got) != 0 {
		t.Fatalf("SortProjects(nil) = %v, want empty slice", got)
	}
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	for _, key := range []string{SortRecent, SortDeadline, SortComplexityHigh, SortComplexityLow} {
		got, err := ParseSort(key)
		if err != nil || got != key {
			t.Fatalf("ParseSort(%q) = %q, %v", key, got, err)
		}
	}
	if got, err := ParseSort(""); err != nil || got != SortRecent {
		t.Fatalf("ParseSort(\"\") = %q, %v, want recent", got, err)
	}
	if _, err := ParseSort("alphabetical"); err != ErrInvalidSort {
		t.Fatalf("ParseSort(alphabetical) err = %v, want ErrInvalidSort", err)
	}
}
