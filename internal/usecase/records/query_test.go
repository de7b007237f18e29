package records

import (
	"testing"

	"alumni-portal/internal/domain/user"
)

func TestService_List_FilterByDegree(t *testing.T) {
	s, _, _ := newTestService(t)

	got := s.List(Filter{Degree: user.DegreePhD}, SortByFirstName, SortAsc)
	if len(got) != 2 {
		t.Fatalf("expected 2 PhD holders, got %d", len(got))
	}
	if got[0].FirstName != "Emeka" || got[1].FirstName != "Kelechi" {
		t.Fatalf("unexpected order: %s, %s", got[0].FirstName, got[1].FirstName)
	}
}

func TestService_List_FilterConjunction(t *testing.T) {
	s, _, _ := newTestService(t)

	active := false
	got := s.List(Filter{Degree: user.DegreePhD, Active: &active}, SortByFirstName, SortAsc)
	if len(got) != 1 || got[0].FirstName != "Kelechi" {
		t.Fatalf("expected only the inactive PhD holder, got %+v", got)
	}
}

func TestService_List_SearchMatchesSkills(t *testing.T) {
	s, _, _ := newTestService(t)

	got := s.List(Filter{Search: "machine learning"}, SortByFirstName, SortAsc)
	if len(got) == 0 {
		t.Fatalf("expected a skill match for machine learning")
	}
	for _, rec := range got {
		found := false
		for _, sk := range rec.Skills {
			if sk == "Machine Learning" {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s matched without the skill", rec.FullName())
		}
	}
}

func TestService_List_SortBySalaryDesc(t *testing.T) {
	s, _, _ := newTestService(t)

	got := s.List(Filter{}, SortBySalary, SortDesc)
	if len(got) != 6 {
		t.Fatalf("expected all 6 records, got %d", len(got))
	}
	if got[0].FirstName != "Kelechi" {
		t.Fatalf("expected the highest earner first, got %s", got[0].FirstName)
	}
	if got[5].FirstName != "Ngozi" {
		t.Fatalf("expected the lowest earner last, got %s", got[5].FirstName)
	}
}

func TestService_List_SortByGraduationYearAsc(t *testing.T) {
	s, _, _ := newTestService(t)

	got := s.List(Filter{}, SortByGraduationYear, SortAsc)
	if got[0].GraduationYear != "2018" || got[len(got)-1].GraduationYear != "2022" {
		t.Fatalf("unexpected year order: first %s last %s", got[0].GraduationYear, got[len(got)-1].GraduationYear)
	}
}

func TestParseSalary_Unparseable(t *testing.T) {
	if got := parseSalary("N/A"); got != 0 {
		t.Fatalf("expected 0 for unparseable salary, got %d", got)
	}
	if got := parseSalary("8500000"); got != 8500000 {
		t.Fatalf("expected 8500000, got %d", got)
	}
}
