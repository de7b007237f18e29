package records

import (
	"sort"
	"strconv"
	"strings"

	"alumni-portal/internal/domain/user"
)

type SortBy string

const (
	SortByFirstName      SortBy = "firstName"
	SortByGraduationYear SortBy = "graduationYear"
	SortByCompany        SortBy = "company"
	SortBySalary         SortBy = "salary"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter is conjunctive; a zero criterion is skipped.
type Filter struct {
	Search         string
	Degree         user.Degree
	GraduationYear string
	Active         *bool
}

// List returns the filtered, sorted snapshot of the alumni collection.
func (s *Service) List(f Filter, by SortBy, order SortOrder) []user.AlumniRecord {
	out := make([]user.AlumniRecord, 0)
	for _, rec := range s.alumni.List() {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	sortRecords(out, by, order)
	return out
}

func (f Filter) matches(rec user.AlumniRecord) bool {
	if search := strings.TrimSpace(f.Search); search != "" && !matchesSearch(rec, search) {
		return false
	}
	if f.Degree != user.DegreeNone && rec.Degree != f.Degree {
		return false
	}
	if f.GraduationYear != "" && rec.GraduationYear != f.GraduationYear {
		return false
	}
	if f.Active != nil && rec.IsActive != *f.Active {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match over name, email,
// company, position and any skill.
func matchesSearch(rec user.AlumniRecord, search string) bool {
	search = strings.ToLower(search)
	fields := []string{
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.Company,
		rec.CurrentPosition,
	}
	fields = append(fields, rec.Skills...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func sortRecords(recs []user.AlumniRecord, by SortBy, order SortOrder) {
	less := func(a, b user.AlumniRecord) bool {
		switch by {
		case SortBySalary:
			// Salary compares numerically; anything unparsable counts as 0.
			return parseSalary(a.Salary) < parseSalary(b.Salary)
		case SortByGraduationYear:
			return a.GraduationYear < b.GraduationYear
		case SortByCompany:
			return a.Company < b.Company
		default:
			return a.FirstName < b.FirstName
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if order == SortDesc {
			return less(recs[j], recs[i])
		}
		return less(recs[i], recs[j])
	})
}

func parseSalary(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
