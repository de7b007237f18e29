// Package analytics computes read-only aggregations over an alumni
// snapshot. Every function is pure and tolerates an empty slice; ratios on
// an empty set are 0, never NaN.
package analytics

import (
	"sort"
	"strconv"
	"strings"

	"alumni-portal/internal/domain/user"
)

// RecentGraduateYear is the cutoff for the "recent graduates" ratio.
const RecentGraduateYear = 2020

type SalaryStats struct {
	Average float64
	Highest int64
	Lowest  int64
	Range   int64
}

type EmployerCount struct {
	Company string
	Count   int
}

type Summary struct {
	TotalAlumni     int
	MScGraduates    int
	PhDGraduates    int
	ActiveAlumni    int
	RecentGraduates int
	ActivePercent   float64
	RecentPercent   float64

	Salary             SalaryStats
	GeoDistribution    map[string]int
	TopEmployers       []EmployerCount
	GraduationTrend    map[string]int
	CareerDistribution map[string]int
	Companies          int
	Cities             int
}

func Summarize(alumni []user.AlumniRecord) Summary {
	msc, phd := DegreeCounts(alumni)
	active := CountActive(alumni)
	recent := CountRecentGraduates(alumni)
	geo := GeoDistribution(alumni)

	companies := make(map[string]struct{})
	for _, a := range alumni {
		companies[a.Company] = struct{}{}
	}

	return Summary{
		TotalAlumni:        len(alumni),
		MScGraduates:       msc,
		PhDGraduates:       phd,
		ActiveAlumni:       active,
		RecentGraduates:    recent,
		ActivePercent:      percent(active, len(alumni)),
		RecentPercent:      percent(recent, len(alumni)),
		Salary:             Salaries(alumni),
		GeoDistribution:    geo,
		TopEmployers:       TopEmployers(alumni, 5),
		GraduationTrend:    GraduationTrend(alumni),
		CareerDistribution: CareerDistribution(alumni),
		Companies:          len(companies),
		Cities:             len(geo),
	}
}

func DegreeCounts(alumni []user.AlumniRecord) (msc, phd int) {
	for _, a := range alumni {
		switch a.Degree {
		case user.DegreeMSc:
			msc++
		case user.DegreePhD:
			phd++
		}
	}
	return msc, phd
}

func CountActive(alumni []user.AlumniRecord) int {
	n := 0
	for _, a := range alumni {
		if a.IsActive {
			n++
		}
	}
	return n
}

func CountRecentGraduates(alumni []user.AlumniRecord) int {
	n := 0
	for _, a := range alumni {
		if year, err := strconv.Atoi(strings.TrimSpace(a.GraduationYear)); err == nil && year >= RecentGraduateYear {
			n++
		}
	}
	return n
}

// Salaries parses each salary as an integer, treating unparsable values as
// 0. An empty set yields all zeroes.
func Salaries(alumni []user.AlumniRecord) SalaryStats {
	if len(alumni) == 0 {
		return SalaryStats{}
	}

	var sum, highest int64
	lowest := int64(-1)
	for _, a := range alumni {
		s := parseSalary(a.Salary)
		sum += s
		if s > highest {
			highest = s
		}
		if lowest < 0 || s < lowest {
			lowest = s
		}
	}
	return SalaryStats{
		Average: float64(sum) / float64(len(alumni)),
		Highest: highest,
		Lowest:  lowest,
		Range:   highest - lowest,
	}
}

// GeoDistribution groups by the city part of location (the substring before
// the first comma).
func GeoDistribution(alumni []user.AlumniRecord) map[string]int {
	out := make(map[string]int)
	for _, a := range alumni {
		out[City(a.Location)]++
	}
	return out
}

func City(location string) string {
	if i := strings.Index(location, ","); i >= 0 {
		return location[:i]
	}
	return location
}

// TopEmployers returns the n most frequent companies, ties broken by name
// for determinism.
func TopEmployers(alumni []user.AlumniRecord, n int) []EmployerCount {
	counts := make(map[string]int)
	for _, a := range alumni {
		counts[a.Company]++
	}

	out := make([]EmployerCount, 0, len(counts))
	for company, count := range counts {
		out = append(out, EmployerCount{Company: company, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Company < out[j].Company
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func GraduationTrend(alumni []user.AlumniRecord) map[string]int {
	out := make(map[string]int)
	for _, a := range alumni {
		out[a.GraduationYear]++
	}
	return out
}

// CareerDistribution buckets current positions into coarse categories by
// keyword, mirroring the dashboard's grouping.
func CareerDistribution(alumni []user.AlumniRecord) map[string]int {
	out := make(map[string]int)
	for _, a := range alumni {
		out[careerCategory(a.CurrentPosition)]++
	}
	return out
}

func careerCategory(position string) string {
	switch {
	case strings.Contains(position, "Engineer"):
		return "Software Engineer"
	case strings.Contains(position, "Scientist"):
		return "Research Scientist"
	case strings.Contains(position, "CEO"), strings.Contains(position, "Entrepreneur"):
		return "Entrepreneur/CEO"
	case strings.Contains(position, "Officer"):
		return "Technology Officer"
	case strings.Contains(position, "Professor"):
		return "Academic/Professor"
	default:
		return "Other"
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func parseSalary(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
