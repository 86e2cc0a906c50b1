package curriculum

import (
	"math"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/domain"
)

// CompletionPercentage returns round(100 * approved-in-catalog / catalog size).
// Approved ids unknown to the catalog are ignored; an empty catalog yields 0.
func CompletionPercentage(c *catalog.Catalog, approved ApprovedSet) int {
	total := c.Len()
	if total == 0 {
		return 0
	}
	return percent(approvedInCatalog(c, approved), total)
}

// Remaining returns how many catalog courses are still not approved.
func Remaining(c *catalog.Catalog, approved ApprovedSet) int {
	return c.Len() - approvedInCatalog(c, approved)
}

func approvedInCatalog(c *catalog.Catalog, approved ApprovedSet) int {
	n := 0
	for id := range approved {
		if c.Has(id) {
			n++
		}
	}
	return n
}

// SemesterStat aggregates lock and approval counts for one semester.
type SemesterStat struct {
	Semester   int `json:"semester"`
	Total      int `json:"total"`
	Approved   int `json:"approved"`
	Locked     int `json:"locked"`
	Available  int `json:"available"`
	Percentage int `json:"percentage"`
}

// SemesterStats returns one entry per semester from MinSemester to MaxSemester.
// Approved courses are never counted as locked or available.
func SemesterStats(g *Graph, approved ApprovedSet) []SemesterStat {
	stats := make([]SemesterStat, domain.MaxSemester-domain.MinSemester+1)
	for i := range stats {
		stats[i].Semester = domain.MinSemester + i
	}

	for _, state := range Evaluate(g, approved) {
		idx := state.Course.Semester - domain.MinSemester
		if idx < 0 || idx >= len(stats) {
			continue
		}
		s := &stats[idx]
		s.Total++
		switch {
		case state.Approved:
			s.Approved++
		case state.Locked:
			s.Locked++
		default:
			s.Available++
		}
	}

	for i := range stats {
		if stats[i].Total > 0 {
			stats[i].Percentage = percent(stats[i].Approved, stats[i].Total)
		}
	}
	return stats
}

func percent(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}
