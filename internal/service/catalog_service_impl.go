package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/app"
	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/rs/zerolog"
)

// LoadCurriculum reads the catalog at path (or the embedded one when path is
// empty) and builds its graph. A prerequisite cycle is reported as a
// DataFormatError; dangling references are only logged.
func LoadCurriculum(path string, log zerolog.Logger) (*curriculum.Graph, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	if path == "" {
		c, err = catalog.LoadEmbedded()
	} else {
		c, err = catalog.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}

	g := curriculum.Build(c)
	if cycle := g.FindCycle(); cycle != nil {
		return nil, &catalog.DataFormatError{Problems: []string{
			"prerequisite cycle: " + strings.Join(cycle, " -> "),
		}}
	}
	for _, d := range g.Dangling() {
		log.Warn().
			Str("course_id", d.CourseID).
			Str("prerequisite_id", d.PrerequisiteID).
			Msg("prerequisite does not resolve to a course")
	}
	log.Debug().Int("courses", c.Len()).Int("edges", g.EdgeCount()).Msg("curriculum loaded")
	return g, nil
}

// CheckSource inspects raw catalog JSON without failing on the first problem.
func CheckSource(data []byte) *app.IntegrityReport {
	report := &app.IntegrityReport{}

	records, err := catalog.DecodeRecords(data)
	if err != nil {
		report.Problems = append(report.Problems, err.Error())
		return report
	}
	report.CourseCount = len(records)
	report.Duplicates = catalog.FindDuplicateIDs(records)

	for _, verr := range catalog.Validate(records) {
		var dup *catalog.DuplicateIDError
		if errors.As(verr, &dup) {
			continue
		}
		report.Problems = append(report.Problems, verr.Error())
	}
	if len(report.Problems) > 0 || len(report.Duplicates) > 0 {
		return report
	}

	courses := make([]domain.Course, 0, len(records))
	for _, r := range records {
		courses = append(courses, r.ToCourse())
	}
	c, err := catalog.New(courses)
	if err != nil {
		report.Problems = append(report.Problems, err.Error())
		return report
	}
	g := curriculum.Build(c)
	report.Dangling = g.Dangling()
	report.Cycle = g.FindCycle()
	return report
}

type catalogService struct {
	graph *curriculum.Graph
}

func NewCatalogService(graph *curriculum.Graph) CatalogService {
	return &catalogService{graph: graph}
}

func (s *catalogService) Graph() *curriculum.Graph {
	return s.graph
}

func (s *catalogService) List(semester int, query string) []domain.Course {
	c := s.graph.Catalog()
	var courses []domain.Course
	if query != "" {
		courses = c.Search(query)
	} else {
		courses = c.All()
	}
	if semester == 0 {
		return courses
	}
	out := courses[:0]
	for _, course := range courses {
		if course.Semester == semester {
			out = append(out, course)
		}
	}
	return out
}

func (s *catalogService) Detail(id string) (*app.CourseDetail, error) {
	course, err := s.graph.Catalog().Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("course detail: %w", err)
	}
	return &app.CourseDetail{
		Course:            course,
		PrerequisitesData: nonNil(s.graph.Prerequisites(id)),
		DependentsData:    nonNil(s.graph.Dependents(id)),
	}, nil
}

// nonNil keeps empty neighbour lists serializing as [] instead of null.
func nonNil(courses []domain.Course) []domain.Course {
	if courses == nil {
		return []domain.Course{}
	}
	return courses
}
