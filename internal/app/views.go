package app

import (
	"github.com/alexanderramin/malla/internal/curriculum"
	"github.com/alexanderramin/malla/internal/domain"
	"github.com/alexanderramin/malla/internal/grades"
)

// CourseDetail is a course enriched with its resolved neighbours. It
// serializes as the course's own fields plus prerequisitesData and
// dependentsData.
type CourseDetail struct {
	domain.Course
	PrerequisitesData []domain.Course `json:"prerequisitesData"`
	DependentsData    []domain.Course `json:"dependentsData"`
}

// BoardCourse is one cell of the semester board.
type BoardCourse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Semester    int             `json:"semester"`
	Category    domain.Category `json:"category"`
	Approved    bool            `json:"approved"`
	Locked      bool            `json:"locked"`
	Missing     []string        `json:"missing,omitempty"`
	Dependents  int             `json:"dependents"`
}

type BoardSemester struct {
	Semester int                     `json:"semester"`
	Courses  []BoardCourse           `json:"courses"`
	Stat     curriculum.SemesterStat `json:"stat"`
}

// BoardView is the whole program as the student currently stands.
type BoardView struct {
	Semesters []BoardSemester `json:"semesters"`
	Progress  ProgressView    `json:"progress"`
	Mencion   *domain.Mencion `json:"mencion,omitempty"`
}

// ProgressView summarizes completion for an approved set.
type ProgressView struct {
	CompletionPercentage int                       `json:"completionPercentage"`
	Approved             int                       `json:"approved"`
	Remaining            int                       `json:"remaining"`
	Total                int                       `json:"total"`
	Semesters            []curriculum.SemesterStat `json:"semesters"`
}

// EligibilityView lists which courses are locked and which can be taken now.
type EligibilityView struct {
	Locked    []string `json:"locked"`
	Available []string `json:"available"`
}

// CourseGrades is the grade simulator state of one course.
type CourseGrades struct {
	CourseID    string              `json:"courseId"`
	CourseName  string              `json:"courseName"`
	Evaluations []grades.Evaluation `json:"evaluations"`
	Average     *float64            `json:"average"`
	TotalWeight float64             `json:"totalWeight"`
}

// Passing reports whether the course average reaches the passing grade.
// A course without an average is not passing.
func (g CourseGrades) Passing() bool {
	return g.Average != nil && grades.IsPassing(*g.Average)
}

type SemesterGrades struct {
	Semester int            `json:"semester"`
	Courses  []CourseGrades `json:"courses"`
	Average  *float64       `json:"average"`
}

// IntegrityReport is the result of checking a catalog source.
type IntegrityReport struct {
	CourseCount int                      `json:"courseCount"`
	Problems    []string                 `json:"problems,omitempty"`
	Duplicates  []string                 `json:"duplicates,omitempty"`
	Dangling    []curriculum.DanglingRef `json:"dangling,omitempty"`
	Cycle       []string                 `json:"cycle,omitempty"`
}

// Fatal reports whether the catalog cannot be served as is. Dangling
// references alone are tolerated.
func (r IntegrityReport) Fatal() bool {
	return len(r.Problems) > 0 || len(r.Duplicates) > 0 || len(r.Cycle) > 0
}
