package service

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/malla/internal/catalog"
	"github.com/alexanderramin/malla/internal/domain"
)

const (
	assistantGreeting = "¡Hola! Soy tu asistente curricular. ¿En qué puedo ayudarte?"
	assistantNoInfo   = "Lo siento, no tengo información detallada sobre este curso en mi base de datos."
	assistantSample   = 5
)

type assistantService struct {
	catalog *catalog.Catalog
}

// NewAssistantService answers the canned questions offered by `malla ask`.
func NewAssistantService(c *catalog.Catalog) AssistantService {
	return &assistantService{catalog: c}
}

func (s *assistantService) Greeting() string {
	return assistantGreeting
}

func (s *assistantService) CoursesWithPrerequisites() string {
	var names []string
	for _, c := range s.catalog.All() {
		if c.HasPrerequisites() {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 {
		return "No hay cursos con requisitos."
	}

	shown := names
	if len(shown) > assistantSample {
		shown = shown[:assistantSample]
	}
	msg := fmt.Sprintf("Hay %d cursos con requisitos. Algunos son: %s.", len(names), strings.Join(shown, ", "))
	if rest := len(names) - assistantSample; rest > 0 {
		msg += fmt.Sprintf(" ...y %d más.", rest)
	}
	return msg
}

func (s *assistantService) Describe(id string) (string, error) {
	c, err := s.catalog.Lookup(id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(c.Description) == "" {
		return assistantNoInfo, nil
	}
	return c.Description, nil
}

func (s *assistantService) FilterCourses(query string) []domain.Course {
	return s.catalog.Search(query)
}
