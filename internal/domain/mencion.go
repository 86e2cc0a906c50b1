package domain

// Placeholder course ids whose display name depends on the selected mención.
const (
	MencionCourse1  = "CURSO_MENCION_1"
	MencionCourse2  = "CURSO_MENCION_2"
	MencionCourse3  = "CURSO_MENCION_3"
	MencionCourse4  = "CURSO_MENCION_4"
	MencionDidactic = "DID_MENCION"
)

// MencionCourseIDs lists the placeholder ids in display order.
var MencionCourseIDs = []string{
	MencionCourse1,
	MencionCourse2,
	MencionCourse3,
	MencionCourse4,
	MencionDidactic,
}

// Mencion is a specialization track. Courses maps each placeholder id to the
// concrete course name taught under this track.
type Mencion struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Icon    string            `json:"icon"`
	Color   string            `json:"color"`
	Courses map[string]string `json:"courses"`
}

// Menciones is the fixed table of tracks offered by the program.
var Menciones = []Mencion{
	{
		ID:    "matematica",
		Name:  "Matemática",
		Icon:  "📐",
		Color: "#1e88e5",
		Courses: map[string]string{
			MencionCourse1:  "Probabilidad y Estadística",
			MencionCourse2:  "Álgebra y Sistemas Numéricos I",
			MencionCourse3:  "Álgebra y Sistemas Numéricos II",
			MencionCourse4:  "Geometría II",
			MencionDidactic: "Didáctica de la Matemática III",
		},
	},
	{
		ID:    "lenguaje",
		Name:  "Lenguaje y Comunicación",
		Icon:  "📚",
		Color: "#8e24aa",
		Courses: map[string]string{
			MencionCourse1:  "Gramática para la Competencia Comunicativa",
			MencionCourse2:  "Elementos de Gramática Española",
			MencionCourse3:  "Leer y Escribir a través del Currículum",
			MencionCourse4:  "Literatura Infantil y Juvenil",
			MencionDidactic: "Didáctica de la Comunicación Multimodal",
		},
	},
	{
		ID:    "cs_naturales",
		Name:  "Ciencias Naturales",
		Icon:  "🔬",
		Color: "#7cb342",
		Courses: map[string]string{
			MencionCourse1:  "Optativo de Química",
			MencionCourse2:  "Optativo de Biología",
			MencionCourse3:  "Didáctica de las Ciencias Naturales III",
			MencionCourse4:  "Optativo de Física",
			MencionDidactic: "Optativo de Ciencias",
		},
	},
	{
		ID:    "historia_geografia",
		Name:  "Historia, Geografía y Cs. Sociales",
		Icon:  "🌍",
		Color: "#e65100",
		Courses: map[string]string{
			MencionCourse1:  "Introducción a la Historia",
			MencionCourse2:  "Chile y América Indígena",
			MencionCourse3:  "Historia de Chile Contemporáneo",
			MencionCourse4:  "Geografía Humana General",
			MencionDidactic: "Didáctica de la Historia",
		},
	},
}

// IsMencionCourse reports whether id is one of the mención placeholders.
func IsMencionCourse(id string) bool {
	for _, m := range MencionCourseIDs {
		if m == id {
			return true
		}
	}
	return false
}

// FindMencion returns the track with the given id.
func FindMencion(id string) (Mencion, bool) {
	for _, m := range Menciones {
		if m.ID == id {
			return m, true
		}
	}
	return Mencion{}, false
}

// MencionCourseName returns the concrete name of a placeholder course under
// the given track, or "" when either is unknown.
func MencionCourseName(courseID, mencionID string) string {
	if mencionID == "" {
		return ""
	}
	m, ok := FindMencion(mencionID)
	if !ok {
		return ""
	}
	return m.Courses[courseID]
}

// DisplayName resolves the name a course is shown with. A placeholder course
// under a selected mención takes the track's name; otherwise a non-empty
// custom name wins over the catalog name.
func DisplayName(c Course, customNames map[string]string, selectedMencion string) string {
	if IsMencionCourse(c.ID) && selectedMencion != "" {
		if name := MencionCourseName(c.ID, selectedMencion); name != "" {
			return name
		}
		return c.Name
	}
	if name := customNames[c.ID]; name != "" {
		return name
	}
	return c.Name
}
