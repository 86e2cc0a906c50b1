package domain

// MinSemester and MaxSemester bound the semester a course may be offered in.
const (
	MinSemester = 1
	MaxSemester = 10
)

type Category string

const (
	CategoryDisciplinario  Category = "disciplinario"
	CategoryGeneral        Category = "general"
	CategoryMencion        Category = "mencion"
	CategoryTitulacion     Category = "titulacion"
	CategoryProfundizacion Category = "profundizacion"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryDisciplinario:  true,
	CategoryGeneral:        true,
	CategoryMencion:        true,
	CategoryTitulacion:     true,
	CategoryProfundizacion: true,
}

// Categories lists the categories in legend order.
var Categories = []Category{
	CategoryDisciplinario,
	CategoryGeneral,
	CategoryMencion,
	CategoryTitulacion,
	CategoryProfundizacion,
}

// Label returns the legend label shown for the category.
func (c Category) Label() string {
	switch c {
	case CategoryGeneral:
		return "Formación General"
	case CategoryMencion:
		return "Mención"
	case CategoryTitulacion:
		return "Mínimos de Titulación"
	case CategoryProfundizacion:
		return "Optativo de Profundización"
	default:
		return "Mínimos Disciplinarios"
	}
}

// OrDefault maps the empty category to CategoryDisciplinario.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryDisciplinario
	}
	return c
}
