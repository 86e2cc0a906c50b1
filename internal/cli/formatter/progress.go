package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45% for a whole
// percentage. The bar is green from 66%, yellow from 33%, red below.
func RenderProgress(percentage, width int) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	if width < 2 {
		width = 2
	}

	filled := percentage * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if percentage < 33 {
		style = StyleRed
	} else if percentage < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), percentage)
}

// ProgressMessage is the encouragement line shown under the career bar.
func ProgressMessage(percentage, remaining int) string {
	switch {
	case percentage <= 0:
		return "¡Comienza tu camino!"
	case percentage >= 100:
		return "¡Felicitaciones! Completaste la malla."
	default:
		return fmt.Sprintf("Faltan %d ramos", remaining)
	}
}
