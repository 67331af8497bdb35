package rating

import (
	"github.com/pkg/errors"
)

// Positions - количество звёзд в контроле
const Positions = 5

var ErrOutOfRange = errors.New("оценка должна быть от 1 до 5")

type Star struct {
	Position int
	Filled   bool
}

// Stars - отображение текущего значения в ряд из пяти звёзд.
// 0 означает "нет оценки": ни одна звезда не закрашена.
func Stars(value int) []Star {
	result := make([]Star, 0, Positions)
	for position := 1; position <= Positions; position++ {
		result = append(result, Star{
			Position: position,
			Filled:   position <= value,
		})
	}
	return result
}

// Select - значение, которое контрол передаёт при выборе звезды
func Select(position int) (int, error) {
	if position < 1 || position > Positions {
		return 0, errors.Wrapf(ErrOutOfRange, "получено %d", position)
	}
	return position, nil
}

// Glyphs - текстовое представление для выгрузок, например "★★★☆☆"
func Glyphs(value int, filled, empty string) string {
	result := ""
	for _, star := range Stars(value) {
		if star.Filled {
			result += filled
		} else {
			result += empty
		}
	}
	return result
}
