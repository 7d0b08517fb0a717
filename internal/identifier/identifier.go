// Package identifier форматирует и разбирает человекочитаемые идентификаторы вида R0001.
package identifier

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix задает пространство имен счетчика
type Prefix string

const (
	PrefixReport     Prefix = "R"
	PrefixAlert      Prefix = "A"
	PrefixDepartment Prefix = "D"
	PrefixEquipment  Prefix = "E"
	PrefixLocation   Prefix = "L"
	PrefixInjuryType Prefix = "T"
)

const width = 4

// Format собирает идентификатор: префикс + номер, дополненный нулями до 4 знаков.
// Номера больше 9999 не обрезаются.
func Format(prefix Prefix, n int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}

// Parse возвращает числовую часть идентификатора с заданным префиксом
func Parse(prefix Prefix, id string) (int, error) {
	if !strings.HasPrefix(id, string(prefix)) {
		return 0, fmt.Errorf("identifier %q does not start with %q", id, prefix)
	}
	digits := strings.TrimPrefix(id, string(prefix))
	if len(digits) < width {
		return 0, fmt.Errorf("identifier %q is too short", id)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("identifier %q has invalid numeric part", id)
	}
	return n, nil
}
