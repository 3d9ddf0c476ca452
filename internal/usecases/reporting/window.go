package reporting

import (
	"fmt"
	"time"
)

// DateWindow representa a janela de um dia-calendário UTC do relatório:
// [Min, Max), com Max exclusivo
type DateWindow struct {
	Date string // YYYY-MM-DD
	Min  time.Time
	Max  time.Time
}

// NewDateWindow valida a data alvo e monta a janela UTC de um dia.
// Data ausente ou malformada é um erro fatal de inicialização.
func NewDateWindow(date string) (DateWindow, error) {
	if date == "" {
		return DateWindow{}, fmt.Errorf("data do relatório não informada (esperado YYYY-MM-DD)")
	}

	min, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return DateWindow{}, fmt.Errorf("data do relatório inválida %q: %w", date, err)
	}

	return DateWindow{
		Date: date,
		Min:  min,
		Max:  min.AddDate(0, 0, 1),
	}, nil
}
