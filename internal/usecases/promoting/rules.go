package promoting

import (
	"fmt"
	"slices"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

// IsActive indica se a promoção vale no instante informado: flag ativa,
// data dentro do intervalo, dia da semana permitido e horário dentro da janela.
// Depois da meia-noite, uma janela como 22:00 a 02:00 pertence ao dia em que abriu.
func IsActive(promotion *domain.Promotion, at time.Time) bool {
	if !promotion.Active {
		return false
	}

	inWindow, openedDayBefore := withinWindow(promotion.StartTime, promotion.EndTime, at)
	if !inWindow {
		return false
	}

	day := at
	if openedDayBefore {
		day = at.AddDate(0, 0, -1)
	}

	period := domain.Period{Start: promotion.StartDate, End: promotion.EndDate}
	if !period.Contains(day) {
		return false
	}

	if len(promotion.DaysOfWeek) > 0 && !slices.Contains(promotion.DaysOfWeek, int(day.Weekday())) {
		return false
	}

	return true
}

// withinWindow trata janelas que atravessam a meia-noite (ex.: 22:00 a 02:00).
// O segundo retorno indica que o instante está no trecho após a meia-noite.
func withinWindow(start, end *string, at time.Time) (bool, bool) {
	minute := at.Hour()*60 + at.Minute()

	startMinute, hasStart := parseClock(start)
	endMinute, hasEnd := parseClock(end)

	switch {
	case hasStart && hasEnd:
		if startMinute <= endMinute {
			return minute >= startMinute && minute <= endMinute, false
		}
		if minute >= startMinute {
			return true, false
		}
		return minute <= endMinute, true
	case hasStart:
		return minute >= startMinute, false
	case hasEnd:
		return minute <= endMinute, false
	}
	return true, false
}

func parseClock(value *string) (int, bool) {
	if value == nil || *value == "" {
		return 0, false
	}

	var hour, minute int
	if _, err := fmt.Sscanf(*value, "%d:%d", &hour, &minute); err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// FinalPrice calcula o preço promocional conforme o tipo
func FinalPrice(promotion *domain.Promotion) float64 {
	if promotion.Type == domain.PromotionPercentage {
		return utils.RoundWithTwoDecimalPlace(promotion.OriginalPrice * (1 - promotion.DiscountPercentage/100))
	}
	return utils.RoundWithTwoDecimalPlace(promotion.PromotionalPrice)
}
