package availability

import (
	"fmt"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// enumerateFreeSlots перечисляет свободные слоты дня в фиксированном порядке:
// внешний цикл по часам (час 13 исключен - обеденный перерыв),
// внутренний по минутным отметкам. Занятые слоты пропускаются.
// Перечисление останавливается при достижении limit и не переходит
// на следующий день
func enumerateFreeSlots(blocked map[types.TimeString]struct{}, limit int) []types.TimeString {
	slots := make([]types.TimeString, 0, limit)

	for _, hour := range domain.BaseSlotHours {
		for _, minute := range domain.SlotMinuteMarks {
			candidate := types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute))

			if _, ok := blocked[candidate]; ok {
				continue
			}

			slots = append(slots, candidate)
			if len(slots) >= limit {
				return slots
			}
		}
	}

	return slots
}

// filterNewSlots возвращает первые count слотов из allSlots,
// отсутствующих в current, сохраняя порядок перечисления
func filterNewSlots(allSlots []types.TimeString, current []types.TimeString, count int) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(current))
	for _, s := range current {
		seen[s] = struct{}{}
	}

	newSlots := make([]types.TimeString, 0, count)
	for _, slot := range allSlots {
		if _, ok := seen[slot]; ok {
			continue
		}

		newSlots = append(newSlots, slot)
		if len(newSlots) >= count {
			break
		}
	}

	return newSlots
}

// toBlockedSet конвертирует список занятых слотов в множество
func toBlockedSet(slots []types.TimeString) map[types.TimeString]struct{} {
	set := make(map[types.TimeString]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return set
}
