package get_alternative_slots

import "github.com/tomspera05/NH-BookingService/pkg/types"

// SlotListResponse HTTP response model
type SlotListResponse struct {
	Slots []string `json:"slots"`
}

// FromTimeStrings конвертирует слоты в HTTP ответ
func FromTimeStrings(slots []types.TimeString) *SlotListResponse {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.String())
	}
	return &SlotListResponse{Slots: result}
}
