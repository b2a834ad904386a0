package load_more_slots

import "github.com/tomspera05/NH-BookingService/pkg/types"

// LoadMoreRequest HTTP request model
type LoadMoreRequest struct {
	Date            string   `json:"date"`
	CurrentSlots    []string `json:"currentSlots"`
	AdditionalCount int      `json:"additionalCount"`
}

// CurrentTimeStrings конвертирует текущие слоты запроса в доменный тип
func (r *LoadMoreRequest) CurrentTimeStrings() []types.TimeString {
	result := make([]types.TimeString, 0, len(r.CurrentSlots))
	for _, s := range r.CurrentSlots {
		result = append(result, types.TimeString(s))
	}
	return result
}

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
