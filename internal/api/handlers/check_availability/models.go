package check_availability

import (
	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available        bool     `json:"available"`
	AlternativeSlots []string `json:"alternativeSlots"`
}

// FromDomainResult конвертирует доменную модель в HTTP ответ
func FromDomainResult(result *domain.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:        result.Available,
		AlternativeSlots: timeStringsToStrings(result.AlternativeSlots),
	}
}

func timeStringsToStrings(slots []types.TimeString) []string {
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.String())
	}
	return result
}
