package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot enumeration tables
// Candidate slots are the cross product of BaseSlotHours and SlotMinuteMarks,
// hour-major. Hour 13 is deliberately excluded (lunch break).
var (
	BaseSlotHours   = []int{9, 10, 11, 12, 14, 15, 16, 17, 18}
	SlotMinuteMarks = []int{0, 15, 30, 45}
)

// Slot limits
const (
	// DefaultAlternativeSlotLimit количество альтернативных слотов по умолчанию
	DefaultAlternativeSlotLimit = 6

	// DefaultAdditionalSlotCount количество дополнительных слотов при дозагрузке
	DefaultAdditionalSlotCount = 6

	// MaxSlotsPerDay защитный предел полного перечисления слотов на день
	MaxSlotsPerDay = 100
)

// Business validation constants
const (
	MaxServicesPerBooking = 10
	MaxNameLength         = 100
	MaxEmailLength        = 254
)
