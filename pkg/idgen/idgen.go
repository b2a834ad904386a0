package idgen

import "github.com/google/uuid"

// UUIDGenerator генератор уникальных идентификаторов на основе UUID v4
// Используется для ID бронирований и токенов сессий
type UUIDGenerator struct{}

// New создает новый генератор
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID возвращает новый уникальный идентификатор
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewToken возвращает новый уникальный токен сессии
func (g *UUIDGenerator) NewToken() string {
	return uuid.NewString()
}
