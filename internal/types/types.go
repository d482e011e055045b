// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в ECS.
// Ноль — зарезервированное значение "нет сущности".
type EntityID uint64
