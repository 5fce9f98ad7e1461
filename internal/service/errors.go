package service

import "errors"

// Типизированные ошибки сервисного слоя. Хэндлеры мапят их в HTTP-коды.
var (
	// ErrNotFound - запрошенная сущность не найдена
	ErrNotFound = errors.New("not found")
	// ErrConflict - операция нарушает инвариант состояния (например, повторное назначение группы)
	ErrConflict = errors.New("conflict")
	// ErrPermission - у вызывающего нет прав на операцию
	ErrPermission = errors.New("permission denied")
	// ErrStaleUpdate - входящее обновление старее сохранённой версии и отброшено
	ErrStaleUpdate = errors.New("stale update discarded")
)
