package cart

import "errors"

var (
	// ErrInvalidEntry - запись корзины не прошла валидацию
	ErrInvalidEntry = errors.New("invalid cart entry")

	// ErrCartFull - превышен лимит записей в корзине
	ErrCartFull = errors.New("cart entries limit exceeded")

	// ErrEntryNotFound - запись с таким ключом в корзине не найдена
	ErrEntryNotFound = errors.New("cart entry not found")

	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal cart service error")
)
