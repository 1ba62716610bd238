package cartstore

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения корзины из Redis
	ErrLoad = errors.New("cartstore: failed to load cart")

	// ErrSave возвращается при ошибке записи корзины в Redis
	ErrSave = errors.New("cartstore: failed to save cart")

	// ErrDelete возвращается при ошибке удаления корзины из Redis
	ErrDelete = errors.New("cartstore: failed to delete cart")

	// ErrEncode возвращается при ошибке сериализации корзины
	ErrEncode = errors.New("cartstore: failed to encode cart")

	// ErrDecode возвращается при ошибке десериализации корзины
	ErrDecode = errors.New("cartstore: failed to decode cart")
)
