package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrLoad возвращается при ошибке чтения состояния из хранилища
	ErrLoad = errors.New("catalog.repository: failed to load state")

	// ErrSave возвращается при ошибке записи состояния в хранилище
	ErrSave = errors.New("catalog.repository: failed to save state")
)
