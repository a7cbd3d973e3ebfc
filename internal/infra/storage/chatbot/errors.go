package chatbot

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения состояния из хранилища
	ErrLoad = errors.New("chatbot.repository: failed to load state")

	// ErrSave возвращается при ошибке записи состояния в хранилище
	ErrSave = errors.New("chatbot.repository: failed to save state")
)
