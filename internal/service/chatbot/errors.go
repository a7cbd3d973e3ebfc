package chatbot

import "errors"

var (
	// ErrEmptyMessage возвращается при пустом сообщении пользователя
	ErrEmptyMessage = errors.New("chatbot: message text is empty")

	// ErrInvalidQuestion возвращается, если вопрос или ответ не заполнены
	ErrInvalidQuestion = errors.New("chatbot: question and answer are required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("chatbot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("chatbot: internal error")
)
