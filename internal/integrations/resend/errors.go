package resend

import "errors"

var (
	// ErrSendFailed возвращается, когда Resend API отклонил отправку письма
	ErrSendFailed = errors.New("resend client: failed to send email")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе API
	ErrInvalidResponse = errors.New("resend client: invalid response")
)
