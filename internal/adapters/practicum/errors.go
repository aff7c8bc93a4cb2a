package practicum

import "fmt"

// TransportError означает, что запрос не дошёл до сервера или ответ не дочитан.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("сервер Практикума недоступен: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusCodeError означает ответ сервера с кодом, отличным от 200.
type StatusCodeError struct {
	Code int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("API возвращает код, отличный от 200: %d", e.Code)
}

// DecodeError означает, что тело успешного ответа не разобралось как JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("ответ от сервера должен быть в формате JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
