package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды на границе transport)
var (
	ErrBadParams        = errors.New("bad_params")         // 400
	ErrUnauth           = errors.New("unauthorized")       // 401 (секрет не совпал)
	ErrNotFound         = errors.New("not_found")          // 404
	ErrMethodNotAllowed = errors.New("method_not_allowed") // 405
	ErrCapacityExceeded = errors.New("capacity_exceeded")  // 507 (превышена квота хранилища)
	ErrUnexpected       = errors.New("unexpected")         // 500
)

// Коды ошибок для конверта ответа
const (
	ErrCodeBadParams        = 1000
	ErrCodeUnauth           = 1001
	ErrCodeNotFound         = 1004
	ErrCodeMethodNotAllowed = 1005
	ErrCodeCapacityExceeded = 1007
	ErrCodeUnexpected       = 1500
)
