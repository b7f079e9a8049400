package get_session_state

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_session_state: invalid input data")

	// ErrTeamNotFound возвращается при запросе сессии неизвестной команды
	ErrTeamNotFound = errors.New("get_session_state: team not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_session_state: internal error")
)
