package teams

import "errors"

var (
	// ErrTeamNotFound возвращается при запросе неизвестной команды.
	// Каталог закрыт и полон после старта, поэтому неизвестный id
	// означает ошибку конфигурации или вызывающего кода.
	ErrTeamNotFound = errors.New("teams: team not found")
)
