package postgres

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservations.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservations.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservations.repository: failed to scan row")

	// ErrResolveTeam возвращается, когда длительность команды не удалось
	// определить по каталогу
	ErrResolveTeam = errors.New("reservations.repository: failed to resolve team")
)
