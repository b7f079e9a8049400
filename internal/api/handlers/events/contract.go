package events

type ReservationNotifier interface {
	Subscribe(fn func()) string
	Unsubscribe(id string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
