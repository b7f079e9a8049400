package verify_account_token

type TokenVerifier interface {
	VerifyToken(token string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
