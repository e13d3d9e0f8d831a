package notify

// Sender интерфейс исходящего транспорта (SMTP-подобный)
type Sender interface {
	Send(to string, subject string, htmlBody string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета исходов отправки (опционально, может быть nil)
type Metrics interface {
	IncNotification(kind, outcome string)
}
