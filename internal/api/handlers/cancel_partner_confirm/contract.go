package cancel_partner_confirm

type PartnersService interface {
	CancelConfirm()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
