package service

import (
	"log/slog"

	"sauti.app/api/internal/queue"
	"sauti.app/api/internal/store"
)

type Services struct {
	stores        *store.Stores
	txRunner      TxRunner
	confirmations queue.Producer
	logger        *slog.Logger
}

type ServicesConfig struct {
	Stores        *store.Stores
	TxRunner      TxRunner
	Confirmations queue.Producer
	Logger        *slog.Logger
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:        cfg.Stores,
		txRunner:      cfg.TxRunner,
		confirmations: cfg.Confirmations,
		logger:        cfg.Logger,
	}
}

func (s *Services) Intake() IntakeService {
	return NewIntakeService(s.stores.Reports(), s.confirmations, s.logger)
}

func (s *Services) Ussd() UssdService {
	return NewUssdService(s.Intake(), s.logger)
}

func (s *Services) Sms() SmsService {
	return NewSmsService(s.Intake(), s.logger)
}

func (s *Services) Reports() ReportService {
	return NewReportService(s.stores.Reports(), s.txRunner, s.logger)
}

func (s *Services) Analytics() AnalyticsService {
	return NewAnalyticsService(s.stores.Reports())
}
