package reporting

import (
	"context"
	"fmt"

	"github.com/ndixit/domain-clicks-report/infrastructure/repository"
	"github.com/ndixit/domain-clicks-report/internal/domain"
	"github.com/sirupsen/logrus"
)

// Service orquestra a execução completa do relatório de uma data: cadastro
// de domínios, fan-out das consultas, persistência das estatísticas,
// agregação e entrega por e-mail
type Service struct {
	domainRepo    repository.DomainConfigRepository
	viewStatsRepo repository.ViewStatsRepository
	recipientRepo repository.RecipientRepository
	executor      Executor
	mailer        Mailer
}

func NewService(
	domainRepo repository.DomainConfigRepository,
	viewStatsRepo repository.ViewStatsRepository,
	recipientRepo repository.RecipientRepository,
	executor Executor,
	mailer Mailer,
) *Service {
	return &Service{
		domainRepo:    domainRepo,
		viewStatsRepo: viewStatsRepo,
		recipientRepo: recipientRepo,
		executor:      executor,
		mailer:        mailer,
	}
}

// RunForDate executa o relatório da data alvo (YYYY-MM-DD, dia UTC).
// Falhas de um domínio individual não interrompem a execução; os erros
// retornados aqui são os fatais: data inválida, cadastro inacessível,
// persistência ou destinatários indisponíveis.
func (s *Service) RunForDate(ctx context.Context, date string) (*domain.ClickReport, error) {
	window, err := NewDateWindow(date)
	if err != nil {
		return nil, err
	}

	logrus.WithField("date", window.Date).Info("Iniciando relatório diário de cliques por domínio")

	configs, err := s.domainRepo.ListDomains()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar o cadastro de domínios: %w", err)
	}

	if len(configs) == 0 {
		logrus.Warn("Nenhum domínio cadastrado para o relatório")
	}

	records := s.executor.Run(ctx, configs, window)

	// Persistência com substituição por data: reexecutar é o mecanismo de
	// retry e nunca duplica registros
	if err := s.viewStatsRepo.ReplaceByDate(ctx, window.Date, records); err != nil {
		return nil, fmt.Errorf("erro ao persistir estatísticas da data %s: %w", window.Date, err)
	}

	report := BuildClickReport(window.Date, configs, records)

	if err := s.deliver(report); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"date":          report.Date,
		"domains":       report.TotalDomains,
		"total_clicks":  report.TotalClicks,
		"total_records": len(records),
	}).Info("Relatório diário de cliques concluído")

	return report, nil
}

// deliver renderiza e envia o relatório para cada destinatário cadastrado.
// Um endereço com problema não impede a entrega aos demais.
func (s *Service) deliver(report *domain.ClickReport) error {
	recipients, err := s.recipientRepo.ListRecipients()
	if err != nil {
		return fmt.Errorf("erro ao carregar os destinatários do relatório: %w", err)
	}

	if len(recipients) == 0 {
		logrus.Warn("Nenhum destinatário cadastrado para o relatório")
		return nil
	}

	subject := ReportSubject(report.Date)

	for _, recipient := range recipients {
		html, err := RenderReportEmail(report, recipient)
		if err != nil {
			logrus.WithError(err).WithField("email", recipient.Email).Error("Erro ao renderizar relatório para destinatário")
			continue
		}

		if err := s.mailer.Send(recipient, subject, html); err != nil {
			logrus.WithError(err).WithField("email", recipient.Email).Error("Erro ao enviar relatório para destinatário")
			continue
		}

		logrus.WithField("email", recipient.Email).Info("Relatório enviado")
	}

	return nil
}
