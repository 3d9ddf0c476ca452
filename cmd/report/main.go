package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/ndixit/domain-clicks-report/infrastructure/database/postgres"
	"github.com/ndixit/domain-clicks-report/infrastructure/mailer"
	"github.com/ndixit/domain-clicks-report/infrastructure/repository"
	"github.com/ndixit/domain-clicks-report/internal/api"
	"github.com/ndixit/domain-clicks-report/internal/config"
	"github.com/ndixit/domain-clicks-report/internal/scheduler"
	"github.com/ndixit/domain-clicks-report/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Segredos obrigatórios faltando abortam antes de qualquer trabalho
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	domainRepo := repository.NewDomainConfigRepository(pgConn)
	storeRegistryRepo := repository.NewStoreRegistryRepository(pgConn)
	viewStatsRepo := repository.NewViewStatsRepository(pgConn)
	recipientRepo := repository.NewRecipientRepository(pgConn)

	connector := reporting.NewStoreConnector(
		storeRegistryRepo,
		time.Duration(cfg.ReportSync.ConnectTimeoutSeconds)*time.Second,
	)
	executor := reporting.NewFanOutExecutor(connector, reporting.NewViewFetcher(), cfg.ReportSync.MaxConcurrentJobs)

	reportService := reporting.NewService(
		domainRepo,
		viewStatsRepo,
		recipientRepo,
		executor,
		mailer.New(cfg),
	)

	// Com uma data na linha de comando o processo roda uma única execução e
	// sai: zero mesmo com domínios pulados, não-zero só em erro fatal
	if len(os.Args) > 1 {
		date := os.Args[1]
		if _, err := reportService.RunForDate(ctx, date); err != nil {
			logrus.WithError(err).WithField("date", date).Fatal("Erro na execução do relatório")
		}
		return
	}

	// Sem data: modo serviço, com agendador diário e API de operação
	dailyReportService := scheduler.NewDailyReportService(reportService, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário")
	} else {
		logrus.Info("Agendador do relatório diário iniciado com sucesso")
	}

	server, err := api.New(cfg, dailyReportService, viewStatsRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco central
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
