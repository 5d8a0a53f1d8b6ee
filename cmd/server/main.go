// Command server wires the case-management engine: Postgres-backed stores,
// the Redis list cache, the audit worker, and the HTTP surface.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	appcache "caseflow/internal/application/cache"
	"caseflow/internal/application/checklist"
	apphandler "caseflow/internal/application/handler"
	appmetrics "caseflow/internal/application/metrics"
	appservice "caseflow/internal/application/service"
	appstore "caseflow/internal/application/store/application"
	checkliststore "caseflow/internal/application/store/checklist"
	"caseflow/internal/audit"
	auditstore "caseflow/internal/audit/store"
	dirstore "caseflow/internal/directory/store"
	dochandler "caseflow/internal/document/handler"
	docservice "caseflow/internal/document/service"
	docstore "caseflow/internal/document/store/template"
	feehandler "caseflow/internal/feetemplate/handler"
	feeservice "caseflow/internal/feetemplate/service"
	feestore "caseflow/internal/feetemplate/store/template"
	httprouter "caseflow/internal/http"
	jwttoken "caseflow/internal/jwt_token"
	"caseflow/internal/ledger"
	ledgerstore "caseflow/internal/ledger/store"
	"caseflow/internal/platform/config"
	"caseflow/internal/platform/database"
	"caseflow/internal/platform/httpserver"
	"caseflow/internal/platform/logger"
	platformmetrics "caseflow/internal/platform/metrics"
	"caseflow/internal/platform/middleware"
	platformredis "caseflow/internal/platform/redis"
	"caseflow/internal/share"
	"caseflow/pkg/platform/tx"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	var listCache appcache.ListCache = appcache.Noop{}
	if redisClient != nil {
		defer redisClient.Close()
		listCache = appcache.NewRedis(redisClient.Client)
	}

	applications := appstore.NewPostgres(db)
	checklistItems := checkliststore.NewPostgres(db)
	documents := docstore.NewPostgres(db)
	feeTemplates := feestore.NewPostgres(db)
	directory := dirstore.NewPostgres(db)
	ledgerRows := ledgerstore.NewPostgres(db)

	auditInbox := make(chan audit.Event, cfg.AuditBufferSize)
	auditWorker := audit.NewWorker(auditstore.NewPostgres(db), auditInbox, log)

	docSvc := docservice.New(documents, docservice.WithLogger(log))
	feeSvc := feeservice.New(feeTemplates)
	generator := checklist.New(docSvc, checklistItems)

	appSvc := appservice.New(
		applications, checklistItems, directory, generator, feeSvc, tx.NewRunner(db),
		appservice.WithLogger(log),
		appservice.WithListCache(listCache),
		appservice.WithAuditPublisher(audit.NewPublisher(auditInbox)),
		appservice.WithMetrics(appmetrics.New()),
	)
	shareSvc := share.New(applications, checklistItems, directory, share.WithLogger(log))
	ledgerSvc := ledger.New(applications, ledgerRows)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "caseflow", "caseflow-api")

	router := httprouter.New(httprouter.Deps{
		Applications:   apphandler.New(appSvc, log),
		Documents:      dochandler.New(docSvc, log),
		FeeTemplates:   feehandler.New(feeSvc, log),
		Ledger:         ledger.NewHandler(ledgerSvc),
		Share:          share.NewHandler(shareSvc),
		TokenValidator: jwtService,
		ShareLimiter:   middleware.NewSlidingWindowLimiter(cfg.ShareRateLimit, cfg.ShareRateWindow),
		HTTPMetrics:    platformmetrics.New(),
		Logger:         log,
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return auditWorker.Run(ctx)
	})
	group.Go(func() error {
		log.Info("starting caseflow server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
