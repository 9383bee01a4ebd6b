// Package api monta o servidor HTTP do painel de gestão de anúncios
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/api/handler"
	"github.com/vfg2006/ads-manager-api/internal/api/handler/router"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/tasks"
	"github.com/vfg2006/ads-manager-api/internal/usecases/account"
	"github.com/vfg2006/ads-manager-api/internal/usecases/ads"
	"github.com/vfg2006/ads-manager-api/internal/usecases/billing"
	"github.com/vfg2006/ads-manager-api/internal/usecases/campaign"
	"github.com/vfg2006/ads-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/middleware"
)

// Services agrupa as dependências injetadas no servidor
type Services struct {
	Authenticator middleware.Authenticator
	Account       *account.Service
	Campaign      *campaign.Service
	Ads           *ads.Service
	Insighting    *insighting.Service
	Billing       *billing.Service
	Enqueuer      *tasks.Enqueuer
	TaskRepo      repository.TaskRepository
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Accounts(services.Account)...),
		router.WithRoutes(handler.Campaigns(services.Campaign)...),
		router.WithRoutes(handler.Ads(services.Ads, services.Enqueuer)...),
		router.WithRoutes(handler.Tasks(services.TaskRepo)...),
		router.WithRoutes(handler.Insights(services.Insighting)...),
		router.WithRoutes(handler.Billing(services.Billing)...),
	)

	middlewares := []alice.Constructor{
		middleware.PanicRecovery,
		middleware.Logging,
		middleware.CORS,
		middleware.Auth(services.Authenticator, "/healthcheck"),
	}

	chain := alice.New(middlewares...).Then(rt)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run sobe o servidor e bloqueia até um sinal de término ou o
// cancelamento do contexto, desligando graciosamente em seguida
func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto da aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
