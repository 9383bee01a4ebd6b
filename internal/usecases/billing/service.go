// Package billing gerencia os planos de crédito dos usuários
package billing

import (
	"context"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/stripepay"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// welcomeBonusCredits é o crédito concedido na primeira assinatura
const welcomeBonusCredits = 100

// Service expõe as operações de cobrança
type Service struct {
	userRepo repository.UserRepository
	payments stripepay.Client
}

// NewService cria o serviço de cobrança
func NewService(userRepo repository.UserRepository, payments stripepay.Client) *Service {
	return &Service{userRepo: userRepo, payments: payments}
}

// Plans lista os planos de crédito disponíveis
func (s *Service) Plans(ctx context.Context) ([]stripepay.Plan, error) {
	plans, err := s.payments.ListPlans()
	if err != nil {
		return nil, apiErrors.Internal("falha ao listar planos", err)
	}

	return plans, nil
}

// Subscribe assina o usuário em um plano. O cliente de cobrança é
// criado na primeira assinatura e reaproveitado depois.
func (s *Service) Subscribe(ctx context.Context, userID, priceID string) error {
	if priceID == "" {
		return apiErrors.MissingField("price_id")
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return apiErrors.Storage("falha ao buscar usuário", err)
	}
	if user == nil {
		return apiErrors.NotFound("usuário não encontrado")
	}

	customerID := user.CustomerID
	if customerID == "" {
		customerID, err = s.payments.CreateCustomer(user.Email)
		if err != nil {
			return apiErrors.Internal("falha ao criar cliente de cobrança", err)
		}

		if err := s.userRepo.Update(ctx, userID, map[string]interface{}{"customer_id": customerID}); err != nil {
			return apiErrors.Storage("falha ao gravar cliente de cobrança", err)
		}
	}

	if _, err := s.payments.Subscribe(customerID, priceID); err != nil {
		return apiErrors.Internal("falha ao criar assinatura", err)
	}

	fields := map[string]interface{}{
		"credit_plan":  priceID,
		"charge_error": nil,
	}

	// o bônus de boas-vindas é concedido uma única vez, na primeira
	// assinatura do usuário
	if user.CreditPlan == "" {
		fields["spend_credits_left"] = user.SpendCreditsLeft + welcomeBonusCredits
	}

	return s.userRepo.Update(ctx, userID, fields)
}
