// Package authenticating resolve a identidade do usuário a partir do
// token de acesso enviado pelo painel
package authenticating

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/cognito"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

var (
	// ErrExpiredToken indica token vencido, detectado antes da ida ao pool
	ErrExpiredToken = errors.New("token de acesso expirado")
	// ErrUnknownUser indica token válido de um usuário sem registro local
	ErrUnknownUser = errors.New("usuário não cadastrado")
)

// Service valida tokens e resolve a identidade do usuário
type Service struct {
	cognitoClient cognito.Client
	userRepo      repository.UserRepository
	parser        *jwt.Parser
}

// NewService cria o serviço de autenticação
func NewService(cognitoClient cognito.Client, userRepo repository.UserRepository) *Service {
	return &Service{
		cognitoClient: cognitoClient,
		userRepo:      userRepo,
		parser:        jwt.NewParser(),
	}
}

// Authenticate valida o token e devolve a identidade. A expiração é
// verificada localmente antes da chamada ao pool, que é quem de fato
// valida a assinatura.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*domain.Identity, error) {
	if expired(s.parser, accessToken) {
		return nil, apiErrors.Auth(ErrExpiredToken.Error())
	}

	info, err := s.cognitoClient.GetUser(ctx, accessToken)
	if err != nil {
		return nil, apiErrors.Auth("token de acesso inválido")
	}

	user, err := s.userRepo.Get(ctx, info.Username)
	if err != nil {
		return nil, apiErrors.Storage("falha ao buscar usuário", err)
	}
	if user == nil && info.Email != "" {
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, apiErrors.Storage("falha ao buscar usuário", err)
		}
	}
	if user == nil {
		return nil, apiErrors.Forbidden(ErrUnknownUser.Error())
	}

	role := user.Role
	if role == "" {
		role = domain.RoleMember
	}

	return &domain.Identity{UserID: user.UserID, Email: user.Email, Role: role}, nil
}

// expired decodifica o token sem validar a assinatura, apenas para a
// checagem barata de expiração
func expired(parser *jwt.Parser, accessToken string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		// token ilegível segue para o pool, que o rejeitará
		return false
	}

	expiration, err := claims.GetExpirationTime()
	if err != nil || expiration == nil {
		return false
	}

	return expiration.Before(time.Now())
}
