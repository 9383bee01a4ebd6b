// Package cognito integra com o pool de usuários que emite os tokens
// de acesso aceitos pela API
package cognito

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/pkg/errors"
)

// UserInfo é a identidade devolvida pelo pool para um token válido
type UserInfo struct {
	Username string
	Email    string
}

// Client valida tokens de acesso junto ao pool de usuários
type Client interface {
	GetUser(ctx context.Context, accessToken string) (*UserInfo, error)
}

type client struct {
	api *cip.Client
}

// New cria o cliente sobre o SDK da AWS
func New(api *cip.Client) Client {
	return &client{api: api}
}

func (c *client) GetUser(ctx context.Context, accessToken string) (*UserInfo, error) {
	output, err := c.api.GetUser(ctx, &cip.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return nil, errors.Wrap(err, "token rejeitado pelo pool de usuários")
	}

	info := &UserInfo{Username: aws.ToString(output.Username)}
	for _, attribute := range output.UserAttributes {
		if aws.ToString(attribute.Name) == "email" {
			info.Email = aws.ToString(attribute.Value)
		}
	}

	return info, nil
}
