// Package stripepay integra com a cobrança dos planos de crédito
package stripepay

import (
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/subscription"

	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// Plan é um plano de crédito disponível para assinatura. O valor é
// exposto na unidade maior da moeda, não em centavos.
type Plan struct {
	PriceID  string  `json:"price_id"`
	Product  string  `json:"product"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Interval string  `json:"interval"`
}

// Client expõe as operações de cobrança usadas pela API
type Client interface {
	ListPlans() ([]Plan, error)
	CreateCustomer(email string) (string, error)
	Subscribe(customerID, priceID string) (string, error)
}

type client struct{}

// New configura a chave da conta e devolve o cliente
func New(apiKey string) Client {
	stripe.Key = apiKey
	return &client{}
}

func (c *client) ListPlans() ([]Plan, error) {
	params := &stripe.PriceListParams{Active: stripe.Bool(true)}
	params.AddExpand("data.product")

	plans := make([]Plan, 0)
	iter := price.List(params)
	for iter.Next() {
		p := iter.Price()

		plan := Plan{
			PriceID:  p.ID,
			Amount:   utils.RoundWithTwoDecimalPlace(float64(p.UnitAmount) / 100),
			Currency: string(p.Currency),
		}
		if p.Product != nil {
			plan.Product = p.Product.Name
		}
		if p.Recurring != nil {
			plan.Interval = string(p.Recurring.Interval)
		}
		plans = append(plans, plan)
	}

	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "falha ao listar planos")
	}

	return plans, nil
}

func (c *client) CreateCustomer(email string) (string, error) {
	created, err := customer.New(&stripe.CustomerParams{Email: stripe.String(email)})
	if err != nil {
		return "", errors.Wrap(err, "falha ao criar cliente de cobrança")
	}

	return created.ID, nil
}

func (c *client) Subscribe(customerID, priceID string) (string, error) {
	created, err := subscription.New(&stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "falha ao criar assinatura")
	}

	return created.ID, nil
}
