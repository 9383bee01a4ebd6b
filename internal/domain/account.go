package domain

// FBAccount é a conta de anúncios vinculada a um usuário
type FBAccount struct {
	FBAccountID      string `json:"fb_account_id" mapstructure:"fb_account_id"`
	UserID           string `json:"user_id" mapstructure:"user_id"`
	UserEmail        string `json:"user_email" mapstructure:"user_email"`
	AccountName      string `json:"account_name" mapstructure:"account_name"`
	AccessToken      string `json:"-" mapstructure:"access_token"`
	Status           bool   `json:"status" mapstructure:"status"`
	ConversionEvent  string `json:"conversion_event" mapstructure:"conversion_event"`
	PageID           string `json:"page_id" mapstructure:"page_id"`
	InstagramActorID string `json:"instagram_actor_id" mapstructure:"instagram_actor_id"`
	PixelID          string `json:"pixel_id" mapstructure:"pixel_id"`
	AppID            string `json:"app_id" mapstructure:"app_id"`
	AccountType      string `json:"account_type" mapstructure:"account_type"`
	Currency         string `json:"currency" mapstructure:"currency"`
}

// User é o registro local do usuário autenticado via Cognito
type User struct {
	UserID           string  `json:"user_id" mapstructure:"user_id"`
	Email            string  `json:"email" mapstructure:"email"`
	Role             string  `json:"role" mapstructure:"role"`
	FBAccountID      string  `json:"fb_account_id" mapstructure:"fb_account_id"`
	FBAccessToken    string  `json:"-" mapstructure:"fb_access_token"`
	CreditPlan       string  `json:"credit_plan" mapstructure:"credit_plan"`
	SpendCreditsLeft float64 `json:"spend_credits_left" mapstructure:"spend_credits_left"`
	CustomerID       string  `json:"-" mapstructure:"customer_id"`
	ChargeError      string  `json:"charge_error" mapstructure:"charge_error"`
}

// Identity é o resultado da autenticação de uma requisição
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Papéis conhecidos de usuário
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)
