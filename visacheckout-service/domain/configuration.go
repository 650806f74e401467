package domain

import "strings"

// Environment is the Visa Checkout environment a profile targets
type Environment string

const (
	EnvironmentSandbox    Environment = "SANDBOX"
	EnvironmentProduction Environment = "PRODUCTION"
)

// productionEnvironment is the only merchant environment value that selects PRODUCTION
const productionEnvironment = "production"

// ParseEnvironment maps the merchant's global environment string to a Visa Checkout
// environment. Only the exact, case-sensitive value "production" selects PRODUCTION;
// everything else, typos included, falls back to SANDBOX.
func ParseEnvironment(value string) Environment {
	if value == productionEnvironment {
		return EnvironmentProduction
	}
	return EnvironmentSandbox
}

func (e Environment) String() string {
	return string(e)
}

// Card brands understood by the Visa Checkout SDK
const (
	CardBrandVisa       = "VISA"
	CardBrandMastercard = "MASTERCARD"
	CardBrandDiscover   = "DISCOVER"
	CardBrandAmex       = "AMEX"
)

var cardBrandsByCardType = map[string]string{
	"visa":             CardBrandVisa,
	"mastercard":       CardBrandMastercard,
	"discover":         CardBrandDiscover,
	"american express": CardBrandAmex,
}

// CardBrandsFromCardTypes converts gateway card type names ("Visa", "American Express", ...)
// to Visa Checkout brands. Unknown types are dropped; order is preserved.
func CardBrandsFromCardTypes(cardTypes []string) []string {
	brands := make([]string, 0, len(cardTypes))
	for _, cardType := range cardTypes {
		if brand, ok := cardBrandsByCardType[strings.ToLower(strings.TrimSpace(cardType))]; ok {
			brands = append(brands, brand)
		}
	}
	return brands
}

// MerchantVisaConfig is the Visa Checkout section of the merchant configuration
type MerchantVisaConfig struct {
	APIKey             string   `json:"api_key"`
	AcceptedCardBrands []string `json:"accepted_card_brands"`
	ExternalClientID   string   `json:"external_client_id"`
	Enabled            bool     `json:"enabled"`
}

// Configuration is an immutable snapshot of the merchant configuration
type Configuration struct {
	Environment  string             `json:"environment"`
	ClientAPIURL string             `json:"client_api_url"`
	AnalyticsURL string             `json:"analytics_url"`
	VisaCheckout MerchantVisaConfig `json:"visa_checkout"`
}
