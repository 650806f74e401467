package domain

// DataLevel controls how much card detail Visa Checkout exposes to the merchant
type DataLevel string

const (
	DataLevelSummary DataLevel = "SUMMARY"
	// DataLevelFull is required for the gateway to tokenize the card
	DataLevelFull DataLevel = "FULL"
)

// ProfileRequest is the input for the Visa Checkout profile builder
type ProfileRequest struct {
	MerchantAPIKey   string      `json:"merchant_api_key"`
	Environment      Environment `json:"environment"`
	CardBrands       []string    `json:"card_brands"`
	DataLevel        DataLevel   `json:"data_level"`
	ExternalClientID string      `json:"external_client_id"`
}

// IsEligible reports whether Visa Checkout can be offered: the vendor SDK must be
// present and the merchant configuration must enable it.
func IsEligible(sdk SDKProbe, cfg *Configuration) bool {
	if sdk == nil || cfg == nil {
		return false
	}
	return sdk.Available() && cfg.VisaCheckout.Enabled
}

// NewProfileRequest maps the merchant configuration onto a profile request.
// The data level is always FULL and card brands keep their configured order.
func NewProfileRequest(cfg *Configuration) *ProfileRequest {
	brands := make([]string, len(cfg.VisaCheckout.AcceptedCardBrands))
	copy(brands, cfg.VisaCheckout.AcceptedCardBrands)

	return &ProfileRequest{
		MerchantAPIKey:   cfg.VisaCheckout.APIKey,
		Environment:      ParseEnvironment(cfg.Environment),
		CardBrands:       brands,
		DataLevel:        DataLevelFull,
		ExternalClientID: cfg.VisaCheckout.ExternalClientID,
	}
}
