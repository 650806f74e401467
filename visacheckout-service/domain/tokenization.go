package domain

import (
	"encoding/json"

	"github.com/draftea/visa-checkout/shared/models"
)

// PaymentSummary is the encrypted result of a Visa Checkout flow. The adapter never
// inspects it beyond copying it into the tokenization envelope.
type PaymentSummary struct {
	EncPaymentData string `json:"encPaymentData"`
	EncKey         string `json:"encKey"`
	CallID         string `json:"callid"`
}

// Envelope defaults sent with every tokenization
const (
	TokenizationSource      = "form"
	TokenizationIntegration = "custom"
)

// TokenizationRequest wraps a payment summary for the tokenization endpoint
type TokenizationRequest struct {
	Summary     PaymentSummary
	SessionID   models.ID
	Source      string
	Integration string
}

// NewTokenizationRequest builds the envelope for a single tokenization attempt
func NewTokenizationRequest(summary PaymentSummary, sessionID models.ID) *TokenizationRequest {
	if sessionID.IsZero() {
		sessionID = models.GenerateUUID()
	}
	return &TokenizationRequest{
		Summary:     summary,
		SessionID:   sessionID,
		Source:      TokenizationSource,
		Integration: TokenizationIntegration,
	}
}

type visaCheckoutCardPayload struct {
	CallID               string `json:"callId"`
	EncryptedKey         string `json:"encryptedKey"`
	EncryptedPaymentData string `json:"encryptedPaymentData"`
}

type metaPayload struct {
	Source      string `json:"source"`
	Integration string `json:"integration"`
	SessionID   string `json:"sessionId"`
}

// MarshalJSON renders the wire body of the tokenization call
func (r *TokenizationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		VisaCheckoutCard visaCheckoutCardPayload `json:"visaCheckoutCard"`
		Meta             metaPayload             `json:"_meta"`
	}{
		VisaCheckoutCard: visaCheckoutCardPayload{
			CallID:               r.Summary.CallID,
			EncryptedKey:         r.Summary.EncKey,
			EncryptedPaymentData: r.Summary.EncPaymentData,
		},
		Meta: metaPayload{
			Source:      r.Source,
			Integration: r.Integration,
			SessionID:   r.SessionID.String(),
		},
	})
}

// CardDetails describes the tokenized card
type CardDetails struct {
	CardType string `json:"cardType"`
	LastTwo  string `json:"lastTwo"`
}

// Address as returned by Visa Checkout
type Address struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	StreetAddress   string `json:"streetAddress"`
	ExtendedAddress string `json:"extendedAddress"`
	Locality        string `json:"locality"`
	Region          string `json:"region"`
	PostalCode      string `json:"postalCode"`
	CountryCode     string `json:"countryCode"`
	PhoneNumber     string `json:"phoneNumber"`
}

// UserData is the Visa Checkout account holder
type UserData struct {
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	UserFullName  string `json:"userFullName"`
	Username      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
}

// PaymentMethodNonce is the single-use token produced by the tokenization service
type PaymentMethodNonce struct {
	Nonce           string      `json:"nonce"`
	Type            string      `json:"type"`
	Description     string      `json:"description"`
	IsDefault       bool        `json:"default"`
	CallID          string      `json:"callId"`
	Details         CardDetails `json:"details"`
	BillingAddress  *Address    `json:"billingAddress,omitempty"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty"`
	UserData        *UserData   `json:"userData,omitempty"`
}
