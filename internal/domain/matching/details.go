package matching

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxProductNameLength  = 255
	MaxShortFieldLength   = 100
	MaxDescriptionLength  = 2000
	MaxPaymentTermsLength = 500
)

// DetailsInput is the raw commercial payload of a request before validation.
type DetailsInput struct {
	ProductName          string
	Quantity             string
	Unit                 string
	DestinationCountries string
	Price                string
	Currency             string
	PaymentTerms         *string
	DeliveryTime         *string
	Description          *string
}

// Details is the validated commercial payload of a matching request.
type Details struct {
	productName  string
	quantity     string
	unit         string
	countries    Countries
	price        string
	currency     string
	paymentTerms *string
	deliveryTime *string
	description  *string
}

func NewDetails(in DetailsInput) (Details, error) {
	productName := strings.TrimSpace(in.ProductName)
	if productName == "" {
		return Details{}, ErrEmptyProductName
	}
	if utf8.RuneCountInString(productName) > MaxProductNameLength {
		return Details{}, ErrProductNameTooLong
	}

	quantity := strings.TrimSpace(in.Quantity)
	if quantity == "" {
		return Details{}, ErrEmptyQuantity
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		return Details{}, ErrEmptyUnit
	}
	price := strings.TrimSpace(in.Price)
	if price == "" {
		return Details{}, ErrEmptyPrice
	}
	if tooLong(quantity, MaxShortFieldLength) || tooLong(unit, MaxShortFieldLength) || tooLong(price, MaxShortFieldLength) {
		return Details{}, ErrFieldTooLong
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if !isCurrencyCode(currency) {
		return Details{}, ErrInvalidCurrency
	}

	countries, err := ParseCountries(in.DestinationCountries)
	if err != nil {
		return Details{}, err
	}

	paymentTerms, err := optional(in.PaymentTerms, MaxPaymentTermsLength)
	if err != nil {
		return Details{}, err
	}
	deliveryTime, err := optional(in.DeliveryTime, MaxShortFieldLength)
	if err != nil {
		return Details{}, err
	}
	description, err := optional(in.Description, MaxDescriptionLength)
	if err != nil {
		return Details{}, err
	}

	return Details{
		productName:  productName,
		quantity:     quantity,
		unit:         unit,
		countries:    countries,
		price:        price,
		currency:     currency,
		paymentTerms: paymentTerms,
		deliveryTime: deliveryTime,
		description:  description,
	}, nil
}

// ReconstructDetails rebuilds details from storage without validation.
func ReconstructDetails(
	productName, quantity, unit string,
	countries []string,
	price, currency string,
	paymentTerms, deliveryTime, description *string,
) Details {
	return Details{
		productName:  productName,
		quantity:     quantity,
		unit:         unit,
		countries:    Countries{values: countries},
		price:        price,
		currency:     currency,
		paymentTerms: paymentTerms,
		deliveryTime: deliveryTime,
		description:  description,
	}
}

// Input turns the details back into raw form, which is what partial updates
// start from.
func (d Details) Input() DetailsInput {
	return DetailsInput{
		ProductName:          d.productName,
		Quantity:             d.quantity,
		Unit:                 d.unit,
		DestinationCountries: d.countries.String(),
		Price:                d.price,
		Currency:             d.currency,
		PaymentTerms:         d.paymentTerms,
		DeliveryTime:         d.deliveryTime,
		Description:          d.description,
	}
}

func (d Details) ProductName() string   { return d.productName }
func (d Details) Quantity() string      { return d.quantity }
func (d Details) Unit() string          { return d.unit }
func (d Details) Countries() Countries  { return d.countries }
func (d Details) Price() string         { return d.price }
func (d Details) Currency() string      { return d.currency }
func (d Details) PaymentTerms() *string { return d.paymentTerms }
func (d Details) DeliveryTime() *string { return d.deliveryTime }
func (d Details) Description() *string  { return d.description }

func optional(s *string, max int) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if tooLong(v, max) {
		return nil, ErrFieldTooLong
	}
	return &v, nil
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
