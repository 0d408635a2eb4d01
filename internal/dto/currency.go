package dto

// CurrencyResponse is the wire form of a currency as served by the twopi API.
type CurrencyResponse struct {
	Code          string `json:"code" validate:"required,len=3"`
	Name          string `json:"name" validate:"required,max=100"`
	DecimalDigits int32  `json:"decimal_digits" validate:"gte=0,lte=10"`
}

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code          string `json:"code" validate:"required,len=3"`
	Name          string `json:"name" validate:"required,min=1,max=100"`
	DecimalDigits int32  `json:"decimal_digits" validate:"gte=0,lte=10"`
}
