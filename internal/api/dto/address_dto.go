package dto

import (
	"time"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// AddressRequest payload for address create/update.
type AddressRequest struct {
	Mobile   string `json:"mobile"`
	Flat     string `json:"flat"`
	Landmark string `json:"landmark"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	PinCode  string `json:"pinCode"`
}

// ToDomain builds the domain address from the payload.
func (r AddressRequest) ToDomain() *domain.Address {
	return &domain.Address{
		Mobile:   r.Mobile,
		Flat:     r.Flat,
		Landmark: r.Landmark,
		Street:   r.Street,
		City:     r.City,
		State:    r.State,
		Country:  r.Country,
		PinCode:  r.PinCode,
	}
}

// AddressView response shape.
type AddressView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Flat      string    `json:"flat"`
	Landmark  string    `json:"landmark"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	PinCode   string    `json:"pinCode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewAddressView maps a domain address to its response shape.
func NewAddressView(address *domain.Address) *AddressView {
	if address == nil {
		return nil
	}
	return &AddressView{
		ID:        address.ID,
		Name:      address.Name,
		Email:     address.Email,
		Mobile:    address.Mobile,
		Flat:      address.Flat,
		Landmark:  address.Landmark,
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Country:   address.Country,
		PinCode:   address.PinCode,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
}
