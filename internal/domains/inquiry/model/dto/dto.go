package dto

import (
	"salon/internal/domains/inquiry/model"
)

// InquiryRequest mirrors the contact form the booking client submits.
type InquiryRequest struct {
	Firstname string `json:"firstname" validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=100"`
	Phone     string `json:"phone"     validate:"required,max=30"`
	Bemerkung string `json:"bemerkung" validate:"required,max=2000"`
}

func (i *InquiryRequest) ToModel() model.Inquiry {
	return model.Inquiry{
		Firstname: i.Firstname,
		Email:     i.Email,
		Phone:     i.Phone,
		Message:   i.Bemerkung,
	}
}
