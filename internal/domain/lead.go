package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// Lead is a contact request submitted from the closing section of the page.
// Leads are published on the bus and emailed; they are never persisted.
type Lead struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required,max=120"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone,omitempty" validate:"omitempty,max=40"`
	Grade       string    `json:"grade" validate:"required,oneof=8 9 10 11 12"`
	Message     string    `json:"message,omitempty" validate:"max=2000"`
	SubmittedAt time.Time `json:"submitted_at" validate:"required"`
}

// Validate runs validation checks on the Lead using the defined tags.
func (l *Lead) Validate() error {
	return validatorInstance.Struct(l)
}

// Grades lists the school grades a family can pick on the contact form.
var Grades = []string{"8", "9", "10", "11", "12"}
