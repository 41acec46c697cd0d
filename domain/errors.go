package domain

import "errors"

var (
	// ErrCustomerNotFound is a normal outcome for an unknown customer id;
	// no scoring happens for that request.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmptyCatalog means there are zero products to score.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrInvalidWeight rejects negative weight values outright.
	ErrInvalidWeight = errors.New("weight must not be negative")
)
