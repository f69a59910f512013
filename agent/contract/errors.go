package contract

import "errors"

var (
	// ErrClassification aborts the whole request: without a valid intent no
	// downstream stage can run.
	ErrClassification = errors.New("intent classification failed")

	ErrCustomerNotFound = errors.New("customer record not found")
	ErrModelInvoke      = errors.New("model invoke failed")
	ErrValidation       = errors.New("validation failed")
)
