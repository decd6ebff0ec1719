package service

import "errors"

var (
	// ErrNoActiveConnection means the tenant has no connected gateway
	// device; nothing can be sent for that tenant.
	ErrNoActiveConnection = errors.New("no active gateway connection")

	// ErrCustomerNotFound means the requested customer does not belong to
	// the tenant or does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrNoCustomers means a bulk send resolved to zero usable customers.
	ErrNoCustomers = errors.New("no customers to send to")
)
