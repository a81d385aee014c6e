package storage

import "errors"

// ErrUnauthorized is returned when the caller lacks the role or ownership an operation requires.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when an id does not resolve to a live storefront or product.
var ErrNotFound = errors.New("not found")

// ErrInvalidArgument is returned for malformed input, e.g. a product that does not belong to the given storefront.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInsufficientStock is returned when a purchase asks for more units than are in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInsufficientPayment is returned when the attached payment does not cover price * quantity.
var ErrInsufficientPayment = errors.New("insufficient payment")

// ErrPaused is returned by mutating operations while the component is paused.
var ErrPaused = errors.New("paused")

// ErrTerminated is returned by every operation after the component has been shut down.
var ErrTerminated = errors.New("terminated")

// ErrTransferFailed is returned when the payer could not deliver funds.
var ErrTransferFailed = errors.New("transfer failed")
