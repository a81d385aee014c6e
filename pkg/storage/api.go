package storage

// ApiStore defines the complete set of storefront operations needed by the API.
// It composes other interfaces to provide a clear boundary for the API's data access.
type ApiStore interface {
	StorefrontStore
	ProductStore
	PaymentStore
	LedgerReader
}
