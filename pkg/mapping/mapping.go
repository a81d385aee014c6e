package mapping

import (
	"github.com/chris/marketplace-ledger/pkg/api"
	"github.com/chris/marketplace-ledger/pkg/models"
)

// ToApiStorefront converts a domain Storefront model to an API Storefront model.
func ToApiStorefront(sf *models.Storefront) *api.Storefront {
	return &api.Storefront{
		Id:       sf.Id,
		Owner:    string(sf.Owner),
		Name:     sf.Name,
		Balance:  sf.Balance,
		Products: sf.Products,
	}
}

// ToApiProduct converts a domain Product model to an API Product model.
func ToApiProduct(p *models.Product) *api.Product {
	return &api.Product{
		Id:           p.Id,
		StorefrontId: p.StorefrontId,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Quantity:     p.Quantity,
	}
}

func ToApiReceipt(r *models.Receipt) *api.Receipt {
	return &api.Receipt{
		StorefrontId: r.StorefrontId,
		ProductId:    r.ProductId,
		Buyer:        string(r.Buyer),
		Quantity:     r.Quantity,
		Total:        r.Total,
		Refund:       r.Refund,
	}
}

// ToApiLedgerEntry converts a journal entry. Zero debit or credit sides are omitted.
func ToApiLedgerEntry(entry *models.LedgerEntry) *api.LedgerEntry {
	out := &api.LedgerEntry{
		EntryId:      entry.EntryID,
		StorefrontId: entry.StorefrontID,
		AccountId:    string(entry.AccountID),
		Kind:         string(entry.Kind),
		Description:  entry.Description,
		Timestamp:    entry.Timestamp,
	}
	if entry.Debit > 0 {
		debit := entry.Debit
		out.Debit = &debit
	}
	if entry.Credit > 0 {
		credit := entry.Credit
		out.Credit = &credit
	}
	return out
}

func ToApiAccount(a *models.Account) *api.Account {
	return &api.Account{
		Identity:  string(a.Identity),
		Balance:   a.Balance,
		Version:   a.Version,
		UpdatedAt: a.UpdatedAt,
	}
}
