package mapping

import (
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/dto"
)

// ToDomainTransaction converts a wire transaction to a domain Transaction.
func ToDomainTransaction(r dto.TransactionResponse) domain.Transaction {
	items := make([]domain.TransactionItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.TransactionItem{
			ItemID:     item.ID,
			Notes:      item.Notes,
			AccountID:  item.AccountID,
			Amount:     item.Amount,
			CategoryID: item.CategoryID,
		}
	}
	return domain.Transaction{
		TransactionID: r.ID,
		Title:         r.Title,
		Timestamp:     r.Timestamp,
		Items:         items,
	}
}

// ToDomainTransactionSlice converts a slice of wire transactions to domain
// Transactions.
func ToDomainTransactionSlice(rs []dto.TransactionResponse) []domain.Transaction {
	ds := make([]domain.Transaction, len(rs))
	for i, r := range rs {
		ds[i] = ToDomainTransaction(r)
	}
	return ds
}

// ToUpsertTransactionRequest converts a domain Transaction to its upsert wire
// form.
func ToUpsertTransactionRequest(t domain.Transaction) dto.UpsertTransactionRequest {
	items := make([]dto.UpsertTransactionItemRequest, len(t.Items))
	for i, item := range t.Items {
		items[i] = dto.UpsertTransactionItemRequest{
			ID:         item.ItemID,
			Notes:      item.Notes,
			AccountID:  item.AccountID,
			Amount:     item.Amount,
			CategoryID: item.CategoryID,
		}
	}
	return dto.UpsertTransactionRequest{
		ID:        t.TransactionID,
		Title:     t.Title,
		Timestamp: t.Timestamp,
		Items:     items,
	}
}
