package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() *Transaction {
	return &Transaction{
		Amount:      decimal.RequireFromString("42.50"),
		Description: "weekly shop",
		Date:        MustDate(2023, time.March, 15),
		CategoryID:  1,
	}
}

func TestTransaction_Validate(t *testing.T) {
	assert.NoError(t, validTransaction().Validate())

	txn := validTransaction()
	txn.Description = ""
	assert.ErrorIs(t, txn.Validate(), ErrTransactionDescriptionRequired)

	txn = validTransaction()
	txn.Date = Date{}
	assert.ErrorIs(t, txn.Validate(), ErrTransactionDateRequired)

	txn = validTransaction()
	txn.CategoryID = 0
	assert.ErrorIs(t, txn.Validate(), ErrTransactionCategoryRequired)
}

func TestTransaction_AmountStaysExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 in decimal arithmetic
	sum := decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))
	assert.True(t, sum.Equal(decimal.RequireFromString("0.3")))
}

func TestTransaction_TableName(t *testing.T) {
	assert.Equal(t, "transactions", Transaction{}.TableName())
}
