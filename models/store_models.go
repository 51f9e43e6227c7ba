package models

import (
	// External Packages
	"github.com/shopspring/decimal"
)

// AccountRecord is one row of the banks collection, keyed by
// (bankName, accountID). Credit accounts use CreditLimit/CreditUsed,
// everything else bills against Balance.
type AccountRecord struct {
	BankName    string  `bson:"bankName" json:"bank_name"`
	AccountID   int64   `bson:"accountID" json:"account_id"`
	CardType    string  `bson:"type" json:"card_type"`
	Balance     float64 `bson:"balance,omitempty" json:"balance,omitempty"`
	CreditLimit float64 `bson:"creditLimit,omitempty" json:"credit_limit,omitempty"`
	CreditUsed  float64 `bson:"creditUsed,omitempty" json:"credit_used,omitempty"`
}

func (a *AccountRecord) BalanceDec() decimal.Decimal {
	return decimal.NewFromFloat(a.Balance)
}

func (a *AccountRecord) CreditLimitDec() decimal.Decimal {
	return decimal.NewFromFloat(a.CreditLimit)
}

func (a *AccountRecord) CreditUsedDec() decimal.Decimal {
	return decimal.NewFromFloat(a.CreditUsed)
}

// MerchantRecord is one row of the merchants collection, keyed by name.
// Read-only from the engine's perspective.
type MerchantRecord struct {
	MerchantName string `bson:"merchant_name" json:"merchant_name"`
	MerchantID   string `bson:"id" json:"id"`
	AuthToken    string `bson:"token" json:"token"`
}

// TransactionRecord is the audit row written exactly once per inbound
// request. Account holds only the last four digits of the card number;
// the full number is never persisted. Amount is a fixed two-decimal string.
type TransactionRecord struct {
	ID           string  `bson:"_id" json:"id"`
	Account      string  `bson:"account" json:"account"`
	MerchantName string  `bson:"merchant_name" json:"merchant_name"`
	MerchantID   string  `bson:"merchant_id" json:"merchant_id"`
	CardType     string  `bson:"card_type" json:"card_type"`
	Amount       string  `bson:"amount" json:"amount"`
	Timestamp    string  `bson:"timestamp" json:"timestamp"`
	Status       Outcome `bson:"status" json:"status"`
}
