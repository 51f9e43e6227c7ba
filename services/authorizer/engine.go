package authorizer

import (
	// Go Internal Packages
	"context"
	"strings"

	// Local Packages
	errors "tx-authorizer/errors"
	models "tx-authorizer/models"

	// External Packages
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountStore is the key-value store of bank accounts consumed by the
// engine: point lookup, composite-key query, and an unconditional
// single-field update.
type AccountStore interface {
	Get(ctx context.Context, bank string, accountID int64) (*models.AccountRecord, error)
	Query(ctx context.Context, bank string, accountID int64) ([]models.AccountRecord, error)
	UpdateField(ctx context.Context, bank string, accountID int64, field string, value decimal.Decimal) error
}

// MerchantDirectory maps merchant names to their directory entries.
type MerchantDirectory interface {
	Get(ctx context.Context, merchantName string) (*models.MerchantRecord, error)
}

// Engine runs the authorization decision pipeline. It owns the decision and
// nothing else: store state is only touched through single read-modify-write
// operations scoped to one account, and every terminal outcome is recorded
// exactly once before the engine returns.
type Engine struct {
	Logger    *zap.Logger
	Accounts  AccountStore
	Merchants MerchantDirectory
	Recorder  *Recorder
	Fault     FaultDecider
}

func NewEngine(logger *zap.Logger, accounts AccountStore, merchants MerchantDirectory,
	recorder *Recorder, fault FaultDecider) *Engine {
	return &Engine{Logger: logger, Accounts: accounts, Merchants: merchants, Recorder: recorder, Fault: fault}
}

// Authorize runs one request through the pipeline and returns nil on
// approval or a kinded error describing the terminal outcome. Errors from
// this method carry the response label and details; the transport boundary
// maps their kind to a status code.
func (e *Engine) Authorize(ctx context.Context, body []byte) error {
	raw, err := ParseRequest(body)
	if err != nil {
		return err
	}

	// The merchant id resolves before coercion so even a coercion-failure
	// audit row carries it.
	merchantID, err := e.resolveMerchantID(ctx, *raw.MerchantName)
	if err != nil {
		return errors.StoreErr(err)
	}

	amount, amountErr := CoerceAmount(raw.Amount)
	cardNumber, cardErr := CoerceCardNumber(raw.CCNum)
	if amountErr != nil || cardErr != nil {
		// Malformed numeric fields are reported the same way as a missing
		// account. Longstanding contract, do not change the mapping.
		e.Recorder.Record(ctx, *raw.MerchantName, merchantID, RawText(raw.CCNum),
			"Unknown", amount, *raw.Timestamp, models.OutcomeError)
		return errors.AccountNotFoundErr()
	}

	req := &models.AuthRequest{
		Bank:          *raw.Bank,
		MerchantName:  *raw.MerchantName,
		MerchantToken: *raw.MerchantToken,
		CardNumber:    cardNumber,
		SecurityCode:  *raw.SecurityCode,
		Amount:        amount,
		CardZip:       *raw.CardZip,
		Timestamp:     *raw.Timestamp,
	}
	account := strings.TrimSpace(RawText(raw.CCNum))

	cardType, err := e.resolveCardType(ctx, req.Bank, req.CardNumber)
	if err != nil {
		return errors.StoreErr(err)
	}

	authorized, err := e.merchantAuthorized(ctx, req.MerchantName, req.MerchantToken)
	if err != nil || !authorized {
		// The unauthorized row always carries an empty merchant id, even
		// when the earlier resolution succeeded.
		e.Recorder.Record(ctx, req.MerchantName, "", account, cardType,
			req.Amount, req.Timestamp, models.OutcomeUnauthorized)
		return errors.MerchantUnauthorizedErr()
	}

	// Shape check only: no numeric-range or checksum validation.
	if len(req.SecurityCode) < 3 {
		e.Recorder.Record(ctx, req.MerchantName, merchantID, account, cardType,
			req.Amount, req.Timestamp, models.OutcomeError)
		return errors.InvalidSecurityCodeErr()
	}

	rows, err := e.Accounts.Query(ctx, req.Bank, req.CardNumber)
	if err != nil {
		return errors.StoreErr(err)
	}
	if len(rows) == 0 {
		e.Recorder.Record(ctx, req.MerchantName, merchantID, account, cardType,
			req.Amount, req.Timestamp, models.OutcomeError)
		return errors.AccountNotFoundErr()
	}
	row := rows[0]

	outcome, verifyErr := e.verifyAndCommit(ctx, &row, cardType, req)
	if outcome == "" {
		// Store failure mid-mutation propagates as a generic request error
		// without a terminal outcome to record.
		return verifyErr
	}
	e.Recorder.Record(ctx, req.MerchantName, merchantID, account, cardType,
		req.Amount, req.Timestamp, outcome)
	return verifyErr
}

// verifyAndCommit checks funds or credit, draws the simulated bank fault,
// and commits the new value on success. It returns the outcome for the
// audit row together with the matching caller-facing error, nil on approval.
func (e *Engine) verifyAndCommit(ctx context.Context, row *models.AccountRecord,
	cardType string, req *models.AuthRequest) (models.Outcome, error) {

	var field string
	var newValue decimal.Decimal

	if strings.EqualFold(cardType, "credit") {
		available := row.CreditLimitDec().Sub(row.CreditUsedDec())
		if available.LessThan(req.Amount) {
			return models.OutcomeDeclined, errors.InsufficientCreditErr()
		}
		field = "creditUsed"
		newValue = row.CreditUsedDec().Add(req.Amount).Round(2)
	} else {
		if row.BalanceDec().LessThan(req.Amount) {
			return models.OutcomeDeclined, errors.InsufficientFundsErr()
		}
		field = "balance"
		newValue = row.BalanceDec().Sub(req.Amount).Round(2)
	}

	// On fault the account is left untouched.
	if !e.Fault.BankAvailable() {
		return models.OutcomeBankFailure, errors.BankUnavailableErr()
	}

	if err := e.Accounts.UpdateField(ctx, row.BankName, req.CardNumber, field, newValue); err != nil {
		e.Logger.Error("failed to update account", zap.String("field", field), zap.Error(err))
		return "", errors.StoreErr(err)
	}
	return models.OutcomeApproved, nil
}

// resolveMerchantID looks up the merchant id by name. Absence yields an
// empty id and is not fatal at this stage.
func (e *Engine) resolveMerchantID(ctx context.Context, merchantName string) (string, error) {
	record, err := e.Merchants.Get(ctx, merchantName)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", nil
	}
	return record.MerchantID, nil
}

// resolveCardType does the early point lookup of the account row. This is
// distinct from the later full fetch and both always run. Absence yields an
// empty type, which the verification step treats as debit.
func (e *Engine) resolveCardType(ctx context.Context, bank string, accountID int64) (string, error) {
	record, err := e.Accounts.Get(ctx, bank, accountID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", nil
	}
	return record.CardType, nil
}

// merchantAuthorized compares the stored token against the supplied one. A
// store failure is reported as not authorized rather than a request error.
func (e *Engine) merchantAuthorized(ctx context.Context, merchantName, token string) (bool, error) {
	record, err := e.Merchants.Get(ctx, merchantName)
	if err != nil {
		e.Logger.Warn("merchant lookup failed", zap.String("merchant", merchantName), zap.Error(err))
		return false, err
	}

	stored := ""
	if record != nil {
		stored = record.AuthToken
	}
	return stored == token, nil
}
