package errors

// Request-pipeline errors. The outer message becomes the "error" field of
// the response body, the cause becomes "details".

func InvalidJSONErr(err error) error {
	return E(Invalid, "Invalid JSON format", err)
}

func MissingFieldsErr() error {
	return E(Invalid, "An error occurred", New("Please enter all fields"))
}

func AccountNotFoundErr() error {
	return E(NotFound, "Account not found", New("The specified bank or credit account does not exist"))
}

func MerchantUnauthorizedErr() error {
	return E(Unauthorized, "Unauthorized", New("Merchant not authorized"))
}

func InvalidSecurityCodeErr() error {
	return E(Unauthorized, "Unauthorized", New("Invalid security code"))
}

func InsufficientCreditErr() error {
	return E(Declined, "Insufficient credit", New("Not enough available credit for this transaction"))
}

func InsufficientFundsErr() error {
	return E(Declined, "Insufficient funds", New("Not enough funds available for this transaction"))
}

func BankUnavailableErr() error {
	return E(Unavailable, "Bank Error", New("The bank is unavailable"))
}

func StoreErr(err error) error {
	return E(Other, "An error occurred", err)
}
