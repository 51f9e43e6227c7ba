package utils

// TruncateAccount reduces an account number to its last four characters.
// Shorter inputs are returned whole. Audit rows must never carry the full
// card number.
func TruncateAccount(account string) string {
	if len(account) <= 4 {
		return account
	}
	return account[len(account)-4:]
}
