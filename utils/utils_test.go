package utils_test

import (
	// Go Internal Packages
	"testing"

	// Local Packages
	utils "tx-authorizer/utils"

	// External Packages
	"github.com/stretchr/testify/require"
)

func TestTruncateAccount(t *testing.T) {
	require.Equal(t, "1111", utils.TruncateAccount("4111111111111111"))
	require.Equal(t, "1234", utils.TruncateAccount("1234"))
	require.Equal(t, "42", utils.TruncateAccount("42"))
	require.Equal(t, "", utils.TruncateAccount(""))
}
