package server_test

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Local Packages
	errs "tx-authorizer/errors"
	server "tx-authorizer/server"

	// External Packages
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEngine struct {
	err   error
	panic bool
}

func (s *stubEngine) Authorize(_ context.Context, _ []byte) error {
	if s.panic {
		panic("boom")
	}
	return s.err
}

func post(t *testing.T, srv *server.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/authorize", strings.NewReader(body))
	srv.Handler().ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthorizeEndpoint_Approved(t *testing.T) {
	srv := server.New(zap.NewNop(), &stubEngine{}, nil, nil)

	w := post(t, srv, `{"any":"body"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Approved", w.Body.String())
}

func TestAuthorizeEndpoint_StatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		label   string
		details string
	}{
		{"missing fields", errs.MissingFieldsErr(), http.StatusBadRequest,
			"An error occurred", "Please enter all fields"},
		{"merchant unauthorized", errs.MerchantUnauthorizedErr(), http.StatusUnauthorized,
			"Unauthorized", "Merchant not authorized"},
		{"invalid security code", errs.InvalidSecurityCodeErr(), http.StatusUnauthorized,
			"Unauthorized", "Invalid security code"},
		{"insufficient funds", errs.InsufficientFundsErr(), http.StatusPaymentRequired,
			"Insufficient funds", "Not enough funds available for this transaction"},
		{"insufficient credit", errs.InsufficientCreditErr(), http.StatusPaymentRequired,
			"Insufficient credit", "Not enough available credit for this transaction"},
		{"account not found", errs.AccountNotFoundErr(), http.StatusNotFound,
			"Account not found", "The specified bank or credit account does not exist"},
		{"bank failure", errs.BankUnavailableErr(), http.StatusInternalServerError,
			"Bank Error", "The bank is unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := server.New(zap.NewNop(), &stubEngine{err: tc.err}, nil, nil)

			w := post(t, srv, `{"any":"body"}`)
			require.Equal(t, tc.status, w.Code)

			body := errorBody(t, w)
			require.Equal(t, tc.label, body["error"])
			require.Equal(t, tc.details, body["details"])
		})
	}
}

func TestAuthorizeEndpoint_EmptyBody(t *testing.T) {
	srv := server.New(zap.NewNop(), &stubEngine{}, nil, nil)

	w := post(t, srv, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Your request is not formatted correctly", errorBody(t, w)["details"])
}

func TestAuthorizeEndpoint_PanicBecomesGenericError(t *testing.T) {
	srv := server.New(zap.NewNop(), &stubEngine{panic: true}, nil, nil)

	w := post(t, srv, `{"any":"body"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "An error occurred", errorBody(t, w)["error"])
	require.Equal(t, "boom", errorBody(t, w)["details"])
}

func TestHealthEndpoint(t *testing.T) {
	healthy := server.New(zap.NewNop(), &stubEngine{}, nil, func(context.Context) error { return nil })
	w := httptest.NewRecorder()
	healthy.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	unhealthy := server.New(zap.NewNop(), &stubEngine{}, nil, func(context.Context) error {
		return context.DeadlineExceeded
	})
	w = httptest.NewRecorder()
	unhealthy.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
