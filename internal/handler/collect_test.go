package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xapes/xma-slots/internal/domain"
)

func postJSON(t *testing.T, h http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandleCollect(t *testing.T) {
	body := fmt.Sprintf(`{"userWallet":%q,"amount":5.0}`, testWallet)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockCollectService)
		wantStatus int
		check      func(*testing.T, map[string]interface{})
	}{
		{
			name: "Success",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, decimalEq("5")).
					Return(&domain.CollectResult{Transaction: "dHg=", Signature: testSignature, ActualAmount: 5_000_000}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, "dHg=", b["transaction"])
				assert.Equal(t, 5.0, b["actualAmount"])
				assert.Equal(t, testSignature, b["signature"])
			},
		},
		{
			name: "Ledger Amount Reported",
			body: fmt.Sprintf(`{"userWallet":%q,"amount":999999}`, testWallet),
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, decimalEq("999999")).
					Return(&domain.CollectResult{Transaction: "dHg=", Signature: testSignature, ActualAmount: 250_500_000}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, 250.5, b["actualAmount"])
			},
		},
		{
			name:       "Invalid Wallet",
			body:       `{"userWallet":"nope","amount":5}`,
			setupMock:  func(m *MockCollectService) {},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, ErrMsgInvalidRequestSummary, b["error"])
			},
		},
		{
			name:       "Malformed JSON",
			body:       `{"userWallet":`,
			setupMock:  func(m *MockCollectService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Amount Rejected By Service",
			body: fmt.Sprintf(`{"userWallet":%q,"amount":-1}`, testWallet),
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).
					Return(nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Contains(t, b["error"], "amount must be positive")
			},
		},
		{
			name: "Already Collected",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).Return(nil, domain.ErrAlreadyCollected)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, CodeAlreadyCollected, b["code"])
				assert.Equal(t, 0.0, b["actualAmount"])
			},
		},
		{
			name: "Nothing To Collect",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).Return(nil, domain.ErrNothingToCollect)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, CodeNothingToCollect, b["code"])
				assert.Contains(t, b, "actualAmount")
			},
		},
		{
			name: "Rate Limited",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).Return(nil, domain.ErrRateLimited)
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "Treasury Insufficient",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).Return(nil, &domain.TreasuryError{
					Cause:           domain.ErrTreasuryInsufficientFunds,
					TreasuryAccount: "treasury-ata",
					Balance:         1,
					Required:        5_000_000,
				})
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, ErrMsgTreasuryUnavailable, b["error"])
				assert.Equal(t, CodeTreasuryInsufficientFunds, b["code"])
				assert.Equal(t, "treasury-ata", b["treasuryAccount"])
				assert.Equal(t, 0.000001, b["balance"])
				assert.Equal(t, 5.0, b["required"])
			},
		},
		{
			name: "Treasury Account Missing",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).Return(nil,
					fmt.Errorf("build transfer: %w", &domain.TreasuryError{
						Cause:           domain.ErrTreasuryAccountMissing,
						TreasuryAccount: "treasury-ata",
						Required:        2_500_000,
					}))
			},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, CodeTreasuryAccountMissing, b["code"])
				assert.Equal(t, "treasury-ata", b["treasuryAccount"])
				assert.Equal(t, 0.0, b["balance"])
				assert.Equal(t, 2.5, b["required"])
			},
		},
		{
			name: "Internal Error",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("RequestCollect", mock.Anything, testWallet, mock.Anything).Return(nil, domain.ErrDatabaseError)
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, ErrMsgGenericServerError, b["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCollectService)
			tt.setupMock(svc)
			h := NewCollectHandler(svc)

			w := postJSON(t, h.HandleCollect, "/collect", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.check != nil {
				tt.check(t, decodeBody(t, w))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleConfirmCollect(t *testing.T) {
	body := fmt.Sprintf(`{"userWallet":%q,"signature":%q,"amount":5}`, testWallet, testSignature)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockCollectService)
		wantStatus int
		check      func(*testing.T, map[string]interface{})
	}{
		{
			name: "Cleared",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("ConfirmCollect", mock.Anything, testWallet, testSignature, decimalEq("5")).
					Return(&domain.ConfirmResult{Status: domain.ConfirmStatusCleared, Amount: 5_000_000}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, MsgCollectCleared, b["message"])
				assert.Equal(t, 5.0, b["amount"])
				assert.NotContains(t, b, "alreadyCleared")
			},
		},
		{
			name: "Already Cleared",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("ConfirmCollect", mock.Anything, testWallet, testSignature, mock.Anything).
					Return(&domain.ConfirmResult{Status: domain.ConfirmStatusAlreadyCleared}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, true, b["alreadyCleared"])
			},
		},
		{
			name: "Processing",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("ConfirmCollect", mock.Anything, testWallet, testSignature, mock.Anything).
					Return(&domain.ConfirmResult{Status: domain.ConfirmStatusPending}, nil)
			},
			wantStatus: http.StatusAccepted,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, StatusProcessing, b["status"])
			},
		},
		{
			name: "Transfer Failed",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("ConfirmCollect", mock.Anything, testWallet, testSignature, mock.Anything).
					Return(nil, &domain.TransferFailedError{Signature: testSignature, Detail: "InstructionError"})
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, b map[string]interface{}) {
				assert.Equal(t, ErrMsgTransactionFailed, b["error"])
				assert.Equal(t, "InstructionError", b["transactionError"])
			},
		},
		{
			name: "Player Not Found",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("ConfirmCollect", mock.Anything, testWallet, testSignature, mock.Anything).
					Return(nil, domain.ErrPlayerNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Invalid Signature",
			body:       fmt.Sprintf(`{"userWallet":%q,"signature":"xyz","amount":5}`, testWallet),
			setupMock:  func(m *MockCollectService) {},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, b map[string]interface{}) {
				fields := b["fields"].(map[string]interface{})
				assert.Equal(t, "Invalid transaction signature format", fields["signature"])
			},
		},
		{
			name:       "Missing Signature",
			body:       fmt.Sprintf(`{"userWallet":%q,"amount":5}`, testWallet),
			setupMock:  func(m *MockCollectService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Ledger Unavailable",
			body: body,
			setupMock: func(m *MockCollectService) {
				m.On("ConfirmCollect", mock.Anything, testWallet, testSignature, mock.Anything).
					Return(nil, fmt.Errorf("%w: 429", domain.ErrLedgerUnavailable))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockCollectService)
			tt.setupMock(svc)
			h := NewCollectHandler(svc)

			w := postJSON(t, h.HandleConfirmCollect, "/confirm-collect", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.check != nil {
				tt.check(t, decodeBody(t, w))
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRecoverCollects(t *testing.T) {
	svc := new(MockCollectService)
	svc.On("RecoverAbandoned", mock.Anything).Return(&domain.RecoveryReport{
		Examined: 2,
		Outcomes: map[domain.RecoveryOutcome]int{domain.RecoveryCleared: 1, domain.RecoveryRestored: 1},
	}, nil).Once()
	svc.On("RecoverAbandoned", mock.Anything).Return(nil, domain.ErrDatabaseError).Once()

	w := postJSON(t, HandleRecoverCollects(svc), "/admin/recover-collects", "")
	require.Equal(t, http.StatusOK, w.Code)
	b := decodeBody(t, w)
	assert.Equal(t, 2.0, b["examined"])
	assert.Equal(t, 1.0, b["outcomes"].(map[string]interface{})["restored"])

	w = postJSON(t, HandleRecoverCollects(svc), "/admin/recover-collects", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	svc.AssertExpectations(t)
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domain.ErrPlayerNotFound), http.StatusNotFound},
		{domain.ErrSpinCreditsOutstanding, http.StatusConflict},
		{domain.ErrNoSpinCredits, http.StatusConflict},
		{domain.ErrClientSpinsDisabled, http.StatusForbidden},
		{&domain.TreasuryError{Cause: domain.ErrTreasuryAccountMissing}, http.StatusServiceUnavailable},
		{&domain.TransferFailedError{}, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, _, _ := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
	}
}
