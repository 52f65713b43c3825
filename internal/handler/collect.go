package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/xapes/xma-slots/internal/domain"
	"github.com/xapes/xma-slots/internal/logger"
)

// CollectService is the collect protocol as the HTTP layer sees it;
// satisfied by *collect.Service.
type CollectService interface {
	RequestCollect(ctx context.Context, wallet string, claimed decimal.Decimal) (*domain.CollectResult, error)
	ConfirmCollect(ctx context.Context, wallet, transferID string, claimed decimal.Decimal) (*domain.ConfirmResult, error)
	RecoverAbandoned(ctx context.Context) (*domain.RecoveryReport, error)
}

// CollectHandler handles reward collection requests
type CollectHandler struct {
	service CollectService
}

// NewCollectHandler creates a new collect handler
func NewCollectHandler(service CollectService) *CollectHandler {
	return &CollectHandler{service: service}
}

// CollectRequest asks for the wallet's unclaimed rewards to be paid out
type CollectRequest struct {
	UserWallet string          `json:"userWallet" validate:"required,wallet"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number"`
}

// CollectResponse carries the treasury-signed transfer for the client to submit
type CollectResponse struct {
	Transaction  string  `json:"transaction"`
	ActualAmount float64 `json:"actualAmount"`
	Signature    string  `json:"signature"`
}

// CollectConflictResponse is returned when there is nothing to pay out
type CollectConflictResponse struct {
	Error        string  `json:"error"`
	Code         string  `json:"code"`
	ActualAmount float64 `json:"actualAmount"`
}

// ConfirmCollectRequest reports a submitted transfer back to the server
type ConfirmCollectRequest struct {
	UserWallet string          `json:"userWallet" validate:"required,wallet"`
	Signature  string          `json:"signature" validate:"required,signature"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number"`
}

// ConfirmCollectResponse reports a cleared reservation
type ConfirmCollectResponse struct {
	Message        string  `json:"message"`
	Amount         float64 `json:"amount"`
	AlreadyCleared bool    `json:"alreadyCleared,omitempty"`
}

// ProcessingResponse reports a transfer the ledger has not settled yet
type ProcessingResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// TransferFailedResponse surfaces the external ledger's failure detail
type TransferFailedResponse struct {
	Error            string `json:"error"`
	TransactionError string `json:"transactionError"`
}

// TreasuryUnavailableResponse reports why the treasury cannot fund a collect
type TreasuryUnavailableResponse struct {
	Error           string  `json:"error"`
	Code            string  `json:"code"`
	TreasuryAccount string  `json:"treasuryAccount"`
	Balance         float64 `json:"balance"`
	Required        float64 `json:"required"`
}

func newTreasuryUnavailableResponse(te *domain.TreasuryError) TreasuryUnavailableResponse {
	code := CodeTreasuryInsufficientFunds
	if errors.Is(te, domain.ErrTreasuryAccountMissing) {
		code = CodeTreasuryAccountMissing
	}
	return TreasuryUnavailableResponse{
		Error:           ErrMsgTreasuryUnavailable,
		Code:            code,
		TreasuryAccount: te.TreasuryAccount,
		Balance:         domain.DisplayAmount(te.Balance),
		Required:        domain.DisplayAmount(te.Required),
	}
}

// HandleCollect reserves the wallet's unclaimed rewards and returns a signed transfer
// @Summary Collect unclaimed rewards
// @Description Builds a treasury-signed token transfer of the ledger balance. The balance is reserved until the transfer is confirmed.
// @Tags collect
// @Accept json
// @Produce json
// @Param request body CollectRequest true "Collect request"
// @Success 200 {object} CollectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} CollectConflictResponse
// @Failure 429 {object} ErrorResponse
// @Failure 503 {object} TreasuryUnavailableResponse
// @Failure 500 {object} ErrorResponse
// @Router /collect [post]
func (h *CollectHandler) HandleCollect(w http.ResponseWriter, r *http.Request) {
	var req CollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect"); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "wallet", req.UserWallet, "amount", req.Amount.String())

	result, err := h.service.RequestCollect(r.Context(), req.UserWallet, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToCollect) || errors.Is(err, domain.ErrAlreadyCollected) {
			_, msg, code := mapServiceErrorToUserMessage(err)
			respondJSON(w, http.StatusConflict, CollectConflictResponse{Error: msg, Code: code})
			return
		}
		var te *domain.TreasuryError
		if errors.As(err, &te) {
			logger.FromContext(r.Context()).Error(ErrMsgCollectFailed, "error", err, "status", http.StatusServiceUnavailable)
			respondJSON(w, http.StatusServiceUnavailable, newTreasuryUnavailableResponse(te))
			return
		}
		respondServiceError(w, r, ErrMsgCollectFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, CollectResponse{
		Transaction:  result.Transaction,
		ActualAmount: domain.DisplayAmount(result.ActualAmount),
		Signature:    result.Signature,
	})
}

// HandleConfirmCollect settles a collect once its transfer has landed
// @Summary Confirm a collect
// @Description Checks the transfer on the token network and clears the reservation once it has settled. Safe to repeat.
// @Tags collect
// @Accept json
// @Produce json
// @Param request body ConfirmCollectRequest true "Confirm request"
// @Success 200 {object} ConfirmCollectResponse
// @Success 202 {object} ProcessingResponse
// @Failure 400 {object} TransferFailedResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /confirm-collect [post]
func (h *CollectHandler) HandleConfirmCollect(w http.ResponseWriter, r *http.Request) {
	var req ConfirmCollectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Confirm collect"); err != nil {
		return
	}

	result, err := h.service.ConfirmCollect(r.Context(), req.UserWallet, req.Signature, req.Amount)
	if err != nil {
		var tfe *domain.TransferFailedError
		if errors.As(err, &tfe) {
			logger.FromContext(r.Context()).Warn(ErrMsgTransactionFailed, "wallet", req.UserWallet, "detail", tfe.Detail)
			respondJSON(w, http.StatusBadRequest, TransferFailedResponse{
				Error:            ErrMsgTransactionFailed,
				TransactionError: tfe.Detail,
			})
			return
		}
		respondServiceError(w, r, ErrMsgConfirmFailed, err)
		return
	}

	switch result.Status {
	case domain.ConfirmStatusPending:
		respondJSON(w, http.StatusAccepted, ProcessingResponse{
			Message: MsgCollectProcessing,
			Status:  StatusProcessing,
		})
	case domain.ConfirmStatusAlreadyCleared:
		respondJSON(w, http.StatusOK, ConfirmCollectResponse{
			Message:        MsgCollectAlreadyCleared,
			AlreadyCleared: true,
		})
	default:
		respondJSON(w, http.StatusOK, ConfirmCollectResponse{
			Message: MsgCollectCleared,
			Amount:  domain.DisplayAmount(result.Amount),
		})
	}
}
