package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/ports"
)

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) InitiateSTKPush(ctx context.Context, req ports.STKPushRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) PaymentStatus(ctx context.Context, checkoutRequestID string) (ports.PaymentStatusResult, error) {
	args := m.Called(ctx, checkoutRequestID)
	return args.Get(0).(ports.PaymentStatusResult), args.Error(1)
}

func testFlowConfig() Config {
	return Config{
		PollInterval: 10 * time.Millisecond,
		MaxPolls:     3,
		CloseDelay:   10 * time.Millisecond,
	}
}

func testSTKPushRequest(t *testing.T) ports.STKPushRequest {
	t.Helper()

	phone, err := kernel.NewPhoneNumber("0712345678")
	require.NoError(t, err)
	amount, err := kernel.NewMoney(950)
	require.NoError(t, err)

	return ports.STKPushRequest{
		ParcelID:    kernel.NewUUID(),
		ParcelType:  "parcel",
		Phone:       phone,
		Amount:      amount,
		InitiatedBy: ports.InitiatedByCustomer,
	}
}

func waitForState(t *testing.T, flow *Flow, parcelID kernel.UUID, want State) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if flow.State(parcelID) == want {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("flow never reached state %s, stuck at %s", want, flow.State(parcelID))
}

func Test_Flow_Initiate_SendsNormalizedPhone(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	defer flow.Stop()
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.MatchedBy(func(r ports.STKPushRequest) bool {
		return r.Phone.String() == "254712345678" && r.Amount.Amount() == 950
	})).Return("ws_CO_1", nil)
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_1").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusPending}, nil).Maybe()

	// Act
	err := flow.Initiate(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StatePending, flow.State(req.ParcelID))
	gateway.AssertExpectations(t)
}

func Test_Flow_Initiate_GatewayRejectionErrorsAttempt(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	defer flow.Stop()
	req := testSTKPushRequest(t)

	rejection := errors.New("insufficient merchant balance")
	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("", rejection)

	// Act
	err := flow.Initiate(context.Background(), req)

	// Assert
	require.ErrorIs(t, err, rejection)
	assert.Equal(t, StateErrored, flow.State(req.ParcelID))
	assert.Equal(t, rejection.Error(), flow.Message(req.ParcelID))
	gateway.AssertNotCalled(t, "PaymentStatus", mock.Anything, mock.Anything)
}

func Test_Flow_CompletedPoll_FiresSuccessOnceThenClose(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	req := testSTKPushRequest(t)
	payload := json.RawMessage(`{"MpesaReceiptNumber":"TGH7SK61SV"}`)

	var successCalls atomic.Int32
	successCh := make(chan json.RawMessage, 1)
	closeCh := make(chan kernel.UUID, 1)

	flow := NewFlow(gateway,
		func(_ context.Context, parcelID kernel.UUID, got json.RawMessage) {
			successCalls.Add(1)
			assert.True(t, parcelID.IsEqual(req.ParcelID))
			successCh <- got
		},
		func(parcelID kernel.UUID) {
			closeCh <- parcelID
		},
		slog.Default(), testFlowConfig())
	defer flow.Stop()

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_2", nil)
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_2").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusCompleted, Message: "Success", Raw: payload}, nil).Once()

	// Act
	require.NoError(t, flow.Initiate(context.Background(), req))

	// Assert
	select {
	case got := <-successCh:
		assert.JSONEq(t, string(payload), string(got))
	case <-time.After(2 * time.Second):
		t.Fatal("success callback never fired")
	}

	select {
	case closed := <-closeCh:
		assert.True(t, closed.IsEqual(req.ParcelID))
	case <-time.After(2 * time.Second):
		t.Fatal("close signal never fired")
	}

	assert.Equal(t, StateCompleted, flow.State(req.ParcelID))
	assert.EqualValues(t, 1, successCalls.Load())
	gateway.AssertExpectations(t)
}

func Test_Flow_FailedPoll_StopsPolling(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	defer flow.Stop()
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_3", nil)
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_3").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusFailed, Message: "Request cancelled by user"}, nil).Once()

	// Act
	require.NoError(t, flow.Initiate(context.Background(), req))
	waitForState(t, flow, req.ParcelID, StateFailed)

	// Assert
	time.Sleep(5 * testFlowConfig().PollInterval)
	assert.Equal(t, StateFailed, flow.State(req.ParcelID))
	assert.Equal(t, "Request cancelled by user", flow.Message(req.ParcelID))
	gateway.AssertExpectations(t)
}

func Test_Flow_PollCeiling_TimesOutAndStopsPolling(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	cfg := testFlowConfig()
	flow := NewFlow(gateway, nil, nil, slog.Default(), cfg)
	defer flow.Stop()
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_4", nil)
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_4").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusPending}, nil)

	// Act
	require.NoError(t, flow.Initiate(context.Background(), req))
	waitForState(t, flow, req.ParcelID, StateTimedOut)

	// Assert
	time.Sleep(5 * cfg.PollInterval)
	gateway.AssertNumberOfCalls(t, "PaymentStatus", cfg.MaxPolls)
}

func Test_Flow_PollError_ConsumesSlotWithoutStateChange(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	cfg := testFlowConfig()
	flow := NewFlow(gateway, nil, nil, slog.Default(), cfg)
	defer flow.Stop()
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_5", nil)
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_5").Return(
		ports.PaymentStatusResult{}, errors.New("malformed response")).Once()
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_5").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusCompleted}, nil).Once()

	// Act
	require.NoError(t, flow.Initiate(context.Background(), req))

	// Assert
	waitForState(t, flow, req.ParcelID, StateCompleted)
	gateway.AssertExpectations(t)
}

func Test_Flow_SecondAttemptWhilePending_IsRejected(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	defer flow.Stop()
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_6", nil).Once()
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_6").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusPending}, nil).Maybe()

	require.NoError(t, flow.Initiate(context.Background(), req))

	// Act
	err := flow.Initiate(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, ErrAttemptInProgress)
	gateway.AssertExpectations(t)
}

func Test_Flow_TerminalAttempt_CanBeRetried(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	defer flow.Stop()
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("", errors.New("gateway unavailable")).Once()
	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_7", nil).Once()
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_7").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusPending}, nil).Maybe()

	require.Error(t, flow.Initiate(context.Background(), req))
	require.Equal(t, StateErrored, flow.State(req.ParcelID))

	// Act
	err := flow.Initiate(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StatePending, flow.State(req.ParcelID))
	gateway.AssertExpectations(t)
}

func Test_Flow_InvalidRequest_IsRejectedBeforeGateway(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	defer flow.Stop()

	req := testSTKPushRequest(t)
	req.Amount = kernel.Money{}

	// Act
	err := flow.Initiate(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, ErrAmountIsNotPositive)
	assert.Equal(t, StateIdle, flow.State(req.ParcelID))
	gateway.AssertNotCalled(t, "InitiateSTKPush", mock.Anything, mock.Anything)
}

func Test_Flow_Stop_HaltsPendingAttempts(t *testing.T) {
	// Arrange
	gateway := &MockPaymentGateway{}
	flow := NewFlow(gateway, nil, nil, slog.Default(), testFlowConfig())
	req := testSTKPushRequest(t)

	gateway.On("InitiateSTKPush", mock.Anything, mock.Anything).Return("ws_CO_8", nil)
	gateway.On("PaymentStatus", mock.Anything, "ws_CO_8").Return(
		ports.PaymentStatusResult{Status: ports.GatewayStatusPending}, nil).Maybe()

	require.NoError(t, flow.Initiate(context.Background(), req))

	// Act
	flow.Stop()

	// Assert
	assert.ErrorIs(t, flow.Initiate(context.Background(), testSTKPushRequest(t)), ErrFlowStopped)
	assert.Equal(t, StatePending, flow.State(req.ParcelID))
}
