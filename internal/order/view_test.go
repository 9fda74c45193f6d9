package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGateway is a mock implementation of the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Purchases(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockGateway) Sales(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockGateway) AddAddress(ctx context.Context, orderID int, address string) error {
	args := m.Called(ctx, orderID, address)
	return args.Error(0)
}

func (m *MockGateway) MarkShipped(ctx context.Context, orderID int) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockGateway) MarkDelivered(ctx context.Context, orderID int) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func purchaseIn(status Status) []Order {
	return []Order{{
		ID:      1,
		Product: ProductRef{ID: 10, Name: "Red Hoodie"},
		BuyerID: 7, SellerID: 2,
		Status: status,
	}}
}

func saleIn(status Status) []Order {
	return []Order{{
		ID:      1,
		Product: ProductRef{ID: 10, Name: "Red Hoodie"},
		BuyerID: 7, SellerID: 2,
		Status: status,
	}}
}

func loadedView(t *testing.T, gw *MockGateway) *View {
	t.Helper()
	v := NewView(gw)
	require.NoError(t, v.Refresh(context.Background()))
	return v
}

func TestView_Refresh(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusPendingAddress), nil)
	gw.On("Sales", mock.Anything).Return([]Order{}, nil)

	v := loadedView(t, gw)

	assert.Len(t, v.Purchases(), 1)
	assert.Empty(t, v.Sales())
}

func TestView_AddAddress(t *testing.T) {
	t.Run("MovesToAwaitingShipmentAndReloadsBothLists", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusPendingAddress), nil).Once()
		gw.On("Sales", mock.Anything).Return([]Order{}, nil)
		gw.On("AddAddress", mock.Anything, 1, "Pikk 12, Tallinn").Return(nil)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusAwaitingShipment), nil)

		v := loadedView(t, gw)
		require.NoError(t, v.AddAddress(context.Background(), 1, "Pikk 12, Tallinn"))

		assert.Equal(t, StatusAwaitingShipment, v.Purchases()[0].Status)
		gw.AssertNumberOfCalls(t, "Purchases", 2)
		gw.AssertNumberOfCalls(t, "Sales", 2)
	})

	t.Run("EmptyAddressRejectedLocally", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusPendingAddress), nil)
		gw.On("Sales", mock.Anything).Return([]Order{}, nil)

		v := loadedView(t, gw)
		err := v.AddAddress(context.Background(), 1, "")

		assert.ErrorIs(t, err, ErrMissingAddress)
		gw.AssertNotCalled(t, "AddAddress", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("WrongStateRejectedLocally", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusShipped), nil)
		gw.On("Sales", mock.Anything).Return([]Order{}, nil)

		v := loadedView(t, gw)
		err := v.AddAddress(context.Background(), 1, "Pikk 12, Tallinn")

		assert.ErrorIs(t, err, ErrInvalidTransition)
		gw.AssertNotCalled(t, "AddAddress", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestView_MarkShipped(t *testing.T) {
	t.Run("SellerShipsAwaitingOrder", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return([]Order{}, nil)
		gw.On("Sales", mock.Anything).Return(saleIn(StatusAwaitingShipment), nil).Once()
		gw.On("MarkShipped", mock.Anything, 1).Return(nil)
		gw.On("Sales", mock.Anything).Return(saleIn(StatusShipped), nil)

		v := loadedView(t, gw)
		require.NoError(t, v.MarkShipped(context.Background(), 1))

		assert.Equal(t, StatusShipped, v.Sales()[0].Status)
		// both lists are re-fetched, not locally patched
		gw.AssertNumberOfCalls(t, "Purchases", 2)
		gw.AssertNumberOfCalls(t, "Sales", 2)
	})

	t.Run("RejectedUnlessAwaitingShipment", func(t *testing.T) {
		for _, status := range []Status{StatusPendingAddress, StatusShipped, StatusDelivered} {
			gw := new(MockGateway)
			gw.On("Purchases", mock.Anything).Return([]Order{}, nil)
			gw.On("Sales", mock.Anything).Return(saleIn(status), nil)

			v := loadedView(t, gw)
			err := v.MarkShipped(context.Background(), 1)

			assert.ErrorIs(t, err, ErrInvalidTransition)
			gw.AssertNotCalled(t, "MarkShipped", mock.Anything, mock.Anything)
		}
	})

	t.Run("UnknownOrder", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return([]Order{}, nil)
		gw.On("Sales", mock.Anything).Return([]Order{}, nil)

		v := loadedView(t, gw)
		assert.ErrorIs(t, v.MarkShipped(context.Background(), 99), ErrOrderNotFound)
	})
}

func TestView_ConfirmReceived(t *testing.T) {
	t.Run("BuyerClosesShippedOrder", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusShipped), nil).Once()
		gw.On("Sales", mock.Anything).Return([]Order{}, nil)
		gw.On("MarkDelivered", mock.Anything, 1).Return(nil)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusDelivered), nil)

		v := loadedView(t, gw)
		require.NoError(t, v.ConfirmReceived(context.Background(), 1))

		assert.Equal(t, StatusDelivered, v.Purchases()[0].Status)
	})

	t.Run("DeliveredIsTerminal", func(t *testing.T) {
		gw := new(MockGateway)
		gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusDelivered), nil)
		gw.On("Sales", mock.Anything).Return([]Order{}, nil)

		v := loadedView(t, gw)
		err := v.ConfirmReceived(context.Background(), 1)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		gw.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything)
	})
}

func TestView_ActionFailureLeavesListsIntact(t *testing.T) {
	gw := new(MockGateway)
	gw.On("Purchases", mock.Anything).Return(purchaseIn(StatusPendingAddress), nil)
	gw.On("Sales", mock.Anything).Return([]Order{}, nil)
	gw.On("AddAddress", mock.Anything, 1, "Pikk 12").Return(errors.New("boom"))

	v := loadedView(t, gw)
	assert.Error(t, v.AddAddress(context.Background(), 1, "Pikk 12"))

	assert.Equal(t, StatusPendingAddress, v.Purchases()[0].Status)
	gw.AssertNumberOfCalls(t, "Purchases", 1)
}
