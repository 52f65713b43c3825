package ledger

import (
	"github.com/stretchr/testify/mock"

	"github.com/xapes/xma-slots/internal/slots"
)

type MockSpinner struct {
	mock.Mock
}

func (m *MockSpinner) Spin() ([slots.ReelCount]int, [slots.ReelCount]int, error) {
	args := m.Called()
	return args.Get(0).([slots.ReelCount]int), args.Get(1).([slots.ReelCount]int), args.Error(2)
}
