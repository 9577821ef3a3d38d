package exchange

import (
	"github.com/stretchr/testify/mock"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Base() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSource) PriceOf(code string) (float64, bool) {
	args := m.Called(code)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockSource) Codes() []string {
	args := m.Called()
	return args.Get(0).([]string)
}
