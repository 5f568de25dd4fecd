package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockDirectDebitAPIForTest creates a new mock direct debit API for testing
func NewMockDirectDebitAPIForTest(t *testing.T) *MockDirectDebitAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockDirectDebitAPI(ctrl)
}
