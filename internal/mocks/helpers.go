package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockContentSourceForTest creates a new mock ContentSource for testing
func NewMockContentSourceForTest(t *testing.T) *MockContentSource {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockContentSource(ctrl)
}
