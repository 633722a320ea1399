package impl

import (
	"io"
	"log/slog"
	"testing"

	mockSvc "townscoffee/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newQuietSink accepts any number of analytics events.
func newQuietSink(t *testing.T) *mockSvc.MockAnalyticsSink {
	sink := mockSvc.NewMockAnalyticsSink(t)
	sink.EXPECT().Track(mock.Anything, mock.Anything).Maybe()

	return sink
}
