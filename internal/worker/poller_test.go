package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/urbanshade/notify-center/internal/mocks/worker"
	"github.com/urbanshade/notify-center/internal/service/dnd"
)

func TestPoller_RefreshesWhileScheduleEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockdndService(ctrl)

	var refreshes int64
	mockService.EXPECT().ScheduleEnabled().Return(true).AnyTimes()
	mockService.EXPECT().Refresh(gomock.Any(), retry.Strategy{}).DoAndReturn(
		func(_ context.Context, _ retry.Strategy) (dnd.State, bool, error) {
			atomic.AddInt64(&refreshes, 1)
			return dnd.State{Effective: true}, true, nil
		},
	).AnyTimes()

	p := NewPoller(mockService, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go p.Run(ctx, retry.Strategy{})

	time.Sleep(100 * time.Millisecond)
	cancel()
	// Let the loop observe the cancellation before the controller finishes.
	time.Sleep(20 * time.Millisecond)

	assert.Greater(t, atomic.LoadInt64(&refreshes), int64(0))
}

func TestPoller_NoopWithoutSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockdndService(ctrl)

	// Ticks keep firing but become no-ops while no schedule is enabled;
	// Refresh carries no expectation, so any call fails the test.
	mockService.EXPECT().ScheduleEnabled().Return(false).AnyTimes()

	p := NewPoller(mockService, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go p.Run(ctx, retry.Strategy{})

	time.Sleep(100 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := NewPoller(mocks.NewMockdndService(ctrl), 0)
	assert.Equal(t, time.Minute, p.interval)
}
