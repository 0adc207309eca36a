package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
)

func TestSweeper_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	approver := NewMockApprover(ctrl)
	s := New(approver, time.Hour)

	approver.EXPECT().AutoApprove(gomock.Any(), actor).Return(&commissionservice.BatchResult{
		Succeeded: []string{"c1"},
		Failed:    []commissionservice.Failure{{ID: "c2", Error: "insufficient balance"}},
	}, nil)
	assert.True(t, s.Sweep(context.Background()))

	approver.EXPECT().AutoApprove(gomock.Any(), actor).Return(nil, errors.New("db down"))
	assert.True(t, s.Sweep(context.Background()))
}

func TestSweeper_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	approver := NewMockApprover(ctrl)
	s := New(approver, time.Hour)

	started := make(chan struct{})
	release := make(chan struct{})
	approver.EXPECT().AutoApprove(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, domain.Actor) (*commissionservice.BatchResult, error) {
		close(started)
		<-release
		return &commissionservice.BatchResult{}, nil
	}).Times(1)

	finished := make(chan bool)
	go func() { finished <- s.Sweep(context.Background()) }()
	<-started

	assert.False(t, s.Sweep(context.Background()))
	close(release)
	assert.True(t, <-finished)
}

func TestSweeper_RunsOnTickerUntilCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	approver := NewMockApprover(ctrl)
	s := New(approver, 10*time.Millisecond)

	ticks := make(chan struct{}, 16)
	approver.EXPECT().AutoApprove(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, domain.Actor) (*commissionservice.BatchResult, error) {
		ticks <- struct{}{}
		return &commissionservice.BatchResult{}, nil
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("sweeper never ran")
	}
	cancel()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
