package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/affiliate/internal/config"
	"github.com/GlebRadaev/affiliate/internal/handlers"
	"github.com/GlebRadaev/affiliate/internal/service/commissionservice"
	"github.com/GlebRadaev/affiliate/internal/sweeper"
	"github.com/GlebRadaev/affiliate/pkg/auth"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitRunsClosers() {
	ctx, cancel := context.WithCancel(context.Background())
	closed := 0
	s.app.closers = []func(){func() { closed++ }, func() { closed++ }}

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
	s.Equal(2, closed)
}

func (s *ApplicationSuite) TestServeAndShutdown() {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	addr := ln.Addr().String()
	s.Require().NoError(ln.Close())

	ctrl := gomock.NewController(s.T())
	webhook := handlers.NewMockWebhookHandler(ctrl)
	webhook.EXPECT().PaymentEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}).AnyTimes()
	approver := sweeper.NewMockApprover(ctrl)
	approver.EXPECT().AutoApprove(gomock.Any(), gomock.Any()).Return(&commissionservice.BatchResult{}, nil).AnyTimes()

	s.app.cfg = &config.Config{Address: addr}
	s.app.api = &handlers.Handlers{
		CommissionHandler: handlers.NewMockCommissionHandler(ctrl),
		PayoutHandler:     handlers.NewMockPayoutHandler(ctrl),
		PartnerHandler:    handlers.NewMockPartnerHandler(ctrl),
		WebhookHandler:    webhook,
		Auth:              auth.NewJWTService("secret"),
	}
	s.app.sweeper = sweeper.New(approver, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))
	s.app.startSweeper(ctx)

	var resp *http.Response
	s.Eventually(func() bool {
		resp, err = http.Post("http://"+addr+"/api/webhooks/payments", "application/json", nil)
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	s.Equal(http.StatusAccepted, resp.StatusCode)
	s.NoError(resp.Body.Close())

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}
