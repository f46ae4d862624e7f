package collector

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bigshare/bigpoints/internal/config"
	"github.com/bigshare/bigpoints/internal/domain"
	"github.com/bigshare/bigpoints/internal/service/statservice"
	"github.com/bigshare/bigpoints/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *statservice.MockUserRepo, *MockRecorder, *clients.MockHTTPClientI) {
	cfg := &config.Config{CollectorAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := statservice.NewMockUserRepo(ctrl)
	recorder := NewMockRecorder(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, userRepo, recorder, client)
	return service, userRepo, recorder, client
}

func TestService_Start(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_handleUser(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		status      int
		prepareMock func(recorder *MockRecorder)
		wantErr     bool
	}{
		{
			name:   "records fetched reports",
			status: http.StatusOK,
			body:   `{"email":"miner@example.com","reports":[{"date":"2025-09-15","amount":10.5},{"date":"2025-09-16","amount":2}]}`,
			prepareMock: func(recorder *MockRecorder) {
				recorder.EXPECT().
					RecordUsage(gomock.Any(), "miner@example.com", "2025-09-15", 10.5).
					Return(nil)
				recorder.EXPECT().
					RecordUsage(gomock.Any(), "miner@example.com", "2025-09-16", float64(2)).
					Return(nil)
			},
		},
		{
			name:        "no pending reports",
			status:      http.StatusNoContent,
			prepareMock: func(recorder *MockRecorder) {},
		},
		{
			name:        "email mismatch",
			status:      http.StatusOK,
			body:        `{"email":"other@example.com","reports":[]}`,
			prepareMock: func(recorder *MockRecorder) {},
			wantErr:     true,
		},
		{
			name:        "malformed body",
			status:      http.StatusOK,
			body:        `{not json`,
			prepareMock: func(recorder *MockRecorder) {},
			wantErr:     true,
		},
		{
			name:        "unexpected status code",
			status:      http.StatusTeapot,
			prepareMock: func(recorder *MockRecorder) {},
			wantErr:     true,
		},
		{
			name:   "recording fails",
			status: http.StatusOK,
			body:   `{"email":"miner@example.com","reports":[{"date":"2025-09-15","amount":10.5}]}`,
			prepareMock: func(recorder *MockRecorder) {
				recorder.EXPECT().
					RecordUsage(gomock.Any(), "miner@example.com", "2025-09-15", 10.5).
					Return(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, recorder, client := NewMock(t)

			client.EXPECT().
				Get("http://localhost:8081/api/usage/miner@example.com", nil).
				Return(tt.status, []byte(tt.body), http.Header{}, nil)
			tt.prepareMock(recorder)

			err := service.handleUser(context.Background(), "miner@example.com")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_handleUser_retriesOnError(t *testing.T) {
	service, _, _, client := NewMock(t)

	client.EXPECT().
		Get("http://localhost:8081/api/usage/miner@example.com", nil).
		Return(0, nil, nil, assert.AnError).
		Times(maxRetries)

	err := service.handleUser(context.Background(), "miner@example.com")
	assert.Error(t, err)
}

func TestService_handleUser_canceledContext(t *testing.T) {
	service, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.handleUser(ctx, "miner@example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_processUsers(t *testing.T) {
	t.Run("dispatches each user once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := statservice.NewMockUserRepo(ctrl)
		recorder := NewMockRecorder(ctrl)
		client := clients.NewMockHTTPClientI(ctrl)
		pool := NewMockWorkerPoolI(ctrl)

		service := New(&config.Config{CollectorAddress: "http://localhost:8081"}, userRepo, recorder, client)
		service.workerPool = pool

		userRepo.EXPECT().
			ListUsers(gomock.Any()).
			Return([]domain.User{
				{ID: 1, Email: "alice@example.com"},
				{ID: 2, Email: "bob@example.com"},
			}, nil)
		pool.EXPECT().
			AddTask(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		service.processUsers(context.Background())
	})

	t.Run("listing users fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := statservice.NewMockUserRepo(ctrl)
		service := New(&config.Config{CollectorAddress: "http://localhost:8081"}, userRepo, NewMockRecorder(ctrl), clients.NewMockHTTPClientI(ctrl))

		userRepo.EXPECT().
			ListUsers(gomock.Any()).
			Return(nil, assert.AnError)

		service.processUsers(context.Background())
	})
}
