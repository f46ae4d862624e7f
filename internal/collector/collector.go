package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bigshare/bigpoints/internal/config"
	"github.com/bigshare/bigpoints/internal/service/statservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bigshare/bigpoints/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingUsers sync.Map

type Report struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type Response struct {
	Email   string   `json:"email"`
	Reports []Report `json:"reports"`
}

// Recorder persists a fetched usage report as a daily earning.
type Recorder interface {
	RecordUsage(ctx context.Context, email, date string, amount float64) error
}

type Service struct {
	url            string
	userRepo       statservice.UserRepo
	recorder       Recorder
	client         clients.HTTPClientI
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, userRepo statservice.UserRepo, recorder Recorder, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.CollectorAddress,
		userRepo:       userRepo,
		recorder:       recorder,
		client:         client,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Collector service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processUsers(ctx)
		}
	}
}

func (s *Service) processUsers(ctx context.Context) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch users for collection", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, user := range users {
		user := user

		if _, loaded := processingUsers.LoadOrStore(user.Email, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingUsers.Delete(user.Email)
				return s.handleUser(ctx, user.Email)
			})
			if err != nil {
				processingUsers.Delete(user.Email)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error collecting usage", zap.Error(err))
	}
}

func (s *Service) handleUser(ctx context.Context, email string) error {
	url := s.url + "/api/usage/" + email
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to collect usage for %s after %d retries: %w", email, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				if err := s.handleRateLimit(email, respHeaders, attempt); err != nil {
					return err
				}
				continue

			case http.StatusNoContent:
				return nil

			case http.StatusOK:
				return s.processReports(ctx, email, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("email", email))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processReports(ctx context.Context, email string, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Email != email {
		return fmt.Errorf("email mismatch: expected %s, got %s", email, response.Email)
	}

	for _, report := range response.Reports {
		if err := s.recorder.RecordUsage(ctx, email, report.Date, report.Amount); err != nil {
			return fmt.Errorf("failed to record usage for %s on %s: %w", email, report.Date, err)
		}
	}
	if len(response.Reports) > 0 {
		zap.L().Info("Usage reports recorded", zap.String("email", email), zap.Int("count", len(response.Reports)))
	}
	return nil
}

func (s *Service) handleRateLimit(email string, respHeaders http.Header, attempt int) error {
	if attempt >= maxRetries {
		return fmt.Errorf("rate limited collecting usage for %s after %d retries", email, maxRetries)
	}

	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("email", email),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
