// Package monitoring reúne os indicadores reais de saúde do sistema
package monitoring

import (
	"context"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/scheduler"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDown     = "down"

	// acima disso o banco é considerado lento
	slowDatabaseThreshold = 500 * time.Millisecond
	pingTimeout           = 3 * time.Second
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Monitor interface {
	Status(ctx context.Context) *SystemStatus
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type EventStats interface {
	Stats() events.Stats
}

type JobStatuses interface {
	Statuses() []scheduler.Status
}

type DatabaseStatus struct {
	Status    string  `json:"status"`
	LatencyMs float64 `json:"latency_ms"`
	Error     string  `json:"error,omitempty"`
}

type RuntimeStatus struct {
	GoVersion     string  `json:"go_version"`
	Goroutines    int     `json:"goroutines"`
	CPUs          int     `json:"cpus"`
	MemoryAllocMB float64 `json:"memory_alloc_mb"`
	MemorySysMB   float64 `json:"memory_sys_mb"`
	NumGC         uint32  `json:"num_gc"`
}

type SystemStatus struct {
	Status        string             `json:"status"`
	StartedAt     time.Time          `json:"started_at"`
	UptimeSeconds int64              `json:"uptime_seconds"`
	Database      DatabaseStatus     `json:"database"`
	Runtime       RuntimeStatus      `json:"runtime"`
	Events        events.Stats       `json:"events"`
	Jobs          []scheduler.Status `json:"jobs"`
	CheckedAt     time.Time          `json:"checked_at"`
}

type Service struct {
	db        Pinger
	bus       EventStats
	jobs      JobStatuses
	startedAt time.Time
	now       func() time.Time
}

func NewService(db Pinger, bus EventStats, jobs JobStatuses, startedAt time.Time) Monitor {
	return &Service{
		db:        db,
		bus:       bus,
		jobs:      jobs,
		startedAt: startedAt,
		now:       time.Now,
	}
}

func (s *Service) Status(ctx context.Context) *SystemStatus {
	now := s.now()
	status := &SystemStatus{
		StartedAt:     s.startedAt,
		UptimeSeconds: int64(now.Sub(s.startedAt).Seconds()),
		Database:      s.checkDatabase(ctx),
		Runtime:       readRuntime(),
		Events:        s.bus.Stats(),
		Jobs:          s.jobs.Statuses(),
		CheckedAt:     now,
	}

	status.Status = overall(status)
	if status.Status != StatusHealthy {
		logrus.WithFields(logrus.Fields{
			"status":   status.Status,
			"database": status.Database.Status,
			"dropped":  status.Events.Dropped,
		}).Warn("Sistema fora do estado saudável")
	}

	return status
}

func (s *Service) checkDatabase(ctx context.Context) DatabaseStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := s.db.Ping(ctx)
	latency := time.Since(start)

	result := DatabaseStatus{
		Status:    StatusHealthy,
		LatencyMs: utils.RoundWithTwoDecimalPlace(float64(latency.Microseconds()) / 1000),
	}
	if err != nil {
		result.Status = StatusDown
		result.Error = err.Error()
		return result
	}
	if latency > slowDatabaseThreshold {
		result.Status = StatusDegraded
	}

	return result
}

func readRuntime() RuntimeStatus {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return RuntimeStatus{
		GoVersion:     runtime.Version(),
		Goroutines:    runtime.NumGoroutine(),
		CPUs:          runtime.NumCPU(),
		MemoryAllocMB: utils.RoundWithTwoDecimalPlace(float64(mem.Alloc) / 1024 / 1024),
		MemorySysMB:   utils.RoundWithTwoDecimalPlace(float64(mem.Sys) / 1024 / 1024),
		NumGC:         mem.NumGC,
	}
}

// overall deriva o estado geral: banco fora derruba tudo; banco lento,
// eventos descartados ou job com erro degradam.
func overall(status *SystemStatus) string {
	if status.Database.Status == StatusDown {
		return StatusDown
	}
	if status.Database.Status == StatusDegraded || status.Events.Dropped > 0 {
		return StatusDegraded
	}
	for _, job := range status.Jobs {
		if job.LastError != "" {
			return StatusDegraded
		}
	}
	return StatusHealthy
}
