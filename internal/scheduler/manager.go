package scheduler

import (
	"fmt"

	"github.com/blues/adagency/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// Job is a periodic task run by the Manager.
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

// Manager owns the gocron scheduler and its registered jobs.
type Manager struct {
	scheduler gocron.Scheduler
	jobs      []Job
}

func NewManager(jobs ...Job) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Manager{
		scheduler: s,
		jobs:      jobs,
	}, nil
}

// RegisterJobs adds every job in singleton mode so a slow run is never overlapped.
func (m *Manager) RegisterJobs() error {
	for _, job := range m.jobs {
		_, err := m.scheduler.NewJob(
			job.GetSchedule(),
			gocron.NewTask(job.Execute),
			gocron.WithName(job.GetName()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("failed to register job %s: %w", job.GetName(), err)
		}
		logger.Info("Registered job %s", job.GetName())
	}
	return nil
}

func (m *Manager) Start() {
	m.scheduler.Start()
	logger.Info("Task manager started with %d jobs", len(m.jobs))
}

func (m *Manager) Stop() error {
	if err := m.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	logger.Info("Task manager stopped")
	return nil
}
