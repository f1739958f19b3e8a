package scheduler

import (
	"context"
	"errors"
)

var ErrUnknownJob = errors.New("agendamento desconhecido")

type Job interface {
	Name() string
	Start(ctx context.Context) error
	TriggerManualSync() bool
	GetStatus() Status
}

// Registry reúne os agendamentos para inicialização e acesso pela API
type Registry struct {
	jobs  map[string]Job
	order []string
}

func NewRegistry(jobs ...Job) *Registry {
	r := &Registry{
		jobs:  make(map[string]Job, len(jobs)),
		order: make([]string, 0, len(jobs)),
	}
	for _, job := range jobs {
		r.jobs[job.Name()] = job
		r.order = append(r.order, job.Name())
	}
	return r
}

func (r *Registry) Start(ctx context.Context) error {
	for _, name := range r.order {
		if err := r.jobs[name].Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Trigger dispara o job pelo nome. started é false quando já havia uma
// rodada em andamento.
func (r *Registry) Trigger(name string) (bool, error) {
	job, ok := r.jobs[name]
	if !ok {
		return false, ErrUnknownJob
	}
	return job.TriggerManualSync(), nil
}

func (r *Registry) Statuses() []Status {
	statuses := make([]Status, 0, len(r.order))
	for _, name := range r.order {
		statuses = append(statuses, r.jobs[name].GetStatus())
	}
	return statuses
}
