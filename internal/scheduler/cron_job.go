// Package scheduler contém os agendamentos que varrem todos os restaurantes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"golang.org/x/sync/errgroup"
)

// Status é o retrato de um agendamento exposto em /v1/cron/status e /v1/status
type Status struct {
	Name                string     `json:"name"`
	Enabled             bool       `json:"enabled"`
	Cron                string     `json:"cron"`
	Running             bool       `json:"running"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at"`
	LastProcessed       int        `json:"last_processed"`
	LastError           string     `json:"last_error,omitempty"`
}

// runFunc executa uma rodada e devolve quantos itens foram processados
type runFunc func(ctx context.Context) (int, error)

// cronJob concentra o controle de execução comum a todos os agendamentos:
// uma rodada por vez, execução manual e registro da última sincronização.
type cronJob struct {
	name      string
	cron      string
	enabled   bool
	scheduler *gocron.Scheduler
	run       runFunc

	syncMutex           sync.Mutex
	syncRunning         bool
	baseCtx             context.Context
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastProcessed       int
	lastErr             error
}

func newCronJob(name, cron string, enabled bool, run runFunc) *cronJob {
	logrus.WithFields(logrus.Fields{
		"job":           name,
		"cron_schedule": cron,
		"sync_enabled":  enabled,
	}).Info("Configuração do agendador carregada")

	return &cronJob{
		name:      name,
		cron:      cron,
		enabled:   enabled,
		scheduler: gocron.NewScheduler(time.Local),
		run:       run,
		baseCtx:   context.Background(),
	}
}

func (j *cronJob) Name() string {
	return j.name
}

// Start agenda o job e o encerra quando ctx for cancelado
func (j *cronJob) Start(ctx context.Context) error {
	j.syncMutex.Lock()
	j.baseCtx = ctx
	j.syncMutex.Unlock()

	if !j.enabled {
		logrus.WithField("job", j.name).Info("Agendamento desabilitado por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  j.name,
		"cron": j.cron,
	}).Info("Iniciando agendamento")

	_, err := j.scheduler.Cron(j.cron).Do(func() {
		j.execute(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", j.name, err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", j.name).Info("Parando agendamento")
		j.scheduler.Stop()
	}()

	return nil
}

// execute roda uma rodada, ignorando a chamada se outra ainda estiver ativa
func (j *cronJob) execute(ctx context.Context) bool {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.WithField("job", j.name).Info("Execução anterior ainda em andamento, ignorando")
		return false
	}
	j.syncRunning = true
	j.lastSyncStartedAt = time.Now()
	j.syncMutex.Unlock()

	startTime := time.Now()
	processed, err := j.run(ctx)

	j.syncMutex.Lock()
	j.syncRunning = false
	j.lastSyncCompletedAt = time.Now()
	j.lastProcessed = processed
	j.lastErr = err
	j.syncMutex.Unlock()

	fields := logrus.Fields{
		"job":       j.name,
		"processed": processed,
		"duration":  time.Since(startTime).String(),
	}
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Agendamento concluído com erro")
		return true
	}

	logrus.WithFields(fields).Info("Agendamento concluído")
	return true
}

// TriggerManualSync dispara uma rodada fora do horário. Retorna false quando
// já existe uma rodada em andamento.
func (j *cronJob) TriggerManualSync() bool {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.WithField("job", j.name).Info("Sincronização já em andamento, ignorando solicitação manual")
		return false
	}
	ctx := j.baseCtx
	j.syncMutex.Unlock()

	logrus.WithField("job", j.name).Info("Iniciando sincronização manual")
	go j.execute(ctx)

	return true
}

func (j *cronJob) GetStatus() Status {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	status := Status{
		Name:          j.name,
		Enabled:       j.enabled,
		Cron:          j.cron,
		Running:       j.syncRunning,
		LastProcessed: j.lastProcessed,
	}
	if !j.lastSyncStartedAt.IsZero() {
		startedAt := j.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}
	if !j.lastSyncCompletedAt.IsZero() {
		completedAt := j.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}
	if j.lastErr != nil {
		status.LastError = j.lastErr.Error()
	}

	return status
}

// forEachRestaurant aplica fn a todos os restaurantes com no máximo limit em
// paralelo. Falhas de um restaurante são registradas e não param os demais.
func forEachRestaurant(ctx context.Context, job string, restaurantRepo repository.RestaurantRepository, limit int, fn func(ctx context.Context, restaurantID string) (int, error)) (int, error) {
	ids, err := restaurantRepo.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao listar restaurantes: %w", err)
	}

	if len(ids) == 0 {
		logrus.WithField("job", job).Info("Nenhum restaurante encontrado")
		return 0, nil
	}

	if limit <= 0 {
		limit = 1
	}

	var processed atomic.Int64
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, id := range ids {
		restaurantID := id
		g.Go(func() error {
			n, err := fn(gctx, restaurantID)
			if err != nil {
				failed.Add(1)
				logrus.WithFields(logrus.Fields{
					"job":           job,
					"restaurant_id": restaurantID,
				}).WithError(err).Error("Erro ao processar restaurante")
				return nil
			}
			processed.Add(int64(n))
			return nil
		})
	}
	_ = g.Wait()

	if n := failed.Load(); n > 0 {
		return int(processed.Load()), fmt.Errorf("%d de %d restaurantes falharam", n, len(ids))
	}

	return int(processed.Load()), nil
}
