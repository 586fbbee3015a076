// Package job runs background work on Asynq, a Redis-backed queue.
//
// The API enqueues tasks through JobService.Client; the worker started
// by JobService.Start runs them in the same process.
package job

import (
	"github.com/SabihaEylul/nextjswebb/internal/config"
	"github.com/SabihaEylul/nextjswebb/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger
	emails *email.Client
	notify string
}

// NewJobService configures Asynq against the Redis from cfg. Workers
// favour the critical queue 6:3:1 over default and low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, emails *email.Client) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
		emails: emails,
		notify: cfg.Integration.NotifyEmail,
	}
}

// Start registers the task handlers and starts the workers. It returns
// once the workers are running.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskContactNotification, j.handleContactNotificationTask)

	j.logger.Info().Msg("Starting background job server")

	return j.server.Start(mux)
}

// Stop waits for running tasks and closes the client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger routes Asynq's internal logs through zerolog.
type asynqLogger struct {
	logger zerolog.Logger
}

func newAsynqLogger(logger *zerolog.Logger) *asynqLogger {
	return &asynqLogger{logger: logger.With().Str("component", "asynq").Logger()}
}

func (l *asynqLogger) Debug(args ...any) { l.logger.Debug().Msg(sprint(args)) }
func (l *asynqLogger) Info(args ...any)  { l.logger.Info().Msg(sprint(args)) }
func (l *asynqLogger) Warn(args ...any)  { l.logger.Warn().Msg(sprint(args)) }
func (l *asynqLogger) Error(args ...any) { l.logger.Error().Msg(sprint(args)) }
func (l *asynqLogger) Fatal(args ...any) { l.logger.Fatal().Msg(sprint(args)) }
