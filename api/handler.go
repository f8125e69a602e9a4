package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config         *config.SchedulerConfig
	metrics        *metrics.Metrics
	metricsHandler fiber.Handler
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, metrics *metrics.Metrics) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:         config,
		metrics:        metrics,
		metricsHandler: adaptor.HTTPHandler(metrics.Handler()),
	}
}

// NewApp wires handler into a fiber app under /api/v1.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/schedule/:algorithm", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
	}
	app.Get("/metrics", handler.Metrics)

	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe.String())
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst.String())
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	return s.schedule(ctx, ctx.Params("algorithm"))
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	batch, err := s.parseBatch(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	results, err := schedulers.ScheduleAll(batch)
	if err != nil {
		s.metrics.RecordFailure("all")
		return badRequest(ctx, err)
	}

	runId := uuid.New().String()
	out := schedulers.GenerateResponses(results)
	for name, response := range out {
		response.RunId = runId
		out[name] = response
		s.metrics.RecordSuccess(name, batch.Len(), response.AverageWaitingTime)
	}
	logrus.WithField("run_id", runId).Infof("scheduled %d processes with all algorithms", batch.Len())
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Metrics(ctx *fiber.Ctx) error {
	return s.metricsHandler(ctx)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, name string) error {
	batch, err := s.parseBatch(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	algorithm, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		// one series for every unknown name, whatever the client sent
		s.metrics.RecordFailure(unsupportedLabel)
		return badRequest(ctx, err)
	}
	result, err := schedulers.Run(batch, algorithm)
	if err != nil {
		s.metrics.RecordFailure(algorithm.String())
		return badRequest(ctx, err)
	}

	response := schedulers.GenerateResponse(result)
	response.RunId = uuid.New().String()
	s.metrics.RecordSuccess(response.Algorithm, batch.Len(), response.AverageWaitingTime)
	logrus.WithFields(logrus.Fields{
		"run_id":    response.RunId,
		"algorithm": response.Algorithm,
	}).Infof("scheduled %d processes", batch.Len())
	return ctx.JSON(response)
}

// parseBatch decodes the request body, refusing batches above the configured size.
func (s *SchedulerHandlerImpl) parseBatch(ctx *fiber.Ctx) (core.Batch, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return core.Batch{}, errInvalidRequestFormat
	}
	if limit := s.config.MaxProcesses; limit > 0 && len(request.Jobs) > limit {
		return core.Batch{}, fmt.Errorf("%w: %d processes exceeds the limit of %d", core.ErrInvalidInput, len(request.Jobs), limit)
	}
	return request.Batch()
}

var errInvalidRequestFormat = errors.New("invalid request format")

// unsupportedLabel is the metrics label for requests naming an unknown algorithm.
const unsupportedLabel = "unsupported"

func badRequest(ctx *fiber.Ctx, err error) error {
	logrus.Debugf("rejecting request: %v", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: err.Error()})
}
