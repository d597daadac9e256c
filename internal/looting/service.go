// Package looting runs loot requests against the registered containers.
package looting

import (
	"context"
	"fmt"

	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/domain"
	"github.com/osse101/LootContainers_Go/internal/logger"
	"github.com/osse101/LootContainers_Go/internal/metrics"
	"github.com/osse101/LootContainers_Go/internal/scenario"
)

// ContainerFinder resolves loot targets by name
type ContainerFinder interface {
	Find(name string) (container.Container, bool)
}

// ItemFinder resolves item names against the catalog
type ItemFinder interface {
	Find(name string) (*domain.Item, bool)
}

// Outcome is the result of one processed request
type Outcome struct {
	Request scenario.LootRequest
	Result  container.Result
	Err     error
}

// Message renders the outcome as a one-line report
func (o Outcome) Message() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return fmt.Sprintf(domain.MsgLootStoredFormat, o.Request.Item, o.Request.Container)
}

// Service defines the loot interface
type Service interface {
	// Loot stores one item in the named container. The error is nil exactly
	// when the item was stored.
	Loot(ctx context.Context, containerName, itemName string) (container.Result, error)

	// Run processes requests in order. A failed request does not stop the run.
	Run(ctx context.Context, requests []scenario.LootRequest) []Outcome
}

type service struct {
	containers ContainerFinder
	items      ItemFinder
}

// NewService creates a new loot service
func NewService(containers ContainerFinder, items ItemFinder) Service {
	return &service{
		containers: containers,
		items:      items,
	}
}

func (s *service) Loot(ctx context.Context, containerName, itemName string) (container.Result, error) {
	log := logger.FromContext(ctx)

	target, ok := s.containers.Find(containerName)
	if !ok {
		metrics.RecordLootAttempt(OutcomeUnknownContainer)
		log.Warn(LogMsgUnknownContainer, "container", containerName, "item", itemName)
		return container.Result{}, fmt.Errorf(ErrFmtUnknownContainer, domain.ErrContainerNotFound, containerName)
	}

	res := target.Loot(itemName)
	metrics.RecordLootAttempt(res.Status.String())

	switch res.Status {
	case container.StatusStored:
		if item, found := s.items.Find(itemName); found {
			metrics.RecordWeightStored(target.Name(), item.Weight)
		}
		log.Info(LogMsgItemLooted, "item", itemName, "container", target.Name(), "stored_in", res.Container)
	case container.StatusNoRoom:
		log.Info(LogMsgItemDidNotFit, "item", itemName, "container", target.Name())
	case container.StatusNotFound:
		log.Warn(LogMsgUnknownItem, "item", itemName, "container", target.Name())
	}

	return res, res.Err()
}

func (s *service) Run(ctx context.Context, requests []scenario.LootRequest) []Outcome {
	outcomes := make([]Outcome, 0, len(requests))
	stored := 0
	for _, req := range requests {
		res, err := s.Loot(ctx, req.Container, req.Item)
		if err == nil {
			stored++
		}
		outcomes = append(outcomes, Outcome{Request: req, Result: res, Err: err})
	}
	logger.FromContext(ctx).Info(LogMsgRunCompleted, "requests", len(requests), "stored", stored)
	return outcomes
}
