package bulk

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

// Filter selects tasks for a bulk action.
type Filter struct {
	OperationID string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	Region      string
	OlderThan   time.Duration
}

func FilterTasks(tasks []model.Task, filter Filter) []model.Task {
	var matched []model.Task
	now := time.Now()

	for _, t := range tasks {
		if filter.OperationID != "" && t.OperationID != filter.OperationID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		if filter.Region != "" && !strings.EqualFold(t.Region, filter.Region) {
			continue
		}
		if filter.OlderThan > 0 && now.Sub(t.CreatedAt) < filter.OlderThan {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// TaskDeleter is the slice of the store this package needs.
type TaskDeleter interface {
	DeleteTask(ctx context.Context, id string) error
}

type Result struct {
	Completed int
	Failed    int
	Errors    []error
}

// DeleteTasks removes the given tasks one by one, reporting progress after
// each. Individual failures are collected, not fatal.
func DeleteTasks(ctx context.Context, deleter TaskDeleter, ids []string, onProgress func(completed, total int)) (*Result, error) {
	result := &Result{}
	total := len(ids)

	for i, id := range ids {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := deleter.DeleteTask(ctx, id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("task %s: %w", id, err))
		} else {
			result.Completed++
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}
	}

	return result, nil
}
