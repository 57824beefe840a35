package bulk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/altinukshini/fieldops-tui/internal/model"
)

func TestFilterTasks(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		{ID: "t1", OperationID: "op1", Status: model.TaskDone, Priority: model.PriorityLow, Region: "north", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "t2", OperationID: "op1", Status: model.TaskOpen, Priority: model.PriorityHigh, Region: "north", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "t3", OperationID: "op2", Status: model.TaskDone, Priority: model.PriorityMedium, Region: "south", CreatedAt: now.Add(-72 * time.Hour)},
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{
			name:   "by operation",
			filter: Filter{OperationID: "op1"},
			want:   2,
		},
		{
			name:   "by status",
			filter: Filter{Status: model.TaskDone},
			want:   2,
		},
		{
			name:   "by age",
			filter: Filter{OlderThan: 24 * time.Hour},
			want:   2,
		},
		{
			name:   "by region case-insensitive",
			filter: Filter{Region: "NORTH"},
			want:   2,
		},
		{
			name:   "combined",
			filter: Filter{OperationID: "op1", Status: model.TaskDone},
			want:   1,
		},
		{
			name:   "no match",
			filter: Filter{OperationID: "nonexistent"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTasks(tasks, tt.filter)
			if len(got) != tt.want {
				t.Errorf("FilterTasks() matched %d tasks, want %d", len(got), tt.want)
			}
		})
	}
}

type fakeDeleter struct {
	failing map[string]bool
	deleted []string
}

func (d *fakeDeleter) DeleteTask(_ context.Context, id string) error {
	if d.failing[id] {
		return errors.New("locked")
	}
	d.deleted = append(d.deleted, id)
	return nil
}

func TestDeleteTasksCollectsFailures(t *testing.T) {
	d := &fakeDeleter{failing: map[string]bool{"t2": true}}

	var progress []int
	result, err := DeleteTasks(context.Background(), d, []string{"t1", "t2", "t3"},
		func(completed, total int) { progress = append(progress, completed) })

	if err != nil {
		t.Fatalf("DeleteTasks() error = %v", err)
	}
	if result.Completed != 2 || result.Failed != 1 {
		t.Errorf("got completed=%d failed=%d, want 2/1", result.Completed, result.Failed)
	}
	if len(result.Errors) != 1 {
		t.Errorf("got %d errors, want 1", len(result.Errors))
	}
	if len(progress) != 3 || progress[2] != 3 {
		t.Errorf("progress callbacks = %v, want [1 2 3]", progress)
	}
}

func TestDeleteTasksHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &fakeDeleter{}
	_, err := DeleteTasks(ctx, d, []string{"t1"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("DeleteTasks() error = %v, want context.Canceled", err)
	}
	if len(d.deleted) != 0 {
		t.Errorf("deleted %v before checking context", d.deleted)
	}
}
