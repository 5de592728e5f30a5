package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive-backend/internal/dto"
	"github.com/taskhive/taskhive-backend/internal/models"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name  string
		page  int
		size  int
		first int
		count int
	}{
		{"first page", 1, 10, 1, 10},
		{"middle page", 2, 10, 11, 10},
		{"short last page", 3, 10, 21, 5},
		{"past the end", 4, 10, 0, 0},
		{"far past the end", 999, 10, 0, 0},
		{"zero page", 0, 10, 0, 0},
		{"zero size", 1, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(items, tt.page, tt.size)
			require.Len(t, got, tt.count)
			if tt.count > 0 {
				assert.Equal(t, tt.first, got[0])
				assert.Equal(t, tt.first+tt.count-1, got[tt.count-1])
			}
		})
	}
}

func TestListPaginationOverStore(t *testing.T) {
	s, _, _ := newTestStore(t)
	manager := mustUser(t, s, "manager@example.com")
	project := mustProject(t, s, manager.ID)
	for i := 0; i < 25; i++ {
		_, err := s.CreateTask(manager.ID, &dto.CreateTaskRequest{
			Title:     fmt.Sprintf("task %d", i+1),
			Status:    models.StatusPending,
			Priority:  models.PriorityLow,
			ProjectID: project.ID,
		})
		require.NoError(t, err)
	}

	page2 := s.ListTasks(&dto.TaskFilter{}, 2, 10)
	require.Len(t, page2, 10)
	assert.Equal(t, "task 11", page2[0].Title)
	assert.Equal(t, "task 20", page2[9].Title)

	page3 := s.ListTasks(&dto.TaskFilter{}, 3, 10)
	require.Len(t, page3, 5)
	assert.Equal(t, "task 21", page3[0].Title)
	assert.Equal(t, "task 25", page3[4].Title)
}

func TestFilterSliceIsLogicalAnd(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := filterSlice(items,
		func(n int) bool { return n%2 == 0 },
		func(n int) bool { return n > 5 },
	)
	assert.Equal(t, []int{6, 8, 10}, got)

	assert.Equal(t, items, filterSlice(items), "no predicates keeps everything")
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Deploy Gateway", "gateway"))
	assert.True(t, containsFold("deploy gateway", "GATE"))
	assert.True(t, containsFold("Deploy Gateway", "loy ga"))
	assert.False(t, containsFold("Deploy Gateway", "router"))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s, _, _ := newTestStore(t)
	u := mustUser(t, s, "copy@example.com")

	list := s.ListUsers(&dto.UserFilter{}, 1, 10)
	require.Len(t, list, 1)
	list[0].Name = "mutated by caller"

	got, err := s.GetUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", got.Name, "callers must not reach the stored record")
}
