package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingEric/exceltool/pkg/exceltool/models"
)

func TestCount(t *testing.T) {
	tests := []struct {
		n, capacity, expected int
	}{
		{0, DefaultCapacity, 1},
		{1, DefaultCapacity, 1},
		{DefaultCapacity, DefaultCapacity, 1},
		{DefaultCapacity + 1, DefaultCapacity, 2},
		{3, 2, 2},
		{4, 2, 2},
		{5, 1, 5},
	}

	for _, tt := range tests {
		if got := Count(tt.n, tt.capacity); got != tt.expected {
			t.Errorf("Count(%d, %d) = %d, expected %d", tt.n, tt.capacity, got, tt.expected)
		}
	}
}

func TestPlan(t *testing.T) {
	pages, err := Plan(3, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.Page{
		{Index: 0, From: 0, To: 2, RowOffset: FirstDataRow},
		{Index: 1, From: 2, To: 3, RowOffset: FirstDataRow},
	}, pages)
}

func TestPlanEmpty(t *testing.T) {
	pages, err := Plan(0, DefaultCapacity)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, 0, pages[0].Len())
}

func TestPlanCoversEveryRecordOnce(t *testing.T) {
	for _, n := range []int{1, 9, 10, 11, 99, 100, 101} {
		pages, err := Plan(n, 10)
		require.NoError(t, err)
		next := 0
		for p, page := range pages {
			assert.Equal(t, next, page.From)
			assert.Equal(t, min(10, n-p*10), page.Len())
			next = page.To
		}
		assert.Equal(t, n, next)
	}
}

func TestPlanRejectsCapacity(t *testing.T) {
	_, err := Plan(10, 0)
	assert.ErrorIs(t, err, ErrCapacity)
	_, err = Plan(10, -5)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestSlice(t *testing.T) {
	records := []string{"Ann", "Bo", "Cy"}
	pages, err := Plan(len(records), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bo"}, Slice(records, pages[0]))
	assert.Equal(t, []string{"Cy"}, Slice(records, pages[1]))
}
