package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/movie-booking-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		layout  domain.HallLayout
		wantErr bool
	}{
		{
			name:   "should build grid with valid layout",
			layout: domain.HallLayout{Rows: 5, Columns: 8},
		},
		{
			name:    "should fail when rows are zero",
			layout:  domain.HallLayout{Rows: 0, Columns: 8},
			wantErr: true,
		},
		{
			name:    "should fail when columns are negative",
			layout:  domain.HallLayout{Rows: 5, Columns: -1},
			wantErr: true,
		},
		{
			name:    "should fail when rows exceed the labeled maximum",
			layout:  domain.HallLayout{Rows: 27, Columns: 8},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.layout, nil)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, g)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.layout, g.Layout())
		})
	}
}

func TestToggle(t *testing.T) {
	layout := domain.HallLayout{Rows: 2, Columns: 2}

	t.Run("should never select a reserved seat", func(t *testing.T) {
		reserved := domain.NewSeatSet(domain.Seat{Row: 0, Col: 0})
		g, err := New(layout, reserved)
		require.NoError(t, err)

		selection, err := g.Toggle(domain.Seat{Row: 0, Col: 0})

		require.NoError(t, err)
		assert.Empty(t, selection)
		assert.False(t, g.IsSelected(domain.Seat{Row: 0, Col: 0}))
	})

	t.Run("should return selection to prior value after double toggle", func(t *testing.T) {
		g, err := New(layout, nil)
		require.NoError(t, err)

		_, err = g.Toggle(domain.Seat{Row: 0, Col: 0})
		require.NoError(t, err)

		selection, err := g.Toggle(domain.Seat{Row: 0, Col: 0})

		require.NoError(t, err)
		assert.Empty(t, selection)
	})

	t.Run("should preserve click order", func(t *testing.T) {
		g, err := New(layout, nil)
		require.NoError(t, err)

		g.Toggle(domain.Seat{Row: 1, Col: 1})
		g.Toggle(domain.Seat{Row: 0, Col: 0})
		selection, err := g.Toggle(domain.Seat{Row: 0, Col: 1})
		require.NoError(t, err)

		want := domain.Selection{
			{Row: 1, Col: 1},
			{Row: 0, Col: 0},
			{Row: 0, Col: 1},
		}

		if diff := cmp.Diff(want, selection); diff != "" {
			t.Errorf("selection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should fail for seats outside the layout", func(t *testing.T) {
		g, err := New(layout, nil)
		require.NoError(t, err)

		_, err = g.Toggle(domain.Seat{Row: 2, Col: 0})
		assert.Error(t, err)

		_, err = g.Toggle(domain.Seat{Row: 0, Col: -1})
		assert.Error(t, err)
	})

	t.Run("should notify the selection callback on effective toggles only", func(t *testing.T) {
		var notifications []domain.Selection

		reserved := domain.NewSeatSet(domain.Seat{Row: 1, Col: 0})
		g, err := New(layout, reserved, WithSelectionChanged(func(s domain.Selection) {
			notifications = append(notifications, s)
		}))
		require.NoError(t, err)

		g.Toggle(domain.Seat{Row: 0, Col: 0})
		g.Toggle(domain.Seat{Row: 1, Col: 0}) // reserved, no-op
		g.Toggle(domain.Seat{Row: 0, Col: 0})

		require.Len(t, notifications, 2)
		assert.Len(t, notifications[0], 1)
		assert.Empty(t, notifications[1])
	})
}

func TestClear(t *testing.T) {
	g, err := New(domain.HallLayout{Rows: 2, Columns: 2}, nil)
	require.NoError(t, err)

	g.Toggle(domain.Seat{Row: 0, Col: 0})
	g.Toggle(domain.Seat{Row: 0, Col: 1})

	g.Clear()

	assert.Empty(t, g.Selection())
	assert.False(t, g.IsSelected(domain.Seat{Row: 0, Col: 0}))
}
