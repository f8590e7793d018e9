package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"first page default size", Params{Page: 1, PerPage: 10}, nil},
		{"max per_page", Params{Page: 3, PerPage: 100}, nil},
		{"page zero", Params{Page: 0, PerPage: 10}, ErrPageOutOfRange},
		{"negative page", Params{Page: -5, PerPage: 10}, ErrPageOutOfRange},
		{"per_page zero", Params{Page: 1, PerPage: 0}, ErrPerPageOutOfRange},
		{"per_page over max", Params{Page: 1, PerPage: 101}, ErrPerPageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, Params{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 25, Params{Page: 2, PerPage: 25}.Offset())
}

func TestNewMetaTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		perPage    int
		wantPages  int
	}{
		{"exact multiple", 30, 10, 3},
		{"partial last page", 25, 10, 3},
		{"single row", 1, 10, 1},
		{"empty set still one page", 0, 10, 1},
		{"one item per page", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			returned := tt.perPage
			if tt.total < returned {
				returned = tt.total
			}
			m := NewMeta(Params{Page: 1, PerPage: tt.perPage}, tt.total, returned)
			assert.Equal(t, tt.wantPages, m.TotalPages)
		})
	}
}

func TestNewMetaRemaining(t *testing.T) {
	// per_page=10, total=25: page 3 returns 5 items and remaining must be 0.
	p := Params{Page: 3, PerPage: 10}
	m := NewMeta(p, 25, 5)
	assert.Equal(t, 3, m.TotalPages)
	assert.Equal(t, 0, m.Remaining)

	m = NewMeta(Params{Page: 1, PerPage: 10}, 25, 10)
	assert.Equal(t, 15, m.Remaining)

	m = NewMeta(Params{Page: 2, PerPage: 10}, 25, 10)
	assert.Equal(t, 5, m.Remaining)

	// Page past the end: no items, remaining clamps at zero.
	m = NewMeta(Params{Page: 9, PerPage: 10}, 25, 0)
	assert.Equal(t, 0, m.Remaining)
}

func TestWalkAllPages(t *testing.T) {
	// Walking pages 1..total_pages must hand back exactly total items.
	const total = 43
	const perPage = 10

	seen := 0
	page := 1
	for {
		p := Params{Page: page, PerPage: perPage}
		require.NoError(t, p.Validate())

		returned := total - p.Offset()
		if returned > perPage {
			returned = perPage
		}
		if returned < 0 {
			returned = 0
		}

		m := NewMeta(p, total, returned)
		seen += returned
		assert.Equal(t, total-p.Offset()-returned, m.Remaining)

		if page == m.TotalPages {
			assert.Equal(t, 0, m.Remaining)
			break
		}
		page++
	}

	assert.Equal(t, total, seen)
}

func TestNewPageNormalizesNil(t *testing.T) {
	pg := NewPage[int](nil, Meta{Page: 1, PerPage: 10, TotalPages: 1})
	require.NotNil(t, pg.Data)
	assert.Empty(t, pg.Data)
}
