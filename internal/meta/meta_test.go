package meta

import (
	"errors"
	"testing"
)

func TestLoadTerrainTypes(t *testing.T) {
	csv := "id,texture,priority,blend_mode\n" +
		"0,terrain/grass.png,10,0\n" +
		"2,terrain/ice.png,150,2\n" +
		"1,terrain/water.png,100,1\n"

	rows, err := LoadTerrainTypes([]byte(csv))
	if err != nil {
		t.Fatalf("failed to load terrain types: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Rows come back sorted by id
	for i, row := range rows {
		if row.ID != i {
			t.Errorf("row %d has id %d", i, row.ID)
		}
	}
	if rows[1].Texture != "terrain/water.png" {
		t.Errorf("expected water texture at id 1, got %s", rows[1].Texture)
	}
	if rows[2].Priority != 150 {
		t.Errorf("expected priority 150 at id 2, got %d", rows[2].Priority)
	}
	if rows[2].BlendMode != 2 {
		t.Errorf("expected blend mode 2 at id 2, got %d", rows[2].BlendMode)
	}
}

func TestLoadTerrainTypesMalformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want error
	}{
		{
			name: "empty table",
			csv:  "id,texture,priority,blend_mode\n",
			want: ErrMalformedTable,
		},
		{
			name: "non-numeric priority",
			csv:  "id,texture,priority,blend_mode\n0,grass.png,high,0\n",
			want: ErrMalformedTable,
		},
		{
			name: "empty texture path",
			csv:  "id,texture,priority,blend_mode\n0,,10,0\n",
			want: ErrMalformedTable,
		},
		{
			name: "duplicate id",
			csv:  "id,texture,priority,blend_mode\n0,a.png,1,0\n0,b.png,2,0\n",
			want: ErrDuplicateID,
		},
		{
			name: "missing priority and blend_mode columns",
			csv:  "id,texture\n0,a.png\n1,b.png\n",
			want: ErrMalformedTable,
		},
		{
			name: "hole in ids",
			csv:  "id,texture,priority,blend_mode\n0,a.png,1,0\n2,b.png,2,0\n",
			want: ErrSparseIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTerrainTypes([]byte(tt.csv))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadBlendMasks(t *testing.T) {
	csv := "mode,shape,texture\n" +
		"0,1,blend/0_n.png\n" +
		"0,255,blend/0_all.png\n" +
		"1,1,blend/1_n.png\n"

	rows, err := LoadBlendMasks([]byte(csv))
	if err != nil {
		t.Fatalf("failed to load blend masks: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if got := ModeCount(rows); got != 2 {
		t.Errorf("expected 2 modes, got %d", got)
	}
}

func TestLoadBlendMasksMalformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want error
	}{
		{
			name: "empty table",
			csv:  "mode,shape,texture\n",
			want: ErrMalformedTable,
		},
		{
			name: "duplicate mode and shape",
			csv:  "mode,shape,texture\n0,1,a.png\n0,1,b.png\n",
			want: ErrDuplicateID,
		},
		{
			name: "missing mode id",
			csv:  "mode,shape,texture\n0,1,a.png\n2,1,b.png\n",
			want: ErrSparseIDs,
		},
		{
			name: "shape out of range",
			csv:  "mode,shape,texture\n0,300,a.png\n",
			want: ErrMalformedTable,
		},
		{
			name: "negative mode",
			csv:  "mode,shape,texture\n-1,255,bad.png\n0,255,ok.png\n",
			want: ErrMalformedTable,
		},
		{
			name: "missing shape column",
			csv:  "mode,texture\n0,a.png\n",
			want: ErrMalformedTable,
		},
		{
			name: "empty texture path",
			csv:  "mode,shape,texture\n0,1,\n",
			want: ErrMalformedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBlendMasks([]byte(tt.csv))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
