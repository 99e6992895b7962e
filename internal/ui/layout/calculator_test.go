package layout

import "testing"

func TestPhotoArea(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		helpLines     int
		want          Rect
	}{
		{
			name:  "short help",
			width: 80, height: 30, helpLines: 1,
			want: Rect{Row: 2, Col: 2, Width: 78, Height: 24}, // 30 - 2 border - 3 info - 1 help
		},
		{
			name:  "full help",
			width: 80, height: 30, helpLines: 7,
			want: Rect{Row: 2, Col: 2, Width: 78, Height: 18},
		},
		{
			name:  "tiny window",
			width: 1, height: 4, helpLines: 1,
			want: Rect{Row: 2, Col: 2, Width: 0, Height: 0},
		},
		{
			name:  "no size yet",
			width: 0, height: 0, helpLines: 1,
			want: Rect{Row: 2, Col: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhotoArea(tt.width, tt.height, tt.helpLines)
			if got != tt.want {
				t.Errorf("PhotoArea() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Empty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{Width: 10, Height: 5}, false},
		{Rect{Width: 0, Height: 5}, true},
		{Rect{Width: 10, Height: 0}, true},
		{Rect{}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestQueryWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{200, MaxQueryWidth},
		{80, 51}, // 80 - 20 label - 8 chrome - 1 cursor
		{30, MinQueryWidth},
		{0, MinQueryWidth},
	}
	for _, tt := range tests {
		if got := QueryWidth(tt.width); got != tt.want {
			t.Errorf("QueryWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
