package pagination

import "testing"

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		in          PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", PaginationParams{Page: 0, PerPage: 0}, 1, 15},
		{"negative page clamped", PaginationParams{Page: -3, PerPage: 20}, 1, 20},
		{"per page capped at 100", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid values untouched", PaginationParams{Page: 3, PerPage: 25}, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			if tt.in.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.in.Page, tt.wantPage)
			}
			if tt.in.PerPage != tt.wantPerPage {
				t.Errorf("PerPage = %d, want %d", tt.in.PerPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 15, 31)

	if pag.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pag.TotalPages)
	}
	if !pag.HasNext {
		t.Error("HasNext = false, want true")
	}
	if !pag.HasPrev {
		t.Error("HasPrev = false, want true")
	}
}
