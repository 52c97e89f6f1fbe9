package view

import "testing"

// Any change to query, filters, sort or page size resets the page to 1;
// only an explicit page move keeps it.
func TestStateResetPolicy(t *testing.T) {
	base := DefaultState("date", Desc).WithPage(4)

	tests := []struct {
		name     string
		mutate   func(State) State
		wantPage int
	}{
		{"query change resets", func(s State) State { return s.WithQuery("x") }, 1},
		{"filter change resets", func(s State) State { return s.WithFilter("type", "Deposit") }, 1},
		{"sort key change resets", func(s State) State { return s.WithSort("amount", s.SortDir) }, 1},
		{"sort dir change resets", func(s State) State { return s.WithSort(s.SortKey, Asc) }, 1},
		{"page size change resets", func(s State) State { return s.WithPageSize(25) }, 1},
		{"page move keeps", func(s State) State { return s.WithPage(2) }, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mutate(base).Page
			if got != tt.wantPage {
				t.Errorf("page = %d, want %d", got, tt.wantPage)
			}
		})
	}
}

func TestStateWithFilterCopies(t *testing.T) {
	a := DefaultState("date", Desc).WithFilter("type", "Deposit")
	b := a.WithFilter("type", "Refund")

	if a.Filters["type"] != "Deposit" {
		t.Errorf("WithFilter mutated the original: %v", a.Filters)
	}
	if b.Filters["type"] != "Refund" {
		t.Errorf("new state missing filter: %v", b.Filters)
	}
}

func TestStateFilterAllClears(t *testing.T) {
	st := DefaultState("date", Desc).WithFilter("type", "Deposit").WithFilter("type", FilterAll)
	if _, ok := st.Filters["type"]; ok {
		t.Errorf("FilterAll should clear the constraint, got %v", st.Filters)
	}
}

func TestStateNormalize(t *testing.T) {
	st := State{}.Normalize()

	if st.Page != 1 {
		t.Errorf("page default = %d, want 1", st.Page)
	}
	if st.PageSize != DefaultPageSize {
		t.Errorf("page size default = %d, want %d", st.PageSize, DefaultPageSize)
	}
	if st.Filters == nil {
		t.Error("filters map should be non-nil")
	}
	if st.SortDir != Asc {
		t.Errorf("sort dir default = %q, want asc", st.SortDir)
	}
}

func TestPipelineRun(t *testing.T) {
	items := []txn{
		{ID: "1", Type: "Deposit", Amount: 10},
		{ID: "2", Type: "Refund", Amount: 5},
		{ID: "3", Type: "Deposit", Amount: 20},
		{ID: "4", Type: "Deposit", Amount: 1},
	}
	p := Pipeline[txn]{Schema: txnSchema}

	st := DefaultState("amount", Asc).WithFilter("type", "Deposit").WithPageSize(2)
	result := p.Run(items, st)

	if result.TotalCount != 3 {
		t.Fatalf("expected 3 deposits, got %d", result.TotalCount)
	}
	if result.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", result.TotalPages)
	}
	if got := txnIDs(result.Items); !(len(got) == 2 && got[0] == "4" && got[1] == "1") {
		t.Errorf("first page wrong: %v", got)
	}

	second := p.Run(items, st.WithPage(2))
	if got := txnIDs(second.Items); !(len(got) == 1 && got[0] == "3") {
		t.Errorf("second page wrong: %v", got)
	}
}
