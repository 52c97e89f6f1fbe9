package view

import (
	"reflect"
	"testing"
	"time"
)

type row struct {
	ID     string
	Name   string
	Email  string
	Role   string
	Joined time.Time
	Note   *string
}

var rowSchema = Schema[row]{Fields: []Field[row]{
	{Name: "name", Kind: KindString, Searchable: true, Value: func(r row) any { return r.Name }},
	{Name: "email", Kind: KindString, Searchable: true, Value: func(r row) any { return r.Email }},
	{Name: "role", Kind: KindEnum, Options: []string{"Admin", "Client", "Freelancer"}, Value: func(r row) any { return r.Role }},
	{Name: "joined", Kind: KindDate, Value: func(r row) any { return r.Joined }},
	{Name: "note", Kind: KindString, Searchable: true, Value: func(r row) any {
		if r.Note == nil {
			return nil
		}
		return *r.Note
	}},
}}

func ids(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

// twelveUsers is the 12-record mix used by the role-filter test:
// 2 admins, 5 clients, 5 freelancers.
func twelveUsers() []row {
	roles := []string{
		"Admin", "Client", "Freelancer", "Client", "Freelancer", "Client",
		"Admin", "Freelancer", "Client", "Freelancer", "Client", "Freelancer",
	}
	rows := make([]row, len(roles))
	for i, role := range roles {
		rows[i] = row{ID: string(rune('a' + i)), Name: "user", Role: role}
	}
	return rows
}

func TestFilterByRole(t *testing.T) {
	result := Filter(twelveUsers(), "", map[string]string{"role": "Client"}, rowSchema)

	if len(result) != 5 {
		t.Fatalf("expected 5 clients, got %d", len(result))
	}
	for _, r := range result {
		if r.Role != "Client" {
			t.Errorf("record %s has role %s, want Client", r.ID, r.Role)
		}
	}
	// Original relative order preserved
	want := []string{"b", "d", "f", "i", "k"}
	if !reflect.DeepEqual(ids(result), want) {
		t.Errorf("order changed: got %v, want %v", ids(result), want)
	}
}

func TestFilterIdentity(t *testing.T) {
	items := twelveUsers()
	result := Filter(items, "", map[string]string{"role": FilterAll}, rowSchema)

	if !reflect.DeepEqual(ids(result), ids(items)) {
		t.Errorf("identity filter changed the collection: got %v, want %v", ids(result), ids(items))
	}
}

func TestFilterQuery(t *testing.T) {
	items := []row{
		{ID: "1", Name: "Ada Lovelace", Email: "ada@example.com"},
		{ID: "2", Name: "Grace Hopper", Email: "grace@example.com"},
		{ID: "3", Name: "Adam West", Email: "west@example.com"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive substring", "ADA", []string{"1", "3"}},
		{"matches email field", "grace@", []string{"2"}},
		{"whitespace only matches all", "   ", []string{"1", "2", "3"}},
		{"empty matches all", "", []string{"1", "2", "3"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(items, tt.query, nil, rowSchema))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterQueryAndFieldCombined(t *testing.T) {
	items := []row{
		{ID: "1", Name: "Ada", Role: "Client"},
		{ID: "2", Name: "Ada", Role: "Admin"},
		{ID: "3", Name: "Bob", Role: "Client"},
	}

	got := ids(Filter(items, "ada", map[string]string{"role": "Client"}, rowSchema))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("AND combination failed: got %v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	items := twelveUsers()
	filters := map[string]string{"role": "Freelancer"}

	once := Filter(items, "", filters, rowSchema)
	twice := Filter(once, "", filters, rowSchema)

	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("filter not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestFilterMissingField(t *testing.T) {
	note := "visible"
	items := []row{
		{ID: "1", Name: "x", Note: &note},
		{ID: "2", Name: "x"}, // note missing
	}

	// Missing field does not match a free-text query against it.
	got := ids(Filter(items, "visible", nil, rowSchema))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("query over missing field: got %v, want [1]", got)
	}

	// Missing field does not match a non-All filter.
	got = ids(Filter(items, "", map[string]string{"note": "visible"}, rowSchema))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("filter over missing field: got %v, want [1]", got)
	}
}

func TestFilterUnknownField(t *testing.T) {
	got := Filter(twelveUsers(), "", map[string]string{"nope": "x"}, rowSchema)
	if len(got) != 0 {
		t.Errorf("unknown filter field should match nothing, got %d records", len(got))
	}
}

func TestFilterEmptyCollection(t *testing.T) {
	got := Filter(nil, "q", map[string]string{"role": "Client"}, rowSchema)
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 records, got %d", len(got))
	}
}
