package view

import (
	"reflect"
	"testing"
	"time"
)

type txn struct {
	ID     string
	Type   string
	Amount float64
	Date   time.Time
	Paid   bool
}

var txnSchema = Schema[txn]{Fields: []Field[txn]{
	{Name: "type", Kind: KindString, Value: func(t txn) any { return t.Type }},
	{Name: "amount", Kind: KindNumber, Value: func(t txn) any { return t.Amount }},
	{Name: "date", Kind: KindDate, Value: func(t txn) any { return t.Date }},
	{Name: "paid", Kind: KindBool, Value: func(t txn) any { return t.Paid }},
}}

func txnIDs(items []txn) []string {
	out := make([]string, 0, len(items))
	for _, t := range items {
		out = append(out, t.ID)
	}
	return out
}

func TestSortAmount(t *testing.T) {
	items := []txn{
		{ID: "a", Amount: 10},
		{ID: "b", Amount: 5},
		{ID: "c", Amount: 20},
	}

	asc := Sort(items, "amount", Asc, txnSchema)
	if got, want := txnIDs(asc), []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc: got %v, want %v", got, want)
	}

	desc := Sort(items, "amount", Desc, txnSchema)
	if got, want := txnIDs(desc), []string{"c", "a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc: got %v, want %v", got, want)
	}

	// Input untouched
	if got, want := txnIDs(items), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("input mutated: %v", got)
	}
}

func TestSortStability(t *testing.T) {
	items := []txn{
		{ID: "1", Type: "Deposit", Amount: 5},
		{ID: "2", Type: "Deposit", Amount: 3},
		{ID: "3", Type: "Refund", Amount: 1},
		{ID: "4", Type: "Deposit", Amount: 4},
	}

	// Equal type keys keep input order in both directions.
	asc := Sort(items, "type", Asc, txnSchema)
	if got, want := txnIDs(asc), []string{"1", "2", "4", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc ties reordered: got %v, want %v", got, want)
	}

	desc := Sort(items, "type", Desc, txnSchema)
	if got, want := txnIDs(desc), []string{"3", "1", "2", "4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc ties reordered: got %v, want %v", got, want)
	}
}

func TestSortDirectionInvolution(t *testing.T) {
	items := []txn{
		{ID: "1", Amount: 2},
		{ID: "2", Amount: 1},
		{ID: "3", Amount: 3},
		{ID: "4", Amount: 1},
	}

	asc := Sort(items, "amount", Asc, txnSchema)
	desc := Sort(items, "amount", Desc, txnSchema)

	// Strict inequalities reverse; the tied pair (2,4) keeps input order in
	// both directions.
	if got, want := txnIDs(asc), []string{"2", "4", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc: got %v, want %v", got, want)
	}
	if got, want := txnIDs(desc), []string{"3", "1", "2", "4"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc: got %v, want %v", got, want)
	}
}

func TestSortStringsCaseInsensitive(t *testing.T) {
	items := []txn{
		{ID: "1", Type: "withdrawal"},
		{ID: "2", Type: "Deposit"},
		{ID: "3", Type: "REFUND"},
	}

	got := txnIDs(Sort(items, "type", Asc, txnSchema))
	if want := []string{"2", "3", "1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortInvalidDatesSortGreatest(t *testing.T) {
	now := time.Now()
	items := []txn{
		{ID: "1"}, // zero date, stands in for unparseable
		{ID: "2", Date: now.Add(-time.Hour)},
		{ID: "3", Date: now},
	}

	asc := Sort(items, "date", Asc, txnSchema)
	if got, want := txnIDs(asc), []string{"2", "3", "1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("asc: invalid date not pushed to end: got %v, want %v", got, want)
	}

	desc := Sort(items, "date", Desc, txnSchema)
	if got, want := txnIDs(desc), []string{"1", "3", "2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("desc: got %v, want %v", got, want)
	}
}

func TestSortBool(t *testing.T) {
	items := []txn{
		{ID: "1", Paid: true},
		{ID: "2", Paid: false},
		{ID: "3", Paid: true},
	}

	got := txnIDs(Sort(items, "paid", Asc, txnSchema))
	if want := []string{"2", "1", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("false should sort before true: got %v, want %v", got, want)
	}
}

func TestSortUnknownKeyPassthrough(t *testing.T) {
	items := []txn{{ID: "1", Amount: 2}, {ID: "2", Amount: 1}}

	got := Sort(items, "missing", Asc, txnSchema)
	if !reflect.DeepEqual(txnIDs(got), []string{"1", "2"}) {
		t.Errorf("unknown key should be a passthrough: got %v", txnIDs(got))
	}
}
