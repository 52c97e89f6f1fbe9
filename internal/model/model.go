// Package model defines the marketplace record types and their view
// schemas. Each dataset declares once which fields exist, which are
// searchable and which are offered as structured filters; every list view
// of that dataset is driven by the same declaration.
package model

import (
	"time"

	"gigview/internal/view"
)

// User is one row of the admin user listing.
type User struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"` // Admin, Client, Freelancer
	Status string    `json:"status"`
	Joined time.Time `json:"joined_at"`
}

// Review is a completed-project review left by a client.
type Review struct {
	ID         string    `json:"id"`
	Project    string    `json:"project"`
	Freelancer string    `json:"freelancer"`
	Rating     int       `json:"rating"` // 1-5
	Text       string    `json:"text"`
	Created    time.Time `json:"created_at"`
}

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // Deposit, Withdrawal, Payment, Refund
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// Dispute is an open or resolved contract dispute.
type Dispute struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"` // Open, Under Review, Resolved, Closed
	ContractID string    `json:"contract_id"`
	Created    time.Time `json:"created_at"`
	Updated    time.Time `json:"updated_at"`
}

// UserRoles are the role values offered as a structured filter.
var UserRoles = []string{"Admin", "Client", "Freelancer"}

// UserStatuses are the account status filter values.
var UserStatuses = []string{"Active", "Suspended", "Pending"}

// TransactionTypes are the ledger entry types.
var TransactionTypes = []string{"Deposit", "Withdrawal", "Payment", "Refund"}

// DisputeStatuses are the dispute lifecycle states.
var DisputeStatuses = []string{"Open", "Under Review", "Resolved", "Closed"}

// UserSchema drives user list views: free text over name and email,
// structured filters on role and status.
var UserSchema = view.Schema[User]{Fields: []view.Field[User]{
	{Name: "name", Kind: view.KindString, Searchable: true, Value: func(u User) any { return u.Name }},
	{Name: "email", Kind: view.KindString, Searchable: true, Value: func(u User) any { return u.Email }},
	{Name: "role", Kind: view.KindEnum, Options: UserRoles, Value: func(u User) any { return u.Role }},
	{Name: "status", Kind: view.KindEnum, Options: UserStatuses, Value: func(u User) any { return u.Status }},
	{Name: "joined", Kind: view.KindDate, Value: func(u User) any { return u.Joined }},
}}

// ReviewSchema drives review list views.
var ReviewSchema = view.Schema[Review]{Fields: []view.Field[Review]{
	{Name: "project", Kind: view.KindString, Searchable: true, Value: func(r Review) any { return r.Project }},
	{Name: "freelancer", Kind: view.KindString, Searchable: true, Value: func(r Review) any { return r.Freelancer }},
	{Name: "text", Kind: view.KindString, Searchable: true, Value: func(r Review) any { return r.Text }},
	{Name: "rating", Kind: view.KindNumber, Value: func(r Review) any { return float64(r.Rating) }},
	{Name: "created", Kind: view.KindDate, Value: func(r Review) any { return r.Created }},
}}

// TransactionSchema drives wallet list views.
var TransactionSchema = view.Schema[Transaction]{Fields: []view.Field[Transaction]{
	{Name: "description", Kind: view.KindString, Searchable: true, Value: func(t Transaction) any { return t.Description }},
	{Name: "type", Kind: view.KindEnum, Options: TransactionTypes, Value: func(t Transaction) any { return t.Type }},
	{Name: "amount", Kind: view.KindNumber, Value: func(t Transaction) any { return t.Amount }},
	{Name: "date", Kind: view.KindDate, Value: func(t Transaction) any { return t.Date }},
}}

// DisputeSchema drives dispute list views.
var DisputeSchema = view.Schema[Dispute]{Fields: []view.Field[Dispute]{
	{Name: "title", Kind: view.KindString, Searchable: true, Value: func(d Dispute) any { return d.Title }},
	{Name: "contract", Kind: view.KindString, Searchable: true, Value: func(d Dispute) any { return d.ContractID }},
	{Name: "status", Kind: view.KindEnum, Options: DisputeStatuses, Value: func(d Dispute) any { return d.Status }},
	{Name: "created", Kind: view.KindDate, Value: func(d Dispute) any { return d.Created }},
	{Name: "updated", Kind: view.KindDate, Value: func(d Dispute) any { return d.Updated }},
}}
