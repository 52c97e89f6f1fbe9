package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"gigview/internal/model"
)

// fixtureServer serves a small but realistic marketplace API: every
// endpoint the client knows, with deterministic data.
func fixtureServer() *httptest.Server {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	users := make([]model.User, 0, 12)
	roles := []string{
		"Admin", "Client", "Freelancer", "Client", "Freelancer", "Client",
		"Admin", "Freelancer", "Client", "Freelancer", "Client", "Freelancer",
	}
	for i, role := range roles {
		users = append(users, model.User{
			ID:     fmt.Sprintf("u%02d", i+1),
			Name:   fmt.Sprintf("User %02d", i+1),
			Email:  fmt.Sprintf("user%02d@example.com", i+1),
			Role:   role,
			Status: "Active",
			Joined: base.AddDate(0, 0, -i),
		})
	}

	txns := []model.Transaction{
		{ID: "t1", Type: "Deposit", Amount: 10, Date: base, Description: "top up"},
		{ID: "t2", Type: "Payment", Amount: 5, Date: base.AddDate(0, 0, 1), Description: "milestone 1"},
		{ID: "t3", Type: "Refund", Amount: 20, Date: base.AddDate(0, 0, 2), Description: "cancelled contract"},
	}

	reviews := make([]model.Review, 0, 25)
	for i := 0; i < 25; i++ {
		reviews = append(reviews, model.Review{
			ID:         fmt.Sprintf("r%02d", i+1),
			Project:    fmt.Sprintf("Project %02d", i+1),
			Freelancer: fmt.Sprintf("User %02d", i%12+1),
			Rating:     i%5 + 1,
			Text:       "solid work",
			Created:    base.AddDate(0, 0, -i),
		})
	}

	disputes := []model.Dispute{
		{ID: "d1", Title: "Late delivery", Status: "Open", ContractID: "c1", Created: base, Updated: base},
		{ID: "d2", Title: "Scope disagreement", Status: "Resolved", ContractID: "c2", Created: base, Updated: base.AddDate(0, 0, 3)},
	}

	mux := http.NewServeMux()
	serve := func(path string, data any) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(data)
		})
	}
	serve("/admin/users", users)
	serve("/wallet/transactions", txns)
	serve("/reviews", reviews)
	serve("/disputes", disputes)

	return httptest.NewServer(mux)
}
