package ui

import (
	"time"

	"gigview/internal/api"
	"gigview/internal/model"
)

// Bindings wires every dataset to the api client. Order matches
// model.Datasets.
func Bindings(client *api.Client, timeout time.Duration) []Dataset {
	var out []Dataset
	for _, meta := range model.Datasets {
		switch meta.Name {
		case "users":
			out = append(out, Bind(meta, model.UserSchema, client.Users, timeout, model.UserColumns, model.UserRow))
		case "reviews":
			out = append(out, Bind(meta, model.ReviewSchema, client.Reviews, timeout, model.ReviewColumns, model.ReviewRow))
		case "transactions":
			out = append(out, Bind(meta, model.TransactionSchema, client.Transactions, timeout, model.TransactionColumns, model.TransactionRow))
		case "disputes":
			out = append(out, Bind(meta, model.DisputeSchema, client.Disputes, timeout, model.DisputeColumns, model.DisputeRow))
		}
	}
	return out
}
