package model

import (
	"fmt"
	"strconv"
)

// Column headers and row renderers shared by the TUI, the table printer and
// the CSV exporter, declared next to the schemas so each dataset's
// presentation lives in one place.

const dateFormat = "2006-01-02"

var UserColumns = []string{"Name", "Email", "Role", "Status", "Joined"}

func UserRow(u User) []string {
	return []string{u.Name, u.Email, u.Role, u.Status, u.Joined.Format(dateFormat)}
}

var ReviewColumns = []string{"Project", "Freelancer", "Rating", "Review", "Created"}

func ReviewRow(r Review) []string {
	return []string{r.Project, r.Freelancer, strconv.Itoa(r.Rating), r.Text, r.Created.Format(dateFormat)}
}

var TransactionColumns = []string{"Type", "Amount", "Date", "Description"}

func TransactionRow(t Transaction) []string {
	return []string{t.Type, fmt.Sprintf("%.2f", t.Amount), t.Date.Format(dateFormat), t.Description}
}

var DisputeColumns = []string{"Title", "Status", "Contract", "Created", "Updated"}

func DisputeRow(d Dispute) []string {
	return []string{d.Title, d.Status, d.ContractID, d.Created.Format(dateFormat), d.Updated.Format(dateFormat)}
}
