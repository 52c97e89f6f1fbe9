package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteQuoting(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf,
		[]string{"Title", "Note"},
		[][]string{
			{"plain", "nothing special"},
			{"has, comma", `has "quotes"`},
			{"has\nnewline", "x"},
		},
	)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `"has, comma"`) {
		t.Errorf("comma cell not quoted: %q", got)
	}
	if !strings.Contains(got, `"has ""quotes"""`) {
		t.Errorf("quote cell not escaped: %q", got)
	}
	if !strings.HasPrefix(got, "Title,Note\n") {
		t.Errorf("header missing: %q", got)
	}
}

func TestRows(t *testing.T) {
	type item struct{ A, B string }
	rows := Rows([]item{{"1", "2"}, {"3", "4"}}, func(i item) []string {
		return []string{i.A, i.B}
	})

	if len(rows) != 2 || rows[1][0] != "3" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := File(path, []string{"A"}, [][]string{{"1"}, {"2"}}); err != nil {
		t.Fatalf("File failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "A\n1\n2\n" {
		t.Errorf("unexpected file contents: %q", data)
	}
}
