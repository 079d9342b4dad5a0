package repository_test

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/twinlabs/digitaltwin-backend/internal/repository"
)

const csvHistory = `user_id,name,age,income_bracket,interest_segment,past_purchase_count,campaign_id,campaign_type,subject_line,subject_length,send_hour,opened,clicked,unsubscribed,converted
1001,Emma Smith,30,Medium,Bargain Hunter,5,CMP-1000,Promo,Save Big,8,10,1,1,0,1
1001,Emma Smith,30,Medium,Bargain Hunter,5,CMP-1001,Newsletter,This Week's Top Trends,22,14,1,0,0,0
1002,Liam Chen,45,High,Tech Enthusiast,2,CMP-1000,Promo,Save Big,8,10,0,0,1,0
`

func writeHistoryFile(t *testing.T, content string) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), "history.csv")
    if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
        t.Fatal(err)
    }
    return path
}

func TestCSVInteractionStoreLoad(t *testing.T) {
    store := &repository.CSVInteractionStore{Path: writeHistoryFile(t, csvHistory)}

    rows, err := store.Load()
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if len(rows) != 3 {
        t.Fatalf("expected 3 rows, got %d", len(rows))
    }

    first := rows[0]
    if first.UserID != 1001 || first.Name != "Emma Smith" || first.Age != 30 ||
        first.IncomeBracket != "Medium" || first.InterestSegment != "Bargain Hunter" {
        t.Errorf("first row descriptive fields wrong: %+v", first)
    }
    if first.CampaignType != "Promo" || first.SubjectLength != 8 || first.SendHour != 10 {
        t.Errorf("first row campaign fields wrong: %+v", first)
    }
    if !first.Opened || !first.Clicked || first.Unsubscribed || !first.Converted {
        t.Errorf("first row flags wrong: %+v", first)
    }

    if rows[2].UserID != 1002 || rows[2].Opened || !rows[2].Unsubscribed {
        t.Errorf("third row wrong: %+v", rows[2])
    }
}

func TestCSVInteractionStoreMissingFile(t *testing.T) {
    store := &repository.CSVInteractionStore{Path: filepath.Join(t.TempDir(), "nope.csv")}
    if _, err := store.Load(); err == nil {
        t.Fatal("expected error for missing history file")
    }
}

func TestCSVInteractionStoreMissingColumn(t *testing.T) {
    store := &repository.CSVInteractionStore{
        Path: writeHistoryFile(t, "user_id,name\n1001,Emma Smith\n"),
    }
    if _, err := store.Load(); err == nil {
        t.Fatal("expected error for missing columns")
    }
}

func TestCSVIntoCustomerRepository(t *testing.T) {
    store := &repository.CSVInteractionStore{Path: writeHistoryFile(t, csvHistory)}
    repo, err := repository.NewCustomerRepository(store)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if repo.Count() != 2 {
        t.Fatalf("expected 2 customers, got %d", repo.Count())
    }

    c, err := repo.GetByID(1001)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    if c.HistoricalOpens != 2 || c.HistoricalClicks != 1 || c.HistoricalConversions != 1 {
        t.Errorf("aggregates wrong: %+v", c)
    }
}
