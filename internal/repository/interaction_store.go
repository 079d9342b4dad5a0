// internal/repository/interaction_store.go
package repository

import (
    "database/sql"
    "encoding/csv"
    "fmt"
    "os"
    "strconv"

    "github.com/twinlabs/digitaltwin-backend/internal/model"
)

// InteractionStore supplies the raw historical interaction rows. Rows must come
// back in a stable order so that first-observed aggregation is deterministic.
type InteractionStore interface {
    Load() ([]model.InteractionRow, error)
}

// PostgresInteractionStore reads history from the interactions table.
type PostgresInteractionStore struct {
    DB *sql.DB
}

func (s *PostgresInteractionStore) Load() ([]model.InteractionRow, error) {
    query := `
        SELECT user_id, name, age, income_bracket, interest_segment, past_purchase_count,
               campaign_id, campaign_type, subject_line, subject_length, send_hour,
               opened, clicked, unsubscribed, converted
        FROM interactions
        ORDER BY user_id, id
    `
    rows, err := s.DB.Query(query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    interactions := []model.InteractionRow{}
    for rows.Next() {
        var r model.InteractionRow
        if err := rows.Scan(
            &r.UserID, &r.Name, &r.Age, &r.IncomeBracket, &r.InterestSegment, &r.PastPurchaseCount,
            &r.CampaignID, &r.CampaignType, &r.SubjectLine, &r.SubjectLength, &r.SendHour,
            &r.Opened, &r.Clicked, &r.Unsubscribed, &r.Converted,
        ); err != nil {
            return nil, err
        }
        interactions = append(interactions, r)
    }
    return interactions, rows.Err()
}

// CSVInteractionStore reads history from the generator's CSV export. File order
// is preserved, which keeps first-observed aggregation stable.
type CSVInteractionStore struct {
    Path string
}

func (s *CSVInteractionStore) Load() ([]model.InteractionRow, error) {
    f, err := os.Open(s.Path)
    if err != nil {
        return nil, fmt.Errorf("failed to open history file: %w", err)
    }
    defer f.Close()

    reader := csv.NewReader(f)
    records, err := reader.ReadAll()
    if err != nil {
        return nil, fmt.Errorf("failed to parse history file: %w", err)
    }
    if len(records) == 0 {
        return nil, fmt.Errorf("history file %s is empty", s.Path)
    }

    // Header maps column name to index so column order in the file is free.
    col := map[string]int{}
    for i, name := range records[0] {
        col[name] = i
    }
    required := []string{
        "user_id", "name", "age", "income_bracket", "interest_segment", "past_purchase_count",
        "campaign_id", "campaign_type", "subject_line", "subject_length", "send_hour",
        "opened", "clicked", "unsubscribed", "converted",
    }
    for _, name := range required {
        if _, ok := col[name]; !ok {
            return nil, fmt.Errorf("history file missing column %q", name)
        }
    }

    interactions := make([]model.InteractionRow, 0, len(records)-1)
    for _, rec := range records[1:] {
        r := model.InteractionRow{
            Name:         rec[col["name"]],
            CampaignID:   rec[col["campaign_id"]],
            CampaignType: rec[col["campaign_type"]],
            SubjectLine:  rec[col["subject_line"]],
        }
        r.IncomeBracket = rec[col["income_bracket"]]
        r.InterestSegment = rec[col["interest_segment"]]
        var convErr error
        r.UserID, convErr = atoi(rec[col["user_id"]], convErr)
        r.Age, convErr = atoi(rec[col["age"]], convErr)
        r.PastPurchaseCount, convErr = atoi(rec[col["past_purchase_count"]], convErr)
        r.SubjectLength, convErr = atoi(rec[col["subject_length"]], convErr)
        r.SendHour, convErr = atoi(rec[col["send_hour"]], convErr)
        r.Opened, convErr = atob(rec[col["opened"]], convErr)
        r.Clicked, convErr = atob(rec[col["clicked"]], convErr)
        r.Unsubscribed, convErr = atob(rec[col["unsubscribed"]], convErr)
        r.Converted, convErr = atob(rec[col["converted"]], convErr)
        if convErr != nil {
            return nil, fmt.Errorf("bad row for user %s: %w", rec[col["user_id"]], convErr)
        }
        interactions = append(interactions, r)
    }
    return interactions, nil
}

func atoi(s string, prev error) (int, error) {
    if prev != nil {
        return 0, prev
    }
    return strconv.Atoi(s)
}

// Flags are stored as 0/1 in the generated dataset.
func atob(s string, prev error) (bool, error) {
    if prev != nil {
        return false, prev
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        return false, err
    }
    return n != 0, nil
}
