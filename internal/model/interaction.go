// internal/model/interaction.go
package model

// InteractionRow is one historical campaign send to one user, as produced by
// the data generator and consumed by the trainer and the customer repository.
type InteractionRow struct {
    UserID            int    `json:"user_id"`
    Name              string `json:"name"`
    Age               int    `json:"age"`
    IncomeBracket     string `json:"income_bracket"`
    InterestSegment   string `json:"interest_segment"`
    PastPurchaseCount int    `json:"past_purchase_count"`
    CampaignID        string `json:"campaign_id"`
    CampaignType      string `json:"campaign_type"`
    SubjectLine       string `json:"subject_line"`
    SubjectLength     int    `json:"subject_length"`
    SendHour          int    `json:"send_hour"`
    Opened            bool   `json:"opened"`
    Clicked           bool   `json:"clicked"`
    Unsubscribed      bool   `json:"unsubscribed"`
    Converted         bool   `json:"converted"`
}
