// internal/model/customer.go
package model

// Customer is one aggregated digital twin profile. Descriptive fields come from
// the first historical row seen for the user, engagement counters are summed
// over every historical campaign interaction.
type Customer struct {
    UserID                int    `json:"user_id"`
    Name                  string `json:"name"`
    Age                   int    `json:"age"`
    IncomeBracket         string `json:"income_bracket"`
    InterestSegment       string `json:"interest_segment"`
    PastPurchaseCount     int    `json:"past_purchase_count"`
    HistoricalOpens       int    `json:"historical_opens"`
    HistoricalClicks      int    `json:"historical_clicks"`
    HistoricalConversions int    `json:"historical_conversions"`
}
