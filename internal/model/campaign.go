// internal/model/campaign.go
package model

// Campaign describes the hypothetical email being backtested.
type Campaign struct {
    Type        string `json:"type"`
    SubjectLine string `json:"subject_line"`
    SendHour    int    `json:"send_hour"` // 8-21
}

// CampaignTypeOption is returned by the /campaigns/types endpoint.
type CampaignTypeOption struct {
    Value       string `json:"value"`
    Label       string `json:"label"`
    Description string `json:"description"`
}

func CampaignTypes() []CampaignTypeOption {
    return []CampaignTypeOption{
        {Value: "Promo", Label: "Promotional", Description: "Sales and discount campaigns"},
        {Value: "Newsletter", Label: "Newsletter", Description: "Regular content updates"},
        {Value: "Welcome", Label: "Welcome", Description: "New subscriber onboarding"},
        {Value: "Cart Abandonment", Label: "Cart Abandonment", Description: "Recovery emails"},
    }
}

func Segments() []string {
    return []string{"Tech Enthusiast", "Fashionista", "Home Decor", "Bargain Hunter"}
}

func IncomeLevels() []string {
    return []string{"Low", "Medium", "High"}
}
