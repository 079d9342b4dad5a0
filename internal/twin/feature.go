// internal/twin/feature.go
package twin

import (
    "unicode/utf8"

    "github.com/twinlabs/digitaltwin-backend/internal/model"
)

// FeatureVector is the fixed-schema input to the outcome models: one customer
// crossed with one campaign. Field order matches the training pipeline.
type FeatureVector struct {
    Age               int
    IncomeBracket     string
    InterestSegment   string
    PastPurchaseCount int
    CampaignType      string
    SubjectLength     int
    SendHour          int
}

// BuildFeatures derives the feature vector for one (customer, campaign) pair.
// Pure function; subject length is the literal character count.
func BuildFeatures(c model.Customer, camp model.Campaign) FeatureVector {
    return FeatureVector{
        Age:               c.Age,
        IncomeBracket:     c.IncomeBracket,
        InterestSegment:   c.InterestSegment,
        PastPurchaseCount: c.PastPurchaseCount,
        CampaignType:      camp.Type,
        SubjectLength:     utf8.RuneCountInString(camp.SubjectLine),
        SendHour:          camp.SendHour,
    }
}

// Encoder turns a FeatureVector into the numeric slice the models score.
// Categoricals are one-hot over the vocabulary captured at training time;
// a category unseen during training encodes to an all-zero block (no signal),
// it never fails. Numeric fields pass through after the categorical blocks.
type Encoder struct {
    IncomeBrackets   []string `json:"income_brackets"`
    InterestSegments []string `json:"interest_segments"`
    CampaignTypes    []string `json:"campaign_types"`
}

// Width is the length of the encoded vector: three one-hot blocks plus the
// four passthrough numerics.
func (e *Encoder) Width() int {
    return len(e.IncomeBrackets) + len(e.InterestSegments) + len(e.CampaignTypes) + 4
}

// Encode must stay byte-for-byte consistent with the trainer; the encoder is
// persisted inside the model bundle so both sides share one vocabulary.
func (e *Encoder) Encode(fv FeatureVector) []float64 {
    x := make([]float64, 0, e.Width())
    x = appendOneHot(x, e.IncomeBrackets, fv.IncomeBracket)
    x = appendOneHot(x, e.InterestSegments, fv.InterestSegment)
    x = appendOneHot(x, e.CampaignTypes, fv.CampaignType)
    x = append(x,
        float64(fv.Age),
        float64(fv.PastPurchaseCount),
        float64(fv.SubjectLength),
        float64(fv.SendHour),
    )
    return x
}

func appendOneHot(x []float64, vocab []string, value string) []float64 {
    for _, v := range vocab {
        if v == value {
            x = append(x, 1)
        } else {
            x = append(x, 0)
        }
    }
    return x
}
