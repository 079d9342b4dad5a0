package twin_test

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/twinlabs/digitaltwin-backend/internal/twin"
)

func writeBundleFile(t *testing.T, content string) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), "twin_models.json")
    if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
        t.Fatal(err)
    }
    return path
}

const validBundle = `{
  "encoder": {
    "income_brackets": ["High", "Low", "Medium"],
    "interest_segments": ["Bargain Hunter", "Fashionista", "Home Decor", "Tech Enthusiast"],
    "campaign_types": ["Cart Abandonment", "Newsletter", "Promo", "Welcome"]
  },
  "models": {
    "opened":       {"weights": [0,0,0,0,0,0,0,0,0,0,0,0.01,0.02,-0.01,0.005], "bias": -0.2},
    "clicked":      {"weights": [0,0,0,0,0,0,0,0,0,0,0,0,0,0,0], "bias": -2.5},
    "unsubscribed": {"weights": [0,0,0,0,0,0,0,0,0,0,0,0,0,0,0], "bias": -3.5},
    "converted":    {"weights": [0,0,0,0,0,0,0,0,0,0,0,0,0,0,0], "bias": -3.9}
  }
}`

func TestLoadBundle(t *testing.T) {
    path := writeBundleFile(t, validBundle)

    b, err := twin.LoadBundle(path)
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }

    fv := twin.FeatureVector{Age: 30, IncomeBracket: "Medium", InterestSegment: "Bargain Hunter",
        PastPurchaseCount: 5, CampaignType: "Promo", SubjectLength: 8, SendHour: 10}

    for _, outcome := range twin.Outcomes {
        probs := b.Estimator(outcome).ScoreProbability([]twin.FeatureVector{fv})
        if len(probs) != 1 {
            t.Fatalf("%s: expected 1 probability, got %d", outcome, len(probs))
        }
        if probs[0] <= 0 || probs[0] >= 1 {
            t.Errorf("%s: probability out of (0,1): %v", outcome, probs[0])
        }
    }
}

func TestLoadBundleMissingFile(t *testing.T) {
    if _, err := twin.LoadBundle(filepath.Join(t.TempDir(), "nope.json")); err == nil {
        t.Fatal("expected error for missing bundle file")
    }
}

func TestLoadBundleMissingOutcome(t *testing.T) {
    path := writeBundleFile(t, `{
      "encoder": {"income_brackets": [], "interest_segments": [], "campaign_types": []},
      "models": {"opened": {"weights": [0,0,0,0], "bias": 0}}
    }`)
    if _, err := twin.LoadBundle(path); err == nil {
        t.Fatal("expected error for bundle missing outcome models")
    }
}

func TestLoadBundleWeightWidthMismatch(t *testing.T) {
    path := writeBundleFile(t, `{
      "encoder": {"income_brackets": ["Low"], "interest_segments": ["A"], "campaign_types": ["Promo"]},
      "models": {
        "opened":       {"weights": [0, 0], "bias": 0},
        "clicked":      {"weights": [0, 0], "bias": 0},
        "unsubscribed": {"weights": [0, 0], "bias": 0},
        "converted":    {"weights": [0, 0], "bias": 0}
      }
    }`)
    if _, err := twin.LoadBundle(path); err == nil {
        t.Fatal("expected error when weight count does not match encoder width")
    }
}
