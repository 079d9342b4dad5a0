// cmd/trainer/main.go
//
// Fits the four outcome models from the historical interaction dataset and
// writes the model bundle consumed by the server. The encoder vocabulary is
// captured from the training data and persisted inside the bundle, so
// prediction-time encoding is guaranteed to match.
package main

import (
    "log"
    "math"
    "sort"
    "strconv"

    _ "github.com/lib/pq"

    "github.com/twinlabs/digitaltwin-backend/internal/config"
    "github.com/twinlabs/digitaltwin-backend/internal/db"
    "github.com/twinlabs/digitaltwin-backend/internal/model"
    "github.com/twinlabs/digitaltwin-backend/internal/repository"
    "github.com/twinlabs/digitaltwin-backend/internal/twin"
)

func main() {
    config.Load()

    var store repository.InteractionStore
    switch backend := config.Get("DATA_BACKEND", "postgres"); backend {
    case "postgres":
        conn, err := db.Connect()
        if err != nil {
            log.Fatalf("failed to connect to DB: %v", err)
        }
        defer conn.Close()
        store = &repository.PostgresInteractionStore{DB: conn}
    case "csv":
        store = &repository.CSVInteractionStore{
            Path: config.Get("DATA_CSV_PATH", "data/ecommerce_marketing_data.csv"),
        }
    default:
        log.Fatalf("unknown DATA_BACKEND: %s", backend)
    }

    rows, err := store.Load()
    if err != nil {
        log.Fatalf("failed to load dataset: %v", err)
    }
    if len(rows) == 0 {
        log.Fatal("dataset is empty, run the seeder first")
    }
    log.Printf("Loaded %d training rows\n", len(rows))

    encoder := buildEncoder(rows)

    features := make([]twin.FeatureVector, len(rows))
    for i, r := range rows {
        features[i] = twin.FeatureVector{
            Age:               r.Age,
            IncomeBracket:     r.IncomeBracket,
            InterestSegment:   r.InterestSegment,
            PastPurchaseCount: r.PastPurchaseCount,
            CampaignType:      r.CampaignType,
            SubjectLength:     r.SubjectLength,
            SendHour:          r.SendHour,
        }
    }
    encoded := make([][]float64, len(features))
    for i, fv := range features {
        encoded[i] = encoder.Encode(fv)
    }

    epochs := 300
    if v, err := strconv.Atoi(config.Get("TRAIN_EPOCHS", "")); err == nil && v > 0 {
        epochs = v
    }

    bundle := &twin.Bundle{
        Encoder: *encoder,
        Models:  map[string]*twin.LogisticModel{},
    }
    for _, outcome := range twin.Outcomes {
        labels := labelsFor(rows, outcome)
        log.Printf("Training model for %s (positive rate %.2f%%)...\n",
            outcome, 100*positiveRate(labels))
        m := fitLogistic(encoded, labels, epochs)
        log.Printf("  log loss: %.4f\n", logLoss(m, encoded, labels))
        bundle.Models[outcome] = m
    }

    path := config.Get("MODEL_PATH", "data/twin_models.json")
    if err := bundle.Save(path); err != nil {
        log.Fatalf("failed to save model bundle: %v", err)
    }
    log.Println("✅ Saved model bundle to", path)
}

// buildEncoder captures the categorical vocabulary from the training data,
// sorted so the encoding is stable across retrains on the same data.
func buildEncoder(rows []model.InteractionRow) *twin.Encoder {
    incomes := map[string]bool{}
    segments := map[string]bool{}
    campaignTypes := map[string]bool{}
    for _, r := range rows {
        incomes[r.IncomeBracket] = true
        segments[r.InterestSegment] = true
        campaignTypes[r.CampaignType] = true
    }
    return &twin.Encoder{
        IncomeBrackets:   sortedKeys(incomes),
        InterestSegments: sortedKeys(segments),
        CampaignTypes:    sortedKeys(campaignTypes),
    }
}

func sortedKeys(set map[string]bool) []string {
    keys := make([]string, 0, len(set))
    for k := range set {
        keys = append(keys, k)
    }
    sort.Strings(keys)
    return keys
}

func labelsFor(rows []model.InteractionRow, outcome string) []float64 {
    labels := make([]float64, len(rows))
    for i, r := range rows {
        var flag bool
        switch outcome {
        case "opened":
            flag = r.Opened
        case "clicked":
            flag = r.Clicked
        case "unsubscribed":
            flag = r.Unsubscribed
        case "converted":
            flag = r.Converted
        }
        if flag {
            labels[i] = 1
        }
    }
    return labels
}

func positiveRate(labels []float64) float64 {
    sum := 0.0
    for _, l := range labels {
        sum += l
    }
    return sum / float64(len(labels))
}

// fitLogistic runs full-batch gradient descent on log loss. Features are
// standardized internally for stable convergence and the scaling is folded
// back into the stored weights, so inference scores raw encoded vectors.
func fitLogistic(x [][]float64, y []float64, epochs int) *twin.LogisticModel {
    n := len(x)
    d := len(x[0])

    mean := make([]float64, d)
    std := make([]float64, d)
    for j := 0; j < d; j++ {
        for i := 0; i < n; i++ {
            mean[j] += x[i][j]
        }
        mean[j] /= float64(n)
        for i := 0; i < n; i++ {
            diff := x[i][j] - mean[j]
            std[j] += diff * diff
        }
        std[j] = math.Sqrt(std[j] / float64(n))
        if std[j] == 0 {
            std[j] = 1
        }
    }

    scaled := make([][]float64, n)
    for i := range x {
        row := make([]float64, d)
        for j := range row {
            row[j] = (x[i][j] - mean[j]) / std[j]
        }
        scaled[i] = row
    }

    w := make([]float64, d)
    b := 0.0
    lr := 0.5

    for epoch := 0; epoch < epochs; epoch++ {
        gradW := make([]float64, d)
        gradB := 0.0
        for i := 0; i < n; i++ {
            z := b
            for j := 0; j < d; j++ {
                z += w[j] * scaled[i][j]
            }
            err := twin.Sigmoid(z) - y[i]
            for j := 0; j < d; j++ {
                gradW[j] += err * scaled[i][j]
            }
            gradB += err
        }
        for j := 0; j < d; j++ {
            w[j] -= lr * gradW[j] / float64(n)
        }
        b -= lr * gradB / float64(n)
    }

    // Unfold the standardization into the raw-feature weights.
    rawW := make([]float64, d)
    rawB := b
    for j := 0; j < d; j++ {
        rawW[j] = w[j] / std[j]
        rawB -= w[j] * mean[j] / std[j]
    }
    return &twin.LogisticModel{Weights: rawW, Bias: rawB}
}

func logLoss(m *twin.LogisticModel, x [][]float64, y []float64) float64 {
    const eps = 1e-12
    loss := 0.0
    for i := range x {
        z := m.Bias
        for j, w := range m.Weights {
            z += w * x[i][j]
        }
        p := twin.Sigmoid(z)
        if p < eps {
            p = eps
        }
        if p > 1-eps {
            p = 1 - eps
        }
        loss += -(y[i]*math.Log(p) + (1-y[i])*math.Log(1-p))
    }
    return loss / float64(len(x))
}
