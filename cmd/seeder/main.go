// cmd/seeder/main.go
//
// Regenerates the synthetic historical-interaction dataset consumed by the
// trainer and the customer repository. Writes to Postgres by default, or to a
// CSV file when DATA_BACKEND=csv.
package main

import (
    "database/sql"
    "encoding/csv"
    "fmt"
    "log"
    "math"
    "math/rand"
    "os"
    "strconv"
    "unicode/utf8"

    _ "github.com/lib/pq"

    "github.com/twinlabs/digitaltwin-backend/internal/config"
    "github.com/twinlabs/digitaltwin-backend/internal/db"
    "github.com/twinlabs/digitaltwin-backend/internal/model"
)

var firstNames = []string{
    "Emma", "Liam", "Olivia", "Noah", "Ava", "Ethan", "Sophia", "Mason",
    "Isabella", "William", "Mia", "James", "Charlotte", "Benjamin", "Amelia",
    "Lucas", "Harper", "Henry", "Evelyn", "Alexander", "Abigail", "Michael",
    "Emily", "Daniel", "Elizabeth", "Jacob", "Sofia", "Logan", "Avery", "Jackson",
}

var lastNames = []string{
    "Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
    "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
    "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
    "Chen", "Kim", "Patel", "Singh", "Murphy", "Cook", "Bailey",
}

var subjectLines = map[string][]string{
    "Promo": {
        "Flash Sale: 50% Off Everything!", "Your Exclusive Discount Inside",
        "Last Chance for Black Friday Deals", "Save Big on Your Favorites",
    },
    "Newsletter": {
        "This Week's Top Trends", "5 Tips for Better Living",
        "What's New at Our Store", "Curated Picks Just for You",
    },
    "Welcome": {
        "Welcome to the Family!", "Thanks for Signing Up - Here's 10% Off",
        "Getting Started with Your Account",
    },
    "Cart Abandonment": {
        "You Left Something Behind", "Complete Your Purchase Now",
        "Still Thinking About It?",
    },
}

type seedCampaign struct {
    id          string
    campaignTyp string
    subject     string
    sendHour    int
}

func main() {
    config.Load()

    n := 10000
    if v, err := strconv.Atoi(config.Get("SEED_ROWS", "")); err == nil && v > 0 {
        n = v
    }

    rng := rand.New(rand.NewSource(42))
    rows := generate(rng, n)

    // Verification stats, same ones the reference generator prints
    var opens, clicks, unsubs, convs int
    for _, r := range rows {
        if r.Opened {
            opens++
        }
        if r.Clicked {
            clicks++
        }
        if r.Unsubscribed {
            unsubs++
        }
        if r.Converted {
            convs++
        }
    }
    log.Printf("Generated %d rows: open %.2f%%, click %.2f%%, unsub %.2f%%, convert %.2f%%\n",
        n, pct(opens, n), pct(clicks, n), pct(unsubs, n), pct(convs, n))

    switch backend := config.Get("DATA_BACKEND", "postgres"); backend {
    case "postgres":
        conn, err := db.Connect()
        if err != nil {
            log.Fatalf("failed to connect to DB: %v", err)
        }
        defer conn.Close()
        if err := seedPostgres(conn, rows); err != nil {
            log.Fatalf("failed to seed interactions: %v", err)
        }
        log.Println("✅ Seeded interactions table")
    case "csv":
        path := config.Get("DATA_CSV_PATH", "data/ecommerce_marketing_data.csv")
        if err := writeCSV(path, rows); err != nil {
            log.Fatalf("failed to write %s: %v", path, err)
        }
        log.Println("✅ Wrote", path)
    default:
        log.Fatalf("unknown DATA_BACKEND: %s", backend)
    }
}

func pct(count, total int) float64 {
    return 100 * float64(count) / float64(total)
}

func generate(rng *rand.Rand, n int) []model.InteractionRow {
    // 50 unique campaigns shared across the population
    campaigns := make([]seedCampaign, 50)
    types := []string{"Promo", "Newsletter", "Welcome", "Cart Abandonment"}
    typeWeights := []float64{0.4, 0.3, 0.1, 0.2}
    for i := range campaigns {
        ct := weightedChoice(rng, types, typeWeights)
        subjects := subjectLines[ct]
        campaigns[i] = seedCampaign{
            id:          fmt.Sprintf("CMP-%d", 1000+i),
            campaignTyp: ct,
            subject:     subjects[rng.Intn(len(subjects))],
            sendHour:    8 + rng.Intn(14), // 8-21
        }
    }

    incomes := []string{"Low", "Medium", "High"}
    incomeWeights := []float64{0.3, 0.5, 0.2}
    segments := []string{"Tech Enthusiast", "Fashionista", "Home Decor", "Bargain Hunter"}

    rows := make([]model.InteractionRow, n)
    for i := 0; i < n; i++ {
        camp := campaigns[rng.Intn(len(campaigns))]
        r := model.InteractionRow{
            UserID:            1001 + i,
            Name:              firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
            Age:               sampleAge(rng),
            IncomeBracket:     weightedChoice(rng, incomes, incomeWeights),
            InterestSegment:   segments[rng.Intn(len(segments))],
            PastPurchaseCount: poisson(rng, 3),
            CampaignID:        camp.id,
            CampaignType:      camp.campaignTyp,
            SubjectLine:       camp.subject,
            SubjectLength:     utf8.RuneCountInString(camp.subject),
            SendHour:          camp.sendHour,
        }

        // Open probability
        pOpen := 0.30
        switch r.CampaignType {
        case "Welcome":
            pOpen += 0.30
        case "Cart Abandonment":
            pOpen += 0.20
        }
        if r.InterestSegment == "Bargain Hunter" && r.CampaignType == "Promo" {
            pOpen += 0.15
        }
        if r.SubjectLength < 35 {
            pOpen += 0.05
        }
        pOpen = clamp01(pOpen + rng.NormFloat64()*0.05)
        r.Opened = rng.Float64() < pOpen

        // Click probability (conditional on open in the generated data)
        pClick := 0.10
        if r.CampaignType == "Promo" {
            pClick += 0.15
        }
        if r.PastPurchaseCount > 4 {
            pClick += 0.10
        }
        r.Clicked = r.Opened && rng.Float64() < clamp01(pClick)

        // Unsubscribe probability
        pUnsub := 0.01
        if r.CampaignType == "Newsletter" {
            pUnsub += 0.04
        }
        if r.Age > 60 {
            pUnsub += 0.03
        }
        if r.PastPurchaseCount == 0 {
            pUnsub += 0.02
        }
        r.Unsubscribed = rng.Float64() < clamp01(pUnsub)

        // Conversion only happens after a click
        r.Converted = r.Clicked && rng.Float64() < 0.25

        rows[i] = r
    }
    return rows
}

func sampleAge(rng *rand.Rand) int {
    v := rng.Float64()
    switch {
    case v < 0.15:
        return 18 + rng.Intn(7) // 18-24
    case v < 0.65:
        return 25 + rng.Intn(20) // 25-44
    default:
        return 45 + rng.Intn(25) // 45-69
    }
}

func weightedChoice(rng *rand.Rand, values []string, weights []float64) string {
    v := rng.Float64()
    acc := 0.0
    for i, w := range weights {
        acc += w
        if v < acc {
            return values[i]
        }
    }
    return values[len(values)-1]
}

// Knuth's method, fine for small lambda
func poisson(rng *rand.Rand, lambda float64) int {
    l := math.Exp(-lambda)
    k := 0
    p := 1.0
    for {
        p *= rng.Float64()
        if p <= l {
            return k
        }
        k++
    }
}

func clamp01(v float64) float64 {
    if v < 0 {
        return 0
    }
    if v > 1 {
        return 1
    }
    return v
}

func seedPostgres(conn *sql.DB, rows []model.InteractionRow) error {
    schema := `
        CREATE TABLE IF NOT EXISTS interactions (
            id SERIAL PRIMARY KEY,
            user_id INT NOT NULL,
            name TEXT NOT NULL,
            age INT NOT NULL,
            income_bracket TEXT NOT NULL,
            interest_segment TEXT NOT NULL,
            past_purchase_count INT NOT NULL,
            campaign_id TEXT NOT NULL,
            campaign_type TEXT NOT NULL,
            subject_line TEXT NOT NULL,
            subject_length INT NOT NULL,
            send_hour INT NOT NULL,
            opened BOOLEAN NOT NULL,
            clicked BOOLEAN NOT NULL,
            unsubscribed BOOLEAN NOT NULL,
            converted BOOLEAN NOT NULL
        )
    `
    if _, err := conn.Exec(schema); err != nil {
        return err
    }
    if _, err := conn.Exec(`TRUNCATE interactions`); err != nil {
        return err
    }

    tx, err := conn.Begin()
    if err != nil {
        return err
    }
    stmt, err := tx.Prepare(`
        INSERT INTO interactions
        (user_id, name, age, income_bracket, interest_segment, past_purchase_count,
         campaign_id, campaign_type, subject_line, subject_length, send_hour,
         opened, clicked, unsubscribed, converted)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
    `)
    if err != nil {
        tx.Rollback()
        return err
    }
    for _, r := range rows {
        if _, err := stmt.Exec(
            r.UserID, r.Name, r.Age, r.IncomeBracket, r.InterestSegment, r.PastPurchaseCount,
            r.CampaignID, r.CampaignType, r.SubjectLine, r.SubjectLength, r.SendHour,
            r.Opened, r.Clicked, r.Unsubscribed, r.Converted,
        ); err != nil {
            tx.Rollback()
            return err
        }
    }
    stmt.Close()
    return tx.Commit()
}

func writeCSV(path string, rows []model.InteractionRow) error {
    f, err := os.Create(path)
    if err != nil {
        return err
    }
    defer f.Close()

    w := csv.NewWriter(f)
    header := []string{
        "user_id", "name", "age", "income_bracket", "interest_segment", "past_purchase_count",
        "campaign_id", "campaign_type", "subject_line", "subject_length", "send_hour",
        "opened", "clicked", "unsubscribed", "converted",
    }
    if err := w.Write(header); err != nil {
        return err
    }
    for _, r := range rows {
        rec := []string{
            strconv.Itoa(r.UserID), r.Name, strconv.Itoa(r.Age), r.IncomeBracket,
            r.InterestSegment, strconv.Itoa(r.PastPurchaseCount),
            r.CampaignID, r.CampaignType, r.SubjectLine,
            strconv.Itoa(r.SubjectLength), strconv.Itoa(r.SendHour),
            boolFlag(r.Opened), boolFlag(r.Clicked), boolFlag(r.Unsubscribed), boolFlag(r.Converted),
        }
        if err := w.Write(rec); err != nil {
            return err
        }
    }
    w.Flush()
    return w.Error()
}

func boolFlag(b bool) string {
    if b {
        return "1"
    }
    return "0"
}
