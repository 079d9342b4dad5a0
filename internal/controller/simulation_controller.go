// internal/controller/simulation_controller.go
package controller

import (
    "encoding/json"
    "net/http"

    "github.com/twinlabs/digitaltwin-backend/internal/model"
    "github.com/twinlabs/digitaltwin-backend/internal/service"
)

// MaxSimulationBatch caps one simulate request, mirroring the list endpoint's
// page_size bound. Guards against unbounded memory use from huge ID lists.
const MaxSimulationBatch = 10000

type SimulationController struct {
    SimulationService *service.SimulationService
}

func (c *SimulationController) Simulate(w http.ResponseWriter, r *http.Request) {
    var body struct {
        CustomerIDs []int `json:"customer_ids"`
        Campaign    struct {
            Type        string `json:"type"`
            SubjectLine string `json:"subject_line"`
            SendHour    int    `json:"send_hour"`
        } `json:"campaign"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    if len(body.CustomerIDs) == 0 {
        http.Error(w, "no customers selected", http.StatusBadRequest)
        return
    }
    if len(body.CustomerIDs) > MaxSimulationBatch {
        http.Error(w, "too many customers in one simulation", http.StatusBadRequest)
        return
    }

    campaign := model.Campaign{
        Type:        body.Campaign.Type,
        SubjectLine: body.Campaign.SubjectLine,
        SendHour:    body.Campaign.SendHour,
    }

    result, err := c.SimulationService.Simulate(body.CustomerIDs, campaign)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    // All IDs unknown: the engine reports an empty batch, the API calls it 404.
    if len(result.Predictions) == 0 {
        http.Error(w, "no customers found for given IDs", http.StatusNotFound)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(result)
}

func (c *SimulationController) CampaignTypes(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "types": model.CampaignTypes(),
    })
}

func (c *SimulationController) Segments(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "segments":      model.Segments(),
        "income_levels": model.IncomeLevels(),
    })
}

func (c *SimulationController) Root(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]string{
        "message": "Digital Twin API",
        "status":  "online",
    })
}
