package agro

type ResourceKind string

// Wire names kept as the dashboard sends them.
const (
	WaterUsage ResourceKind = "Water Usage"
	Fertilizer ResourceKind = "Fertilizer"
	Pesticide  ResourceKind = "Pesticide"
)

type WeatherSample struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
}

type Recommendation struct {
	Resource ResourceKind `json:"resource"`
	Advice   string       `json:"advice"`
	Amount   string       `json:"amount"`
}

// Stages is the fixed month-by-month farming cycle.
var Stages = [12]string{
	"Land Preparation", "Sowing", "Early Growth", "Irrigation",
	"Fertilization", "Pest Control", "Weeding", "Flowering",
	"Fruit/Bulb Development", "Final Irrigation", "Ripening", "Harvesting",
}

func StageFor(monthIndex int) string {
	return Stages[monthIndex%len(Stages)]
}

// Recommend maps one month's weather to advice and a dosage for the given
// resource. Pure; an unknown resource kind yields empty advice/amount.
func Recommend(w WeatherSample, r ResourceKind) Recommendation {
	rec := Recommendation{Resource: r}

	switch r {
	case WaterUsage:
		switch {
		case w.Rainfall < 10:
			rec.Advice = "Increase irrigation this month."
			rec.Amount = "300-500 liters per acre"
		case w.Rainfall > 25:
			rec.Advice = "Reduce watering due to heavy rainfall."
			rec.Amount = "100-200 liters per acre"
		default:
			rec.Advice = "Maintain standard irrigation."
			rec.Amount = "250-300 liters per acre"
		}
	case Fertilizer:
		switch {
		case w.Temperature > 30:
			rec.Advice = "Apply fertilizer in early morning or evening."
			rec.Amount = "50 kg/acre of NPK (10:26:26)"
		case w.Temperature < 20:
			rec.Advice = "Use slow-release fertilizer."
			rec.Amount = "60 kg/acre of Urea"
		default:
			rec.Advice = "Standard fertilizer application is ideal."
			rec.Amount = "45 kg/acre of balanced fertilizer"
		}
	case Pesticide:
		if w.Rainfall > 20 {
			rec.Advice = "Delay spraying until after rain."
			rec.Amount = "1.5 liters/acre"
		} else {
			rec.Advice = "Spray pesticides in dry conditions."
			rec.Amount = "1 liter/acre"
		}
	}
	return rec
}
