package agro

import (
	"fmt"
	"math/rand"
)

// YearWeather synthesizes one mock sample per month of the given year,
// dated the first of the month. Temperature is drawn from [20,35) C and
// rainfall from [0,30) mm, floored to whole values like the source data.
func YearWeather(year int, rng *rand.Rand) []WeatherSample {
	out := make([]WeatherSample, 0, 12)
	for m := 0; m < 12; m++ {
		out = append(out, WeatherSample{
			Date:        fmt.Sprintf("%04d-%02d-01", year, m+1),
			Temperature: float64(20 + rng.Intn(15)),
			Rainfall:    float64(rng.Intn(30)),
		})
	}
	return out
}
