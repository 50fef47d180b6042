package climate

// Rothfusz regression coefficients (degrees Fahrenheit, percent humidity).
const (
	hiC1 = -42.379
	hiC2 = 2.04901523
	hiC3 = 10.14333127
	hiC4 = 0.22475541
	hiC5 = 0.00683783
	hiC6 = 0.05481717
	hiC7 = 0.00122874
	hiC8 = 0.00085282
	hiC9 = 0.00000199
)

// HeatIndex returns the apparent temperature in °C for a temperature in °C and a
// relative humidity in percent. Below 26°C or 40% humidity the regression is not
// meaningful and the temperature is returned unchanged.
func HeatIndex(tempC, humidity float64) float64 {
	if tempC < 26 || humidity < 40 {
		return tempC
	}

	t := tempC*9/5 + 32
	h := humidity

	hi := hiC1 + hiC2*t + hiC3*h - hiC4*t*h - hiC5*t*t - hiC6*h*h +
		hiC7*t*t*h + hiC8*t*h*h - hiC9*t*t*h*h

	return (hi - 32) * 5 / 9
}
