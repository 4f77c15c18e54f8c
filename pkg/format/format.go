package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"securitybot/pkg/geo"
)

var clp = message.NewPrinter(language.MustParse("es-CL"))

// CLP renders an amount of Chilean pesos, e.g. 29990 -> "$29.990".
func CLP(amount int64) string {
	if amount < 0 {
		return "-" + clp.Sprintf("$%d", -amount)
	}
	return clp.Sprintf("$%d", amount)
}

func DateDDMMYY(t time.Time) string {
	return t.Format("02/01/06")
}

func DistanceKM(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

func Coordinates(p geo.Point) string {
	return fmt.Sprintf("%.4f, %.4f", p.Lat, p.Lng)
}
