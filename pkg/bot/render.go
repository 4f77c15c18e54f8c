package bot

import (
	"fmt"
	"html"
	"strings"

	"securitybot/pkg/format"
	"securitybot/pkg/geo"
	"securitybot/pkg/models"
	"securitybot/service"
)

func esc[T ~string](v T) string {
	return html.EscapeString(string(v))
}

func renderSlide(i int) string {
	s := onboardingSlides[i]
	return fmt.Sprintf("<b>%s</b>\n\n%s\n\n%d/%d", s.Title, s.Description, i+1, len(onboardingSlides))
}

func renderPrice(p *int64) string {
	if p == nil {
		return "Price on request"
	}
	return format.CLP(*p)
}

func renderHome(greeting string, active []models.ActiveService, featured []models.Service) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s 👋</b>\n", html.EscapeString(greeting))

	sb.WriteString("\n<b>Your services</b>\n")
	if len(active) == 0 {
		sb.WriteString("You have no active services.\n")
	}
	for _, a := range active {
		fmt.Fprintf(&sb, "• %s  %s\n", html.EscapeString(a.Service.Name), format.Chip(string(a.Request.Status)))
	}

	if len(featured) > 0 {
		sb.WriteString("\n<b>Featured</b>\n")
		for _, s := range featured {
			fmt.Fprintf(&sb, "• %s (%s)\n", html.EscapeString(s.Name), esc(s.Category))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderServiceList(list []models.Service, category models.ServiceCategory, query string) string {
	var sb strings.Builder
	sb.WriteString("<b>Services</b>")
	if category != "" && category != models.ServiceCategoryAll {
		fmt.Fprintf(&sb, " · %s", esc(category))
	}
	if q := strings.TrimSpace(query); q != "" {
		fmt.Fprintf(&sb, " · \"%s\"", html.EscapeString(q))
	}
	sb.WriteString("\n")

	if len(list) == 0 {
		sb.WriteString("\nNo services match your search.")
		return sb.String()
	}
	for _, s := range list {
		fmt.Fprintf(&sb, "\n<b>%s</b> · %s\n%s\n", html.EscapeString(s.Name), renderPrice(s.Price), html.EscapeString(s.Description))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderServiceDetail(s models.Service) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n%s · %s\n\n%s\n", html.EscapeString(s.Name), esc(s.Category), renderPrice(s.Price), html.EscapeString(s.Description))
	if len(s.Benefits) > 0 {
		sb.WriteString("\n<b>Benefits</b>\n")
		for _, b := range s.Benefits {
			fmt.Fprintf(&sb, "✔️ %s\n", html.EscapeString(b))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderIncidents(list []models.Incident, category models.IncidentCategory, origin *geo.Point) string {
	var sb strings.Builder
	sb.WriteString("<b>Incidents near you</b>")
	if category != "" && category != models.IncidentCategoryAll {
		fmt.Fprintf(&sb, " · %s", esc(category))
	}
	sb.WriteString("\n")
	if origin != nil {
		fmt.Fprintf(&sb, "📍 %s\n", format.Coordinates(*origin))
	}

	if len(list) == 0 {
		sb.WriteString("\nNo incidents in this category.")
		return sb.String()
	}
	for _, inc := range list {
		fmt.Fprintf(&sb, "\n<b>%s</b> · %s\n%s\n", esc(inc.Category), format.Chip(string(inc.Status)), html.EscapeString(inc.Description))
		fmt.Fprintf(&sb, "🗓 %s", format.DateDDMMYY(inc.Date))
		if origin != nil {
			fmt.Fprintf(&sb, " · 📏 %s", format.DistanceKM(service.Distance(*origin, inc)))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderReport(in service.ReportInput) string {
	var sb strings.Builder
	sb.WriteString("<b>Review your report</b>\n\n")
	fmt.Fprintf(&sb, "Category: %s\n", esc(in.Category))
	fmt.Fprintf(&sb, "Description: %s\n", html.EscapeString(strings.TrimSpace(in.Description)))
	if in.Location != nil {
		fmt.Fprintf(&sb, "Location: %s\n", format.Coordinates(*in.Location))
	} else {
		fmt.Fprintf(&sb, "Location: %s (default)\n", format.Coordinates(service.DefaultReportLocation))
	}
	fmt.Fprintf(&sb, "Photos: %d\n", len(in.Photos))
	if in.Anonymous {
		sb.WriteString("Reported anonymously")
	} else {
		sb.WriteString("Reported with your name")
	}
	return sb.String()
}

func renderPayments(list []models.PaymentView, filter models.PaymentFilter, totalPending int64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>Payments</b> · %s\n", esc(filter))
	fmt.Fprintf(&sb, "Total pending: <b>%s</b>\n", format.CLP(totalPending))

	if len(list) == 0 {
		sb.WriteString("\nNo payments found.")
		return sb.String()
	}
	for _, p := range list {
		fmt.Fprintf(&sb, "\n<b>%s</b> · %s\n", html.EscapeString(p.ServiceName), format.Chip(string(p.Status)))
		fmt.Fprintf(&sb, "%s · %s · %s\n", format.CLP(p.Amount), p.Method, format.DateDDMMYY(p.Date))
		if p.Receipt != nil {
			fmt.Fprintf(&sb, "🧾 %s\n", *p.Receipt)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderVehicle(v models.Vehicle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b> · %s %s\n", v.Plate, format.LegalTone(v.Status).Emoji(), v.Status)
	fmt.Fprintf(&sb, "%s %s %d · %s · %s\n", v.Make, v.Model, v.Year, v.Color, v.Type)
	fmt.Fprintf(&sb, "\n<b>Owner</b>\n%s · %s\n", html.EscapeString(v.Owner.Name), v.Owner.NationalID)
	fmt.Fprintf(&sb, "Last verification: %s\n", format.DateDDMMYY(v.LastVerification))

	if len(v.ActiveServices) > 0 {
		sb.WriteString("\n<b>Active services</b>\n")
		for _, s := range v.ActiveServices {
			fmt.Fprintf(&sb, "• %s\n", html.EscapeString(s))
		}
	}
	if len(v.History) > 0 {
		sb.WriteString("\n<b>History</b>\n")
		for _, e := range v.History {
			fmt.Fprintf(&sb, "%s · %s: %s\n", format.DateDDMMYY(e.Date), html.EscapeString(e.Event), html.EscapeString(e.Description))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderProfile(u models.User, stats service.ProfileStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%s</b>\n", html.EscapeString(u.Name))
	fmt.Fprintf(&sb, "🪪 %s\n📧 %s\n📱 %s\n\n", u.NationalID, html.EscapeString(u.Email), html.EscapeString(u.Phone))
	fmt.Fprintf(&sb, "Requests: %d · Incidents: %d · Payments: %d", stats.Requests, stats.Incidents, stats.Payments)
	return sb.String()
}
