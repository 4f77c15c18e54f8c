package bot

type slide struct {
	Title       string
	Description string
}

var onboardingSlides = []slide{
	{Title: "Security at your fingertips", Description: "Hire vehicle, personal, home and corporate security services from one place."},
	{Title: "Report and stay safe", Description: "Report incidents in your area and see what is happening around you on the map."},
	{Title: "Immediate response", Description: "Verify vehicles, follow your active services and keep your payments up to date."},
}

var messages = map[string]map[string]string{
	"en": {
		"btn_next":          "Next ➡️",
		"btn_skip":          "Skip",
		"btn_get_started":   "Get started 🚀",
		"btn_sign_in":       "🔐 Sign in",
		"btn_register":      "📝 Create account",
		"btn_home":          "🏠 Home",
		"btn_services":      "🛡 Services",
		"btn_map":           "🗺 Map",
		"btn_report":        "🚨 Report",
		"btn_payments":      "💳 Payments",
		"btn_plate":         "🚗 Verify plate",
		"btn_profile":       "👤 Profile",
		"btn_search":        "🔍 Search",
		"btn_request":       "📨 Request service",
		"btn_back":          "⬅️ Back",
		"btn_cancel":        "❌ Cancel",
		"btn_share":         "📍 Share location",
		"btn_skip_location": "⏭ Continue without location",
		"btn_done":          "✅ Done",
		"btn_anon_on":       "🙈 Anonymous: on",
		"btn_anon_off":      "👁 Anonymous: off",
		"btn_submit":        "📤 Submit report",
		"btn_pay_now":       "💳 Pay %s",
		"btn_card":          "💳 Card",
		"btn_transfer":      "🏦 Transfer",
		"btn_receipt":       "🧾 Receipt",
		"btn_logout":        "🚪 Log out",

		"login":             "🔐 <b>Sign in</b>\nUse your email and password to continue.",
		"ask_email":         "📧 Enter your email:",
		"ask_password":      "🔑 Enter your password:",
		"login_failed":      "❌ Invalid email or password.",
		"ask_register":      "📝 %s:",
		"registered":        "🎉 Your account was created.",
		"logged_out":        "👋 You have been logged out.",
		"home_menu":         "Choose an option from the menu below.",
		"ask_search":        "🔍 Type what you are looking for:",
		"ask_field":         "✏️ <b>%s</b>\n<i>%s</i>",
		"request_sending":   "⏳ Sending your request...",
		"request_sent":      "✅ Request for <b>%s</b> sent. We will contact you shortly.",
		"cancelled":         "❌ Cancelled.",
		"service_gone":      "❌ That service is no longer available.",
		"map_ask_location":  "📍 Share your location to sort incidents by distance.",
		"location_received": "📍 Location received.",
		"location_denied":   "⚠️ Location not shared. Incidents are shown without distance.",
		"report_category":   "🚨 <b>Report an incident</b>\nChoose a category:",
		"report_describe":   "✏️ Describe what happened:",
		"report_location":   "📍 Share the incident location or continue with the default location.",
		"report_photos":     "📷 Send photos of the incident, then press Done.",
		"photo_added":       "📷 Photo added (%d).",
		"report_sending":    "⏳ Sending your report...",
		"report_sent":       "✅ Report sent. Thank you for helping keep your city safe.",
		"ask_plate":         "🚗 Enter the plate to verify (e.g. ABCD12):",
		"plate_checking":    "⏳ Checking plate...",
		"plate_not_found":   "❌ No vehicle found with plate <b>%s</b>.",
		"pay_method":        "💳 Choose a payment method for %s:",
		"paid":              "✅ Payment of %s processed with %s.",
		"receipt":           "🧾 Receipt %s downloaded.",
		"error":             "⚠️ Something went wrong. Please try again.",
		"busy":              "⏳ Please wait, we are still processing your last action.",
		"unknown_option":    "⚠️ That option is no longer available.",
	},
}

func msg(key string) string {
	return messages["en"][key]
}
