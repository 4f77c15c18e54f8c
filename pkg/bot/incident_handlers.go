package bot

import (
	"context"
	"fmt"

	"securitybot/pkg/geo"
	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/service"

	tele "gopkg.in/telebot.v3"
)

func incidentCategoryMenu(unique string, selected models.IncidentCategory, withAll bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	cats := models.IncidentCategories
	if withAll {
		cats = append([]models.IncidentCategory{models.IncidentCategoryAll}, cats...)
	}

	var rows []tele.Row
	var current []tele.Btn
	for i, cat := range cats {
		label := string(cat)
		if withAll && cat == selected {
			label = "• " + label
		}
		current = append(current, menu.Data(label, unique, string(cat)))
		if (i+1)%3 == 0 {
			rows = append(rows, menu.Row(current...))
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, menu.Row(current...))
	}
	menu.Inline(rows...)
	return menu
}

func (b *Bot) handleMap(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateMapLocation)
	sess.Unlock()
	return c.Send(msg("map_ask_location"), locationMenu(msg("btn_skip_location")))
}

func toPoint(l *tele.Location) *geo.Point {
	return &geo.Point{Lat: float64(l.Lat), Lng: float64(l.Lng)}
}

func (b *Bot) handleMapLocation(c tele.Context, sess *UserSession) error {
	sess.Lock()
	sess.Origin = toPoint(c.Message().Location)
	sess.State = StateIdle
	sess.Unlock()

	_ = c.Send(msg("location_received"), mainMenu())
	return b.sendIncidents(c, false)
}

// handleMapSkip is the "permission denied" path: the list stays unsorted.
func (b *Bot) handleMapSkip(c tele.Context, sess *UserSession) error {
	sess.Lock()
	sess.Origin = nil
	sess.State = StateIdle
	sess.Unlock()

	_ = c.Send(msg("location_denied"), mainMenu())
	return b.sendIncidents(c, false)
}

func (b *Bot) sendIncidents(c tele.Context, edit bool) error {
	sess := b.session(c)
	sess.Lock()
	category, origin := sess.IncidentCategory, sess.Origin
	sess.Unlock()

	list := b.Svc.Incident().List(category, origin)
	text := renderIncidents(list, category, origin)
	menu := incidentCategoryMenu(cbIncidentCat.Unique, category, true)
	if edit {
		return c.Edit(text, menu)
	}
	return c.Send(text, menu)
}

func (b *Bot) handleIncidentCategory(c tele.Context) error {
	category := models.IncidentCategory(c.Data())
	if category != models.IncidentCategoryAll && !models.IsCategory(category) {
		return b.alert(c, msg("unknown_option"))
	}
	sess := b.session(c)
	sess.Lock()
	sess.IncidentCategory = category
	sess.Unlock()

	_ = c.Respond()
	return b.sendIncidents(c, true)
}

func (b *Bot) handleReportStart(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.Report = service.ReportInput{}
	sess.Unlock()
	return c.Send(msg("report_category"), incidentCategoryMenu(cbReportCat.Unique, "", false))
}

func (b *Bot) handleReportCategory(c tele.Context) error {
	category := models.IncidentCategory(c.Data())
	if !models.IsCategory(category) {
		return b.alert(c, "⚠️ "+service.ErrUnknownCategory.Error())
	}
	_ = c.Respond()

	sess := b.session(c)
	sess.Lock()
	sess.reset(StateReportText)
	sess.Report = service.ReportInput{Category: category}
	sess.Unlock()
	return c.Send(msg("report_describe"), tele.RemoveKeyboard)
}

func (b *Bot) handleReportText(c tele.Context, sess *UserSession) error {
	sess.Lock()
	sess.Report.Description = c.Text()
	if err := service.ValidateReport(sess.Report); err != nil {
		sess.Unlock()
		_ = c.Send(alertText(err))
		return c.Send(msg("report_describe"))
	}
	sess.State = StateReportLocation
	sess.Unlock()
	return c.Send(msg("report_location"), locationMenu(msg("btn_skip_location")))
}

func (b *Bot) handleReportLocation(c tele.Context, sess *UserSession) error {
	sess.Lock()
	sess.Report.Location = toPoint(c.Message().Location)
	sess.State = StateReportPhotos
	sess.Unlock()
	return b.askPhotos(c)
}

func (b *Bot) handleReportLocationSkip(c tele.Context, sess *UserSession) error {
	sess.Lock()
	sess.Report.Location = nil
	sess.State = StateReportPhotos
	sess.Unlock()
	return b.askPhotos(c)
}

func (b *Bot) askPhotos(c tele.Context) error {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(msg("btn_done"))))
	return c.Send(msg("report_photos"), menu)
}

func (b *Bot) handleReportPhoto(c tele.Context, sess *UserSession) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}
	sess.Lock()
	sess.Report.Photos = append(sess.Report.Photos, photo.FileID)
	n := len(sess.Report.Photos)
	sess.Unlock()
	return c.Send(fmt.Sprintf(msg("photo_added"), n))
}

func (b *Bot) handleReportPhotosDone(c tele.Context, sess *UserSession) error {
	if c.Text() != msg("btn_done") {
		return b.askPhotos(c)
	}
	sess.Lock()
	sess.State = StateReportConfirm
	sess.Unlock()
	return b.sendReportSummary(c, false)
}

func (b *Bot) sendReportSummary(c tele.Context, edit bool) error {
	sess := b.session(c)
	sess.Lock()
	report := sess.Report
	sess.Unlock()

	anon := msg("btn_anon_off")
	if report.Anonymous {
		anon = msg("btn_anon_on")
	}
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(anon, cbReportAnon.Unique)),
		menu.Row(menu.Data(msg("btn_submit"), cbReportSubmit.Unique), menu.Data(msg("btn_cancel"), cbCancel.Unique)),
	)
	if edit {
		return c.Edit(renderReport(report), menu)
	}
	return c.Send(renderReport(report), menu)
}

func (b *Bot) handleReportAnonymous(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	if sess.State != StateReportConfirm {
		sess.Unlock()
		return c.Respond()
	}
	sess.Report.Anonymous = !sess.Report.Anonymous
	sess.Unlock()

	_ = c.Respond()
	return b.sendReportSummary(c, true)
}

func (b *Bot) handleReportSubmit(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	if sess.State != StateReportConfirm || sess.hasPending() {
		sess.Unlock()
		return c.Respond()
	}
	report := sess.Report
	report.Photos = append([]string(nil), sess.Report.Photos...)
	user := b.profile(c)
	b.runPending(deviceID(c), sess, func(ctx context.Context) (string, error) {
		if _, err := b.Svc.Incident().Submit(ctx, user, report); err != nil {
			return "", err
		}
		return msg("report_sent"), nil
	})
	sess.Unlock()

	_ = c.Respond()
	b.Log.Debug("incident report submitted", logger.String("category", string(report.Category)), logger.Int64("device_id", deviceID(c)))
	return c.Edit(msg("report_sending"), cancelMenu())
}
