package bot

import (
	"context"
	"fmt"
	"time"

	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/service"

	tele "gopkg.in/telebot.v3"
)

func (b *Bot) profile(c tele.Context) *models.User {
	st := b.Svc.Auth().Peek(deviceID(c))
	return st.Profile
}

func (b *Bot) handleHome(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.Unlock()

	user := b.profile(c)
	if user == nil {
		return b.showLogin(c)
	}
	hour := time.Now().In(b.Cfg.Location()).Hour()
	text := renderHome(
		service.Greeting(user.FirstName(), hour),
		b.Svc.Catalog().ActiveServices(user.ID),
		b.Svc.Catalog().Featured(),
	)
	return c.Send(text+"\n\n"+msg("home_menu"), mainMenu())
}

func categoryRows(menu *tele.ReplyMarkup, selected models.ServiceCategory) []tele.Row {
	all := append([]models.ServiceCategory{models.ServiceCategoryAll}, models.ServiceCategories...)

	var rows []tele.Row
	var current []tele.Btn
	for i, cat := range all {
		label := string(cat)
		if cat == selected {
			label = "• " + label
		}
		current = append(current, menu.Data(label, cbCategory.Unique, string(cat)))
		if (i+1)%3 == 0 {
			rows = append(rows, menu.Row(current...))
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, menu.Row(current...))
	}
	return append(rows, menu.Row(menu.Data(msg("btn_search"), cbSearch.Unique)))
}

func serviceListMenu(list []models.Service, selected models.ServiceCategory) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, s := range list {
		rows = append(rows, menu.Row(menu.Data(s.Name, cbService.Unique, s.ID)))
	}
	menu.Inline(append(rows, categoryRows(menu, selected)...)...)
	return menu
}

func (b *Bot) sendServices(c tele.Context, category models.ServiceCategory, query string, edit bool) error {
	list := b.Svc.Catalog().List(category, query)
	text := renderServiceList(list, category, query)
	menu := serviceListMenu(list, category)
	if edit {
		return c.Edit(text, menu)
	}
	return c.Send(text, menu)
}

func (b *Bot) handleServices(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	category := sess.ServiceCategory
	sess.Unlock()
	return b.sendServices(c, category, "", false)
}

func (b *Bot) handleServiceCategory(c tele.Context) error {
	category := models.ServiceCategory(c.Data())
	if category != models.ServiceCategoryAll && !models.IsServiceCategory(category) {
		return b.alert(c, msg("unknown_option"))
	}
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.ServiceCategory = category
	sess.Unlock()

	_ = c.Respond()
	return b.sendServices(c, category, "", true)
}

func (b *Bot) handleServiceSearch(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateServiceSearch)
	sess.Unlock()

	_ = c.Respond()
	return c.Send(msg("ask_search"))
}

func (b *Bot) handleServiceSearchText(c tele.Context, sess *UserSession) error {
	sess.Lock()
	category := sess.ServiceCategory
	sess.State = StateIdle
	sess.Unlock()
	return b.sendServices(c, category, c.Text(), false)
}

func (b *Bot) handleServiceDetail(c tele.Context) error {
	_ = c.Respond()
	svc := b.Svc.Catalog().Get(c.Data())
	if svc == nil {
		return c.Send(msg("service_gone"))
	}

	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.ServiceID = svc.ID
	category := sess.ServiceCategory
	sess.Unlock()

	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(msg("btn_request"), cbRequest.Unique, svc.ID)),
		menu.Row(menu.Data(msg("btn_back"), cbCategory.Unique, string(category))),
	)
	return c.Edit(renderServiceDetail(*svc), menu)
}

func fieldPrompt(f models.FormField) string {
	return fmt.Sprintf(msg("ask_field"), f.Label, f.Placeholder)
}

func (b *Bot) handleRequestStart(c tele.Context) error {
	_ = c.Respond()
	svc := b.Svc.Catalog().Get(c.Data())
	if svc == nil {
		return c.Send(msg("service_gone"))
	}
	fields := b.Svc.Catalog().FormFields(svc.Category)

	sess := b.session(c)
	sess.Lock()
	sess.reset(StateRequestForm)
	sess.ServiceID = svc.ID
	sess.Unlock()
	return c.Send(fieldPrompt(fields[0]), tele.RemoveKeyboard)
}

func (b *Bot) handleRequestText(c tele.Context, sess *UserSession) error {
	sess.Lock()
	if sess.hasPending() {
		sess.Unlock()
		return c.Send(msg("busy"))
	}
	svc := b.Svc.Catalog().Get(sess.ServiceID)
	if svc == nil {
		sess.reset(StateIdle)
		sess.Unlock()
		return c.Send(msg("service_gone"), mainMenu())
	}
	fields := b.Svc.Catalog().FormFields(svc.Category)
	if sess.Step >= len(fields) {
		sess.reset(StateIdle)
		sess.Unlock()
		return c.Send(msg("error"), mainMenu())
	}
	sess.Form[fields[sess.Step].Key] = c.Text()
	sess.Step++
	if sess.Step < len(fields) {
		next := fields[sess.Step]
		sess.Unlock()
		return c.Send(fieldPrompt(next))
	}

	payload := make(map[string]string, len(sess.Form))
	for k, v := range sess.Form {
		payload[k] = v
	}
	user := b.profile(c)
	b.runPending(deviceID(c), sess, func(ctx context.Context) (string, error) {
		if _, err := b.Svc.Catalog().SubmitRequest(ctx, user, svc.ID, payload); err != nil {
			return "", err
		}
		return fmt.Sprintf(msg("request_sent"), svc.Name), nil
	})
	sess.Unlock()

	b.Log.Debug("service request submitted", logger.String("service_id", svc.ID), logger.Int64("device_id", deviceID(c)))
	return c.Send(msg("request_sending"), cancelMenu())
}
