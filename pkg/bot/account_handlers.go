package bot

import (
	"context"
	"fmt"
	"html"
	"strings"

	"securitybot/pkg/format"
	"securitybot/pkg/models"
	"securitybot/service"

	tele "gopkg.in/telebot.v3"
)

func paymentsMenu(list []models.PaymentView, selected models.PaymentFilter) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, p := range list {
		switch {
		case p.Status == models.PaymentPending:
			rows = append(rows, menu.Row(menu.Data(fmt.Sprintf(msg("btn_pay_now"), format.CLP(p.Amount)), cbPay.Unique, p.ID)))
		case p.Status == models.PaymentPaid && p.Receipt != nil:
			rows = append(rows, menu.Row(menu.Data(msg("btn_receipt")+" "+*p.Receipt, cbReceipt.Unique, p.ID)))
		}
	}

	var filters []tele.Btn
	for _, f := range models.PaymentFilters {
		label := string(f)
		if f == selected {
			label = "• " + label
		}
		filters = append(filters, menu.Data(label, cbPayFilter.Unique, string(f)))
	}
	rows = append(rows, menu.Row(filters[:2]...), menu.Row(filters[2:]...))
	rows = append(rows, menu.Row(menu.Data(msg("btn_search"), cbPaySearch.Unique)))
	menu.Inline(rows...)
	return menu
}

func (b *Bot) sendPayments(c tele.Context, query string, edit bool) error {
	sess := b.session(c)
	sess.Lock()
	filter := sess.PaymentFilter
	sess.Unlock()

	list := b.Svc.Payment().List(filter, query)
	text := renderPayments(list, filter, b.Svc.Payment().TotalPending())
	menu := paymentsMenu(list, filter)
	if edit {
		return c.Edit(text, menu)
	}
	return c.Send(text, menu)
}

func (b *Bot) handlePayments(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.Unlock()
	return b.sendPayments(c, "", false)
}

func (b *Bot) handlePaymentFilter(c tele.Context) error {
	filter := models.PaymentFilter(c.Data())
	if !models.IsPaymentFilter(filter) {
		return b.alert(c, msg("unknown_option"))
	}
	sess := b.session(c)
	sess.Lock()
	sess.PaymentFilter = filter
	sess.Unlock()

	_ = c.Respond()
	return b.sendPayments(c, "", true)
}

func (b *Bot) handlePaymentSearch(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StatePaymentSearch)
	sess.Unlock()

	_ = c.Respond()
	return c.Send(msg("ask_search"))
}

func (b *Bot) handlePaymentSearchText(c tele.Context, sess *UserSession) error {
	sess.Lock()
	sess.State = StateIdle
	sess.Unlock()
	return b.sendPayments(c, c.Text(), false)
}

func (b *Bot) handlePay(c tele.Context) error {
	_ = c.Respond()
	id := c.Data()
	var amount string
	for _, p := range b.Svc.Payment().List(models.PaymentFilterPending, "") {
		if p.ID == id {
			amount = format.CLP(p.Amount)
		}
	}
	if amount == "" {
		return c.Send("⚠️ " + service.ErrPaymentNotPending.Error())
	}

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(
		menu.Data(msg("btn_card"), cbPayMethod.Unique, id, string(models.PaymentCard)),
		menu.Data(msg("btn_transfer"), cbPayMethod.Unique, id, string(models.PaymentTransfer)),
	))
	return c.Send(fmt.Sprintf(msg("pay_method"), amount), menu)
}

func (b *Bot) handlePayMethod(c tele.Context) error {
	parts := strings.SplitN(c.Data(), "|", 2)
	if len(parts) != 2 {
		return c.Respond()
	}
	p, err := b.Svc.Payment().PayNow(parts[0], models.PaymentMethod(parts[1]))
	if err != nil {
		return b.alert(c, "⚠️ "+err.Error())
	}
	_ = c.Respond()
	return c.Edit(fmt.Sprintf(msg("paid"), format.CLP(p.Amount), p.Method))
}

func (b *Bot) handleReceipt(c tele.Context) error {
	code, err := b.Svc.Payment().Receipt(c.Data())
	if err != nil {
		return b.alert(c, "⚠️ "+err.Error())
	}
	return b.alert(c, fmt.Sprintf(msg("receipt"), code))
}

func (b *Bot) handlePlateStart(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StatePlate)
	sess.Unlock()
	return c.Send(msg("ask_plate"))
}

func (b *Bot) handlePlateText(c tele.Context, sess *UserSession) error {
	raw := c.Text()
	sess.Lock()
	if sess.hasPending() {
		sess.Unlock()
		return c.Send(msg("busy"))
	}
	if strings.TrimSpace(raw) == "" {
		sess.Unlock()
		return c.Send("⚠️ " + service.ErrEmptyPlate.Error())
	}
	b.runPending(deviceID(c), sess, func(ctx context.Context) (string, error) {
		v, err := b.Svc.Vehicle().Verify(ctx, raw)
		if err != nil {
			return "", err
		}
		if v == nil {
			return fmt.Sprintf(msg("plate_not_found"), html.EscapeString(service.NormalizePlate(raw))), nil
		}
		return renderVehicle(*v), nil
	})
	sess.Unlock()
	return c.Send(msg("plate_checking"), cancelMenu())
}

func (b *Bot) handleProfile(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.Unlock()

	user := b.profile(c)
	if user == nil {
		return b.showLogin(c)
	}
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(msg("btn_logout"), cbLogout.Unique)))
	return c.Send(renderProfile(*user, b.Svc.Profile().Stats(*user)), menu)
}
