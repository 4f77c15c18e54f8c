package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"securitybot/config"
	"securitybot/pkg/logger"
	"securitybot/service"

	tele "gopkg.in/telebot.v3"
)

// Callback endpoints. Inline buttons carry their payload after the unique.
var (
	cbOnboardNext  = &tele.Btn{Unique: "onb_next"}
	cbOnboardSkip  = &tele.Btn{Unique: "onb_skip"}
	cbSignIn       = &tele.Btn{Unique: "sign_in"}
	cbRegister     = &tele.Btn{Unique: "register"}
	cbCategory     = &tele.Btn{Unique: "svc_cat"}
	cbSearch       = &tele.Btn{Unique: "svc_search"}
	cbService      = &tele.Btn{Unique: "svc"}
	cbRequest      = &tele.Btn{Unique: "req"}
	cbCancel       = &tele.Btn{Unique: "cancel"}
	cbIncidentCat  = &tele.Btn{Unique: "inc_cat"}
	cbReportCat    = &tele.Btn{Unique: "rep_cat"}
	cbReportAnon   = &tele.Btn{Unique: "rep_anon"}
	cbReportSubmit = &tele.Btn{Unique: "rep_submit"}
	cbPayFilter    = &tele.Btn{Unique: "pay_filter"}
	cbPaySearch    = &tele.Btn{Unique: "pay_search"}
	cbPay          = &tele.Btn{Unique: "pay"}
	cbPayMethod    = &tele.Btn{Unique: "pay_method"}
	cbReceipt      = &tele.Btn{Unique: "receipt"}
	cbLogout       = &tele.Btn{Unique: "logout"}
)

type Bot struct {
	Bot      *tele.Bot
	Log      logger.ILogger
	Cfg      *config.Config
	Svc      service.IServiceManager
	Sessions *sessionStore

	ctx context.Context
	// deliver sends a finished submission's result to a chat.
	deliver func(chatID int64, text string) error
	pending sync.WaitGroup
}

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger) (*Bot, error) {
	pref := tele.Settings{
		Token:     cfg.TelegramBotToken,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeHTML,
		OnError: func(err error, c tele.Context) {
			log.Error("telegram handler failed", logger.Error(err))
		},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	bot := &Bot{
		Bot:      b,
		Log:      log,
		Cfg:      cfg,
		Svc:      svc,
		Sessions: newSessionStore(),
		ctx:      context.Background(),
	}
	bot.deliver = func(chatID int64, text string) error {
		_, err := b.Send(tele.ChatID(chatID), text, mainMenu())
		return err
	}
	bot.registerHandlers()
	return bot, nil
}

// Run polls for updates until ctx is cancelled. Pending submissions are
// bound to ctx and abandoned with it.
func (b *Bot) Run(ctx context.Context) {
	b.ctx = ctx
	b.Log.Info("🤖 Security bot started...")
	go b.Bot.Start()

	<-ctx.Done()
	b.Sessions.cancelAll()
	b.pending.Wait()
	b.Bot.Stop()
	b.Log.Info("Security bot stopped")
}

func (b *Bot) registerHandlers() {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle(cbOnboardNext, b.handleOnboardNext)
	b.Bot.Handle(cbOnboardSkip, b.handleOnboardSkip)
	b.Bot.Handle(cbSignIn, b.handleSignIn)
	b.Bot.Handle(cbRegister, b.handleRegisterStart)

	b.Bot.Handle(msg("btn_home"), b.authed(b.handleHome))
	b.Bot.Handle(msg("btn_services"), b.authed(b.handleServices))
	b.Bot.Handle(msg("btn_map"), b.authed(b.handleMap))
	b.Bot.Handle(msg("btn_report"), b.authed(b.handleReportStart))
	b.Bot.Handle(msg("btn_payments"), b.authed(b.handlePayments))
	b.Bot.Handle(msg("btn_plate"), b.authed(b.handlePlateStart))
	b.Bot.Handle(msg("btn_profile"), b.authed(b.handleProfile))

	b.Bot.Handle(cbCategory, b.authed(b.handleServiceCategory))
	b.Bot.Handle(cbSearch, b.authed(b.handleServiceSearch))
	b.Bot.Handle(cbService, b.authed(b.handleServiceDetail))
	b.Bot.Handle(cbRequest, b.authed(b.handleRequestStart))
	b.Bot.Handle(cbCancel, b.handleCancel)
	b.Bot.Handle(cbIncidentCat, b.authed(b.handleIncidentCategory))
	b.Bot.Handle(cbReportCat, b.authed(b.handleReportCategory))
	b.Bot.Handle(cbReportAnon, b.authed(b.handleReportAnonymous))
	b.Bot.Handle(cbReportSubmit, b.authed(b.handleReportSubmit))
	b.Bot.Handle(cbPayFilter, b.authed(b.handlePaymentFilter))
	b.Bot.Handle(cbPaySearch, b.authed(b.handlePaymentSearch))
	b.Bot.Handle(cbPay, b.authed(b.handlePay))
	b.Bot.Handle(cbPayMethod, b.authed(b.handlePayMethod))
	b.Bot.Handle(cbReceipt, b.authed(b.handleReceipt))
	b.Bot.Handle(cbLogout, b.authed(b.handleLogout))

	b.Bot.Handle(tele.OnLocation, b.handleLocation)
	b.Bot.Handle(tele.OnPhoto, b.handlePhoto)
	b.Bot.Handle(tele.OnText, b.handleText)
}

func deviceID(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return c.Sender().ID
}

func (b *Bot) session(c tele.Context) *UserSession {
	return b.Sessions.get(deviceID(c))
}

// authed sends devices without a session marker back to the login screen.
func (b *Bot) authed(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		st, err := b.Svc.Auth().SessionState(b.ctx, deviceID(c))
		if err != nil {
			b.Log.Error("failed to read session", logger.Error(err), logger.Int64("device_id", deviceID(c)))
			return b.alert(c, msg("error"))
		}
		if !st.Authenticated {
			if c.Callback() != nil {
				_ = c.Respond()
			}
			return b.showLogin(c)
		}
		return next(c)
	}
}

// alert shows a blocking message: a popup for button presses, a plain
// reply otherwise.
func (b *Bot) alert(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

func alertText(err error) string {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return "⚠️ " + verr.Error()
	}
	return msg("error")
}

func (b *Bot) handleStart(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.Unlock()

	route, err := b.Svc.Route(b.ctx, deviceID(c))
	if err != nil {
		b.Log.Error("failed to route device", logger.Error(err), logger.Int64("device_id", deviceID(c)))
		return c.Send(msg("error"))
	}

	switch route {
	case service.RouteOnboarding:
		return b.showSlide(c, 0, false)
	case service.RouteLogin:
		return b.showLogin(c)
	case service.RouteHome:
		return b.handleHome(c)
	}
	return nil
}

func mainMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(msg("btn_home")), menu.Text(msg("btn_services"))),
		menu.Row(menu.Text(msg("btn_map")), menu.Text(msg("btn_report"))),
		menu.Row(menu.Text(msg("btn_payments")), menu.Text(msg("btn_plate"))),
		menu.Row(menu.Text(msg("btn_profile"))),
	)
	return menu
}

func locationMenu(skip string) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Location(msg("btn_share"))),
		menu.Row(menu.Text(skip)),
	)
	return menu
}

func cancelMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(msg("btn_cancel"), cbCancel.Unique)))
	return menu
}

// handleCancel abandons the chat's in-flight submission.
func (b *Bot) handleCancel(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	had := sess.hasPending()
	sess.reset(StateIdle)
	sess.Unlock()

	_ = c.Respond()
	if had {
		b.Log.Info("submission cancelled by user", logger.Int64("device_id", deviceID(c)))
	}
	return c.Send(msg("cancelled"), mainMenu())
}

// runPending executes fn off the update goroutine. Its result is delivered
// only if the chat has not cancelled or replaced the submission meanwhile.
// The caller holds sess.
func (b *Bot) runPending(chatID int64, sess *UserSession, fn func(ctx context.Context) (string, error)) {
	ctx, ticket := sess.startPending(b.ctx)
	log := b.Log.With(logger.Int64("device_id", chatID), logger.Int64("ticket", int64(ticket)))

	b.pending.Add(1)
	go func() {
		defer b.pending.Done()
		text, err := fn(ctx)

		sess.Lock()
		current := sess.finishPending(ticket)
		if current {
			sess.State = StateIdle
			sess.Step = 0
		}
		sess.Unlock()

		if !current || errors.Is(err, context.Canceled) {
			log.Debug("submission abandoned")
			return
		}
		if err != nil {
			if !service.IsValidation(err) {
				log.Error("submission failed", logger.Error(err))
			}
			text = alertText(err)
		}
		if err := b.deliver(chatID, text); err != nil {
			log.Error("failed to deliver result", logger.Error(err))
		}
	}()
}

func (b *Bot) handleText(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	state := sess.State
	sess.Unlock()

	switch state {
	case StateLoginEmail, StateLoginPassword:
		return b.handleLoginText(c, sess)
	case StateRegister:
		return b.handleRegisterText(c, sess)
	}

	return b.authed(func(c tele.Context) error {
		switch state {
		case StateServiceSearch:
			return b.handleServiceSearchText(c, sess)
		case StateRequestForm:
			return b.handleRequestText(c, sess)
		case StateMapLocation:
			return b.handleMapSkip(c, sess)
		case StateReportText:
			return b.handleReportText(c, sess)
		case StateReportLocation:
			return b.handleReportLocationSkip(c, sess)
		case StateReportPhotos:
			return b.handleReportPhotosDone(c, sess)
		case StatePaymentSearch:
			return b.handlePaymentSearchText(c, sess)
		case StatePlate:
			return b.handlePlateText(c, sess)
		}
		return nil
	})(c)
}

func (b *Bot) handleLocation(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	state := sess.State
	sess.Unlock()

	return b.authed(func(c tele.Context) error {
		switch state {
		case StateMapLocation:
			return b.handleMapLocation(c, sess)
		case StateReportLocation:
			return b.handleReportLocation(c, sess)
		}
		return nil
	})(c)
}

func (b *Bot) handlePhoto(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	state := sess.State
	sess.Unlock()

	if state != StateReportPhotos {
		return nil
	}
	return b.authed(func(c tele.Context) error {
		return b.handleReportPhoto(c, sess)
	})(c)
}
