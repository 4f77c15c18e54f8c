package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/service"

	tele "gopkg.in/telebot.v3"
)

type formStep struct {
	Key   string
	Label string
}

var registerSteps = []formStep{
	{Key: "name", Label: "Full name"},
	{Key: "national_id", Label: "RUT"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "password", Label: "Password (min. 6 characters)"},
	{Key: "confirm_password", Label: "Confirm password"},
}

func registerStep(key string) int {
	for i, s := range registerSteps {
		if s.Key == key {
			return i
		}
	}
	return 0
}

func (b *Bot) showSlide(c tele.Context, i int, edit bool) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateOnboarding)
	sess.Step = i
	sess.Unlock()

	menu := &tele.ReplyMarkup{}
	if i == len(onboardingSlides)-1 {
		menu.Inline(menu.Row(menu.Data(msg("btn_get_started"), cbOnboardSkip.Unique)))
	} else {
		menu.Inline(menu.Row(
			menu.Data(msg("btn_skip"), cbOnboardSkip.Unique),
			menu.Data(msg("btn_next"), cbOnboardNext.Unique, strconv.Itoa(i+1)),
		))
	}
	if edit {
		return c.Edit(renderSlide(i), menu)
	}
	return c.Send(renderSlide(i), menu)
}

func (b *Bot) handleOnboardNext(c tele.Context) error {
	i, err := strconv.Atoi(c.Data())
	if err != nil || i < 0 || i >= len(onboardingSlides) {
		return c.Respond()
	}
	_ = c.Respond()
	return b.showSlide(c, i, true)
}

// handleOnboardSkip serves both Skip and the final slide's button.
func (b *Bot) handleOnboardSkip(c tele.Context) error {
	_ = c.Respond()
	if err := b.Svc.Onboarding().CompleteOnboarding(b.ctx, deviceID(c)); err != nil {
		b.Log.Error("failed to persist onboarding flag", logger.Error(err), logger.Int64("device_id", deviceID(c)))
	}
	return b.handleStart(c)
}

func (b *Bot) showLogin(c tele.Context) error {
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateIdle)
	sess.Unlock()

	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(
		menu.Data(msg("btn_sign_in"), cbSignIn.Unique),
		menu.Data(msg("btn_register"), cbRegister.Unique),
	))
	return c.Send(msg("login"), menu)
}

func (b *Bot) handleSignIn(c tele.Context) error {
	_ = c.Respond()
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateLoginEmail)
	sess.Unlock()
	return c.Send(msg("ask_email"), tele.RemoveKeyboard)
}

func (b *Bot) handleLoginText(c tele.Context, sess *UserSession) error {
	sess.Lock()
	if sess.State == StateLoginEmail {
		sess.Form["email"] = strings.TrimSpace(c.Text())
		sess.State = StateLoginPassword
		sess.Unlock()
		return c.Send(msg("ask_password"))
	}
	email, password := sess.Form["email"], c.Text()
	sess.reset(StateIdle)
	sess.Unlock()

	// The password message stays out of the chat history.
	if err := c.Delete(); err != nil {
		b.Log.Debug("could not delete password message", logger.Error(err))
	}

	if err := service.ValidateLogin(email, password); err != nil {
		_ = c.Send(alertText(err))
		return b.showLogin(c)
	}
	ok, err := b.Svc.Auth().Login(b.ctx, deviceID(c), email, password)
	if err != nil {
		b.Log.Error("login failed", logger.Error(err), logger.Int64("device_id", deviceID(c)))
		return c.Send(msg("error"))
	}
	if !ok {
		_ = c.Send(msg("login_failed"))
		return b.showLogin(c)
	}
	return b.handleHome(c)
}

func (b *Bot) handleRegisterStart(c tele.Context) error {
	_ = c.Respond()
	sess := b.session(c)
	sess.Lock()
	sess.reset(StateRegister)
	sess.Unlock()
	return c.Send(fmt.Sprintf(msg("ask_register"), registerSteps[0].Label), tele.RemoveKeyboard)
}

func (b *Bot) handleRegisterText(c tele.Context, sess *UserSession) error {
	sess.Lock()
	step := registerSteps[sess.Step]
	sess.Form[step.Key] = c.Text()
	sess.Step++
	if sess.Step < len(registerSteps) {
		next := registerSteps[sess.Step]
		sess.Unlock()
		return c.Send(fmt.Sprintf(msg("ask_register"), next.Label))
	}

	in := service.RegisterInput{
		Name:            strings.TrimSpace(sess.Form["name"]),
		NationalID:      strings.TrimSpace(sess.Form["national_id"]),
		Email:           strings.TrimSpace(sess.Form["email"]),
		Phone:           strings.TrimSpace(sess.Form["phone"]),
		Password:        sess.Form["password"],
		ConfirmPassword: sess.Form["confirm_password"],
	}
	if err := service.ValidateRegistration(in); err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) && len(verr.Fields) > 0 {
			sess.Step = registerStep(verr.Fields[0])
		} else {
			sess.Step = 0
		}
		next := registerSteps[sess.Step]
		sess.Unlock()
		_ = c.Send(alertText(err))
		return c.Send(fmt.Sprintf(msg("ask_register"), next.Label))
	}
	sess.reset(StateIdle)
	sess.Unlock()

	fields := models.User{Name: in.Name, NationalID: in.NationalID, Email: in.Email, Phone: in.Phone}
	if _, err := b.Svc.Auth().Register(b.ctx, deviceID(c), fields, in.Password); err != nil {
		b.Log.Error("registration failed", logger.Error(err), logger.Int64("device_id", deviceID(c)))
		return c.Send(msg("error"))
	}
	_ = c.Send(msg("registered"))
	return b.handleHome(c)
}

func (b *Bot) handleLogout(c tele.Context) error {
	_ = c.Respond()
	if err := b.Svc.Auth().Logout(b.ctx, deviceID(c)); err != nil {
		b.Log.Error("logout failed", logger.Error(err), logger.Int64("device_id", deviceID(c)))
		return c.Send(msg("error"))
	}
	_ = c.Send(msg("logged_out"), tele.RemoveKeyboard)
	return b.showLogin(c)
}
