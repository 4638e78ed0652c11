package handlers

import (
	"log/slog"
	"net/http"

	"github.com/scrapegenie/storefront/internal/auth"
	"github.com/scrapegenie/storefront/internal/authgate"
	"github.com/scrapegenie/storefront/internal/cookie"
	"github.com/scrapegenie/storefront/internal/flash"
	"github.com/scrapegenie/storefront/internal/marketplace"
)

type signInData struct {
	Form   auth.SignInForm
	Errors auth.FieldErrors
}

type signUpData struct {
	Form   auth.SignUpForm
	Errors auth.FieldErrors
}

// SignInPage renders the sign-in form. An already authenticated visitor is
// sent to their role's home instead. The email field prefills from the
// remembered-email cookie when present.
func (h *Handlers) SignInPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	if sess.IsAuthenticated() {
		http.Redirect(w, r, roleHome(sess.Identity.Role), http.StatusSeeOther)
		return
	}

	form := auth.SignInForm{}
	if email, err := h.cookies.GetSigned(r, rememberCookie); err == nil {
		form.Email = email
		form.RememberMe = true
	}

	h.render(w, r, http.StatusOK, "sign-in", "Sign In", signInData{Form: form})
}

// SignInSubmit validates the form and exchanges the credentials for an
// identity. Validation failures re-render without touching the backend;
// exactly one login call happens per valid submission.
func (h *Handlers) SignInSubmit(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	if sess.IsAuthenticated() {
		http.Redirect(w, r, roleHome(sess.Identity.Role), http.StatusSeeOther)
		return
	}

	form := auth.SignInForm{
		Email:      r.PostFormValue("email"),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("remember_me") != "",
	}

	if errs := form.Validate(); !errs.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "sign-in", "Sign In", signInData{Form: form, Errors: errs})
		return
	}

	if err := h.auth.SignIn(r.Context(), sess, form.Email, form.Password, form.RememberMe); err != nil {
		h.logger.WarnContext(r.Context(), "sign-in failed", slog.Any("error", err))
		errs := auth.FieldErrors{"form": marketplace.UserMessage(err)}
		h.render(w, r, http.StatusUnprocessableEntity, "sign-in", "Sign In", signInData{Form: form, Errors: errs})
		return
	}

	h.rememberEmail(w, form.Email, form.RememberMe)
	flash.Success(h.cookies, w, "Welcome back", "You are signed in as "+sess.Identity.DisplayName+".")
	http.Redirect(w, r, roleHome(sess.Identity.Role), http.StatusSeeOther)
}

// SignUpPage renders the registration form.
func (h *Handlers) SignUpPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	if sess.IsAuthenticated() {
		http.Redirect(w, r, roleHome(sess.Identity.Role), http.StatusSeeOther)
		return
	}

	form := auth.SignUpForm{Role: string(marketplace.RoleUser)}
	h.render(w, r, http.StatusOK, "sign-up", "Sign Up", signUpData{Form: form})
}

// SignUpSubmit validates the form and registers the account. Same contract
// as SignInSubmit: no backend call on validation failure.
func (h *Handlers) SignUpSubmit(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)
	if sess.IsAuthenticated() {
		http.Redirect(w, r, roleHome(sess.Identity.Role), http.StatusSeeOther)
		return
	}

	form := auth.SignUpForm{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Password:    r.PostFormValue("password"),
		Role:        r.PostFormValue("role"),
		AcceptTerms: r.PostFormValue("accept_terms") != "",
	}

	if errs := form.Validate(); !errs.Valid() {
		h.render(w, r, http.StatusUnprocessableEntity, "sign-up", "Sign Up", signUpData{Form: form, Errors: errs})
		return
	}

	params := auth.SignUpParams{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.ParsedRole(),
	}
	if err := h.auth.SignUp(r.Context(), sess, params); err != nil {
		h.logger.WarnContext(r.Context(), "sign-up failed", slog.Any("error", err))
		errs := auth.FieldErrors{"form": marketplace.UserMessage(err)}
		h.render(w, r, http.StatusUnprocessableEntity, "sign-up", "Sign Up", signUpData{Form: form, Errors: errs})
		return
	}

	flash.Success(h.cookies, w, "Account created", "Welcome to the marketplace, "+sess.Identity.DisplayName+".")
	http.Redirect(w, r, roleHome(sess.Identity.Role), http.StatusSeeOther)
}

// SignOut terminates the session and lands the visitor on the sign-in
// page. They always end up signed out locally; a failed backend call only
// changes the notice wording.
func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFrom(r)

	if err := h.auth.Logout(r.Context(), sess); err != nil {
		flash.Success(h.cookies, w, "Signed out", "You are signed out on this device; the server could not be reached.")
	} else {
		flash.Success(h.cookies, w, "Signed out", "See you next time.")
	}

	http.Redirect(w, r, authgate.SignInPath, http.StatusSeeOther)
}

// rememberEmail persists or forgets the sign-in email prefill. Only the
// email is remembered; passwords never touch a cookie.
func (h *Handlers) rememberEmail(w http.ResponseWriter, email string, remember bool) {
	if !remember {
		h.cookies.Delete(w, rememberCookie)
		return
	}
	if err := h.cookies.SetSigned(w, rememberCookie, email, cookie.WithMaxAge(rememberMaxAge)); err != nil {
		h.logger.Warn("failed to set remembered email", slog.Any("error", err))
	}
}
