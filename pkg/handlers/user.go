package handlers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ktap/pkg/content"
	"ktap/pkg/session"
	"ktap/pkg/user"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	StartingBalance   = 1000
)

var nameRe = regexp.MustCompile(`^[\p{L}\p{N}_ .-]+$`)

type UserHandler struct {
	Sm            session.SessionManager
	Repo          UsersRepo
	Logger        *zap.SugaredLogger
	SessionTTL    time.Duration
	SecureCookies bool
}

type LoginReq struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type RegisterReq struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

func (r *LoginReq) validate() []*CustomError {
	email := &Validator{value: r.Email, location: "body", field: "email"}
	pwd := &Validator{value: r.Password, location: "body", field: "password"}

	return mergeErrors(
		email.Chain(email.Empty, email.Email),
		pwd.Chain(pwd.Empty),
	)
}

func (r *RegisterReq) validate() []*CustomError {
	email := &Validator{value: r.Email, location: "body", field: "email"}
	name := &Validator{value: r.Name, location: "body", field: "name"}
	pwd := &Validator{value: r.Password, location: "body", field: "password"}

	return mergeErrors(
		email.Chain(email.Empty, email.Email),
		name.Chain(name.Empty,
			func() *CustomError { return name.MaxLength(32) },
			func() *CustomError {
				return name.Custom(func(value string) bool {
					return strings.TrimSpace(value) == value
				}, "cannot start or end with whitespace")
			},
			func() *CustomError { return name.Matches(nameRe) },
		),
		pwd.Chain(pwd.Empty,
			func() *CustomError { return pwd.MinLength(8) },
			func() *CustomError { return pwd.MaxLength(72) },
		),
	)
}

func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := readJSON(r, &req); err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	if validationErrors := req.validate(); len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors)
		return
	}

	usr, err := u.Repo.GetByEmail(r.Context(), *req.Email)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if usr == nil || !user.CheckPassword(usr.Password, *req.Password) {
		WriteResponse(w, "invalid email or password", http.StatusForbidden)
		return
	}

	u.writeAuthResponse(w, r, usr, http.StatusOK)
}

func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if err := readJSON(r, &req); err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	if validationErrors := req.validate(); len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors)
		return
	}

	existUser, err := u.Repo.GetByEmail(r.Context(), *req.Email)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if existUser != nil {
		validationError := &CustomError{Location: "body", Param: "email", Value: *req.Email, Msg: "already exists"}
		writeErrorsResponse(w, []*CustomError{validationError})
		return
	}

	passHash, err := user.HashPassword(*req.Password)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	usr := &user.User{
		Email:    *req.Email,
		Name:     *req.Name,
		Password: passHash,
		Balance:  StartingBalance,
	}

	id, err := u.Repo.Add(r.Context(), usr)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	usr.ID = id

	u.writeAuthResponse(w, r, usr, http.StatusCreated)
}

func (u *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err == nil {
		if err := u.Sm.Destroy(r.Context(), sess); err != nil {
			u.Logger.Warnw("session destroy failed", "session", sess.SessionID, "error", err)
		}
	}

	session.ClearCookies(w, u.SecureCookies)
	WriteResponse(w, "success", http.StatusOK)
}

func (u *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	usr, err := u.Repo.GetByID(r.Context(), su.ID)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if usr == nil {
		session.ClearCookies(w, u.SecureCookies)
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, &content.Envelope[*content.User]{Data: usr.Content()}, http.StatusOK)
}

func (u *UserHandler) writeAuthResponse(w http.ResponseWriter, r *http.Request, usr *user.User, status int) {
	ttl := u.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	sessID := uuid.New().String()
	expiresAt := time.Now().Add(ttl)
	token, err := u.Sm.Create(r.Context(), &session.User{ID: usr.ID, Name: usr.Name, IsAdmin: usr.IsAdmin}, sessID, expiresAt.Unix())
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	session.SetCookies(w, token, usr.ID, expiresAt, u.SecureCookies)
	writeJSON(w, &content.Envelope[*content.User]{Data: usr.Content()}, status)
}
