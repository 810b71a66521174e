package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ktap/pkg/content"
	"ktap/pkg/handlers"
	"ktap/pkg/session"
)

type Repos struct {
	Users    handlers.UsersRepo
	Items    handlers.ItemsRepo
	Comments handlers.CommentsRepo
	Gifts    handlers.GiftsRepo
	Icons    handlers.IconSigner
}

func NewRouter(repos *Repos, sm session.SessionManager, logger *zap.SugaredLogger, ttl time.Duration, secureCookies bool) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/").Subrouter()

	userHandler := &handlers.UserHandler{
		Sm:            sm,
		Repo:          repos.Users,
		Logger:        logger,
		SessionTTL:    ttl,
		SecureCookies: secureCookies,
	}
	api.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/logout", userHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/user", userHandler.Me).Methods(http.MethodGet)

	giftHandler := &handlers.GiftHandler{GiftsRepo: repos.Gifts, Icons: repos.Icons, Logger: logger}
	api.HandleFunc("/gifts", giftHandler.Catalog).Methods(http.MethodGet)

	itemRoutes(api.PathPrefix("/reviews").Subrouter(), content.Review, repos, logger)
	itemRoutes(api.PathPrefix("/discussions/{discussion_id}/posts").Subrouter(), content.DiscussionPost, repos, logger)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "not found", http.StatusNotFound)
	})
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}

func itemRoutes(sr *mux.Router, kind content.Kind, repos *Repos, logger *zap.SugaredLogger) {
	ih := &handlers.ItemHandler{
		Kind:         kind,
		ItemsRepo:    repos.Items,
		UsersRepo:    repos.Users,
		CommentsRepo: repos.Comments,
		GiftsRepo:    repos.Gifts,
		Icons:        repos.Icons,
		Logger:       logger,
	}
	ch := &handlers.CommentHandler{
		Kind:         kind,
		CommentsRepo: repos.Comments,
		ItemsRepo:    repos.Items,
		UsersRepo:    repos.Users,
		Logger:       logger,
	}

	sr.HandleFunc("", ih.List).Methods(http.MethodGet)
	sr.HandleFunc("", ih.Create).Methods(http.MethodPost)
	sr.HandleFunc("/{id}", ih.GetByID).Methods(http.MethodGet)
	sr.HandleFunc("/{id}/thumb/{direction:up|down}", ih.Thumb).Methods(http.MethodPost)
	sr.HandleFunc("/{id}/gifts/{gift_id:[0-9]+}", ih.SendGift).Methods(http.MethodPost)
	sr.HandleFunc("/{id}/report", ih.Report).Methods(http.MethodPost)
	sr.HandleFunc("/{id}/comments", ch.List).Methods(http.MethodGet)
	sr.HandleFunc("/{id}/comments", ch.Add).Methods(http.MethodPost)
	sr.HandleFunc("/{id}/comments/{comment_id}", ch.Delete).Methods(http.MethodDelete)
}
