package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ktap/pkg/common"
	"ktap/pkg/content"
	"ktap/pkg/items"
	"ktap/pkg/session"
)

const ReportMaxLength = 200

// ItemHandler serves one kind of item. Discussion posts are scoped by the
// discussion_id route variable, reviews by the optional gameId query.
type ItemHandler struct {
	Kind         content.Kind
	ItemsRepo    ItemsRepo
	UsersRepo    UsersRepo
	CommentsRepo CommentsRepo
	GiftsRepo    GiftsRepo
	Icons        IconSigner
	Logger       *zap.SugaredLogger
}

type CreateItemReq struct {
	GameID  *string `json:"gameId"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Score   *int    `json:"score"`
}

type ReportReq struct {
	Reason *string `json:"reason"`
}

func (req *CreateItemReq) validate(kind content.Kind) []*CustomError {
	title := &Validator{value: req.Title, location: "body", field: "title"}
	body := &Validator{value: req.Content, location: "body", field: "content"}

	errs := mergeErrors(
		title.Chain(title.Empty, func() *CustomError { return title.MaxLength(100) }),
		body.Chain(body.Empty, func() *CustomError { return body.MaxLength(10000) }),
	)

	if kind == content.Review {
		game := &Validator{value: req.GameID, location: "body", field: "gameId"}
		errs = append(errs, mergeErrors(game.Chain(game.Empty))...)
		if req.Score == nil || *req.Score < 1 || *req.Score > 10 {
			errs = append(errs, &CustomError{Location: "body", Param: "score", Msg: "must be between 1 and 10"})
		}
	}

	return errs
}

// itemScope binds a discussion post to the discussion in its path.
func itemScope(kind content.Kind, r *http.Request) items.Scope {
	scope := items.Scope{Kind: kind}
	if kind == content.DiscussionPost {
		scope.ParentID = mux.Vars(r)["discussion_id"]
	}
	return scope
}

func (h *ItemHandler) parentID(r *http.Request) string {
	if h.Kind == content.DiscussionPost {
		return mux.Vars(r)["discussion_id"]
	}
	return r.URL.Query().Get("gameId")
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePage(r)

	list, total, err := h.ItemsRepo.List(r.Context(), h.Kind, h.parentID(r), skip, limit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	viewer := currentUser(r)
	authors := map[int64]*content.Author{}
	page := &content.Page[*content.Item]{
		Data:  make([]*content.Item, 0, len(list)),
		Skip:  int64(skip),
		Limit: int64(limit),
		Count: total,
	}
	for _, it := range list {
		resp, err := h.toContent(r.Context(), it, viewer, authors)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		page.Data = append(page.Data, resp)
	}

	writeJSON(w, page, http.StatusOK)
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	it, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	resp, err := h.toContent(r.Context(), it, currentUser(r), map[int64]*content.Author{})
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &content.Envelope[*content.Item]{Data: resp}, http.StatusOK)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemReq
	if err := readJSON(r, &req); err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	if validationErrors := req.validate(h.Kind); len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors)
		return
	}

	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	it := &items.Item{
		Kind:     h.Kind,
		ParentID: h.parentID(r),
		Title:    strings.TrimSpace(*req.Title),
		Content:  *req.Content,
		AuthorID: su.ID,
		Created:  time.Now().UTC(),
	}
	if h.Kind == content.Review {
		it.ParentID = *req.GameID
		it.Score = *req.Score
	}

	id, err := h.ItemsRepo.Add(r.Context(), it)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	it.ID = id

	resp, err := h.toContent(r.Context(), it, su, map[int64]*content.Author{})
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &content.Envelope[*content.Item]{Data: resp}, http.StatusCreated)
}

func (h *ItemHandler) Thumb(w http.ResponseWriter, r *http.Request) {
	d, err := content.ParseReaction(mux.Vars(r)["direction"])
	if err != nil || d == content.None {
		WriteResponse(w, "invalid direction", http.StatusBadRequest)
		return
	}

	id, err := h.ItemsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid item id", http.StatusBadRequest)
		return
	}

	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	it, err := h.ItemsRepo.Vote(r.Context(), itemScope(h.Kind, r), id, su.ID, items.VoteFromReaction(d))
	if errors.Is(err, items.ErrNotFound) {
		WriteResponse(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.Logger.Debugw("thumb", "kind", h.Kind, "item", common.HexID(it.ID), "user", su.ID, "direction", d.String())
	writeJSON(w, &content.Envelope[*content.Thumbs]{Data: it.Thumbs()}, http.StatusOK)
}

func (h *ItemHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req ReportReq
	if err := readJSON(r, &req); err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	reason := &Validator{value: req.Reason, location: "body", field: "reason"}
	if err := reason.Chain(reason.Empty, func() *CustomError { return reason.MaxLength(ReportMaxLength) }); err != nil {
		writeErrorsResponse(w, []*CustomError{err})
		return
	}

	id, err := h.ItemsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid item id", http.StatusBadRequest)
		return
	}

	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	err = h.ItemsRepo.Report(r.Context(), itemScope(h.Kind, r), id, su.ID, strings.TrimSpace(*req.Reason))
	switch {
	case errors.Is(err, items.ErrAlreadyReported):
		WriteResponse(w, "you have already reported this", http.StatusBadRequest)
		return
	case errors.Is(err, items.ErrNotFound):
		WriteResponse(w, "item not found", http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.Logger.Infow("item reported", "kind", h.Kind, "item", mux.Vars(r)["id"], "user", su.ID)
	WriteResponse(w, "success", http.StatusOK)
}

// loadItem writes the error response itself and reports whether to go on.
func (h *ItemHandler) loadItem(w http.ResponseWriter, r *http.Request) (*items.Item, bool) {
	id, err := h.ItemsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid item id", http.StatusBadRequest)
		return nil, false
	}

	it, err := h.ItemsRepo.GetByID(r.Context(), itemScope(h.Kind, r), id)
	if errors.Is(err, items.ErrNotFound) {
		WriteResponse(w, "item not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	return it, true
}

// authorOf looks the user up once per request; deleted users keep their id.
func authorOf(ctx context.Context, repo UsersRepo, id int64, cache map[int64]*content.Author) (*content.Author, error) {
	if a, ok := cache[id]; ok {
		return a, nil
	}

	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a := &content.Author{ID: id}
	if u != nil {
		a = u.Author()
	}
	cache[id] = a
	return a, nil
}

func (h *ItemHandler) receipts(ctx context.Context, itemID string) ([]*content.GiftReceipt, int64, error) {
	list, total, err := h.GiftsRepo.Receipts(ctx, h.Kind, itemID)
	if err != nil {
		return nil, 0, err
	}

	for _, rc := range list {
		if err := signIcon(ctx, h.Icons, &rc.Gift); err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (h *ItemHandler) toContent(ctx context.Context, it *items.Item, viewer *session.User, authors map[int64]*content.Author) (*content.Item, error) {
	id := common.HexID(it.ID)

	a, err := authorOf(ctx, h.UsersRepo, it.AuthorID, authors)
	if err != nil {
		return nil, err
	}

	commentsCount, err := h.CommentsRepo.CountByItemID(ctx, id)
	if err != nil {
		return nil, err
	}

	gifts, giftsCount, err := h.receipts(ctx, id)
	if err != nil {
		return nil, err
	}

	th := it.Thumbs()
	resp := &content.Item{
		ID:       id,
		Kind:     it.Kind,
		ParentID: it.ParentID,
		Title:    it.Title,
		Content:  it.Content,
		Score:    it.Score,
		User:     a,
		Meta: content.Meta{
			Ups:      th.Ups,
			Downs:    th.Downs,
			Gifts:    giftsCount,
			Comments: commentsCount,
		},
		Gifts:     gifts,
		CreatedAt: it.Created,
	}

	if viewer != nil {
		resp.Viewer = content.Viewer{
			Direction: it.VoteOf(viewer.ID).Reaction(),
			Reported:  it.ReportedBy(viewer.ID),
		}
	}

	return resp, nil
}
