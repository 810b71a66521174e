package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ktap/pkg/comments"
	"ktap/pkg/common"
	"ktap/pkg/content"
	"ktap/pkg/items"
)

const CommentMaxLength = 1000

type CommentHandler struct {
	Kind         content.Kind
	CommentsRepo CommentsRepo
	ItemsRepo    ItemsRepo
	UsersRepo    UsersRepo
	Logger       *zap.SugaredLogger
}

type AddCommentRequest struct {
	Content *string `json:"content"`
}

// itemKey resolves the item from the route and returns the key comments
// are stored under.
func (h *CommentHandler) itemKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := h.ItemsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid item id", http.StatusBadRequest)
		return "", false
	}

	it, err := h.ItemsRepo.GetByID(r.Context(), itemScope(h.Kind, r), id)
	if errors.Is(err, items.ErrNotFound) {
		WriteResponse(w, "item not found", http.StatusNotFound)
		return "", false
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return "", false
	}

	return common.HexID(it.ID), true
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	skip, limit := parsePage(r)
	list, err := h.CommentsRepo.GetByItemID(r.Context(), itemID, skip, limit)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total, err := h.CommentsRepo.CountByItemID(r.Context(), itemID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	page := &content.Page[*content.Comment]{
		Data:  make([]*content.Comment, 0, len(list)),
		Skip:  int64(skip),
		Limit: int64(limit),
		Count: total,
	}
	authors := map[int64]*content.Author{}
	for _, c := range list {
		resp, err := h.toContent(r.Context(), c, authors)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		page.Data = append(page.Data, resp)
	}

	writeJSON(w, page, http.StatusOK)
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if err := readJSON(r, &req); err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	body := &Validator{value: req.Content, location: "body", field: "content"}
	if err := body.Chain(body.Empty, func() *CustomError { return body.MaxLength(CommentMaxLength) }); err != nil {
		writeErrorsResponse(w, []*CustomError{err})
		return
	}

	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	comment := &comments.Comment{
		ItemID:   itemID,
		AuthorID: su.ID,
		Body:     strings.TrimSpace(*req.Content),
		Created:  time.Now().UTC(),
	}

	id, err := h.CommentsRepo.Add(r.Context(), comment)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	comment.ID = id

	resp, err := h.toContent(r.Context(), comment, map[int64]*content.Author{})
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &content.Envelope[*content.Comment]{Data: resp}, http.StatusCreated)
}

// Delete is allowed to the comment author and to admins.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := h.CommentsRepo.ParseID(mux.Vars(r)["comment_id"])
	if err != nil {
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	itemID, ok := h.itemKey(w, r)
	if !ok {
		return
	}

	c, err := h.CommentsRepo.GetByID(r.Context(), commentID)
	if errors.Is(err, comments.ErrNotFound) || (err == nil && common.HexID(c.ItemID) != itemID) {
		WriteResponse(w, "comment not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if c.AuthorID != su.ID && !su.IsAdmin {
		WriteResponse(w, "you can only delete your own comments", http.StatusForbidden)
		return
	}

	deleted, err := h.CommentsRepo.Delete(r.Context(), commentID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !deleted {
		WriteResponse(w, "comment not found", http.StatusNotFound)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *CommentHandler) toContent(ctx context.Context, c *comments.Comment, authors map[int64]*content.Author) (*content.Comment, error) {
	a, err := authorOf(ctx, h.UsersRepo, c.AuthorID, authors)
	if err != nil {
		return nil, err
	}

	return &content.Comment{
		ID:        common.HexID(c.ID),
		Content:   c.Body,
		User:      a,
		CreatedAt: c.Created,
	}, nil
}
