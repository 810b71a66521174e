package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ktap/pkg/common"
	"ktap/pkg/content"
	"ktap/pkg/gifts"
)

type GiftHandler struct {
	GiftsRepo GiftsRepo
	Icons     IconSigner
	Logger    *zap.SugaredLogger
}

func signIcon(ctx context.Context, icons IconSigner, g *content.Gift) error {
	if icons == nil {
		return nil
	}
	url, err := icons.Sign(ctx, g.URL)
	if err != nil {
		return err
	}
	g.URL = url
	return nil
}

func (h *GiftHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	list, err := h.GiftsRepo.List(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, g := range list {
		if err := signIcon(r.Context(), h.Icons, g); err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, &content.Envelope[[]*content.Gift]{Data: list}, http.StatusOK)
}

// SendGift debits the viewer and answers with the item's receipts and the
// viewer's new balance.
func (h *ItemHandler) SendGift(w http.ResponseWriter, r *http.Request) {
	giftID, err := strconv.ParseInt(mux.Vars(r)["gift_id"], 10, 64)
	if err != nil {
		WriteResponse(w, "invalid gift id", http.StatusBadRequest)
		return
	}

	su := currentUser(r)
	if su == nil {
		WriteResponse(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	it, ok := h.loadItem(w, r)
	if !ok {
		return
	}

	itemID := common.HexID(it.ID)
	balance, err := h.GiftsRepo.Send(r.Context(), &gifts.Send{
		GiftID:      giftID,
		SenderID:    su.ID,
		RecipientID: it.AuthorID,
		Kind:        h.Kind,
		ItemID:      itemID,
	})
	switch {
	case errors.Is(err, gifts.ErrInsufficientBalance):
		WriteResponse(w, "not enough balance for this gift", http.StatusBadRequest)
		return
	case errors.Is(err, gifts.ErrGiftNotFound):
		WriteResponse(w, "gift not found", http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.Logger.Infow("gift sent", "kind", h.Kind, "item", itemID, "gift", giftID, "sender", su.ID, "balance", balance)

	receipts, count, err := h.receipts(r.Context(), itemID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &content.GiftSent{Count: count, Data: receipts, Balance: &balance}, http.StatusOK)
}
