package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"ktap/pkg/comments"
	"ktap/pkg/content"
	"ktap/pkg/items"
	"ktap/pkg/session"
	"ktap/pkg/user"
)

type commentMocks struct {
	ctrl     *gomock.Controller
	items    *MockItemsRepo
	users    *MockUsersRepo
	comments *MockCommentsRepo
}

func newCommentHandler(t *testing.T) (*CommentHandler, *commentMocks) {
	ctrl := gomock.NewController(t)
	m := &commentMocks{
		ctrl:     ctrl,
		items:    NewMockItemsRepo(ctrl),
		users:    NewMockUsersRepo(ctrl),
		comments: NewMockCommentsRepo(ctrl),
	}
	return &CommentHandler{
		Kind:         content.Review,
		CommentsRepo: m.comments,
		ItemsRepo:    m.items,
		UsersRepo:    m.users,
		Logger:       zap.NewNop().Sugar(),
	}, m
}

func (m *commentMocks) expectItem(id primitive.ObjectID) {
	m.items.EXPECT().ParseID(id.Hex()).DoAndReturn(parseObjectID)
	m.items.EXPECT().GetByID(gomock.Any(), items.Scope{Kind: content.Review}, id).Return(&items.Item{ID: id, AuthorID: 2}, nil)
}

func TestCommentsList(t *testing.T) {
	h, m := newCommentHandler(t)
	defer m.ctrl.Finish()

	itemID := primitive.NewObjectID()
	c1, c2 := primitive.NewObjectID(), primitive.NewObjectID()
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	m.expectItem(itemID)
	m.comments.EXPECT().GetByItemID(gomock.Any(), itemID.Hex(), 0, 2).Return([]*comments.Comment{
		{ID: c1, ItemID: itemID.Hex(), AuthorID: 3, Body: "first", Created: created},
		{ID: c2, ItemID: itemID.Hex(), AuthorID: 3, Body: "second", Created: created},
	}, nil)
	m.comments.EXPECT().CountByItemID(gomock.Any(), itemID.Hex()).Return(int64(5), nil)
	m.users.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&user.User{ID: 3, Name: "commenter"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/reviews/"+itemID.Hex()+"/comments?limit=2", nil)
	r = mux.SetURLVars(r, map[string]string{"id": itemID.Hex()})
	w := httptest.NewRecorder()
	h.List(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("wrong status code: %d %s", w.Code, w.Body.String())
	}

	page := &content.Page[*content.Comment]{}
	if err := json.Unmarshal(w.Body.Bytes(), page); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if page.Count != 5 || page.Limit != 2 || len(page.Data) != 2 || !page.HasMore() {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.Data[0].ID != c1.Hex() || page.Data[0].Content != "first" || page.Data[1].User.Name != "commenter" {
		t.Fatalf("unexpected comments %+v %+v", page.Data[0], page.Data[1])
	}
}

func TestCommentsAdd(t *testing.T) {
	itemID := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	cases := []struct {
		name   string
		body   map[string]string
		happy  bool
		status int
	}{
		{name: "Happy", body: map[string]string{"content": " nice review "}, happy: true, status: http.StatusCreated},
		{name: "Blank", body: map[string]string{"content": ""}, status: http.StatusBadRequest},
		{name: "Missing", body: map[string]string{}, status: http.StatusBadRequest},
	}

	for i, c := range cases {
		h, m := newCommentHandler(t)
		if c.happy {
			m.expectItem(itemID)
			m.comments.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, cm *comments.Comment) (interface{}, error) {
				if cm.Body != "nice review" || cm.AuthorID != 7 || cm.ItemID != itemID.Hex() {
					t.Errorf("test case %d %s: unexpected stored comment %+v", i, c.name, cm)
				}
				return newID.Hex(), nil
			})
			m.users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&user.User{ID: 7, Name: "viewer"}, nil)
		}

		r := httptest.NewRequest(http.MethodPost, "/api/reviews/"+itemID.Hex()+"/comments", jsonBody(c.body))
		r = mux.SetURLVars(withViewer(r, 7), map[string]string{"id": itemID.Hex()})
		w := httptest.NewRecorder()
		h.Add(w, r)

		if w.Code != c.status {
			t.Fatalf("test case %d %s failed: %d %s", i, c.name, w.Code, w.Body.String())
		}
		if c.happy {
			resp := &content.Envelope[*content.Comment]{}
			if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
				t.Fatalf("test case %d %s failed: bad body %v", i, c.name, err)
			}
			if resp.Data.ID != newID.Hex() || resp.Data.Content != "nice review" || resp.Data.User.ID != 7 {
				t.Fatalf("test case %d %s failed: unexpected comment %+v", i, c.name, resp.Data)
			}
		}
		m.ctrl.Finish()
	}
}

func TestCommentsDelete(t *testing.T) {
	itemID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	otherItem := primitive.NewObjectID()

	cases := []struct {
		name     string
		viewer   *session.User
		comment  *comments.Comment
		getErr   error
		doDelete bool
		status   int
	}{
		{name: "Author", viewer: &session.User{ID: 3},
			comment: &comments.Comment{ID: commentID, ItemID: itemID.Hex(), AuthorID: 3}, doDelete: true, status: http.StatusOK},
		{name: "Admin", viewer: &session.User{ID: 1, IsAdmin: true},
			comment: &comments.Comment{ID: commentID, ItemID: itemID.Hex(), AuthorID: 3}, doDelete: true, status: http.StatusOK},
		{name: "Stranger", viewer: &session.User{ID: 4},
			comment: &comments.Comment{ID: commentID, ItemID: itemID.Hex(), AuthorID: 3}, status: http.StatusForbidden},
		{name: "OtherItem", viewer: &session.User{ID: 3},
			comment: &comments.Comment{ID: commentID, ItemID: otherItem.Hex(), AuthorID: 3}, status: http.StatusNotFound},
		{name: "Missing", viewer: &session.User{ID: 3}, getErr: comments.ErrNotFound, status: http.StatusNotFound},
	}

	for i, c := range cases {
		h, m := newCommentHandler(t)
		m.comments.EXPECT().ParseID(commentID.Hex()).DoAndReturn(parseObjectID)
		m.expectItem(itemID)
		m.comments.EXPECT().GetByID(gomock.Any(), commentID).Return(c.comment, c.getErr)
		if c.doDelete {
			m.comments.EXPECT().Delete(gomock.Any(), commentID).Return(true, nil)
		}

		r := httptest.NewRequest(http.MethodDelete, "/api/reviews/"+itemID.Hex()+"/comments/"+commentID.Hex(), nil)
		sess := &session.Session{User: c.viewer, SessionID: "s"}
		r = r.WithContext(session.ContextWithSession(r.Context(), sess))
		r = mux.SetURLVars(r, map[string]string{"id": itemID.Hex(), "comment_id": commentID.Hex()})
		w := httptest.NewRecorder()
		h.Delete(w, r)

		if w.Code != c.status {
			t.Fatalf("test case %d %s failed: %d %s", i, c.name, w.Code, w.Body.String())
		}
		m.ctrl.Finish()
	}
}
