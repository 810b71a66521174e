package content

import (
	"encoding/json"
	"testing"
)

func TestReactionToggle(t *testing.T) {
	cases := []struct {
		name     string
		current  Reaction
		clicked  Reaction
		expected Reaction
	}{
		{"NoneUp", None, Up, Up},
		{"NoneDown", None, Down, Down},
		{"UpUp", Up, Up, None},
		{"UpDown", Up, Down, Down},
		{"DownUp", Down, Up, Up},
		{"DownDown", Down, Down, None},
	}

	for i, tc := range cases {
		if res := tc.current.Toggle(tc.clicked); res != tc.expected {
			t.Errorf("test case %d %s failed, expected %v but was %v", i, tc.name, tc.expected, res)
		}
	}
}

func TestReactionJSON(t *testing.T) {
	var v Viewer
	if err := json.Unmarshal([]byte(`{"direction":null,"reported":true}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Direction != None || !v.Reported {
		t.Fatalf("unexpected viewer: %+v", v)
	}

	if err := json.Unmarshal([]byte(`{"direction":"down"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Direction != Down {
		t.Fatalf("expected down but was %v", v.Direction)
	}

	if err := json.Unmarshal([]byte(`{"direction":"sideways"}`), &v); err == nil {
		t.Fatal("expected error for unknown direction")
	}

	res, _ := json.Marshal(Viewer{Direction: Up})
	if string(res) != `{"direction":"up","reported":false}` {
		t.Fatalf("unexpected json: %s", res)
	}
}

func TestApplyThumbsKeepsOneDirection(t *testing.T) {
	item := &Item{ID: "1", Meta: Meta{Ups: 5}}
	clicks := []Reaction{Up, Down, Down, Up, Up, Down, Up}
	for n, d := range clicks {
		item.ApplyThumbs(&Thumbs{Ups: int64(n), Downs: int64(n + 1)}, d)
		meta := item.Counts()
		if meta.Ups != int64(n) || meta.Downs != int64(n+1) {
			t.Fatalf("click %d: counts not taken from server: %+v", n, meta)
		}
		dir := item.Direction()
		if dir != None && dir != Up && dir != Down {
			t.Fatalf("click %d: invalid direction %v", n, dir)
		}
	}
	if item.Direction() != Up {
		t.Fatalf("expected up after last click but was %v", item.Direction())
	}
}

func TestItemGiftsAndComments(t *testing.T) {
	item := &Item{ID: "1", Meta: Meta{Gifts: 1, Comments: 1}}
	sent := &GiftSent{Count: 3, Data: []*GiftReceipt{{Gift: Gift{ID: 2, Name: "Heart", Price: 200}, Count: 3}}}
	item.ApplyGifts(sent)
	if item.Counts().Gifts != 3 || len(item.Receipts()) != 1 {
		t.Fatalf("gifts not applied: %+v", item.Counts())
	}

	item.AddComments(-1)
	item.AddComments(-1)
	if item.Counts().Comments != 0 {
		t.Fatalf("comments went below zero: %d", item.Counts().Comments)
	}

	item.MarkReported()
	if !item.Reported() {
		t.Fatal("expected reported")
	}
}

func TestPageHasMore(t *testing.T) {
	cases := []struct {
		skip, limit, count int64
		expected           bool
	}{
		{0, 10, 0, false},
		{0, 10, 10, false},
		{0, 10, 11, true},
		{10, 10, 25, true},
		{20, 10, 25, false},
	}
	for i, tc := range cases {
		p := &Page[int]{Skip: tc.skip, Limit: tc.limit, Count: tc.count}
		if p.HasMore() != tc.expected {
			t.Errorf("test case %d failed, expected %v for %+v", i, tc.expected, tc)
		}
	}
}
