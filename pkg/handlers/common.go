package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"

	"ktap/pkg/session"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

type Response struct {
	Message string `json:"message"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Message string         `json:"message"`
	Errors  []*CustomError `json:"errors"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, &Response{Message: msg}, status)
}

// writeErrorsResponse answers 400 with the first failure as message so
// clients can show it inline.
func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError) {
	resp := &ErrorsResponse{Errors: errors}
	if len(errors) > 0 {
		resp.Message = errors[0].Param + " " + errors[0].Msg
	}
	writeJSON(w, resp, http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, v interface{}, status int) {
	res, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(res)
}

func readJSON(r *http.Request, v interface{}) error {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// parsePage reads skip and limit; bad values fall back to the defaults.
func parsePage(r *http.Request) (int, int) {
	q := r.URL.Query()

	skip, err := strconv.Atoi(q.Get("skip"))
	if err != nil || skip < 0 {
		skip = 0
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return skip, limit
}

func currentUser(r *http.Request) *session.User {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		return nil
	}
	return sess.User
}
