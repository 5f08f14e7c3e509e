/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package foodytest provides an in-process Foody service for hermetic
// testing.  It answers the same routes, status codes and messages as the
// real service.
package foodytest

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Username is the account the server accepts by default.
	Username = "TestFoodyUser"
	// Password is the password for Username.
	Password = "TestFoodyUser123!"

	MsgEdited          = "Successfully edited"
	MsgDeleted         = "Deleted successfully!"
	MsgFoodNotFound    = "No food revues..."
	MsgUnableToDelete  = "Unable to delete this food revue!"
	MsgInvalidLogin    = "Invalid username or password!"
	MsgMissingFields   = "Name and description are required!"
	MsgInvalidPatch    = "Invalid patch document!"
	MsgUnauthenticated = "Unauthorized"
)

var errUnauthenticated = errors.New("missing or invalid bearer token")

type food struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type message struct {
	Msg string `json:"msg"`
}

// Option configures a Server.
type Option func(*Server)

// WithUser replaces the default account.
func WithUser(username, password string) Option {
	return func(s *Server) {
		s.users = map[string]string{username: password}
	}
}

// WithTokenLifetime sets how long issued tokens remain valid.
func WithTokenLifetime(lifetime time.Duration) Option {
	return func(s *Server) {
		s.tokenLifetime = lifetime
	}
}

// Server is a running fake Foody service.
type Server struct {
	*httptest.Server

	users         map[string]string
	secret        []byte
	tokenLifetime time.Duration

	lock  sync.Mutex
	foods map[string]*food
	order []string
}

// NewServer starts a fake service, close it when done.
func NewServer(options ...Option) *Server {
	s := &Server{
		users:         map[string]string{Username: Password},
		secret:        make([]byte, 32),
		tokenLifetime: time.Hour,
		foods:         map[string]*food{},
	}

	_, _ = rand.Read(s.secret)

	for _, o := range options {
		o(s)
	}

	s.Server = httptest.NewServer(s.router())

	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/User/Authentication", s.authenticate)

	r.Route("/api/Food", func(r chi.Router) {
		r.Use(s.requireToken)

		r.Post("/Create", s.createFood)
		r.Patch("/Edit/{foodID}", s.editFood)
		r.Get("/All", s.listFoods)
		r.Delete("/Delete/{foodID}", s.deleteFood)
	})

	return r
}

// Foods returns the number of stored food records.
func (s *Server) Foods() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.foods)
}

// Food returns the name and description of a stored record.
func (s *Server) Food(id string) (string, string, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	f, ok := s.foods[id]
	if !ok {
		return "", "", false
	}

	return f.Name, f.Description, true
}

// IssueToken returns a valid token for username, bypassing the login route.
func (s *Server) IssueToken(username string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) verifyToken(header string) error {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return errUnauthenticated
	}

	keyFunc := func(*jwt.Token) (any, error) {
		return s.secret, nil
	}

	if _, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})); err != nil {
		return errors.Join(errUnauthenticated, err)
	}

	return nil
}

func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.verifyToken(r.Header.Get("Authorization")); err != nil {
			writeJSON(w, http.StatusUnauthorized, message{Msg: MsgUnauthenticated})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgInvalidLogin})
		return
	}

	password, ok := s.users[request.Username]
	if !ok || password != request.Password {
		writeJSON(w, http.StatusUnauthorized, message{Msg: MsgInvalidLogin})
		return
	}

	token, err := s.IssueToken(request.Username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username":    request.Username,
		"accessToken": token,
	})
}

func (s *Server) createFood(w http.ResponseWriter, r *http.Request) {
	var request food

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Name == "" || request.Description == "" {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgMissingFields})
		return
	}

	request.ID = uuid.NewString()

	s.lock.Lock()
	s.foods[request.ID] = &request
	s.order = append(s.order, request.ID)
	s.lock.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"foodId": request.ID})
}

func (s *Server) editFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "foodID")

	s.lock.Lock()
	defer s.lock.Unlock()

	current, ok := s.foods[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, message{Msg: MsgFoodNotFound})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgInvalidPatch})
		return
	}

	patch, err := jsonpatch.DecodePatch(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgInvalidPatch})
		return
	}

	document, err := json.Marshal(current)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	patched, err := patch.Apply(document)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgInvalidPatch})
		return
	}

	var updated food

	if err := json.Unmarshal(patched, &updated); err != nil {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgInvalidPatch})
		return
	}

	// The identifier is not editable.
	updated.ID = id
	s.foods[id] = &updated

	writeJSON(w, http.StatusOK, message{Msg: MsgEdited})
}

func (s *Server) listFoods(w http.ResponseWriter, _ *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	out := make([]food, 0, len(s.order))

	for _, id := range s.order {
		out = append(out, *s.foods[id])
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) deleteFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "foodID")

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.foods[id]; !ok {
		writeJSON(w, http.StatusBadRequest, message{Msg: MsgUnableToDelete})
		return
	}

	delete(s.foods, id)

	s.order = slices.DeleteFunc(s.order, func(candidate string) bool {
		return candidate == id
	})

	writeJSON(w, http.StatusOK, message{Msg: MsgDeleted})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
