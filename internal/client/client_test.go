package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"fastauth/internal/client"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		mux     *http.ServeMux
		c       *client.Client
		ctx     context.Context
		gotAuth string
		gotBody map[string]string
	)

	BeforeEach(func() {
		ctx = context.Background()
		gotAuth = ""
		gotBody = nil
		mux = http.NewServeMux()
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			if r.Body != nil {
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
			}
			mux.ServeHTTP(w, r)
		}))
		c = client.New(server.URL, 5*time.Second)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Login", func() {
		It("should return the token", func() {
			mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message":"Login successful","token":"tok","isAuthenticated":true}`))
			})

			token, err := c.Login(ctx, "ana@x.com", "secret1")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("tok"))
			Expect(gotBody).To(Equal(map[string]string{"email": "ana@x.com", "password": "secret1"}))
		})

		It("should surface the API error", func() {
			mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Login failed","error":"incorrect password"}`))
			})

			_, err := c.Login(ctx, "ana@x.com", "wrong")
			var apiErr *client.APIError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(client.IsStatus(err, http.StatusUnauthorized)).To(BeTrue())
			Expect(err.(*client.APIError).Message).To(Equal("incorrect password"))
		})
	})

	Describe("Profile", func() {
		It("should send the bearer token", func() {
			mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"id":"id-1","name":"Ana","email":"ana@x.com"}`))
			})

			profile, err := c.Profile(ctx, "tok")
			Expect(err).NotTo(HaveOccurred())
			Expect(gotAuth).To(Equal("Bearer tok"))
			Expect(profile).To(Equal(client.Profile{ID: "id-1", Name: "Ana", Email: "ana@x.com"}))
		})
	})

	Describe("UpdateProfile", func() {
		It("should leave an empty password out and return the new token", func() {
			mux.HandleFunc("PUT /users", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message":"Profile updated successfully","token":"tok2"}`))
			})

			token, err := c.UpdateProfile(ctx, "tok", "Ana Maria", "ana@x.com", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("tok2"))
			Expect(gotBody).NotTo(HaveKey("password"))
		})
	})

	Describe("RecoverPassword", func() {
		It("should treat success false as an error", func() {
			mux.HandleFunc("POST /recover-password", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success":false,"message":"nope"}`))
			})

			Expect(c.RecoverPassword(ctx, "ana@x.com")).To(MatchError(ContainSubstring("nope")))
		})
	})

	Describe("DeleteAccount", func() {
		It("should call DELETE /users", func() {
			mux.HandleFunc("DELETE /users", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message":"Account deleted successfully"}`))
			})

			Expect(c.DeleteAccount(ctx, "tok")).To(Succeed())
			Expect(gotAuth).To(Equal("Bearer tok"))
		})

		It("should report plain text errors", func() {
			mux.HandleFunc("DELETE /users", func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gateway down", http.StatusBadGateway)
			})

			err := c.DeleteAccount(ctx, "tok")
			Expect(client.IsStatus(err, http.StatusBadGateway)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("gateway down")))
		})
	})
})

var _ = Describe("TokenStore", func() {
	var (
		store *client.TokenStore
		path  string
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "nested", "token")
		store = client.NewTokenStore(path)
	})

	It("should load nothing before a save", func() {
		token, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(token).To(BeEmpty())
	})

	It("should persist the token privately", func() {
		Expect(store.Save("tok")).To(Succeed())

		info, err := os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))

		token, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(token).To(Equal("tok"))
	})

	It("should clear the token, even twice", func() {
		Expect(store.Save("tok")).To(Succeed())
		Expect(store.Clear()).To(Succeed())
		Expect(store.Clear()).To(Succeed())

		token, err := store.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(token).To(BeEmpty())
	})
})
