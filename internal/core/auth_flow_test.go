package core_test

import (
	"context"
	"fastauth/internal/core"
	"fastauth/internal/core/fake"
	"fastauth/internal/repository"
	tokenIssuer "fastauth/pkg/jwt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// memoryRepo keeps users in a map keyed by id.
type memoryRepo struct {
	mu    sync.Mutex
	users map[string]repository.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: map[string]repository.User{}}
}

func (m *memoryRepo) byEmail(email string) (repository.User, bool) {
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return repository.User{}, false
}

func (m *memoryRepo) CreateUser(_ context.Context, user repository.User) (repository.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail(user.Email); ok {
		return repository.User{}, repository.ErrEmailTaken
	}
	user.ID = uuid.NewString()
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryRepo) GetUserByEmail(_ context.Context, email string) (repository.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail(email)
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *memoryRepo) UpdateUser(_ context.Context, id string, update repository.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if other, taken := m.byEmail(update.Email); taken && other.ID != id {
		return repository.ErrEmailTaken
	}
	u.Name = update.Name
	u.Email = update.Email
	if update.PasswordHash != "" {
		u.PasswordHash = update.PasswordHash
	}
	m.users[id] = u
	return nil
}

func (m *memoryRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	m.users[id] = u
	return nil
}

func (m *memoryRepo) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

var _ = Describe("Auth flow", func() {
	var (
		repo       *memoryRepo
		issuer     *tokenIssuer.JWTService
		fakeMailer *fake.Mailer
		auth       *core.Auth
		ctx        context.Context
	)

	BeforeEach(func() {
		repo = newMemoryRepo()
		issuer = tokenIssuer.NewJWTService([]byte("flow-secret"))
		fakeMailer = new(fake.Mailer)
		ctx = context.Background()
		auth = core.NewAuth(zap.NewNop().Sugar(), repo, issuer, fakeMailer, core.Options{
			TokenExpiration: time.Hour,
			ResetExpiration: 15 * time.Minute,
			BcryptCost:      bcrypt.MinCost,
			ResetURL:        "http://localhost:5173/reset-password",
		})

		Expect(auth.Register(ctx, core.RegisterMessage{
			Name:     "Ana",
			Email:    "ana@x.com",
			Password: "secret1",
		})).To(Succeed())
	})

	It("should reject a second registration of the same email", func() {
		err := auth.Register(ctx, core.RegisterMessage{
			Name:     "Other Ana",
			Email:    "ana@x.com",
			Password: "another",
		})
		Expect(err).To(Equal(core.ErrEmailTaken))
	})

	It("should never store the plaintext password", func() {
		user, err := repo.GetUserByEmail(ctx, "ana@x.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(user.PasswordHash).NotTo(Equal("secret1"))
		Expect(user.PasswordHash).NotTo(ContainSubstring("secret1"))
	})

	It("should reject a wrong password", func() {
		_, err := auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "wrong"})
		Expect(err).To(Equal(core.ErrIncorrectPassword))
	})

	It("should issue a verifiable token for the right password", func() {
		token, err := auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "secret1"})
		Expect(err).NotTo(HaveOccurred())

		claims, err := issuer.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["email"]).To(Equal("ana@x.com"))

		profile, err := auth.Profile(ctx, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(profile.Name).To(Equal("Ana"))
		Expect(profile.Email).To(Equal("ana@x.com"))
		Expect(profile.ID).To(Equal(claims["sub"]))
	})

	It("should not find the profile of a deleted user", func() {
		token, err := auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "secret1"})
		Expect(err).NotTo(HaveOccurred())

		Expect(auth.DeleteAccount(ctx, token)).To(Succeed())

		_, err = auth.Profile(ctx, token)
		Expect(err).To(Equal(core.ErrUserNotFound))
	})

	It("should follow an email change with a new token", func() {
		token, err := auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "secret1"})
		Expect(err).NotTo(HaveOccurred())

		newToken, err := auth.UpdateProfile(ctx, token, core.UpdateMessage{
			Name:  "Ana Maria",
			Email: "ana.maria@x.com",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = auth.Profile(ctx, token)
		Expect(err).To(Equal(core.ErrUserNotFound))

		profile, err := auth.Profile(ctx, newToken)
		Expect(err).NotTo(HaveOccurred())
		Expect(profile.Name).To(Equal("Ana Maria"))

		_, err = auth.Login(ctx, core.LoginMessage{Email: "ana.maria@x.com", Password: "secret1"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should keep reset and access tokens apart", func() {
		Expect(auth.RecoverPassword(ctx, "ana@x.com")).To(Succeed())
		Expect(fakeMailer.SendPasswordResetCallCount()).To(Equal(1))
		_, _, link := fakeMailer.SendPasswordResetArgsForCall(0)
		u, err := url.Parse(link)
		Expect(err).NotTo(HaveOccurred())
		resetToken := u.Query().Get("token")

		_, err = auth.Profile(ctx, resetToken)
		Expect(err).To(MatchError(core.ErrInvalidToken))

		accessToken, err := auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "secret1"})
		Expect(err).NotTo(HaveOccurred())
		err = auth.ResetPassword(ctx, core.ResetMessage{Token: accessToken, Password: "newsecret"})
		Expect(err).To(MatchError(core.ErrInvalidToken))

		Expect(auth.ResetPassword(ctx, core.ResetMessage{Token: resetToken, Password: "newsecret"})).To(Succeed())

		_, err = auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "secret1"})
		Expect(err).To(Equal(core.ErrIncorrectPassword))
		_, err = auth.Login(ctx, core.LoginMessage{Email: "ana@x.com", Password: "newsecret"})
		Expect(err).NotTo(HaveOccurred())
	})
})
