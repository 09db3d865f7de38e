package core_test

import (
	"context"
	"errors"
	"fastauth/internal/core"
	"fastauth/internal/core/fake"
	"fastauth/internal/repository"
	tokenIssuer "fastauth/pkg/jwt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Auth", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeMailer *fake.Mailer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		opts       core.Options

		auth *core.Auth

		fakeErr        error
		userId         string
		hashedPassword string
		storedUser     repository.User
		genToken       *jwt.Token
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeMailer = new(fake.Mailer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		opts = core.Options{
			TokenExpiration: time.Hour,
			ResetExpiration: 15 * time.Minute,
			BcryptCost:      bcrypt.MinCost,
			ResetURL:        "http://localhost:5173/reset-password",
		}

		fakeErr = errors.New("fake error")
		userId = uuid.NewString()

		hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		hashedPassword = string(hash)

		storedUser = repository.User{
			ID:           userId,
			Name:         "Ana",
			Email:        "ana@x.com",
			PasswordHash: hashedPassword,
		}

		genToken = jwt.New(jwt.SigningMethodHS512)
		fakeJWT.GenerateReturns(genToken)
		fakeJWT.SignReturns("signed.token", nil)
	})

	JustBeforeEach(func() {
		auth = core.NewAuth(fakeLogger, fakeRepo, fakeJWT, fakeMailer, opts)
	})

	Describe("Register", func() {
		var (
			msg core.RegisterMessage
			err error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Name:     "Ana",
				Email:    "ana@x.com",
				Password: "secret1",
			}
			fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			fakeRepo.CreateUserStub = func(_ context.Context, user repository.User) (repository.User, error) {
				user.ID = userId
				return user, nil
			}
		})

		JustBeforeEach(func() {
			err = auth.Register(ctx, msg)
		})

		When("the email is free", func() {
			It("should store a bcrypt hash of the password", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(1))
				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal("ana@x.com"))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Name).To(Equal("Ana"))
				Expect(user.Email).To(Equal("ana@x.com"))
				Expect(user.PasswordHash).NotTo(Equal("secret1"))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1"))).To(Succeed())
			})
		})

		When("the email is already registered", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(storedUser, nil)
			})

			It("should return ErrEmailTaken without inserting", func() {
				Expect(err).To(Equal(core.ErrEmailTaken))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the password is longer than bcrypt accepts", func() {
			BeforeEach(func() {
				msg.Password = strings.Repeat("a", 73)
			})

			It("should return ErrPasswordTooLong without inserting", func() {
				Expect(err).To(Equal(core.ErrPasswordTooLong))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the unique index rejects a concurrent insert", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrEmailTaken)
			})

			It("should return ErrEmailTaken", func() {
				Expect(err).To(Equal(core.ErrEmailTaken))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg   core.LoginMessage
			token string
			err   error
		)

		BeforeEach(func() {
			msg = core.LoginMessage{
				Email:    "ana@x.com",
				Password: "secret1",
			}
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			token, err = auth.Login(ctx, msg)
		})

		When("user exists and password matches", func() {
			It("should return a signed access token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					Subject:    userId,
					Email:      "ana@x.com",
					Purpose:    tokenIssuer.PurposeAccess,
					Expiration: time.Hour,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(Equal(core.ErrUserNotFound))
				Expect(token).To(BeEmpty())
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				msg.Password = "wrong"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(Equal(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).To(MatchError(ContainSubstring("signing token")))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Profile", func() {
		var (
			user core.PublicUser
			err  error
		)

		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":   userId,
				"email": "ana@x.com",
				"typ":   tokenIssuer.PurposeAccess,
			}, nil)
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			user, err = auth.Profile(ctx, "access.token")
		})

		When("the token is valid", func() {
			It("should return the public user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.PublicUser{
					ID:    userId,
					Name:  "Ana",
					Email: "ana@x.com",
				}))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("access.token"))
				_, email := fakeRepo.GetUserByEmailArgsForCall(0)
				Expect(email).To(Equal("ana@x.com"))
			})
		})

		When("the token does not validate", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(0))
			})
		})

		When("the token is a reset token", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":   userId,
					"email": "ana@x.com",
					"typ":   tokenIssuer.PurposeReset,
				}, nil)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("the token has no email", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub": userId,
					"typ": tokenIssuer.PurposeAccess,
				}, nil)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("the user has been deleted", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})

		When("the email now belongs to another account", func() {
			BeforeEach(func() {
				other := storedUser
				other.ID = uuid.NewString()
				fakeRepo.GetUserByEmailReturns(other, nil)
			})

			It("should return user not found error", func() {
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateProfile", func() {
		var (
			msg   core.UpdateMessage
			token string
			err   error
		)

		BeforeEach(func() {
			msg = core.UpdateMessage{
				Name:  "Ana Maria",
				Email: "ana@x.com",
			}
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":   userId,
				"email": "ana@x.com",
				"typ":   tokenIssuer.PurposeAccess,
			}, nil)
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			token, err = auth.UpdateProfile(ctx, "access.token", msg)
		})

		When("only the name changes", func() {
			It("should keep the password hash and return a fresh token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(1))
				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(1))
				_, id, update := fakeRepo.UpdateUserArgsForCall(0)
				Expect(id).To(Equal(userId))
				Expect(update).To(Equal(repository.UserUpdate{
					Name:  "Ana Maria",
					Email: "ana@x.com",
				}))
			})
		})

		When("the email changes to a free one", func() {
			BeforeEach(func() {
				msg.Email = "ana.maria@x.com"
				fakeRepo.GetUserByEmailReturnsOnCall(0, storedUser, nil)
				fakeRepo.GetUserByEmailReturnsOnCall(1, repository.User{}, repository.ErrUserNotFound)
			})

			It("should issue the new token for the new email", func() {
				Expect(err).NotTo(HaveOccurred())
				_, email := fakeRepo.GetUserByEmailArgsForCall(1)
				Expect(email).To(Equal("ana.maria@x.com"))

				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info.Email).To(Equal("ana.maria@x.com"))
				Expect(info.Subject).To(Equal(userId))
				Expect(info.Purpose).To(Equal(tokenIssuer.PurposeAccess))
			})
		})

		When("the new email belongs to someone else", func() {
			BeforeEach(func() {
				msg.Email = "bob@x.com"
				fakeRepo.GetUserByEmailReturnsOnCall(0, storedUser, nil)
				fakeRepo.GetUserByEmailReturnsOnCall(1, repository.User{ID: uuid.NewString(), Email: "bob@x.com"}, nil)
			})

			It("should return ErrEmailTaken", func() {
				Expect(err).To(Equal(core.ErrEmailTaken))
				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(0))
			})
		})

		When("a new password is given", func() {
			BeforeEach(func() {
				msg.Password = "newsecret"
			})

			It("should store its hash", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, update := fakeRepo.UpdateUserArgsForCall(0)
				Expect(bcrypt.CompareHashAndPassword([]byte(update.PasswordHash), []byte("newsecret"))).To(Succeed())
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.UpdateUserCallCount()).To(Equal(0))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})
	})

	Describe("DeleteAccount", func() {
		var err error

		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":   userId,
				"email": "ana@x.com",
				"typ":   tokenIssuer.PurposeAccess,
			}, nil)
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			err = auth.DeleteAccount(ctx, "access.token")
		})

		When("the token is valid", func() {
			It("should delete the user by id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteUserArgsForCall(0)
				Expect(id).To(Equal(userId))
			})
		})

		When("the user is already gone", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})

		When("the token is not valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.DeleteUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RecoverPassword", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
			fakeJWT.SignReturns("reset.token", nil)
		})

		JustBeforeEach(func() {
			err = auth.RecoverPassword(ctx, "ana@x.com")
		})

		When("the email is registered", func() {
			It("should mail a reset link carrying a reset token", func() {
				Expect(err).NotTo(HaveOccurred())

				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info.Purpose).To(Equal(tokenIssuer.PurposeReset))
				Expect(info.Expiration).To(Equal(15 * time.Minute))

				Expect(fakeMailer.SendPasswordResetCallCount()).To(Equal(1))
				_, to, link := fakeMailer.SendPasswordResetArgsForCall(0)
				Expect(to).To(Equal("ana@x.com"))

				u, parseErr := url.Parse(link)
				Expect(parseErr).NotTo(HaveOccurred())
				Expect(u.Host).To(Equal("localhost:5173"))
				Expect(u.Path).To(Equal("/reset-password"))
				Expect(u.Query().Get("token")).To(Equal("reset.token"))
			})
		})

		When("the email is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should succeed without sending anything", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeMailer.SendPasswordResetCallCount()).To(Equal(0))
			})
		})

		When("the mailer fails", func() {
			BeforeEach(func() {
				fakeMailer.SendPasswordResetReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ResetPassword", func() {
		var (
			msg core.ResetMessage
			err error
		)

		BeforeEach(func() {
			msg = core.ResetMessage{
				Token:    "reset.token",
				Password: "newsecret",
			}
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":   userId,
				"email": "ana@x.com",
				"typ":   tokenIssuer.PurposeReset,
			}, nil)
			fakeRepo.GetUserByEmailReturns(storedUser, nil)
		})

		JustBeforeEach(func() {
			err = auth.ResetPassword(ctx, msg)
		})

		When("the reset token is valid", func() {
			It("should store the new hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.UpdatePasswordCallCount()).To(Equal(1))
				_, id, hash := fakeRepo.UpdatePasswordArgsForCall(0)
				Expect(id).To(Equal(userId))
				Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret"))).To(Succeed())
			})
		})

		When("the new password is longer than bcrypt accepts", func() {
			BeforeEach(func() {
				msg.Password = strings.Repeat("a", 73)
			})

			It("should return ErrPasswordTooLong without storing", func() {
				Expect(err).To(Equal(core.ErrPasswordTooLong))
				Expect(fakeRepo.UpdatePasswordCallCount()).To(Equal(0))
			})
		})

		When("an access token is used", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{
					"sub":   userId,
					"email": "ana@x.com",
					"typ":   tokenIssuer.PurposeAccess,
				}, nil)
			})

			It("should return ErrInvalidToken", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.UpdatePasswordCallCount()).To(Equal(0))
			})
		})

		When("the user is gone", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(Equal(core.ErrUserNotFound))
			})
		})
	})
})
