package db_test

import (
	"context"
	"database/sql"
	"errors"

	"fastauth/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Account struct {
	ID    string `gorm:"primaryKey;autoIncrement:false"`
	Email string
}

var _ = Describe("GormDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = db.NewFromGorm(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(testDB.Close()).To(Succeed())
	})

	Describe("GetBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email = \$1 ORDER BY "accounts"\."id" LIMIT \$2.*`).
					WithArgs("ana@x.com", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
						AddRow("id-1", "ana@x.com"))
			})

			It("should fill the destination", func() {
				var result Account
				err := testDB.GetBy(ctx, "email", "ana@x.com", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("id-1"))
				Expect(result.Email).To(Equal("ana@x.com"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE email = \$1 ORDER BY "accounts"\."id" LIMIT \$2.*`).
					WithArgs("ghost@x.com", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
			})

			It("should return ErrNotFound", func() {
				var result Account
				err := testDB.GetBy(ctx, "email", "ghost@x.com", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				var result Account
				err := testDB.GetBy(ctx, "email", "ana@x.com", &result)
				Expect(err).To(MatchError(ContainSubstring(`getting record by "email"`)))
				Expect(err).To(MatchError(sql.ErrConnDone))
			})
		})
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "accounts" \("id","email"\) VALUES \(\$1,\$2\)`).
					WithArgs("id-1", "ana@x.com").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should not return an error", func() {
				err := testDB.Create(ctx, &Account{ID: "id-1", Email: "ana@x.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the unique index rejects the row", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "accounts".*`).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicateKey", func() {
				err := testDB.Create(ctx, &Account{ID: "id-1", Email: "ana@x.com"})
				Expect(err).To(MatchError(db.ErrDuplicateKey))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateBy", func() {
		When("a row is updated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "accounts" SET "email"=\$1 WHERE id = \$2`).
					WithArgs("new@x.com", "id-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should not return an error", func() {
				err := testDB.UpdateBy(ctx, &Account{}, "id", "id-1", map[string]any{"email": "new@x.com"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "accounts".*`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.UpdateBy(ctx, &Account{}, "id", "id-1", map[string]any{"email": "new@x.com"})
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("DeleteBy", func() {
		When("a row is deleted", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
					WithArgs("id-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should not return an error", func() {
				err := testDB.DeleteBy(ctx, &Account{}, "id", "id-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "accounts".*`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.DeleteBy(ctx, &Account{}, "id", "id-1")
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("Migrate", func() {
		var (
			restore func()
			gotDir  string
			upErr   error
		)

		BeforeEach(func() {
			upErr = nil
			restore = db.SetGooseUp(func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
				gotDir = dir
				return upErr
			})
		})

		AfterEach(func() {
			restore()
		})

		It("should run the embedded migrations", func() {
			Expect(testDB.Migrate(ctx)).To(Succeed())
			Expect(gotDir).To(Equal("migrations"))
		})

		When("goose fails", func() {
			BeforeEach(func() {
				upErr = errors.New("boom")
			})

			It("should wrap the error", func() {
				Expect(testDB.Migrate(ctx)).To(MatchError(ContainSubstring("failed to migrate tables: boom")))
			})
		})
	})
})
