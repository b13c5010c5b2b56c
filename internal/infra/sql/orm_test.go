package sql_test

import (
	"context"
	"path/filepath"

	"pilot-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testRow struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

func (testRow) TableName() string {
	return "test_rows"
}

func countRows(db *sql.DB) int64 {
	var count int64
	gomega.Expect(db.DB.Model(&testRow{}).Count(&count).Error).To(gomega.Succeed())
	return count
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		db  *sql.DB
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		db, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(db.AutoMigrate(&testRow{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.Context("Create", func() {
		ginkgo.It("should insert a row", func() {
			err := db.WithContext(ctx).Create(&testRow{ID: "a", Name: "first"}).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var row testRow
			gomega.Expect(db.DB.First(&row, "id = ?", "a").Error).To(gomega.Succeed())
			gomega.Expect(row.Name).To(gomega.Equal("first"))
		})

		ginkgo.It("should report duplicated primary keys", func() {
			gomega.Expect(db.WithContext(ctx).Create(&testRow{ID: "a"}).Error()).To(gomega.Succeed())

			err := db.WithContext(ctx).Create(&testRow{ID: "a"}).Error()

			gomega.Expect(err).To(gomega.MatchError(sql.ErrDuplicatedKey))
			gomega.Expect(countRows(db)).To(gomega.Equal(int64(1)))
		})
	})

	ginkgo.Context("WithContext", func() {
		ginkgo.It("should not insert once the context is done", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			err := db.WithContext(cancelled).Create(&testRow{ID: "late"}).Error()

			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
			gomega.Expect(countRows(db)).To(gomega.BeZero())
		})
	})

	ginkgo.It("should keep memory databases apart", func() {
		other, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(db.WithContext(ctx).Create(&testRow{ID: "only-here"}).Error()).To(gomega.Succeed())

		gomega.Expect(other.AutoMigrate(&testRow{})).To(gomega.Succeed())
		gomega.Expect(countRows(other)).To(gomega.BeZero())
	})
})

var _ = ginkgo.Describe("Open", func() {
	ginkgo.It("should open a sqlite file database", func() {
		path := filepath.Join(ginkgo.GinkgoT().TempDir(), "pilot.db")

		orm, err := sql.Open(sql.DriverSQLite, path)

		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&testRow{})).To(gomega.Succeed())
		gomega.Expect(orm.WithContext(context.Background()).Create(&testRow{ID: "x"}).Error()).To(gomega.Succeed())
	})

	ginkgo.DescribeTable("ParseDriver",
		func(value string, expected sql.Driver) {
			gomega.Expect(sql.ParseDriver(value)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("default", "", sql.DriverPostgres),
		ginkgo.Entry("postgres", "postgres", sql.DriverPostgres),
		ginkgo.Entry("sqlite", "SQLite", sql.DriverSQLite),
	)
})
