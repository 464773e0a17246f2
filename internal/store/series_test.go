package store_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"gorm.io/gorm"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/config"
	"github.com/terrasense/slope-monitor/internal/store"
	"github.com/terrasense/slope-monitor/internal/store/model"
)

func points(values ...float64) []api.DataPoint {
	pts := make([]api.DataPoint, len(values))
	for i, v := range values {
		pts[i] = api.DataPoint{Index: i, Value: v}
	}
	return pts
}

var _ = Describe("series store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		cfg.Database.Type = "sqlite"
		cfg.Database.Name = ":memory:"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db, zap.S())
		gormdb = db

		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM series_points;")
	})

	Context("replace", func() {
		It("stores the points and returns the identifier", func() {
			datasetID := uuid.New()

			identifier, rows, err := s.Series().Replace(context.TODO(), datasetID, "pioggia", points(6.1, 161.9, 140.7))
			Expect(err).To(BeNil())
			Expect(rows).To(Equal(3))
			Expect(identifier).To(Equal(model.SeriesIdentifier(datasetID, "pioggia")))
		})

		It("discards previously imported points of the same pair", func() {
			datasetID := uuid.New()

			_, _, err := s.Series().Replace(context.TODO(), datasetID, "falda", points(-1.77, -1.19))
			Expect(err).To(BeNil())

			_, rows, err := s.Series().Replace(context.TODO(), datasetID, "falda", points(-0.78, -0.84, -0.70))
			Expect(err).To(BeNil())
			Expect(rows).To(Equal(3))

			var count int64
			gormdb.Model(&model.SeriesPoint{}).Count(&count)
			Expect(count).To(Equal(int64(3)))
		})

		It("keeps other series of the same dataset untouched", func() {
			datasetID := uuid.New()

			_, _, err := s.Series().Replace(context.TODO(), datasetID, "pioggia", points(1, 2))
			Expect(err).To(BeNil())
			_, _, err = s.Series().Replace(context.TODO(), datasetID, "falda", points(-1, -2))
			Expect(err).To(BeNil())

			_, _, err = s.Series().Replace(context.TODO(), datasetID, "pioggia", points(3, 4))
			Expect(err).To(BeNil())

			falda, err := s.Series().Get(context.TODO(), datasetID, "falda")
			Expect(err).To(BeNil())
			Expect(falda).To(HaveLen(2))
		})
	})

	Context("get", func() {
		It("returns the points ordered by index", func() {
			datasetID := uuid.New()

			pts := []api.DataPoint{
				{Index: 2, Value: 30},
				{Index: 0, Value: 10},
				{Index: 1, Value: 20},
			}
			_, _, err := s.Series().Replace(context.TODO(), datasetID, "spostamento", pts)
			Expect(err).To(BeNil())

			got, err := s.Series().Get(context.TODO(), datasetID, "spostamento")
			Expect(err).To(BeNil())
			Expect(got).To(Equal(points(10, 20, 30)))
		})

		It("returns ErrRecordNotFound for a missing series", func() {
			_, err := s.Series().Get(context.TODO(), uuid.New(), "pioggia")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("exists", func() {
		It("reports presence per dataset and type", func() {
			datasetID := uuid.New()

			_, _, err := s.Series().Replace(context.TODO(), datasetID, "pioggia", points(1))
			Expect(err).To(BeNil())

			exists, err := s.Series().Exists(context.TODO(), datasetID, "pioggia")
			Expect(err).To(BeNil())
			Expect(exists).To(BeTrue())

			exists, err = s.Series().Exists(context.TODO(), datasetID, "falda")
			Expect(err).To(BeNil())
			Expect(exists).To(BeFalse())

			exists, err = s.Series().Exists(context.TODO(), uuid.New(), "pioggia")
			Expect(err).To(BeNil())
			Expect(exists).To(BeFalse())
		})
	})

	Context("missing types", func() {
		It("reports the missing types in the requested order", func() {
			datasetID := uuid.New()

			_, _, err := s.Series().Replace(context.TODO(), datasetID, "falda", points(-1))
			Expect(err).To(BeNil())

			missing, err := s.Series().MissingTypes(context.TODO(), datasetID, []string{"pioggia", "falda", "spostamento"})
			Expect(err).To(BeNil())
			Expect(missing).To(Equal([]string{"pioggia", "spostamento"}))
		})

		It("returns an empty list when everything is present", func() {
			datasetID := uuid.New()

			_, _, err := s.Series().Replace(context.TODO(), datasetID, "pioggia", points(1))
			Expect(err).To(BeNil())
			_, _, err = s.Series().Replace(context.TODO(), datasetID, "falda", points(-1))
			Expect(err).To(BeNil())

			missing, err := s.Series().MissingTypes(context.TODO(), datasetID, []string{"pioggia", "falda"})
			Expect(err).To(BeNil())
			Expect(missing).To(BeEmpty())
		})
	})
})
